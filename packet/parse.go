package packet

import "fmt"

// field widths of the wire format
const (
	versionBits    = 3
	typeBits       = 3
	groupBits      = 4
	bitLengthBits  = 15
	countBits      = 11
	lengthTypeBits = 1
)

// Parse decodes one packet starting at the cursor's position, including all of
// its nested sub-packets, and leaves the cursor on the first bit after it.
// Trailing padding after a top-level packet is not consumed.
func Parse(c *Cursor) (Packet, error) {
	ver, err := c.ReadBits(versionBits)
	if err != nil {
		return nil, err
	}
	typ, err := c.ReadBits(typeBits)
	if err != nil {
		return nil, err
	}

	if OpType(typ) == LiteralType {
		v, err := parseLiteral(c)
		if err != nil {
			return nil, err
		}
		return &Literal{Ver: uint8(ver), Value: v}, nil
	}

	return parseOperator(c, uint8(ver), OpType(typ))
}

// parseLiteral reads continuation groups until one has its flag cleared.
func parseLiteral(c *Cursor) (uint64, error) {
	var v uint64
	for {
		more, err := c.ReadBits(1)
		if err != nil {
			return 0, err
		}
		group, err := c.ReadBits(groupBits)
		if err != nil {
			return 0, err
		}
		if v>>(64-groupBits) != 0 {
			return 0, fmt.Errorf("%w: at offset %d", ErrLiteralOverflow, c.Pos())
		}
		v = v<<groupBits | group
		if more == 0 {
			return v, nil
		}
	}
}

func parseOperator(c *Cursor, ver uint8, typ OpType) (*Operator, error) {
	lt, err := c.ReadBits(lengthTypeBits)
	if err != nil {
		return nil, err
	}
	op := &Operator{Ver: ver, Type: typ, LengthType: LengthType(lt)}

	switch op.LengthType {
	case ByBits:
		n, err := c.ReadBits(bitLengthBits)
		if err != nil {
			return nil, err
		}
		end := c.Pos() + int(n)
		if end > c.Len() {
			return nil, fmt.Errorf("%w: %d sub-packet bits declared at offset %d, %d available",
				ErrShortInput, n, c.Pos(), c.Remaining())
		}
		for c.Pos() < end {
			child, err := Parse(c)
			if err != nil {
				return nil, err
			}
			if c.Pos() > end {
				return nil, fmt.Errorf("%w: ended at bit %d, boundary %d", ErrBoundary, c.Pos(), end)
			}
			op.Children = append(op.Children, child)
		}
	default: // ByCount
		n, err := c.ReadBits(countBits)
		if err != nil {
			return nil, err
		}
		op.Children = make([]Packet, 0, n)
		for i := uint64(0); i < n; i++ {
			child, err := Parse(c)
			if err != nil {
				return nil, err
			}
			op.Children = append(op.Children, child)
		}
	}

	return op, nil
}
