package packet

import "errors"

// Sentinel errors for packet decoding and evaluation.
var (
	// ErrBadHex indicates input that is not valid hexadecimal.
	ErrBadHex = errors.New("packet: invalid hexadecimal input")

	// ErrReadWidth indicates a bit read wider than 64 or below zero.
	ErrReadWidth = errors.New("packet: bit read width out of range")

	// ErrShortInput indicates the buffer ended in the middle of a packet.
	ErrShortInput = errors.New("packet: unexpected end of input")

	// ErrBoundary indicates sub-packets overran their declared bit length.
	ErrBoundary = errors.New("packet: sub-packets overran declared length")

	// ErrLiteralOverflow indicates a literal wider than 64 bits.
	ErrLiteralOverflow = errors.New("packet: literal exceeds 64 bits")

	// ErrArity indicates an operator with the wrong number of operands.
	ErrArity = errors.New("packet: wrong number of operands")

	// ErrUnknownOp indicates an operator type ID without semantics.
	ErrUnknownOp = errors.New("packet: unknown operator")
)

// OpType is the 3-bit type ID of a packet.
type OpType uint8

// Type IDs. LiteralType marks literal packets and never reaches evaluation as
// an operator.
const (
	Sum OpType = iota
	Product
	Minimum
	Maximum
	LiteralType
	Greater
	Less
	Equal
)

var opNames = [...]string{"sum", "product", "min", "max", "literal", "gt", "lt", "eq"}

// String returns a short lower-case name such as "sum" or "gt".
func (t OpType) String() string {
	if int(t) < len(opNames) {
		return opNames[t]
	}
	return "unknown"
}

// LengthType selects how an operator bounds its sub-packets.
type LengthType uint8

const (
	// ByBits bounds sub-packets by their total bit length (15-bit field).
	ByBits LengthType = 0
	// ByCount bounds sub-packets by their number (11-bit field).
	ByCount LengthType = 1
)

// Packet is either a *Literal or an *Operator. The set is closed; dispatch on
// it with a type switch.
type Packet interface {
	// Version returns the 3-bit version field.
	Version() uint8
	isPacket()
}

// Literal carries a single value.
type Literal struct {
	Ver   uint8
	Value uint64
}

// Operator combines the values of its children.
type Operator struct {
	Ver        uint8
	Type       OpType
	LengthType LengthType
	Children   []Packet
}

func (l *Literal) Version() uint8  { return l.Ver }
func (o *Operator) Version() uint8 { return o.Ver }

func (*Literal) isPacket()  {}
func (*Operator) isPacket() {}
