package packet

import "fmt"

// VersionSum adds up the version fields of p and every packet nested in it.
func VersionSum(p Packet) uint64 {
	switch p := p.(type) {
	case *Literal:
		return uint64(p.Ver)
	case *Operator:
		sum := uint64(p.Ver)
		for _, c := range p.Children {
			sum += VersionSum(c)
		}
		return sum
	default:
		return 0
	}
}

// Eval computes the value of p. Every operator needs at least one operand;
// comparisons need exactly two.
func Eval(p Packet) (uint64, error) {
	switch p := p.(type) {
	case *Literal:
		return p.Value, nil
	case *Operator:
		vals := make([]uint64, len(p.Children))
		for i, c := range p.Children {
			v, err := Eval(c)
			if err != nil {
				return 0, err
			}
			vals[i] = v
		}
		return apply(p.Type, vals)
	default:
		return 0, fmt.Errorf("%w: %T", ErrUnknownOp, p)
	}
}

func apply(op OpType, vals []uint64) (uint64, error) {
	if len(vals) == 0 {
		return 0, fmt.Errorf("%w: %s without operands", ErrArity, op)
	}
	switch op {
	case Sum:
		var s uint64
		for _, v := range vals {
			s += v
		}
		return s, nil
	case Product:
		p := uint64(1)
		for _, v := range vals {
			p *= v
		}
		return p, nil
	case Minimum:
		m := vals[0]
		for _, v := range vals[1:] {
			m = min(m, v)
		}
		return m, nil
	case Maximum:
		m := vals[0]
		for _, v := range vals[1:] {
			m = max(m, v)
		}
		return m, nil
	case Greater, Less, Equal:
		if len(vals) != 2 {
			return 0, fmt.Errorf("%w: %s takes 2 operands, got %d", ErrArity, op, len(vals))
		}
		var ok bool
		switch op {
		case Greater:
			ok = vals[0] > vals[1]
		case Less:
			ok = vals[0] < vals[1]
		default:
			ok = vals[0] == vals[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: type %d", ErrUnknownOp, op)
	}
}

// Decode parses a hexadecimal transmission holding one top-level packet and
// returns its version sum and value.
func Decode(hexInput string) (versionSum, value uint64, err error) {
	c, err := FromHex(hexInput)
	if err != nil {
		return 0, 0, err
	}
	p, err := Parse(c)
	if err != nil {
		return 0, 0, err
	}
	value, err = Eval(p)
	if err != nil {
		return 0, 0, err
	}

	return VersionSum(p), value, nil
}
