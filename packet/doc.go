// Package packet decodes a nested, length-prefixed binary packet format.
//
// Wire format (big-endian bit order):
//
//	version    3 bits
//	type ID    3 bits     4 = literal, anything else = operator
//	literal:   groups of 1 continuation bit + 4 value bits, last group has flag 0
//	operator:  1 length-type bit
//	             0 → 15 bits: total bit length of the sub-packets
//	             1 → 11 bits: number of sub-packets
//
// Operators combine their sub-packet values: 0 sum, 1 product, 2 minimum,
// 3 maximum, 5 greater-than, 6 less-than, 7 equal-to. Comparisons yield 1 or 0
// and take exactly two operands.
//
// Parsing is recursive descent over one shared Cursor: every call advances the
// cursor past exactly the bits of its own packet, so the caller observes the
// position where the next sibling starts.
//
// Errors:
//
//   - ErrBadHex:          the input is not an even-length hexadecimal string.
//   - ErrShortInput:      a read ran past the end of the buffer.
//   - ErrBoundary:        sub-packets overran their declared bit length.
//   - ErrLiteralOverflow: a literal does not fit in 64 bits.
//   - ErrArity:           an operator has the wrong number of operands.
//   - ErrUnknownOp:       an operator carries a type ID with no semantics.
package packet
