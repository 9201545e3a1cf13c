package packet

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Cursor reads bits most-significant first from an immutable buffer.
// The zero value reads from an empty buffer.
type Cursor struct {
	buf []byte
	pos int // next bit to read
}

// NewCursor returns a Cursor positioned at the first bit of buf.
// buf is not copied and must not change while the cursor is in use.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// FromHex decodes a hexadecimal transmission into a Cursor.
// Surrounding whitespace is ignored; upper- and lower-case digits are accepted.
func FromHex(s string) (*Cursor, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty input", ErrBadHex)
	}
	buf, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHex, err)
	}

	return NewCursor(buf), nil
}

// ReadBits consumes n bits (0 ≤ n ≤ 64) and returns them right-aligned.
// Other widths return ErrReadWidth. On any error the cursor does not move.
func (c *Cursor) ReadBits(n int) (uint64, error) {
	if n < 0 || n > 64 {
		return 0, fmt.Errorf("%w: %d bits", ErrReadWidth, n)
	}
	if c.Remaining() < n {
		return 0, fmt.Errorf("%w: need %d bits at offset %d, have %d", ErrShortInput, n, c.pos, c.Remaining())
	}
	var v uint64
	for i := 0; i < n; i++ {
		b := c.buf[c.pos>>3] >> (7 - uint(c.pos&7)) & 1
		v = v<<1 | uint64(b)
		c.pos++
	}

	return v, nil
}

// Pos returns the number of bits consumed so far.
func (c *Cursor) Pos() int { return c.pos }

// Len returns the total number of bits in the buffer.
func (c *Cursor) Len() int { return len(c.buf) * 8 }

// Remaining returns the number of bits not yet consumed.
func (c *Cursor) Remaining() int { return c.Len() - c.pos }
