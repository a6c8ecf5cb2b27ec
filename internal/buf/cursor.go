package buf

import "github.com/joshuapare/lnkkit/pkg/types"

// Cursor is a sequential reader over an immutable byte slice. Reads never
// move past Limit, and Limit never exceeds len(b), so a Cursor cannot touch
// memory outside the slice it was built from.
//
// Failed reads leave the position unchanged and return a *types.Error of
// kind ErrKindTruncated; failed moves return ErrKindOffsetOutOfRange.
type Cursor struct {
	b     []byte
	pos   int
	limit int
}

// NewCursor returns a cursor at offset 0 bounded by len(b).
func NewCursor(b []byte) *Cursor {
	return &Cursor{b: b, limit: len(b)}
}

// NewCursorAt returns a cursor at pos bounded by limit. A limit beyond the
// slice is clamped to len(b).
func NewCursorAt(b []byte, pos, limit int) (*Cursor, error) {
	if limit > len(b) {
		limit = len(b)
	}
	if pos < 0 || limit < 0 || pos > limit {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"cursor start %d outside [0, %d]", pos, limit)
	}
	return &Cursor{b: b, pos: pos, limit: limit}, nil
}

// Pos returns the absolute position within the underlying slice.
func (c *Cursor) Pos() int { return c.pos }

// Limit returns the absolute offset reads may not cross.
func (c *Cursor) Limit() int { return c.limit }

// Remaining returns the number of readable bytes before Limit.
func (c *Cursor) Remaining() int { return c.limit - c.pos }

// Bytes returns the whole underlying slice.
func (c *Cursor) Bytes() []byte { return c.b }

func (c *Cursor) need(n int, what string) error {
	if n < 0 || n > c.Remaining() {
		return types.Errorf(types.ErrKindTruncated,
			"%s at offset %d: need %d bytes, %d remain", what, c.pos, n, c.Remaining())
	}
	return nil
}

// PeekU16 reads a uint16 without advancing.
func (c *Cursor) PeekU16() (uint16, error) {
	if err := c.need(2, "u16"); err != nil {
		return 0, err
	}
	return U16LE(c.b[c.pos:]), nil
}

// ReadU16 reads a little-endian uint16 and advances past it.
func (c *Cursor) ReadU16() (uint16, error) {
	v, err := c.PeekU16()
	if err != nil {
		return 0, err
	}
	c.pos += 2
	return v, nil
}

// ReadU32 reads a little-endian uint32 and advances past it.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.need(4, "u32"); err != nil {
		return 0, err
	}
	v := U32LE(c.b[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadBytes returns a view of the next n bytes and advances past them. The
// returned slice aliases the underlying buffer.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	if err := c.need(n, "bytes"); err != nil {
		return nil, err
	}
	out := c.b[c.pos : c.pos+n : c.pos+n]
	c.pos += n
	return out, nil
}

// Advance moves the position by n bytes, which must be non-negative and
// keep the position within Limit.
func (c *Cursor) Advance(n int) error {
	if n < 0 {
		return types.Errorf(types.ErrKindOffsetOutOfRange,
			"advance by negative delta %d at offset %d", n, c.pos)
	}
	to, ok := AddOverflowSafe(c.pos, n)
	if !ok || to > c.limit {
		return types.Errorf(types.ErrKindOffsetOutOfRange,
			"advance by %d at offset %d exceeds limit %d", n, c.pos, c.limit)
	}
	c.pos = to
	return nil
}

// Seek moves to the absolute position pos within [0, Limit].
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > c.limit {
		return types.Errorf(types.ErrKindOffsetOutOfRange,
			"seek to %d outside [0, %d]", pos, c.limit)
	}
	c.pos = pos
	return nil
}

// Sub returns a new cursor at the current position whose limit is the
// smaller of limit and this cursor's limit.
func (c *Cursor) Sub(limit int) *Cursor {
	if limit > c.limit {
		limit = c.limit
	}
	if limit < c.pos {
		limit = c.pos
	}
	return &Cursor{b: c.b, pos: c.pos, limit: limit}
}
