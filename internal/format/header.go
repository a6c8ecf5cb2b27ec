package format

import (
	"encoding/binary"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Header captures the header fields the decoder interprets: the flag set
// that gates every later block, and the icon index. Attributes, timestamps,
// file size, show command and hot key are skipped.
type Header struct {
	Flags     types.FlagSet
	IconIndex uint32
}

// DecodeHeader validates the fixed 76-byte header at the start of c's buffer
// and leaves c positioned at the first variable-length block.
func DecodeHeader(c *buf.Cursor) (Header, error) {
	if c.Remaining() < HeaderSize {
		return Header{}, fmt.Errorf("header: %w", types.Errorf(types.ErrKindTruncated,
			"need %d bytes, have %d", HeaderSize, c.Remaining()))
	}
	start := c.Pos()
	for i, want := range Signature {
		got, err := c.ReadU32()
		if err != nil {
			return Header{}, fmt.Errorf("header: %w", err)
		}
		if got != want {
			return Header{}, fmt.Errorf("header: %w", types.Errorf(types.ErrKindHeaderMismatch,
				"word %d is 0x%08X, want 0x%08X", i, got, want))
		}
	}
	flags, err := c.ReadU32()
	if err != nil {
		return Header{}, fmt.Errorf("header flags: %w", err)
	}
	if err := c.Seek(start + HeaderIconIdxOffset); err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	icon, err := c.ReadU32()
	if err != nil {
		return Header{}, fmt.Errorf("header icon index: %w", err)
	}
	// ShowCommand, HotKey and the reserved words are not interpreted.
	if err := c.Seek(start + HeaderSize); err != nil {
		return Header{}, fmt.Errorf("header: %w", err)
	}
	return Header{Flags: types.FlagSet(flags), IconIndex: icon}, nil
}

// PutSignature writes the five signature words to the start of b, which
// must be at least SignatureWords*4 bytes long.
func PutSignature(b []byte) {
	for i, w := range Signature {
		binary.LittleEndian.PutUint32(b[i*OffsetFieldSize:], w)
	}
}

// ReadSignature returns the first five words of b. It is the inverse of
// PutSignature and returns false when b is too short.
func ReadSignature(b []byte) ([SignatureWords]uint32, bool) {
	var out [SignatureWords]uint32
	if !buf.Has(b, 0, SignatureWords*OffsetFieldSize) {
		return out, false
	}
	for i := range out {
		out[i] = buf.U32LE(b[i*OffsetFieldSize:])
	}
	return out, true
}
