package format

import (
	"bytes"

	"github.com/joshuapare/lnkkit/pkg/types"
)

// cString returns the NUL-terminated narrow string starting at off, as a
// view that excludes the terminator. The terminator must occur before limit.
func cString(b []byte, off, limit int) ([]byte, error) {
	if off < 0 || off >= limit || limit > len(b) {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"string at %d outside block ending at %d", off, limit)
	}
	n := bytes.IndexByte(b[off:limit], 0)
	if n < 0 {
		return nil, types.Errorf(types.ErrKindMalformed,
			"string at %d is not terminated before %d", off, limit)
	}
	return b[off : off+n : off+n], nil
}

// wString returns the NUL-terminated UTF-16LE string starting at off, as a
// view of whole code units that excludes the terminator unit.
func wString(b []byte, off, limit int) ([]byte, error) {
	if off < 0 || off >= limit || limit > len(b) {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"wide string at %d outside block ending at %d", off, limit)
	}
	for i := off; i+1 < limit; i += 2 {
		if b[i] == 0 && b[i+1] == 0 {
			return b[off:i:i], nil
		}
	}
	return nil, types.Errorf(types.ErrKindMalformed,
		"wide string at %d is not terminated before %d", off, limit)
}
