package types

// LinkString is an owned copy of one string-data item. The backing buffer
// always ends with a zero unit of the string's own width: one byte for
// narrow strings, two bytes for UTF-16LE strings.
type LinkString struct {
	unicode bool
	buf     []byte
}

// NewLinkString copies payload and appends the terminator unit.
func NewLinkString(payload []byte, unicode bool) *LinkString {
	width := 1
	if unicode {
		width = 2
	}
	buf := make([]byte, len(payload)+width)
	copy(buf, payload)
	return &LinkString{unicode: unicode, buf: buf}
}

// Unicode reports whether the payload is UTF-16LE.
func (s *LinkString) Unicode() bool { return s.unicode }

// Len returns the length in characters (code units for UTF-16).
func (s *LinkString) Len() int {
	if s.unicode {
		return len(s.Bytes()) / 2
	}
	return len(s.Bytes())
}

// Bytes returns the payload without the terminator.
func (s *LinkString) Bytes() []byte {
	return s.buf[:len(s.buf)-s.width()]
}

// Terminated returns the payload followed by its zero terminator unit.
func (s *LinkString) Terminated() []byte { return s.buf }

func (s *LinkString) width() int {
	if s.unicode {
		return 2
	}
	return 1
}
