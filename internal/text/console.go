package text

import (
	"io"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// ConsoleWriter wraps w so UTF-8 output is re-encoded for a console whose
// output code page is cp. Zero, UTF-8 and unknown code pages return w
// unchanged. Characters the code page lacks are written as '?'.
func ConsoleWriter(w io.Writer, cp uint32) io.Writer {
	if cp == 0 || cp == 65001 {
		return w
	}
	enc, ok := codePages[cp]
	if !ok {
		return w
	}
	t := transform.Chain(runes.Map(questionMarks(enc)), enc.NewEncoder())
	return transform.NewWriter(w, t)
}

// questionMarks returns a rune mapping that keeps runes enc can encode and
// turns every other rune, invalid UTF-8 included, into '?'.
func questionMarks(enc encoding.Encoding) func(rune) rune {
	if cm, ok := enc.(*charmap.Charmap); ok {
		return func(r rune) rune {
			if _, ok := cm.EncodeRune(r); ok {
				return r
			}
			return '?'
		}
	}
	probe := enc.NewEncoder()
	return func(r rune) rune {
		if r < utf8.RuneSelf {
			return r
		}
		if r == utf8.RuneError {
			return '?'
		}
		if _, err := probe.String(string(r)); err != nil {
			return '?'
		}
		return r
	}
}
