// Package text turns the raw string views of a decoded link into Go
// strings. Narrow strings are stored in the ANSI code page of the machine
// that wrote the link; wide strings are UTF-16LE.
package text

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Auto selects the code page of the running system.
const Auto = "auto"

// Windows code page identifiers with a direct x/text equivalent.
var codePages = map[uint32]encoding.Encoding{
	437:   charmap.CodePage437,
	850:   charmap.CodePage850,
	852:   charmap.CodePage852,
	866:   charmap.CodePage866,
	874:   charmap.Windows874,
	932:   japanese.ShiftJIS,
	936:   simplifiedchinese.GBK,
	949:   korean.EUCKR,
	950:   traditionalchinese.Big5,
	1250:  charmap.Windows1250,
	1251:  charmap.Windows1251,
	1252:  charmap.Windows1252,
	1253:  charmap.Windows1253,
	1254:  charmap.Windows1254,
	1255:  charmap.Windows1255,
	1256:  charmap.Windows1256,
	1257:  charmap.Windows1257,
	1258:  charmap.Windows1258,
	20866: charmap.KOI8R,
	28591: charmap.ISO8859_1,
	65001: unicode.UTF8,
}

// DefaultCodePage is used for narrow strings when the system code page is
// unknown or has no decoder.
const DefaultCodePage = 1252

var utf16le = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// Decoder converts narrow and UTF-16LE byte views into UTF-8. It is safe
// for concurrent use.
type Decoder struct {
	name   string
	narrow encoding.Encoding
}

// Default returns a decoder for Windows-1252.
func Default() *Decoder {
	return &Decoder{name: "windows-1252", narrow: charmap.Windows1252}
}

// New returns a decoder for the given code page. codepage may be Auto (or
// empty), a Windows code page number such as "932" or "cp932", or an IANA
// name such as "shift_jis".
func New(codepage string) (*Decoder, error) {
	cp := strings.ToLower(strings.TrimSpace(codepage))
	if cp == "" || cp == Auto {
		return ForCodePage(SystemCodePage()), nil
	}
	if n, err := strconv.ParseUint(strings.TrimPrefix(cp, "cp"), 10, 32); err == nil {
		enc, ok := codePages[uint32(n)]
		if !ok {
			return nil, fmt.Errorf("text: unsupported code page %d", n)
		}
		return &Decoder{name: "cp" + strconv.FormatUint(n, 10), narrow: enc}, nil
	}
	enc, err := ianaindex.IANA.Encoding(cp)
	if err != nil {
		return nil, fmt.Errorf("text: unknown code page %q: %w", codepage, err)
	}
	if enc == nil {
		return nil, fmt.Errorf("text: code page %q has no decoder", codepage)
	}
	return &Decoder{name: cp, narrow: enc}, nil
}

// ForCodePage returns a decoder for a numeric Windows code page, falling
// back to DefaultCodePage when it has no decoder.
func ForCodePage(n uint32) *Decoder {
	enc, ok := codePages[n]
	if !ok {
		return Default()
	}
	return &Decoder{name: "cp" + strconv.FormatUint(uint64(n), 10), narrow: enc}
}

// Name returns the code page the decoder was built for.
func (d *Decoder) Name() string { return d.name }

// Narrow decodes a code-page string. Bytes the code page cannot map are
// replaced with U+FFFD.
func (d *Decoder) Narrow(b []byte) string {
	// ASCII is identical in every supported code page.
	if isASCII(b) {
		return string(b)
	}
	out, _, err := transform.Bytes(d.narrow.NewDecoder(), b)
	if err != nil {
		return strings.ToValidUTF8(string(b), string(utf8.RuneError))
	}
	return string(out)
}

// Wide decodes a UTF-16LE string. A trailing odd byte is dropped.
func (d *Decoder) Wide(b []byte) string {
	b = b[:len(b)&^1]
	out, err := utf16le.NewDecoder().Bytes(b)
	if err != nil {
		return ""
	}
	return string(out)
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
