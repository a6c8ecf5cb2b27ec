package text

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNarrowDefaultIsWindows1252(t *testing.T) {
	d := Default()
	assert.Equal(t, `C:\Temp`, d.Narrow([]byte(`C:\Temp`)))
	assert.Equal(t, "Müller€", d.Narrow([]byte{'M', 0xFC, 'l', 'l', 'e', 'r', 0x80}))
}

func TestNewCodePages(t *testing.T) {
	tests := []struct {
		in   string
		raw  []byte
		want string
	}{
		{"932", []byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67}, "テスト"},
		{"cp1251", []byte{0xCF, 0xF0, 0xE8}, "При"},
		{"shift_jis", []byte{0x83, 0x65}, "テ"},
		{"CP850", []byte{0x81}, "ü"},
		{"65001", []byte("ü"), "ü"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := New(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Narrow(tt.raw))
		})
	}
}

func TestNewRejectsUnknown(t *testing.T) {
	_, err := New("12345")
	require.Error(t, err)
	_, err = New("no-such-charset")
	require.Error(t, err)
}

func TestNewAuto(t *testing.T) {
	d, err := New(Auto)
	require.NoError(t, err)
	assert.NotEmpty(t, d.Name())

	d, err = New("")
	require.NoError(t, err)
	assert.Equal(t, "hello", d.Narrow([]byte("hello")))
}

func TestForCodePageFallsBack(t *testing.T) {
	assert.Equal(t, "windows-1252", ForCodePage(9999).Name())
	assert.Equal(t, "cp932", ForCodePage(932).Name())
}

func TestWide(t *testing.T) {
	d := Default()
	raw := []byte{'C', 0, ':', 0, '\\', 0, 0xFC, 0x00, 0x2D, 0x4E}
	assert.Equal(t, `C:\ü中`, d.Wide(raw))
	assert.Equal(t, "C", d.Wide([]byte{'C', 0, 'x'}), "odd trailing byte is dropped")
	assert.Equal(t, "", d.Wide(nil))
}

func TestTakeFilenameAndPathname(t *testing.T) {
	tests := []struct {
		in, file, dir string
	}{
		{`C:\Windows\notepad.exe`, "notepad.exe", `C:\Windows`},
		{`C:\`, "", `C:`},
		{`share/dir/a.txt`, "a.txt", "share/dir"},
		{"plain", "plain", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.file, TakeFilename(tt.in), "file of %q", tt.in)
		assert.Equal(t, tt.dir, TakePathname(tt.in), "dir of %q", tt.in)
	}
}

func TestConsoleWriter(t *testing.T) {
	var out bytes.Buffer
	assert.Same(t, &out, ConsoleWriter(&out, 0))
	assert.Same(t, &out, ConsoleWriter(&out, 65001))

	w := ConsoleWriter(&out, 850)
	_, err := w.Write([]byte("ü→"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x81, '?'}, out.Bytes())

	tests := []struct {
		cp   uint32
		in   string
		want []byte
	}{
		{1252, "a→b", []byte("a?b")},
		{1252, "café", []byte{'c', 'a', 'f', 0xE9}},
		{1252, "a\xffb", []byte("a?b")},
		{866, "Жx€", []byte{0x86, 'x', '?'}},
		{932, "a😀b", []byte("a?b")},
		{932, "日", []byte{0x93, 0xFA}},
		{936, "a😀中", []byte{'a', '?', 0xD6, 0xD0}},
		{949, "😀", []byte("?")},
		{950, "x😀", []byte("x?")},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		_, err := ConsoleWriter(&buf, tt.cp).Write([]byte(tt.in))
		require.NoError(t, err, "cp %d %q", tt.cp, tt.in)
		assert.Equal(t, tt.want, buf.Bytes(), "cp %d %q", tt.cp, tt.in)
	}
}
