package format_test

import (
	"errors"
	"testing"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func decodeStrings(t *testing.T, b *testutil.Builder, trim int) (*types.Link, error) {
	t.Helper()
	img := b.Build()
	data := img.Data[:len(img.Data)-trim]
	c, err := buf.NewCursorAt(data, img.StringDataAt, len(data))
	if err != nil {
		t.Fatalf("NewCursorAt: %v", err)
	}
	hdr, err := format.DecodeHeader(buf.NewCursor(data))
	if err != nil {
		t.Fatalf("DecodeHeader: %v", err)
	}
	link := &types.Link{Flags: hdr.Flags}
	return link, format.DecodeStringData(c, hdr.Flags, link)
}

func TestDecodeStringDataNarrow(t *testing.T) {
	link, err := decodeStrings(t, testutil.NewLink().
		WithString(types.StringName, "Editor").
		WithString(types.StringArguments, "/n file.txt"), 0)
	if err != nil {
		t.Fatalf("DecodeStringData: %v", err)
	}
	if link.Name == nil || string(link.Name.Bytes()) != "Editor" || link.Name.Unicode() {
		t.Fatalf("name = %+v", link.Name)
	}
	if got := link.Arguments.Terminated(); string(got) != "/n file.txt\x00" {
		t.Fatalf("arguments terminated = %q", got)
	}
	if link.WorkingDir != nil || link.RelativePath != nil || link.IconLocation != nil {
		t.Fatalf("unexpected strings present")
	}
}

func TestDecodeStringDataUnicode(t *testing.T) {
	link, err := decodeStrings(t, testutil.NewLink().Unicode().
		WithString(types.StringWorkingDir, `C:\Users\x`).
		WithString(types.StringIconLocation, ""), 0)
	if err != nil {
		t.Fatalf("DecodeStringData: %v", err)
	}
	wd := link.WorkingDir
	if !wd.Unicode() || wd.Len() != len(`C:\Users\x`) {
		t.Fatalf("working dir unicode=%v len=%d", wd.Unicode(), wd.Len())
	}
	if string(wd.Bytes()) != string(testutil.UTF16(`C:\Users\x`)) {
		t.Fatalf("working dir = %x", wd.Bytes())
	}
	term := wd.Terminated()
	if len(term) != len(wd.Bytes())+2 || term[len(term)-1] != 0 || term[len(term)-2] != 0 {
		t.Fatalf("working dir lacks a two-byte terminator: %x", term)
	}
	if link.IconLocation == nil || link.IconLocation.Len() != 0 {
		t.Fatalf("empty icon location = %+v", link.IconLocation)
	}
}

func TestDecodeStringDataOwnsCopy(t *testing.T) {
	img := testutil.NewLink().WithString(types.StringName, "abc").Build()
	c, _ := buf.NewCursorAt(img.Data, img.StringDataAt, len(img.Data))
	link := &types.Link{}
	flags := types.FlagSet(types.HasName)
	if err := format.DecodeStringData(c, flags, link); err != nil {
		t.Fatalf("DecodeStringData: %v", err)
	}
	for i := range img.Data {
		img.Data[i] = 0
	}
	if string(link.Name.Bytes()) != "abc" {
		t.Fatalf("string changed with its source buffer: %q", link.Name.Bytes())
	}
}

func TestDecodeStringDataTruncated(t *testing.T) {
	for trim := 1; trim <= 4; trim++ {
		_, err := decodeStrings(t, testutil.NewLink().Unicode().WithString(types.StringName, "ab"), trim)
		if !errors.Is(err, types.ErrTruncated) {
			t.Fatalf("trim %d: got %v, want truncation", trim, err)
		}
	}
}
