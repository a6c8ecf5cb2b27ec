package lnk_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func TestDecodeFixedDriveScenario(t *testing.T) {
	data := testutil.NewLink().Unicode().
		WithLinkInfo(testutil.LinkInfo{
			Volume: &testutil.Volume{
				DriveType: types.DriveFixed,
				Serial:    0x12345678,
				Label:     "DATA",
				BasePath:  `C:\Users\x\app.exe`,
			},
		}).
		WithString(types.StringWorkingDir, `C:\Users\x`).
		Bytes()

	link, err := lnk.Decode(data)
	require.NoError(t, err)

	assert.True(t, link.Flags.Has(types.HasLinkInfo))
	assert.True(t, link.Flags.Has(types.HasWorkingDir))
	assert.True(t, link.Flags.Has(types.IsUnicode))
	assert.Nil(t, link.IDList)

	require.NotNil(t, link.LinkInfo)
	vol := link.LinkInfo.VolumeID
	require.NotNil(t, vol)
	assert.Equal(t, types.DriveFixed, vol.DriveType)
	assert.Equal(t, uint32(0x12345678), vol.SerialNumber)

	wd, ok := lnk.Extract(link, lnk.FieldWorkingDir, nil)
	require.True(t, ok)
	assert.Equal(t, `C:\Users\x`, wd)

	label, ok := lnk.Extract(link, lnk.FieldVolumeLabel, nil)
	require.True(t, ok)
	assert.Equal(t, "DATA", label)
}

func TestDecodeHeaderMismatch(t *testing.T) {
	data := testutil.NewLink().Bytes()
	copy(data, []byte{0, 0, 0, 0})

	_, err := lnk.Decode(data)
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrHeaderMismatch))
	kind, ok := types.KindOf(err)
	require.True(t, ok)
	assert.Equal(t, types.ErrKindHeaderMismatch, kind)
}

func TestDecodeItemOverrunsList(t *testing.T) {
	img := testutil.NewLink().WithIDItems([]byte("abcd"), []byte("ef")).Build()
	// Second item claims to run past the declared list end.
	testutil.PutU16(img.Data, img.IDListAt+2+6, 0x40)

	_, err := lnk.Decode(img.Data)
	assert.ErrorIs(t, err, types.ErrOffsetOutOfRange)
}

func TestDecodeLinkInfoSuffixViews(t *testing.T) {
	legacy := testutil.NewLink().WithLinkInfo(testutil.LinkInfo{
		Volume: &testutil.Volume{BasePath: `C:\`},
		Suffix: "x",
	}).Bytes()
	link, err := lnk.Decode(legacy)
	require.NoError(t, err)
	assert.False(t, link.LinkInfo.Extended())
	assert.Nil(t, link.LinkInfo.CommonPathSuffixUnicode)

	extended := testutil.NewLink().WithLinkInfo(testutil.LinkInfo{
		Extended:      true,
		Volume:        &testutil.Volume{BasePath: `C:\`},
		Suffix:        "x",
		SuffixUnicode: "x",
	}).Bytes()
	link, err = lnk.Decode(extended)
	require.NoError(t, err)
	assert.True(t, link.LinkInfo.Extended())
	assert.Equal(t, []byte("x"), link.LinkInfo.CommonPathSuffix)
	assert.Equal(t, testutil.UTF16("x"), link.LinkInfo.CommonPathSuffixUnicode)
}

func TestDecodeFullLink(t *testing.T) {
	img := testutil.Sample().
		WithString(types.StringName, "Application").
		WithString(types.StringRelativePath, `..\App\app.exe`).
		WithString(types.StringArguments, "--fast").
		Build()

	link, err := lnk.Decode(img.Data)
	require.NoError(t, err)
	require.NotNil(t, link.IDList)
	require.Len(t, link.IDList.Items, 2)
	assert.Equal(t, []byte("abc"), link.IDList.Items[1].Data)
	assert.Equal(t, uint32(7), link.IconIndex)

	for _, item := range types.StringItems {
		s := link.String(item)
		require.NotNil(t, s, item.String())
		assert.True(t, s.Unicode(), item.String())
	}
}

func TestDecodeEveryTruncatedPrefixFails(t *testing.T) {
	data := testutil.Sample().
		WithLinkInfo(testutil.LinkInfo{
			Extended: true,
			Volume:   &testutil.Volume{DriveType: types.DriveRemote, Label: "NET", UnicodeLabel: true, BasePath: `Z:\`, BasePathUnicode: `Z:\`},
			Network:  &testutil.Network{Flags: types.NetworkValidDevice, NetName: `\\srv\s`, DeviceName: "Z:", Unicode: true},
			Suffix:   "a.txt",
		}).
		WithString(types.StringName, "n").
		Bytes()

	_, err := lnk.Decode(data)
	require.NoError(t, err)

	for n := range len(data) {
		_, err := lnk.Decode(data[:n])
		require.Error(t, err, "prefix of %d bytes decoded", n)
		_, typed := types.KindOf(err)
		require.True(t, typed, "prefix of %d bytes: untyped error %v", n, err)
		if n < format.HeaderSize {
			require.ErrorIs(t, err, types.ErrTruncated, "prefix of %d bytes", n)
		}
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	data := testutil.Sample().Bytes()
	a, err := lnk.Decode(data)
	require.NoError(t, err)
	b, err := lnk.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestDecodeConcurrent(t *testing.T) {
	data := testutil.Sample().WithString(types.StringArguments, "-x").Bytes()
	want, err := lnk.Decode(data)
	require.NoError(t, err)

	const workers = 16
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 50 {
				got, err := lnk.Decode(data)
				if err != nil {
					errs <- err
					return
				}
				if !assert.ObjectsAreEqual(want, got) {
					errs <- errors.New("concurrent decode differs")
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestDecodeDoesNotWriteInput(t *testing.T) {
	data := testutil.Sample().Bytes()
	before := append([]byte(nil), data...)
	_, err := lnk.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, before, data)
}
