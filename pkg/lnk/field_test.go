package lnk_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/lnkkit/internal/testutil"
	"github.com/joshuapare/lnkkit/internal/text"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

func decodeSample(t *testing.T, b *testutil.Builder) *types.Link {
	t.Helper()
	link, err := lnk.Decode(b.Bytes())
	require.NoError(t, err)
	return link
}

func TestExtractSample(t *testing.T) {
	link := decodeSample(t, testutil.Sample())

	tests := []struct {
		field lnk.Field
		want  string
	}{
		{lnk.FieldPathFile, `C:\Program Files\App\app.exe`},
		{lnk.FieldFile, "app.exe"},
		{lnk.FieldPath, `C:\Program Files\App`},
		{lnk.FieldDriveType, "DRIVE_FIXED"},
		{lnk.FieldVolumeLabel, "DATA"},
		{lnk.FieldWorkingDir, `C:\Users\x`},
		{lnk.FieldIcon, `C:\Windows\icon.dll,7`},
	}
	for _, tt := range tests {
		t.Run(tt.field.Code(), func(t *testing.T) {
			got, ok := lnk.Extract(link, tt.field, nil)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, f := range []lnk.Field{lnk.FieldName, lnk.FieldRelativePath, lnk.FieldArguments} {
		_, ok := lnk.Extract(link, f, nil)
		assert.False(t, ok, "field %s should be absent", f)
	}
}

func TestExtractStopsAtEmbeddedNUL(t *testing.T) {
	tests := []struct {
		name    string
		builder *testutil.Builder
	}{
		{"narrow", testutil.NewLink()},
		{"unicode", testutil.NewLink().Unicode()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			link := decodeSample(t, tt.builder.
				WithString(types.StringArguments, "-run\x00hidden").
				WithString(types.StringName, "\x00"))

			got, ok := lnk.Extract(link, lnk.FieldArguments, nil)
			require.True(t, ok)
			assert.Equal(t, "-run", got)

			// The decoded item keeps the full counted payload.
			assert.Equal(t, len("-run\x00hidden"), link.Arguments.Len())

			got, ok = lnk.Extract(link, lnk.FieldName, nil)
			require.True(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestExtractIconEndsWithIndex(t *testing.T) {
	link := decodeSample(t, testutil.NewLink().
		WithIconIndex(7).
		WithString(types.StringIconLocation, `%SystemRoot%\shell32.dll`))
	got, ok := lnk.Extract(link, lnk.FieldIcon, nil)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(got, ",7"), got)
}

func TestExtractWithoutLinkInfo(t *testing.T) {
	link := decodeSample(t, testutil.NewLink().WithString(types.StringArguments, "-v"))
	for _, f := range []lnk.Field{lnk.FieldFile, lnk.FieldPath, lnk.FieldPathFile, lnk.FieldVolumeLabel, lnk.FieldDriveType, lnk.FieldIcon} {
		_, ok := lnk.Extract(link, f, nil)
		assert.False(t, ok, "field %s", f)
	}
	args, ok := lnk.Extract(link, lnk.FieldArguments, nil)
	require.True(t, ok)
	assert.Equal(t, "-v", args)
}

func TestExtractNetworkTarget(t *testing.T) {
	link := decodeSample(t, testutil.NewLink().WithLinkInfo(testutil.LinkInfo{
		Network: &testutil.Network{NetName: `\\server\share`},
		Suffix:  `docs\report.txt`,
	}))
	got, ok := lnk.Extract(link, lnk.FieldPathFile, nil)
	require.True(t, ok)
	assert.Equal(t, `\\server\share\docs\report.txt`, got)

	_, ok = lnk.Extract(link, lnk.FieldDriveType, nil)
	assert.False(t, ok, "network links carry no volume")
}

func TestExtractPrefersUnicodeViews(t *testing.T) {
	link := decodeSample(t, testutil.NewLink().WithLinkInfo(testutil.LinkInfo{
		Extended: true,
		Volume: &testutil.Volume{
			Label:           "Größe",
			UnicodeLabel:    true,
			BasePath:        `C:\?`,
			BasePathUnicode: `C:\日本`,
		},
		Suffix:        "?.txt",
		SuffixUnicode: `\ファイル.txt`,
	}))
	got, ok := lnk.Extract(link, lnk.FieldPathFile, nil)
	require.True(t, ok)
	assert.Equal(t, `C:\日本\ファイル.txt`, got)

	label, ok := lnk.Extract(link, lnk.FieldVolumeLabel, nil)
	require.True(t, ok)
	assert.Equal(t, "Größe", label)
}

func TestExtractNarrowUsesCodePage(t *testing.T) {
	link := decodeSample(t, testutil.NewLink().
		WithString(types.StringName, string([]byte{0x83, 0x65, 0x83, 0x58, 0x83, 0x67})))

	sjis, err := text.New("932")
	require.NoError(t, err)
	got, ok := lnk.Extract(link, lnk.FieldName, sjis)
	require.True(t, ok)
	assert.Equal(t, "テスト", got)
}

func TestParseField(t *testing.T) {
	for _, f := range lnk.Fields() {
		got, ok := lnk.ParseField(strings.ToLower(f.Code()))
		require.True(t, ok, f.Code())
		assert.Equal(t, f, got)
		assert.NotEmpty(t, f.Description())
	}
	_, ok := lnk.ParseField("XX")
	assert.False(t, ok)
	assert.Equal(t, "PF", lnk.DefaultField.Code())
	assert.Equal(t, "Field(99)", lnk.Field(99).String())
}
