package testutil

import (
	"encoding/binary"

	"golang.org/x/text/encoding/unicode"

	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Volume describes the VolumeID sub-block and local base paths of a
// LinkInfo fixture.
type Volume struct {
	DriveType    types.DriveType
	Serial       uint32
	Label        string
	UnicodeLabel bool // store Label as UTF-16LE behind the 0x14 marker

	BasePath        string
	BasePathUnicode string // written only for extended LinkInfo
}

// Network describes a CommonNetworkRelativeLink fixture.
type Network struct {
	Flags        uint32
	ProviderType uint32
	NetName      string
	DeviceName   string
	Unicode      bool // append UTF-16LE copies of both names
}

// LinkInfo describes a LinkInfo block fixture.
type LinkInfo struct {
	Extended      bool // 0x24 header with Unicode offsets
	Volume        *Volume
	Network       *Network
	Suffix        string
	SuffixUnicode string // written only when Extended
}

// Image is a built link file plus the absolute offsets of its blocks, so
// tests can corrupt specific fields. Offsets of absent blocks are -1.
type Image struct {
	Data         []byte
	IDListAt     int
	LinkInfoAt   int
	VolumeAt     int
	NetworkAt    int
	StringDataAt int
}

// Builder assembles shell link bytes in memory.
//
// Example:
//
//	img := testutil.NewLink().
//		WithLinkInfo(testutil.LinkInfo{Volume: &testutil.Volume{BasePath: `C:\x`}}).
//		WithString(types.StringWorkingDir, `C:\`).
//		Build()
type Builder struct {
	flags     types.FlagSet
	iconIndex uint32
	items     [][]byte
	info      *LinkInfo
	strs      [len(types.StringItems)]*string
}

// NewLink returns a builder for a link with no optional blocks.
func NewLink() *Builder { return &Builder{} }

// WithFlags sets additional header flag bits.
func (b *Builder) WithFlags(flags ...types.Flag) *Builder {
	for _, f := range flags {
		b.flags |= types.FlagSet(f)
	}
	return b
}

// Unicode marks string data as UTF-16LE.
func (b *Builder) Unicode() *Builder { return b.WithFlags(types.IsUnicode) }

// WithIconIndex sets the header icon index.
func (b *Builder) WithIconIndex(i uint32) *Builder {
	b.iconIndex = i
	return b
}

// WithIDItems adds a target ID list holding one item per payload. Each
// payload is written after its 16-bit size prefix.
func (b *Builder) WithIDItems(payloads ...[]byte) *Builder {
	b.items = append(b.items, payloads...)
	return b.WithFlags(types.HasLinkTargetIDList)
}

// WithLinkInfo adds a LinkInfo block.
func (b *Builder) WithLinkInfo(li LinkInfo) *Builder {
	b.info = &li
	return b.WithFlags(types.HasLinkInfo)
}

// WithString sets one string-data item and its header flag.
func (b *Builder) WithString(item types.StringItem, s string) *Builder {
	b.strs[item] = &s
	return b.WithFlags(item.Flag())
}

// Bytes is shorthand for Build().Data.
func (b *Builder) Bytes() []byte { return b.Build().Data }

// Build lays out the header and every configured block.
func (b *Builder) Build() Image {
	img := Image{IDListAt: -1, LinkInfoAt: -1, VolumeAt: -1, NetworkAt: -1}

	out := make([]byte, format.HeaderSize)
	format.PutSignature(out)
	binary.LittleEndian.PutUint32(out[format.HeaderFlagsOffset:], uint32(b.flags))
	binary.LittleEndian.PutUint32(out[format.HeaderIconIdxOffset:], b.iconIndex)

	if b.flags.Has(types.HasLinkTargetIDList) {
		img.IDListAt = len(out)
		out = appendIDList(out, b.items)
	}
	if b.info != nil {
		img.LinkInfoAt = len(out)
		block, volAt, netAt := buildLinkInfo(b.info)
		if volAt >= 0 {
			img.VolumeAt = img.LinkInfoAt + volAt
		}
		if netAt >= 0 {
			img.NetworkAt = img.LinkInfoAt + netAt
		}
		out = append(out, block...)
	}

	img.StringDataAt = len(out)
	unicodeStrings := b.flags.Has(types.IsUnicode)
	for _, item := range types.StringItems {
		s := b.strs[item]
		if s == nil {
			continue
		}
		if unicodeStrings {
			u := UTF16(*s)
			out = le16(out, uint16(len(u)/2))
			out = append(out, u...)
		} else {
			out = le16(out, uint16(len(*s)))
			out = append(out, *s...)
		}
	}
	img.Data = out
	return img
}

func appendIDList(out []byte, items [][]byte) []byte {
	size := format.IDListTerminator
	for _, it := range items {
		size += format.ItemIDSizeLen + len(it)
	}
	out = le16(out, uint16(size))
	for _, it := range items {
		out = le16(out, uint16(format.ItemIDSizeLen+len(it)))
		out = append(out, it...)
	}
	return le16(out, 0)
}

// buildLinkInfo returns the block and the block-relative offsets of the
// VolumeID and network sub-blocks (-1 when absent).
func buildLinkInfo(li *LinkInfo) ([]byte, int, int) {
	items := format.LinkInfoItemsLegacy
	headerSize := format.LinkInfoHeaderSizeLegacy
	if li.Extended {
		items = format.LinkInfoItemsExtended
		headerSize = format.LinkInfoHeaderSizeExtended
	}

	var offsets [format.LinkInfoMaxItems]uint32
	var flags types.LinkInfoFlags
	body := make([]byte, 0, 128)
	at := func() uint32 { return uint32(headerSize + len(body)) }

	volAt, netAt := -1, -1
	if v := li.Volume; v != nil {
		flags |= types.VolumeIDAndLocalBasePath
		volAt = int(at())
		offsets[format.SlotVolumeID] = at()
		body = append(body, buildVolumeID(v)...)
		offsets[format.SlotLocalBasePath] = at()
		body = append(body, cstr(v.BasePath)...)
	}
	if n := li.Network; n != nil {
		flags |= types.CommonNetworkRelativeLinkAndPathSuffix
		netAt = int(at())
		offsets[format.SlotCommonNetworkRelativeLink] = at()
		body = append(body, buildNetwork(n)...)
	}
	offsets[format.SlotCommonPathSuffix] = at()
	body = append(body, cstr(li.Suffix)...)
	if li.Extended {
		if v := li.Volume; v != nil {
			offsets[format.SlotLocalBasePathUnicode] = at()
			body = append(body, wstr(v.BasePathUnicode)...)
		}
		offsets[format.SlotCommonPathSuffixUnicode] = at()
		body = append(body, wstr(li.SuffixUnicode)...)
	}

	out := make([]byte, 0, headerSize+len(body))
	out = le32(out, uint32(headerSize+len(body)))
	out = le32(out, uint32(headerSize))
	out = le32(out, uint32(flags))
	for i := range items {
		out = le32(out, offsets[i])
	}
	return append(out, body...), volAt, netAt
}

func buildVolumeID(v *Volume) []byte {
	fixed := format.VolumeIDLabelUCOffset
	if v.UnicodeLabel {
		fixed = format.VolumeLabelUnicodeMarker
	}
	var label []byte
	if v.UnicodeLabel {
		label = wstr(v.Label)
	} else {
		label = cstr(v.Label)
	}
	out := make([]byte, 0, fixed+len(label))
	out = le32(out, uint32(fixed+len(label)))
	out = le32(out, uint32(v.DriveType))
	out = le32(out, v.Serial)
	if v.UnicodeLabel {
		out = le32(out, format.VolumeLabelUnicodeMarker)
	}
	out = le32(out, uint32(fixed))
	return append(out, label...)
}

func buildNetwork(n *Network) []byte {
	fixed := format.NetworkLinkMinSize
	if n.Unicode {
		fixed += 2 * format.OffsetFieldSize
	}
	names := cstr(n.NetName)
	deviceOff := fixed + len(names)
	names = append(names, cstr(n.DeviceName)...)
	var netUC, devUC int
	if n.Unicode {
		netUC = fixed + len(names)
		names = append(names, wstr(n.NetName)...)
		devUC = fixed + len(names)
		names = append(names, wstr(n.DeviceName)...)
	}

	out := make([]byte, 0, fixed+len(names))
	out = le32(out, uint32(fixed+len(names)))
	out = le32(out, n.Flags)
	out = le32(out, uint32(fixed))
	out = le32(out, uint32(deviceOff))
	out = le32(out, n.ProviderType)
	if n.Unicode {
		out = le32(out, uint32(netUC))
		out = le32(out, uint32(devUC))
	}
	return append(out, names...)
}

// UTF16 encodes s as UTF-16LE without a BOM or terminator.
func UTF16(s string) []byte {
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM).NewEncoder()
	out, err := enc.Bytes([]byte(s))
	if err != nil {
		panic(err)
	}
	return out
}

func cstr(s string) []byte { return append([]byte(s), 0) }

func wstr(s string) []byte { return append(UTF16(s), 0, 0) }

func le16(b []byte, v uint16) []byte { return binary.LittleEndian.AppendUint16(b, v) }

func le32(b []byte, v uint32) []byte { return binary.LittleEndian.AppendUint32(b, v) }

// PutU32 overwrites the little-endian uint32 at off.
func PutU32(b []byte, off int, v uint32) { binary.LittleEndian.PutUint32(b[off:], v) }

// PutU16 overwrites the little-endian uint16 at off.
func PutU16(b []byte, off int, v uint16) { binary.LittleEndian.PutUint16(b[off:], v) }
