package types

// LinkInfoFlags selects which optional parts of a LinkInfo block are present.
type LinkInfoFlags uint32

const (
	VolumeIDAndLocalBasePath               LinkInfoFlags = 1 << 0
	CommonNetworkRelativeLinkAndPathSuffix LinkInfoFlags = 1 << 1
)

// Has reports whether f is set.
func (f LinkInfoFlags) Has(bit LinkInfoFlags) bool { return f&bit != 0 }

// LinkInfo describes where the link target lives.
type LinkInfo struct {
	Size       uint32 // LinkInfoSize, including the size field itself
	HeaderSize uint32 // 0x1C (legacy, 4 offsets) or 0x24 (extended, 6 offsets)
	Flags      LinkInfoFlags

	// VolumeID is set only when Flags has VolumeIDAndLocalBasePath.
	VolumeID *VolumeID
	// Network is set only when Flags has CommonNetworkRelativeLinkAndPathSuffix
	// and the block carries a network link.
	Network *NetworkLink

	// CommonPathSuffix is the narrow suffix appended to the base path. It is
	// never nil once a LinkInfo exists, but may be empty.
	CommonPathSuffix []byte
	// CommonPathSuffixUnicode is the UTF-16LE view of the suffix, without the
	// terminator. Non-nil exactly when the extended header form is present.
	CommonPathSuffixUnicode []byte
}

// Extended reports whether the block uses the 6-offset header carrying the
// UTF-16 local base path and common path suffix.
func (li *LinkInfo) Extended() bool { return li.CommonPathSuffixUnicode != nil }

// VolumeID describes the volume the target was on when the link was created.
type VolumeID struct {
	Size         uint32
	DriveType    DriveType
	SerialNumber uint32
	Label        VolumeLabel

	// LocalBasePath is the narrow base path (view, no terminator).
	LocalBasePath []byte
	// LocalBasePathUnicode is the UTF-16LE base path, nil unless the
	// extended LinkInfo header supplies it.
	LocalBasePathUnicode []byte
}

// VolumeLabel holds a volume label stored either as narrow bytes or as
// UTF-16LE, never both. The zero value is an empty narrow label.
type VolumeLabel struct {
	unicode bool
	data    []byte
}

// NarrowLabel returns a label stored in the system code page.
func NarrowLabel(b []byte) VolumeLabel { return VolumeLabel{data: b} }

// UnicodeLabel returns a label stored as UTF-16LE.
func UnicodeLabel(b []byte) VolumeLabel { return VolumeLabel{unicode: true, data: b} }

// IsUnicode reports which encoding the label uses.
func (l VolumeLabel) IsUnicode() bool { return l.unicode }

// Narrow returns the label bytes when the label is narrow.
func (l VolumeLabel) Narrow() ([]byte, bool) {
	if l.unicode {
		return nil, false
	}
	return l.data, true
}

// Unicode returns the UTF-16LE label bytes when the label is wide.
func (l VolumeLabel) Unicode() ([]byte, bool) {
	if !l.unicode {
		return nil, false
	}
	return l.data, true
}

// NetworkLink is the CommonNetworkRelativeLink sub-block describing a share.
type NetworkLink struct {
	Size                uint32
	Flags               uint32 // bit 0 ValidDevice, bit 1 ValidNetType
	NetworkProviderType uint32

	NetName    []byte
	DeviceName []byte // empty unless Flags has ValidDevice

	NetNameUnicode    []byte // nil unless the sub-block carries UTF-16 names
	DeviceNameUnicode []byte
}

const (
	NetworkValidDevice  = 1 << 0
	NetworkValidNetType = 1 << 1
)

// HasDevice reports whether DeviceName is meaningful.
func (n *NetworkLink) HasDevice() bool { return n.Flags&NetworkValidDevice != 0 }
