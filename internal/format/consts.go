// Package format houses the low-level decoders for the shell link (".lnk")
// binary format. Each decoder walks a bounds-checked buf.Cursor, validates
// every size and offset it reads against the enclosing block, and produces
// the public pkg/types model. Nothing here touches the file system.
package format

// ============================================================================
// ShellLinkHeader
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   4    HeaderSize (always 0x4C)
//	 0x004  16    LinkCLSID 00021401-0000-0000-C000-000000000046
//	 0x014   4    LinkFlags
//	 0x018   4    FileAttributes
//	 0x01C   8    CreationTime (FILETIME)
//	 0x024   8    AccessTime (FILETIME)
//	 0x02C   8    WriteTime (FILETIME)
//	 0x034   4    FileSize
//	 0x038   4    IconIndex
//	 0x03C   4    ShowCommand
//	 0x040   2    HotKey
//	 0x042  10    Reserved
const (
	HeaderSize = 0x4C

	HeaderSizeOffset     = 0x00
	HeaderCLSIDOffset    = 0x04
	HeaderFlagsOffset    = 0x14
	HeaderAttrsOffset    = 0x18
	HeaderIconIdxOffset  = 0x38
	HeaderShowCmdOffset  = 0x3C
	HeaderHotKeyOffset   = 0x40
	HeaderReservedOffset = 0x42

	// SignatureWords is the number of 32-bit words compared at the start of
	// the header (HeaderSize plus the four words of the CLSID).
	SignatureWords = 5
)

// Signature is the exact tuple of the first five little-endian words of
// every shell link: the header size followed by the link CLSID.
var Signature = [SignatureWords]uint32{HeaderSize, 0x00021401, 0, 0xC0, 0x46000000}

// ============================================================================
// LinkTargetIDList
// ============================================================================
const (
	IDListSizeLen     = 2 // IDListSize prefix, not counted by itself
	ItemIDSizeLen     = 2 // ItemIDSize prefix, counted by itself
	IDListTerminator  = 2 // zero ItemIDSize closing the list
	ItemIDMinimumSize = ItemIDSizeLen
)

// ============================================================================
// LinkInfo
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    LinkInfoSize
//	 0x04    4    LinkInfoHeaderSize (0x1C, or >= 0x24 with Unicode offsets)
//	 0x08    4    LinkInfoFlags
//	 0x0C    4    VolumeIDOffset
//	 0x10    4    LocalBasePathOffset
//	 0x14    4    CommonNetworkRelativeLinkOffset
//	 0x18    4    CommonPathSuffixOffset
//	 0x1C    4    LocalBasePathOffsetUnicode    (extended form only)
//	 0x20    4    CommonPathSuffixOffsetUnicode (extended form only)
const (
	LinkInfoSizeOffset       = 0x00
	LinkInfoHeaderSizeOffset = 0x04
	LinkInfoFlagsOffset      = 0x08
	LinkInfoOffsetsOffset    = 0x0C

	// LinkInfoFixedFields counts the size, header-size and flags words that
	// precede the offset table.
	LinkInfoFixedFields = 3
	OffsetFieldSize     = 4

	LinkInfoHeaderSizeLegacy   = 0x1C
	LinkInfoHeaderSizeExtended = 0x24

	LinkInfoItemsLegacy   = (LinkInfoHeaderSizeLegacy - LinkInfoFixedFields*OffsetFieldSize) / OffsetFieldSize   // 4
	LinkInfoItemsExtended = (LinkInfoHeaderSizeExtended - LinkInfoFixedFields*OffsetFieldSize) / OffsetFieldSize // 6
	LinkInfoMaxItems      = LinkInfoItemsExtended
)

// Slots of the LinkInfo offset table, in file order.
const (
	SlotVolumeID = iota
	SlotLocalBasePath
	SlotCommonNetworkRelativeLink
	SlotCommonPathSuffix
	SlotLocalBasePathUnicode
	SlotCommonPathSuffixUnicode
)

// ============================================================================
// VolumeID
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    VolumeIDSize
//	 0x04    4    DriveType
//	 0x08    4    DriveSerialNumber
//	 0x0C    4    VolumeLabelOffset (0x14 => VolumeLabelOffsetUnicode follows)
//	 0x10    4    VolumeLabelOffsetUnicode (optional)
const (
	VolumeIDSizeOffset        = 0x00
	VolumeIDDriveTypeOffset   = 0x04
	VolumeIDSerialOffset      = 0x08
	VolumeIDLabelOffsetOffset = 0x0C
	VolumeIDLabelUCOffset     = 0x10

	// VolumeLabelUnicodeMarker in VolumeLabelOffset means the label is
	// stored as UTF-16LE at VolumeLabelOffsetUnicode instead.
	VolumeLabelUnicodeMarker = 0x14
)

// ============================================================================
// CommonNetworkRelativeLink
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    CommonNetworkRelativeLinkSize (>= 0x14)
//	 0x04    4    Flags (ValidDevice, ValidNetType)
//	 0x08    4    NetNameOffset
//	 0x0C    4    DeviceNameOffset
//	 0x10    4    NetworkProviderType
//	 0x14    4    NetNameOffsetUnicode    (when NetNameOffset > 0x14)
//	 0x18    4    DeviceNameOffsetUnicode (when NetNameOffset > 0x14)
const (
	NetworkLinkMinSize = 0x14
	// NetworkLinkUnicodeThreshold: a NetNameOffset above this value means
	// the Unicode offsets are present.
	NetworkLinkUnicodeThreshold = 0x14
)

// ============================================================================
// StringData
// ============================================================================
const (
	CountCharsLen = 2 // CountCharacters prefix of each string-data item
)
