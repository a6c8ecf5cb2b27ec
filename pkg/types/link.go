package types

// ItemID is one opaque record of a target ID list. Data is a view into the
// source buffer covering the bytes after the 16-bit size prefix.
type ItemID struct {
	Offset int    // absolute offset of the size prefix
	Size   uint16 // value of the size prefix, which counts itself
	Data   []byte
}

// End returns the absolute offset just past the item.
func (id ItemID) End() int { return id.Offset + int(id.Size) }

// TargetIDList is the ordered path of item IDs from a namespace root to the
// link target.
type TargetIDList struct {
	Size  uint16 // declared IDListSize (items plus terminator)
	Items []ItemID
}

// StringItem names one of the five optional string-data fields, in the
// order they appear in the file.
type StringItem int

const (
	StringName StringItem = iota
	StringRelativePath
	StringWorkingDir
	StringArguments
	StringIconLocation
)

// StringItems lists the string-data fields in file order.
var StringItems = [...]StringItem{
	StringName, StringRelativePath, StringWorkingDir, StringArguments, StringIconLocation,
}

// Flag returns the header bit that gates the item.
func (s StringItem) Flag() Flag {
	switch s {
	case StringName:
		return HasName
	case StringRelativePath:
		return HasRelativePath
	case StringWorkingDir:
		return HasWorkingDir
	case StringArguments:
		return HasArguments
	case StringIconLocation:
		return HasIconLocation
	}
	return 0
}

func (s StringItem) String() string {
	switch s {
	case StringName:
		return "Name"
	case StringRelativePath:
		return "RelativePath"
	case StringWorkingDir:
		return "WorkingDir"
	case StringArguments:
		return "Arguments"
	case StringIconLocation:
		return "IconLocation"
	}
	return "Unknown"
}

// Link is the decoded form of a shell link file.
type Link struct {
	Flags     FlagSet
	IconIndex uint32

	IDList   *TargetIDList // nil unless HasLinkTargetIDList
	LinkInfo *LinkInfo     // nil unless HasLinkInfo

	Name         *LinkString
	RelativePath *LinkString
	WorkingDir   *LinkString
	Arguments    *LinkString
	IconLocation *LinkString
}

// String returns the string-data field for item, or nil when absent.
func (l *Link) String(item StringItem) *LinkString {
	if p := l.stringSlot(item); p != nil {
		return *p
	}
	return nil
}

// SetString stores s in the field for item. It is used while a Link is
// being assembled by the decoder.
func (l *Link) SetString(item StringItem, s *LinkString) {
	if p := l.stringSlot(item); p != nil {
		*p = s
	}
}

func (l *Link) stringSlot(item StringItem) **LinkString {
	switch item {
	case StringName:
		return &l.Name
	case StringRelativePath:
		return &l.RelativePath
	case StringWorkingDir:
		return &l.WorkingDir
	case StringArguments:
		return &l.Arguments
	case StringIconLocation:
		return &l.IconLocation
	}
	return nil
}
