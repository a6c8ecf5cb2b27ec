package types

import (
	"math/bits"
	"strconv"
)

// Flag is a single bit of the LinkFlags field in the link header.
type Flag uint32

const (
	HasLinkTargetIDList         Flag = 1 << 0
	HasLinkInfo                 Flag = 1 << 1
	HasName                     Flag = 1 << 2
	HasRelativePath             Flag = 1 << 3
	HasWorkingDir               Flag = 1 << 4
	HasArguments                Flag = 1 << 5
	HasIconLocation             Flag = 1 << 6
	IsUnicode                   Flag = 1 << 7
	ForceNoLinkInfo             Flag = 1 << 8
	HasExpString                Flag = 1 << 9
	RunInSeparateProcess        Flag = 1 << 10
	HasDarwinID                 Flag = 1 << 12
	RunAsUser                   Flag = 1 << 13
	HasExpIcon                  Flag = 1 << 14
	NoPidlAlias                 Flag = 1 << 15
	RunWithShimLayer            Flag = 1 << 17
	ForceNoLinkTrack            Flag = 1 << 18
	EnableTargetMetadata        Flag = 1 << 19
	DisableLinkPathTracking     Flag = 1 << 20
	DisableKnownFolderTracking  Flag = 1 << 21
	DisableKnownFolderAlias     Flag = 1 << 22
	AllowLinkToLink             Flag = 1 << 23
	UnaliasOnSave               Flag = 1 << 24
	PreferEnvironmentPath       Flag = 1 << 25
	KeepLocalIDListForUNCTarget Flag = 1 << 26
)

var flagNames = map[Flag]string{
	HasLinkTargetIDList:         "HasLinkTargetIDList",
	HasLinkInfo:                 "HasLinkInfo",
	HasName:                     "HasName",
	HasRelativePath:             "HasRelativePath",
	HasWorkingDir:               "HasWorkingDir",
	HasArguments:                "HasArguments",
	HasIconLocation:             "HasIconLocation",
	IsUnicode:                   "IsUnicode",
	ForceNoLinkInfo:             "ForceNoLinkInfo",
	HasExpString:                "HasExpString",
	RunInSeparateProcess:        "RunInSeparateProcess",
	HasDarwinID:                 "HasDarwinID",
	RunAsUser:                   "RunAsUser",
	HasExpIcon:                  "HasExpIcon",
	NoPidlAlias:                 "NoPidlAlias",
	RunWithShimLayer:            "RunWithShimLayer",
	ForceNoLinkTrack:            "ForceNoLinkTrack",
	EnableTargetMetadata:        "EnableTargetMetadata",
	DisableLinkPathTracking:     "DisableLinkPathTracking",
	DisableKnownFolderTracking:  "DisableKnownFolderTracking",
	DisableKnownFolderAlias:     "DisableKnownFolderAlias",
	AllowLinkToLink:             "AllowLinkToLink",
	UnaliasOnSave:               "UnaliasOnSave",
	PreferEnvironmentPath:       "PreferEnvironmentPath",
	KeepLocalIDListForUNCTarget: "KeepLocalIDListForUNCTarget",
}

// String returns the documented name of a single flag bit.
func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return "Bit" + strconv.Itoa(bits.TrailingZeros32(uint32(f)))
}

// FlagSet is the raw 32-bit LinkFlags word. Bits the decoder does not
// interpret are passed through untouched.
type FlagSet uint32

// Has reports whether f is set.
func (s FlagSet) Has(f Flag) bool { return uint32(s)&uint32(f) != 0 }

// Names lists the set bits in ascending bit order.
func (s FlagSet) Names() []string {
	var out []string
	for v := uint32(s); v != 0; v &= v - 1 {
		out = append(out, Flag(v&-v).String())
	}
	return out
}
