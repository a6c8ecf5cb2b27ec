package lnk

import (
	"strconv"
	"strings"

	"github.com/joshuapare/lnkkit/internal/text"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Field selects one presentable value of a decoded link.
type Field int

const (
	FieldFile Field = iota
	FieldPath
	FieldPathFile
	FieldRelativePath
	FieldVolumeLabel
	FieldDriveType
	FieldWorkingDir
	FieldArguments
	FieldIcon
	FieldName
)

// DefaultField is returned when no field is requested.
const DefaultField = FieldPathFile

var fieldInfo = [...]struct {
	code string
	desc string
}{
	FieldFile:         {"F", "filename the link points to"},
	FieldPath:         {"P", "absolute path of directory the link target is in"},
	FieldPathFile:     {"PF", "absolute path + filename of the link target (default if flag is omitted)"},
	FieldRelativePath: {"PR", "relative path to link target, if it's stored in the .lnk file"},
	FieldVolumeLabel:  {"VL", "volume label of the drive the link target is in"},
	FieldDriveType:    {"VT", "volume drive type"},
	FieldWorkingDir:   {"W", "working directory of the link"},
	FieldArguments:    {"CL", "command line arguments"},
	FieldIcon:         {"I", "link icon"},
	FieldName:         {"N", "link name string"},
}

// Fields lists every field in help order.
func Fields() []Field {
	out := make([]Field, len(fieldInfo))
	for i := range out {
		out[i] = Field(i)
	}
	return out
}

// Code returns the short selector, such as "PF".
func (f Field) Code() string {
	if !f.valid() {
		return ""
	}
	return fieldInfo[f].code
}

// Description returns the one-line help text for the field.
func (f Field) Description() string {
	if !f.valid() {
		return ""
	}
	return fieldInfo[f].desc
}

func (f Field) String() string {
	if !f.valid() {
		return "Field(" + strconv.Itoa(int(f)) + ")"
	}
	return fieldInfo[f].code
}

func (f Field) valid() bool { return f >= 0 && int(f) < len(fieldInfo) }

// ParseField looks up a field by its code, ignoring ASCII case.
func ParseField(code string) (Field, bool) {
	for i, fi := range fieldInfo {
		if strings.EqualFold(fi.code, code) {
			return Field(i), true
		}
	}
	return 0, false
}

// TextDecoder converts the raw narrow and UTF-16LE views of a link into
// Go strings. *text.Decoder implements it.
type TextDecoder interface {
	Narrow(b []byte) string
	Wide(b []byte) string
}

// Extract returns the value of field f. ok is false when the link does not
// carry the field. A nil dec decodes narrow strings as Windows-1252.
func Extract(link *types.Link, f Field, dec TextDecoder) (value string, ok bool) {
	if link == nil {
		return "", false
	}
	if dec == nil {
		dec = text.Default()
	}
	switch f {
	case FieldFile, FieldPath, FieldPathFile:
		p, ok := TargetPath(link, dec)
		if !ok {
			return "", false
		}
		switch f {
		case FieldFile:
			return text.TakeFilename(p), true
		case FieldPath:
			return text.TakePathname(p), true
		}
		return p, true
	case FieldDriveType:
		vol := volume(link)
		if vol == nil {
			return "", false
		}
		return vol.DriveType.String(), true
	case FieldVolumeLabel:
		vol := volume(link)
		if vol == nil {
			return "", false
		}
		if b, ok := vol.Label.Unicode(); ok {
			return dec.Wide(b), true
		}
		b, _ := vol.Label.Narrow()
		return dec.Narrow(b), true
	case FieldIcon:
		s := link.IconLocation
		if s == nil {
			return "", false
		}
		return StringValue(s, dec) + "," + strconv.FormatUint(uint64(link.IconIndex), 10), true
	}
	if item, ok := stringItems[f]; ok {
		s := link.String(item)
		if s == nil {
			return "", false
		}
		return StringValue(s, dec), true
	}
	return "", false
}

var stringItems = map[Field]types.StringItem{
	FieldRelativePath: types.StringRelativePath,
	FieldWorkingDir:   types.StringWorkingDir,
	FieldArguments:    types.StringArguments,
	FieldName:         types.StringName,
}

// StringValue decodes a string-data item according to its encoding. The
// value ends at the first zero unit of the item's width, as Windows shows it.
func StringValue(s *types.LinkString, dec TextDecoder) string {
	if s == nil {
		return ""
	}
	if dec == nil {
		dec = text.Default()
	}
	if s.Unicode() {
		return dec.Wide(untilNUL(s.Bytes(), 2))
	}
	return dec.Narrow(untilNUL(s.Bytes(), 1))
}

// untilNUL cuts b before its first all-zero unit of width bytes.
func untilNUL(b []byte, width int) []byte {
	for i := 0; i+width <= len(b); i += width {
		if b[i] == 0 && (width == 1 || b[i+1] == 0) {
			return b[:i]
		}
	}
	return b
}

// TargetPath joins the base path and the common path suffix of the link's
// LinkInfo. The base is the local base path when a volume is present,
// otherwise the share name of a network link. UTF-16 views are preferred
// over narrow ones when they are non-empty. ok is false without LinkInfo.
func TargetPath(link *types.Link, dec TextDecoder) (string, bool) {
	if link == nil || link.LinkInfo == nil {
		return "", false
	}
	if dec == nil {
		dec = text.Default()
	}
	li := link.LinkInfo
	suffix := pick(dec, li.CommonPathSuffix, li.CommonPathSuffixUnicode)

	switch {
	case li.VolumeID != nil:
		return pick(dec, li.VolumeID.LocalBasePath, li.VolumeID.LocalBasePathUnicode) + suffix, true
	case li.Network != nil:
		base := pick(dec, li.Network.NetName, li.Network.NetNameUnicode)
		if suffix != "" && base != "" && !strings.HasSuffix(base, `\`) {
			base += `\`
		}
		return base + suffix, true
	}
	return suffix, true
}

func pick(dec TextDecoder, narrow, wide []byte) string {
	if len(wide) > 0 {
		return dec.Wide(wide)
	}
	return dec.Narrow(narrow)
}

func volume(link *types.Link) *types.VolumeID {
	if link.LinkInfo == nil {
		return nil
	}
	return link.LinkInfo.VolumeID
}
