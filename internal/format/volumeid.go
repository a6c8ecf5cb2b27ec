package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// volumeIDFixedSize covers the size, drive type, serial and label offset.
const volumeIDFixedSize = VolumeIDLabelUCOffset

// DecodeVolumeID decodes the VolumeID sub-block at start. afterwards is the
// end of the enclosing LinkInfo block; the sub-block and the label it
// points at must both lie before it. The local base paths are filled in by
// the LinkInfo decoder.
func DecodeVolumeID(b []byte, start, afterwards int) (*types.VolumeID, error) {
	if !buf.Has(b, start, OffsetFieldSize) || start+OffsetFieldSize > afterwards {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"volume id at %d leaves no room for its size before %d", start, afterwards)
	}
	size := buf.U32LE(b[start:])
	end, ok := buf.AddOverflowSafe(start, int(size))
	if !ok || end > afterwards {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"volume id of %d bytes at %d ends past %d", size, start, afterwards)
	}
	if size < volumeIDFixedSize {
		return nil, types.Errorf(types.ErrKindMalformed,
			"volume id size %d smaller than its fixed fields (%d)", size, volumeIDFixedSize)
	}

	vc, err := buf.NewCursorAt(b, start+VolumeIDDriveTypeOffset, end)
	if err != nil {
		return nil, err
	}
	driveType, err := vc.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("drive type: %w", err)
	}
	if !types.DriveType(driveType).Valid() {
		return nil, types.Errorf(types.ErrKindMalformed,
			"drive type %d above %d", driveType, uint32(types.MaxDriveType))
	}
	serial, err := vc.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("serial number: %w", err)
	}
	labelOff, err := vc.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("volume label offset: %w", err)
	}

	vol := &types.VolumeID{
		Size:         size,
		DriveType:    types.DriveType(driveType),
		SerialNumber: serial,
	}
	if labelOff == VolumeLabelUnicodeMarker {
		// The unicode offset may lie past a short declared size; it only
		// has to fit in the LinkInfo block.
		at := start + VolumeIDLabelUCOffset
		if !buf.Has(b, at, OffsetFieldSize) || at+OffsetFieldSize > afterwards {
			return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
				"unicode volume label offset at %d runs past %d", at, afterwards)
		}
		ucOff := buf.U32LE(b[at:])
		abs, err := resolve(start, ucOff, afterwards)
		if err != nil {
			return nil, fmt.Errorf("unicode volume label: %w", err)
		}
		label, err := wString(b, abs, afterwards)
		if err != nil {
			return nil, fmt.Errorf("unicode volume label: %w", err)
		}
		vol.Label = types.UnicodeLabel(label)
		return vol, nil
	}
	abs, err := resolve(start, labelOff, afterwards)
	if err != nil {
		return nil, fmt.Errorf("volume label: %w", err)
	}
	label, err := cString(b, abs, afterwards)
	if err != nil {
		return nil, fmt.Errorf("volume label: %w", err)
	}
	vol.Label = types.NarrowLabel(label)
	return vol, nil
}
