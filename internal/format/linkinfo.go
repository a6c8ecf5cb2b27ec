package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// slot is one resolved entry of the LinkInfo offset table. A zero relative
// offset marks the field as absent.
type slot struct {
	abs     int
	present bool
}

type offsetTable [LinkInfoMaxItems]slot

// resolve turns an offset relative to base into an absolute offset that
// must lie strictly before limit.
func resolve(base int, rel uint32, limit int) (int, error) {
	abs, ok := buf.AddOverflowSafe(base, int(rel))
	if !ok || abs >= limit {
		return 0, types.Errorf(types.ErrKindOffsetOutOfRange,
			"offset 0x%X from %d resolves past block end %d", rel, base, limit)
	}
	return abs, nil
}

// DecodeLinkInfo decodes the LinkInfo block at c's position. On success c
// is left at the end of the block as declared by LinkInfoSize.
func DecodeLinkInfo(c *buf.Cursor) (*types.LinkInfo, error) {
	blockStart := c.Pos()
	if c.Remaining() < OffsetFieldSize {
		return nil, fmt.Errorf("linkinfo: %w", types.Errorf(types.ErrKindTruncated,
			"need %d bytes for size at %d, have %d", OffsetFieldSize, blockStart, c.Remaining()))
	}
	size, err := c.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("linkinfo size: %w", err)
	}
	afterwards, ok := buf.AddOverflowSafe(blockStart, int(size))
	if !ok || afterwards > c.Limit() {
		return nil, fmt.Errorf("linkinfo: %w", types.Errorf(types.ErrKindTruncated,
			"block of %d bytes at %d exceeds buffer end %d", size, blockStart, c.Limit()))
	}

	lc := c.Sub(afterwards)
	headerSize, err := lc.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("linkinfo header size: %w", err)
	}
	items, err := linkInfoItemCount(headerSize, size)
	if err != nil {
		return nil, fmt.Errorf("linkinfo: %w", err)
	}
	flags, err := lc.ReadU32()
	if err != nil {
		return nil, fmt.Errorf("linkinfo flags: %w", err)
	}

	var table offsetTable
	for i := range items {
		rel, err := lc.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("linkinfo offset %d: %w", i, err)
		}
		abs, err := resolve(blockStart, rel, afterwards)
		if err != nil {
			return nil, fmt.Errorf("linkinfo offset %d: %w", i, err)
		}
		table[i] = slot{abs: abs, present: rel != 0}
	}

	b := c.Bytes()
	li := &types.LinkInfo{
		Size:       size,
		HeaderSize: headerSize,
		Flags:      types.LinkInfoFlags(flags),
	}

	if li.Flags.Has(types.VolumeIDAndLocalBasePath) {
		vol, err := decodeVolumeAndBasePath(b, &table, items, afterwards)
		if err != nil {
			return nil, fmt.Errorf("linkinfo: %w", err)
		}
		li.VolumeID = vol
	}

	if li.Flags.Has(types.CommonNetworkRelativeLinkAndPathSuffix) && table[SlotCommonNetworkRelativeLink].present {
		nl, err := DecodeNetworkLink(b, table[SlotCommonNetworkRelativeLink].abs, afterwards)
		if err != nil {
			return nil, fmt.Errorf("linkinfo: %w", err)
		}
		li.Network = nl
	}

	li.CommonPathSuffix = []byte{}
	if s := table[SlotCommonPathSuffix]; s.present {
		if li.CommonPathSuffix, err = cString(b, s.abs, afterwards); err != nil {
			return nil, fmt.Errorf("linkinfo common path suffix: %w", err)
		}
	}
	if items == LinkInfoItemsExtended {
		li.CommonPathSuffixUnicode = []byte{}
		if s := table[SlotCommonPathSuffixUnicode]; s.present {
			if li.CommonPathSuffixUnicode, err = wString(b, s.abs, afterwards); err != nil {
				return nil, fmt.Errorf("linkinfo unicode common path suffix: %w", err)
			}
		}
	}

	if err := c.Seek(afterwards); err != nil {
		return nil, fmt.Errorf("linkinfo: %w", err)
	}
	return li, nil
}

// linkInfoItemCount maps LinkInfoHeaderSize to the number of offset fields.
// Only the legacy (4) and extended (6) layouts exist.
func linkInfoItemCount(headerSize, blockSize uint32) (int, error) {
	const fixed = LinkInfoFixedFields * OffsetFieldSize
	if headerSize < fixed {
		return 0, types.Errorf(types.ErrKindMalformed, "header size 0x%X below fixed fields", headerSize)
	}
	items := int((headerSize - fixed) / OffsetFieldSize)
	if items != LinkInfoItemsLegacy && items != LinkInfoItemsExtended {
		return 0, types.Errorf(types.ErrKindMalformed,
			"header size 0x%X gives %d offsets, want %d or %d",
			headerSize, items, LinkInfoItemsLegacy, LinkInfoItemsExtended)
	}
	if headerSize > blockSize {
		return 0, types.Errorf(types.ErrKindMalformed,
			"header size 0x%X exceeds block size 0x%X", headerSize, blockSize)
	}
	return items, nil
}

func decodeVolumeAndBasePath(b []byte, table *offsetTable, items, afterwards int) (*types.VolumeID, error) {
	vs := table[SlotVolumeID]
	if !vs.present {
		return nil, types.Errorf(types.ErrKindMalformed, "volume id flagged but offset is zero")
	}
	vol, err := DecodeVolumeID(b, vs.abs, afterwards)
	if err != nil {
		return nil, fmt.Errorf("volume id: %w", err)
	}
	ls := table[SlotLocalBasePath]
	if !ls.present {
		return nil, types.Errorf(types.ErrKindMalformed, "volume id flagged but local base path offset is zero")
	}
	if vol.LocalBasePath, err = cString(b, ls.abs, afterwards); err != nil {
		return nil, fmt.Errorf("local base path: %w", err)
	}
	if items == LinkInfoItemsExtended {
		if us := table[SlotLocalBasePathUnicode]; us.present {
			if vol.LocalBasePathUnicode, err = wString(b, us.abs, afterwards); err != nil {
				return nil, fmt.Errorf("unicode local base path: %w", err)
			}
		}
	}
	return vol, nil
}
