package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeIDList decodes a LinkTargetIDList at c's position. On success c is
// left just past the list.
//
// Layout: a 16-bit IDListSize (not counting itself), then ItemIDs each
// prefixed by a 16-bit size that counts the prefix, then a zero uint16.
func DecodeIDList(c *buf.Cursor) (*types.TargetIDList, error) {
	listSize, err := c.ReadU16()
	if err != nil {
		return nil, fmt.Errorf("idlist size: %w", err)
	}
	afterwards, ok := buf.AddOverflowSafe(c.Pos(), int(listSize))
	if !ok || afterwards > c.Limit() {
		return nil, fmt.Errorf("idlist: %w", types.Errorf(types.ErrKindTruncated,
			"list of %d bytes at offset %d exceeds buffer end %d", listSize, c.Pos(), c.Limit()))
	}

	// Every iteration consumes at least ItemIDMinimumSize bytes of a window
	// that ends at afterwards, so the loop is bounded by listSize/2.
	lc := c.Sub(afterwards)
	list := &types.TargetIDList{Size: listSize}
	for {
		if lc.Remaining() < IDListTerminator {
			return nil, fmt.Errorf("idlist: %w", types.Errorf(types.ErrKindMalformed,
				"no terminator before declared end %d", afterwards))
		}
		size, err := lc.PeekU16()
		if err != nil {
			return nil, fmt.Errorf("idlist item %d: %w", len(list.Items), err)
		}
		if size == 0 {
			if err := lc.Advance(IDListTerminator); err != nil {
				return nil, fmt.Errorf("idlist terminator: %w", err)
			}
			break
		}
		if size < ItemIDMinimumSize {
			return nil, fmt.Errorf("idlist item %d: %w", len(list.Items), types.Errorf(types.ErrKindMalformed,
				"item size %d at offset %d cannot hold its own prefix", size, lc.Pos()))
		}
		begin := lc.Pos()
		if end := begin + int(size); end > afterwards {
			return nil, fmt.Errorf("idlist item %d: %w", len(list.Items), types.Errorf(types.ErrKindOffsetOutOfRange,
				"item [%d, %d) ends past list end %d", begin, end, afterwards))
		}
		raw, err := lc.ReadBytes(int(size))
		if err != nil {
			return nil, fmt.Errorf("idlist item %d: %w", len(list.Items), err)
		}
		list.Items = append(list.Items, types.ItemID{
			Offset: begin,
			Size:   size,
			Data:   raw[ItemIDSizeLen:],
		})
	}
	if lc.Pos() != afterwards {
		return nil, fmt.Errorf("idlist: %w", types.Errorf(types.ErrKindMalformed,
			"terminator at %d, list declared to end at %d", lc.Pos()-IDListTerminator, afterwards))
	}
	if err := c.Seek(afterwards); err != nil {
		return nil, fmt.Errorf("idlist: %w", err)
	}
	return list, nil
}
