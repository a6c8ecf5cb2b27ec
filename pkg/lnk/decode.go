package lnk

import (
	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/internal/format"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// Decode parses a complete shell link from data. Item IDs and LinkInfo
// strings in the result are views into data; string-data fields are owned
// copies. data is never written.
//
// Decode is safe to call concurrently, including on the same buffer.
func Decode(data []byte) (*types.Link, error) {
	c := buf.NewCursor(data)

	hdr, err := format.DecodeHeader(c)
	if err != nil {
		return nil, err
	}
	link := &types.Link{Flags: hdr.Flags, IconIndex: hdr.IconIndex}

	if hdr.Flags.Has(types.HasLinkTargetIDList) {
		if link.IDList, err = format.DecodeIDList(c); err != nil {
			return nil, err
		}
	}
	if hdr.Flags.Has(types.HasLinkInfo) {
		if link.LinkInfo, err = format.DecodeLinkInfo(c); err != nil {
			return nil, err
		}
	}
	if err := format.DecodeStringData(c, hdr.Flags, link); err != nil {
		return nil, err
	}
	return link, nil
}
