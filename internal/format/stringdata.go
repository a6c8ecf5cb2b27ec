package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeStringData reads the optional string-data items selected by flags,
// in file order, and stores owned copies on link. Each item is a 16-bit
// character count followed by that many characters, one byte wide or two
// when IsUnicode is set.
func DecodeStringData(c *buf.Cursor, flags types.FlagSet, link *types.Link) error {
	unicode := flags.Has(types.IsUnicode)
	width := 1
	if unicode {
		width = 2
	}
	for _, item := range types.StringItems {
		if !flags.Has(item.Flag()) {
			continue
		}
		count, err := c.ReadU16()
		if err != nil {
			return fmt.Errorf("%s count: %w", item, err)
		}
		n, ok := buf.MulOverflowSafe(int(count), width)
		if !ok {
			return fmt.Errorf("%s: %w", item, types.Errorf(types.ErrKindMalformed,
				"character count %d overflows", count))
		}
		raw, err := c.ReadBytes(n)
		if err != nil {
			return fmt.Errorf("%s: %w", item, err)
		}
		link.SetString(item, types.NewLinkString(raw, unicode))
	}
	return nil
}
