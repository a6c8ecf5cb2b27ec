package format

import (
	"fmt"

	"github.com/joshuapare/lnkkit/internal/buf"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// DecodeNetworkLink decodes the CommonNetworkRelativeLink sub-block at
// start. Names are resolved relative to start and must lie inside the
// sub-block's declared size, which itself must end before afterwards.
func DecodeNetworkLink(b []byte, start, afterwards int) (*types.NetworkLink, error) {
	if !buf.Has(b, start, OffsetFieldSize) || start+OffsetFieldSize > afterwards {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"network link at %d leaves no room for its size before %d", start, afterwards)
	}
	size := buf.U32LE(b[start:])
	end, ok := buf.AddOverflowSafe(start, int(size))
	if !ok || end > afterwards {
		return nil, types.Errorf(types.ErrKindOffsetOutOfRange,
			"network link of %d bytes at %d ends past %d", size, start, afterwards)
	}
	if size < NetworkLinkMinSize {
		return nil, types.Errorf(types.ErrKindMalformed,
			"network link size %d below minimum %d", size, NetworkLinkMinSize)
	}

	nc, err := buf.NewCursorAt(b, start+OffsetFieldSize, end)
	if err != nil {
		return nil, err
	}
	var fields [4]uint32 // flags, net name, device name, provider type
	for i := range fields {
		if fields[i], err = nc.ReadU32(); err != nil {
			return nil, fmt.Errorf("network link field %d: %w", i, err)
		}
	}
	nl := &types.NetworkLink{
		Size:                size,
		Flags:               fields[0],
		NetworkProviderType: fields[3],
	}
	netNameOff, deviceOff := fields[1], fields[2]

	abs, err := resolve(start, netNameOff, end)
	if err != nil {
		return nil, fmt.Errorf("net name: %w", err)
	}
	if nl.NetName, err = cString(b, abs, end); err != nil {
		return nil, fmt.Errorf("net name: %w", err)
	}
	nl.DeviceName = []byte{}
	if nl.HasDevice() && deviceOff != 0 {
		if abs, err = resolve(start, deviceOff, end); err != nil {
			return nil, fmt.Errorf("device name: %w", err)
		}
		if nl.DeviceName, err = cString(b, abs, end); err != nil {
			return nil, fmt.Errorf("device name: %w", err)
		}
	}

	if netNameOff > NetworkLinkUnicodeThreshold {
		netUC, err := nc.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("unicode net name offset: %w", err)
		}
		devUC, err := nc.ReadU32()
		if err != nil {
			return nil, fmt.Errorf("unicode device name offset: %w", err)
		}
		if netUC != 0 {
			if abs, err = resolve(start, netUC, end); err != nil {
				return nil, fmt.Errorf("unicode net name: %w", err)
			}
			if nl.NetNameUnicode, err = wString(b, abs, end); err != nil {
				return nil, fmt.Errorf("unicode net name: %w", err)
			}
		}
		if nl.HasDevice() && devUC != 0 {
			if abs, err = resolve(start, devUC, end); err != nil {
				return nil, fmt.Errorf("unicode device name: %w", err)
			}
			if nl.DeviceNameUnicode, err = wString(b, abs, end); err != nil {
				return nil, fmt.Errorf("unicode device name: %w", err)
			}
		}
	}
	return nl, nil
}
