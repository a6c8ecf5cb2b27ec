package printer

import (
	"encoding/hex"
	"fmt"

	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// dump is the presentation model shared by the text and JSON renderers.
type dump struct {
	Path      string      `json:"path,omitempty"`
	Flags     []string    `json:"flags"`
	FlagsRaw  uint32      `json:"flags_raw"`
	IconIndex uint32      `json:"icon_index"`
	Unicode   bool        `json:"unicode"`
	Target    *string     `json:"target,omitempty"`
	IDList    []dumpItem  `json:"id_list,omitempty"`
	LinkInfo  *dumpInfo   `json:"link_info,omitempty"`
	Strings   []dumpEntry `json:"strings,omitempty"`
}

type dumpItem struct {
	Offset int    `json:"offset"`
	Size   uint16 `json:"size"`
	Data   string `json:"data"`
}

type dumpInfo struct {
	Size     uint32       `json:"size"`
	Extended bool         `json:"extended"`
	Volume   *dumpVolume  `json:"volume,omitempty"`
	Network  *dumpNetwork `json:"network,omitempty"`
	Suffix   string       `json:"common_path_suffix"`
}

type dumpVolume struct {
	DriveType    string `json:"drive_type"`
	SerialNumber string `json:"serial_number"`
	Label        string `json:"label"`
	LabelUnicode bool   `json:"label_unicode"`
	BasePath     string `json:"local_base_path"`
}

type dumpNetwork struct {
	NetName      string `json:"net_name"`
	DeviceName   string `json:"device_name,omitempty"`
	ProviderType uint32 `json:"provider_type,omitempty"`
}

type dumpEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func (p *Printer) buildDump(path string, link *types.Link) dump {
	dec := p.opts.Decoder
	d := dump{
		Path:      path,
		Flags:     link.Flags.Names(),
		FlagsRaw:  uint32(link.Flags),
		IconIndex: link.IconIndex,
		Unicode:   link.Flags.Has(types.IsUnicode),
	}
	if target, ok := lnk.TargetPath(link, dec); ok {
		d.Target = &target
	}
	if link.IDList != nil {
		for _, it := range link.IDList.Items {
			d.IDList = append(d.IDList, dumpItem{
				Offset: it.Offset,
				Size:   it.Size,
				Data:   p.preview(it.Data),
			})
		}
	}
	if li := link.LinkInfo; li != nil {
		info := &dumpInfo{
			Size:     li.Size,
			Extended: li.Extended(),
			Suffix:   pick(dec, li.CommonPathSuffix, li.CommonPathSuffixUnicode),
		}
		if v := li.VolumeID; v != nil {
			label, _ := lnk.Extract(link, lnk.FieldVolumeLabel, dec)
			info.Volume = &dumpVolume{
				DriveType:    v.DriveType.String(),
				SerialNumber: fmt.Sprintf("%04X-%04X", v.SerialNumber>>16, v.SerialNumber&0xFFFF),
				Label:        label,
				LabelUnicode: v.Label.IsUnicode(),
				BasePath:     pick(dec, v.LocalBasePath, v.LocalBasePathUnicode),
			}
		}
		if n := li.Network; n != nil {
			nd := &dumpNetwork{
				NetName:      pick(dec, n.NetName, n.NetNameUnicode),
				ProviderType: n.NetworkProviderType,
			}
			if n.HasDevice() {
				nd.DeviceName = pick(dec, n.DeviceName, n.DeviceNameUnicode)
			}
			info.Network = nd
		}
		d.LinkInfo = info
	}
	for _, item := range types.StringItems {
		if s := link.String(item); s != nil {
			d.Strings = append(d.Strings, dumpEntry{Name: item.String(), Value: lnk.StringValue(s, dec)})
		}
	}
	return d
}

func (p *Printer) preview(b []byte) string {
	if p.opts.MaxItemBytes > 0 && len(b) > p.opts.MaxItemBytes {
		return hex.EncodeToString(b[:p.opts.MaxItemBytes]) + "..."
	}
	return hex.EncodeToString(b)
}

func pick(dec lnk.TextDecoder, narrow, wide []byte) string {
	if len(wide) > 0 {
		return dec.Wide(wide)
	}
	return dec.Narrow(narrow)
}
