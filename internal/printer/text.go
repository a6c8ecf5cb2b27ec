package printer

import (
	"fmt"
	"io"
	"strings"
)

func (p *Printer) printFieldText(value string, ok bool) error {
	if !ok {
		return nil
	}
	_, err := fmt.Fprintln(p.writer, value)
	return err
}

func (p *Printer) printDumpText(d dump) error {
	ind := strings.Repeat(" ", p.opts.IndentSize)
	var b strings.Builder

	if d.Path != "" {
		fmt.Fprintf(&b, "[%s]\n", d.Path)
	}
	fmt.Fprintf(&b, "Flags: 0x%08X %s\n", d.FlagsRaw, strings.Join(d.Flags, " "))
	fmt.Fprintf(&b, "Icon Index: %d\n", d.IconIndex)
	if d.Target != nil {
		fmt.Fprintf(&b, "Target: %s\n", *d.Target)
	}
	if len(d.IDList) > 0 {
		fmt.Fprintf(&b, "ID List: %d items\n", len(d.IDList))
		for i, it := range d.IDList {
			fmt.Fprintf(&b, "%s#%d @0x%X size %d: %s\n", ind, i, it.Offset, it.Size, it.Data)
		}
	}
	if li := d.LinkInfo; li != nil {
		form := "legacy"
		if li.Extended {
			form = "extended"
		}
		fmt.Fprintf(&b, "Link Info: %d bytes, %s header\n", li.Size, form)
		if v := li.Volume; v != nil {
			fmt.Fprintf(&b, "%sDrive Type: %s\n", ind, v.DriveType)
			fmt.Fprintf(&b, "%sSerial Number: %s\n", ind, v.SerialNumber)
			fmt.Fprintf(&b, "%sVolume Label: %s\n", ind, v.Label)
			fmt.Fprintf(&b, "%sLocal Base Path: %s\n", ind, v.BasePath)
		}
		if n := li.Network; n != nil {
			fmt.Fprintf(&b, "%sNet Name: %s\n", ind, n.NetName)
			if n.DeviceName != "" {
				fmt.Fprintf(&b, "%sDevice Name: %s\n", ind, n.DeviceName)
			}
		}
		fmt.Fprintf(&b, "%sCommon Path Suffix: %s\n", ind, li.Suffix)
	}
	for _, s := range d.Strings {
		fmt.Fprintf(&b, "%s: %s\n", s.Name, s.Value)
	}
	_, err := io.WriteString(p.writer, b.String())
	return err
}
