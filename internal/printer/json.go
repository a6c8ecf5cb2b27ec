package printer

import (
	"encoding/json"

	"github.com/joshuapare/lnkkit/pkg/lnk"
)

type jsonField struct {
	Field   string `json:"field"`
	Value   string `json:"value"`
	Present bool   `json:"present"`
}

func (p *Printer) printFieldJSON(f lnk.Field, value string, ok bool) error {
	return p.writeJSON(jsonField{Field: f.Code(), Value: value, Present: ok})
}

func (p *Printer) printDumpJSON(d dump) error {
	return p.writeJSON(d)
}

func (p *Printer) writeJSON(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
