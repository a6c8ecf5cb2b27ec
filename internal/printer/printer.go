// Package printer renders decoded links for the CLI, either a single field
// or a full dump, as text or JSON.
package printer

import (
	"io"

	"github.com/joshuapare/lnkkit/internal/text"
	"github.com/joshuapare/lnkkit/pkg/lnk"
	"github.com/joshuapare/lnkkit/pkg/types"
)

const (
	DefaultIndentSize   = 2
	DefaultMaxItemBytes = 16
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text.
	FormatText Format = "text"

	// FormatJSON outputs JSON.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text dump only).
	// Default: 2
	IndentSize int

	// MaxItemBytes limits how many bytes of each item ID are shown in a
	// dump. Set to 0 for no limit.
	// Default: 16
	MaxItemBytes int

	// Decoder converts narrow and UTF-16 strings. nil means Windows-1252.
	Decoder lnk.TextDecoder
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:       FormatText,
		IndentSize:   DefaultIndentSize,
		MaxItemBytes: DefaultMaxItemBytes,
	}
}

// Printer writes decoded links to a writer.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintField(link, lnk.FieldPathFile)
func New(w io.Writer, opts Options) *Printer {
	if opts.Decoder == nil {
		opts.Decoder = text.Default()
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w}
}

// PrintField prints one field of the link. In text format an absent field
// prints nothing; in JSON it is reported with "present": false.
func (p *Printer) PrintField(link *types.Link, f lnk.Field) error {
	value, ok := lnk.Extract(link, f, p.opts.Decoder)
	switch p.opts.Format {
	case FormatJSON:
		return p.printFieldJSON(f, value, ok)
	default:
		return p.printFieldText(value, ok)
	}
}

// PrintDump prints every decoded part of the link.
func (p *Printer) PrintDump(path string, link *types.Link) error {
	d := p.buildDump(path, link)
	switch p.opts.Format {
	case FormatJSON:
		return p.printDumpJSON(d)
	default:
		return p.printDumpText(d)
	}
}
