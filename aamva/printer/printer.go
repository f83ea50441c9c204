// Package printer renders a parsed AAMVA payload as human-readable text or
// JSON. It is the output layer shared by the aamvactl CLI and anything else
// that wants a formatted view of a types.ParseResult.
package printer

import (
	"fmt"
	"io"

	"github.com/scantools/aamvakit/pkg/types"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// ShowElementNames labels records with their AAMVA display names where
	// known ("DCS" -> "Family Name").
	// Default: true
	ShowElementNames bool

	// DecodeValues runs record values through the Latin-1 display decode.
	// Default: true
	DecodeValues bool

	// ShowDesignators includes the subfile directory in the output.
	// Default: true
	ShowDesignators bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:           FormatText,
		IndentSize:       DefaultIndentSize,
		ShowElementNames: true,
		DecodeValues:     true,
		ShowDesignators:  true,
	}
}

// Printer handles formatted output of parsed payloads.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer writing to w.
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w}
}

// PrintResult renders a complete ParseResult in the configured format.
func (p *Printer) PrintResult(r types.ParseResult) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printResultJSON(r)
	case FormatText, "":
		return p.printResultText(r)
	default:
		return fmt.Errorf("printer: unknown format %q", p.opts.Format)
	}
}
