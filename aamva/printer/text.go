package printer

import (
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/scantools/aamvakit/aamva"
	"github.com/scantools/aamvakit/pkg/types"
)

// printResultText renders a payload in human-readable text format.
func (p *Printer) printResultText(r types.ParseResult) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)

	fmt.Fprintf(p.writer, "Issuer IIN:      %s\n", r.Header.IIN)
	fmt.Fprintf(p.writer, "AAMVA Version:   %s\n", r.Header.AAMVAVersion)
	fmt.Fprintf(p.writer, "Jurisdiction:    %s\n", r.Header.JurisdictionVersion)
	fmt.Fprintf(p.writer, "Subfile Entries: %d\n", r.Header.NumEntries)

	if p.opts.ShowDesignators {
		fmt.Fprintln(p.writer, "\nSubfile Directory:")
		for _, d := range r.Designators {
			fmt.Fprintf(p.writer, "%s%s  offset=%d  length=%d\n", indent, d.Type, d.Offset, d.Length)
		}
	}

	for _, d := range r.Designators {
		data, ok := r.Subfiles[d.Type]
		if !ok {
			continue
		}
		fmt.Fprintf(p.writer, "\n[%s]\n", d.Type)
		if err := p.printRecordsText(data, indent); err != nil {
			return err
		}
	}
	return nil
}

// printRecordsText prints one subfile's records, sorted by element ID so
// output is stable across runs.
func (p *Printer) printRecordsText(data types.SubfileData, indent string) error {
	ids := make([]string, 0, len(data))
	for id := range data {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	tw := tabwriter.NewWriter(p.writer, 0, 0, 2, ' ', 0)
	for _, id := range ids {
		value := data[id]
		if p.opts.DecodeValues {
			if decoded, err := aamva.DecodeValue(value); err == nil {
				value = decoded
			}
		}
		label := id
		if p.opts.ShowElementNames {
			if name, ok := aamva.ElementName(id); ok {
				label = fmt.Sprintf("%s (%s)", id, name)
			}
		}
		fmt.Fprintf(tw, "%s%s\t%s\n", indent, label, value)
	}
	return tw.Flush()
}
