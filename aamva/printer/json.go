package printer

import (
	"encoding/json"

	"github.com/scantools/aamvakit/aamva"
	"github.com/scantools/aamvakit/pkg/types"
)

// jsonResult is the JSON shape of a parsed payload. Separator bytes are
// emitted as escaped strings so control characters survive the round trip
// readably.
type jsonResult struct {
	Header      jsonHeader                   `json:"header"`
	Designators []jsonDesignator             `json:"designators"`
	Subfiles    map[string]map[string]string `json:"subfiles"`
}

type jsonHeader struct {
	DataElementSeparator string `json:"data_element_separator"`
	RecordSeparator      string `json:"record_separator"`
	SegmentTerminator    string `json:"segment_terminator"`
	IIN                  string `json:"iin"`
	AAMVAVersion         string `json:"aamva_version"`
	JurisdictionVersion  string `json:"jurisdiction_version"`
	NumEntries           int    `json:"num_entries"`
}

type jsonDesignator struct {
	Type   string `json:"type"`
	Offset int    `json:"offset"`
	Length int    `json:"length"`
}

// printResultJSON prints a payload in JSON format.
func (p *Printer) printResultJSON(r types.ParseResult) error {
	out := jsonResult{
		Header: jsonHeader{
			DataElementSeparator: string(r.Header.DataElementSeparator),
			RecordSeparator:      string(r.Header.RecordSeparator),
			SegmentTerminator:    string(r.Header.SegmentTerminator),
			IIN:                  r.Header.IIN,
			AAMVAVersion:         r.Header.AAMVAVersion,
			JurisdictionVersion:  r.Header.JurisdictionVersion,
			NumEntries:           r.Header.NumEntries,
		},
		Designators: make([]jsonDesignator, 0, len(r.Designators)),
		Subfiles:    make(map[string]map[string]string, len(r.Subfiles)),
	}
	for _, d := range r.Designators {
		out.Designators = append(out.Designators, jsonDesignator(d))
	}
	for typ, data := range r.Subfiles {
		records := make(map[string]string, len(data))
		for id, value := range data {
			if p.opts.DecodeValues {
				if decoded, err := aamva.DecodeValue(value); err == nil {
					value = decoded
				}
			}
			records[id] = value
		}
		out.Subfiles[typ] = records
	}

	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
