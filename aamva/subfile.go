package aamva

import (
	"fmt"
	"maps"

	"github.com/scantools/aamvakit/internal/buf"
	"github.com/scantools/aamvakit/internal/format"
	"github.com/scantools/aamvakit/pkg/types"
)

// Subfile types parsed into records. Every other type only has its byte
// range validated and stays absent from the result's Subfiles map.
func recognizedSubfile(typ string) bool {
	return typ == "DL" || typ == "ID"
}

// scheduleSubfiles expands the collected directory into one subfile step per
// designator, in directory order. It reads nothing itself and cannot fail.
func scheduleSubfiles(b *buf.Buffer) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		follow := make([]step, 0, len(r.Designators))
		for _, d := range r.Designators {
			follow = append(follow, readSubfile(b, d))
		}
		return r, follow, nil
	}
}

// readSubfile parses the subfile a designator points at.
//
// The declared byte range is snapshotted with an absolute-offset window
// before any scanning, so characters beyond the range stay invisible to the
// record scanner even when already buffered, and a suspension here simply
// re-snapshots the same range on resume. The window is driven by the
// append-only backing buffer, not by the cursor shared with header and
// directory parsing.
func readSubfile(b *buf.Buffer, d types.SubfileDesignator) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		win, err := b.Window(d.Offset, d.Length)
		if err != nil {
			return r, nil, err
		}
		if !recognizedSubfile(d.Type) {
			// Range validated above; no records are extracted.
			return r, nil, nil
		}

		data, err := scanRecords(win, r.Header.DataElementSeparator, r.Header.SegmentTerminator)
		if err != nil {
			return r, nil, fmt.Errorf("aamva: subfile %q: %w", d.Type, err)
		}

		// Copy-on-write keeps the previously committed result untouched.
		subfiles := make(map[string]types.SubfileData, len(r.Subfiles)+1)
		maps.Copy(subfiles, r.Subfiles)
		subfiles[d.Type] = data
		r.Subfiles = subfiles
		return r, nil, nil
	}
}

// scanRecords extracts <id:3><value> records from a snapshotted subfile
// window. The first two characters are the subfile's own type/repeat marker.
// Records are delimited by des; term closes the subfile. Duplicate element
// IDs keep the last value.
//
// The window is complete by construction, so running off its end means the
// declared length and the content disagree — a structural error, not a
// short-buffer condition.
func scanRecords(win string, des, term byte) (types.SubfileData, error) {
	if len(win) < format.SubfilePrefixLen {
		return nil, fmt.Errorf("declared length %d shorter than subfile marker: %w", len(win), types.ErrStructure)
	}
	data := types.SubfileData{}
	i := format.SubfilePrefixLen
	for {
		if i >= len(win) {
			return nil, fmt.Errorf("no segment terminator within declared length %d: %w", len(win), types.ErrStructure)
		}
		switch win[i] {
		case term:
			return data, nil
		case des:
			// Between records; a leading occurrence has no record to end.
			i++
			continue
		}

		if i+format.ElementIDLen > len(win) {
			return nil, fmt.Errorf("record truncated at declared length %d: %w", len(win), types.ErrStructure)
		}
		id := win[i : i+format.ElementIDLen]
		if !format.IsElementID(id) {
			return nil, fmt.Errorf("record key %q is not three uppercase letters: %w", id, types.ErrStructure)
		}
		i += format.ElementIDLen

		j := i
		for j < len(win) && win[j] != des && win[j] != term {
			j++
		}
		if j >= len(win) {
			return nil, fmt.Errorf("no segment terminator within declared length %d: %w", len(win), types.ErrStructure)
		}
		data[id] = win[i:j]
		if win[j] == term {
			return data, nil
		}
		i = j + 1
	}
}
