package aamva

import (
	"fmt"

	"github.com/scantools/aamvakit/internal/buf"
	"github.com/scantools/aamvakit/internal/format"
	"github.com/scantools/aamvakit/pkg/types"
)

// headerSteps builds the initial step queue for the fixed-layout compliance
// header. Each field is its own step so that cursor advancement commits it
// individually: a short buffer inside a later field never re-validates an
// earlier one.
func headerSteps(b *buf.Buffer) []step {
	return []step{
		expectLeadIn(b),
		readSeparator(b, "data element separator", func(h *types.Header, c byte) { h.DataElementSeparator = c }),
		readSeparator(b, "record separator", func(h *types.Header, c byte) { h.RecordSeparator = c }),
		readSeparator(b, "segment terminator", func(h *types.Header, c byte) { h.SegmentTerminator = c }),
		expectFileType(b),
		readHeaderField(b, format.IINLen, func(h *types.Header, s string) { h.IIN = s }),
		readHeaderField(b, format.VersionLen, func(h *types.Header, s string) { h.AAMVAVersion = s }),
		readHeaderField(b, format.JurisdictionLen, func(h *types.Header, s string) { h.JurisdictionVersion = s }),
		readEntryCount(b),
	}
}

// expectLeadIn consumes the '@' compliance indicator.
func expectLeadIn(b *buf.Buffer) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		s, err := b.Read(1)
		if err != nil {
			return r, nil, err
		}
		if s[0] != format.LeadIn {
			return r, nil, fmt.Errorf("aamva: lead-in is %q, want %q: %w", s[0], byte(format.LeadIn), types.ErrHeader)
		}
		return r, nil, nil
	}
}

// readSeparator consumes one separator character and rejects anything drawn
// from the forbidden letter/digit/space set.
func readSeparator(b *buf.Buffer, name string, set func(*types.Header, byte)) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		s, err := b.Read(1)
		if err != nil {
			return r, nil, err
		}
		c := s[0]
		if !format.IsSeparator(c) {
			return r, nil, fmt.Errorf("aamva: %s %q (U+%04X) must not be a letter, digit, or space: %w",
				name, c, c, types.ErrHeader)
		}
		set(&r.Header, c)
		return r, nil, nil
	}
}

// expectFileType consumes the literal "ANSI " file type.
func expectFileType(b *buf.Buffer) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		s, err := b.Read(len(format.FileType))
		if err != nil {
			return r, nil, err
		}
		if s != format.FileType {
			return r, nil, fmt.Errorf("aamva: file type %q, want %q: %w", s, format.FileType, types.ErrStructure)
		}
		return r, nil, nil
	}
}

// readHeaderField consumes a fixed-width field verbatim.
func readHeaderField(b *buf.Buffer, width int, set func(*types.Header, string)) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		s, err := b.Read(width)
		if err != nil {
			return r, nil, err
		}
		set(&r.Header, s)
		return r, nil, nil
	}
}

// readEntryCount consumes the two-digit subfile count and splices in the
// steps that are only knowable now: one per directory entry, then the
// scheduler that expands the collected directory into subfile steps.
func readEntryCount(b *buf.Buffer) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		s, err := b.Read(format.EntryCountLen)
		if err != nil {
			return r, nil, err
		}
		n, err := format.ParseDecimal(s)
		if err != nil {
			return r, nil, fmt.Errorf("aamva: entry count: %w: %w", err, types.ErrStructure)
		}
		r.Header.NumEntries = n

		follow := make([]step, 0, n+1)
		for i := 0; i < n; i++ {
			follow = append(follow, readDesignator(b, i))
		}
		follow = append(follow, scheduleSubfiles(b))
		return r, follow, nil
	}
}
