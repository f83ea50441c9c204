package aamva

import (
	"fmt"

	"github.com/scantools/aamvakit/internal/buf"
	"github.com/scantools/aamvakit/internal/format"
	"github.com/scantools/aamvakit/pkg/types"
)

// readDesignator consumes one fixed-width directory entry:
// <type:2><offset:4><length:4>. The block is peeked first and only consumed
// once fully present, so the step either succeeds whole or suspends without
// partial consumption.
func readDesignator(b *buf.Buffer, idx int) step {
	return func(r types.ParseResult) (types.ParseResult, []step, error) {
		blk, err := b.Peek(format.DesignatorLen)
		if err != nil {
			return r, nil, err
		}

		typ := blk[:format.TypeLen]
		off, err := format.ParseDecimal(blk[format.TypeLen : format.TypeLen+format.OffsetLen])
		if err != nil {
			return r, nil, fmt.Errorf("aamva: designator %d (%q) offset: %w: %w", idx, typ, err, types.ErrStructure)
		}
		length, err := format.ParseDecimal(blk[format.TypeLen+format.OffsetLen:])
		if err != nil {
			return r, nil, fmt.Errorf("aamva: designator %d (%q) length: %w: %w", idx, typ, err, types.ErrStructure)
		}

		// The peek above proved the block is present.
		if _, err := b.Read(format.DesignatorLen); err != nil {
			return r, nil, err
		}

		r.Designators = append(r.Designators, types.SubfileDesignator{
			Type:   typ,
			Offset: off,
			Length: length,
		})
		return r, nil, nil
	}
}
