package aamva

import (
	"errors"
	"fmt"

	"github.com/scantools/aamvakit/internal/buf"
	"github.com/scantools/aamvakit/pkg/types"
)

// step executes one unit of parsing against the shared buffer. It receives
// the last fully-committed result and, on success, returns the updated result
// plus any follow-up steps to run in its place (e.g. one designator step per
// directory entry once the entry count is known).
//
// A step must be re-runnable: it either fully succeeds, or fails having made
// no change beyond buffer reads that themselves failed without consuming.
// Partial mutation of the result before a short-buffer error would corrupt
// resumption.
type step func(r types.ParseResult) (types.ParseResult, []step, error)

// Parser consumes a growing AAMVA payload and produces a types.ParseResult.
//
// A Parser owns its buffer, its pending step queue, and the in-progress
// result. It is not safe for concurrent use; callers must serialize Append
// and Parse on a given instance. Abandoning a capture is simply dropping the
// Parser — there is nothing to close.
type Parser struct {
	buf    *buf.Buffer
	steps  []step
	result types.ParseResult
	done   bool
	err    error // terminal error; sticky
}

// New returns a Parser primed with initial, which may be empty. No parsing
// happens until Parse or Append is called.
func New(initial string) *Parser {
	p := &Parser{buf: buf.New(initial)}
	p.steps = headerSteps(p.buf)
	return p
}

// Parse drives the step queue until the payload is fully parsed, the buffer
// runs out mid-field, or a terminal error occurs.
//
// The return value is nil once parsing has completed, an error satisfying
// errors.Is(err, types.ErrIncomplete) when more input is needed, and a
// header or structural error otherwise. Terminal errors are sticky: every
// later call returns the same error wrapped in types.ErrFailed.
func (p *Parser) Parse() error {
	if p.err != nil {
		return fmt.Errorf("%w: %w", types.ErrFailed, p.err)
	}
	for len(p.steps) > 0 {
		next, follow, err := p.steps[0](p.result)
		if err != nil {
			if errors.Is(err, buf.ErrShortBuffer) {
				// The failing step stays first in the queue and the last
				// committed result is kept, so a later Parse re-runs it
				// from the same cursor position.
				return fmt.Errorf("%w: %w", types.ErrIncomplete, err)
			}
			p.err = err
			p.steps = nil
			return err
		}
		p.result = next
		p.steps = append(follow, p.steps[1:]...)
	}
	p.done = true
	return nil
}

// Append feeds more characters and drives parsing as far as possible.
// It reports whether the parser is still awaiting input: true means feed
// more, false means parsing has concluded — check Result and Err to learn
// which way.
func (p *Parser) Append(data string) bool {
	if p.done || p.err != nil {
		return false
	}
	p.buf.Append(data)
	err := p.Parse()
	return errors.Is(err, types.ErrIncomplete)
}

// Buffer returns everything fed to the parser so far, consumed or not.
func (p *Parser) Buffer() string { return p.buf.String() }

// Complete reports whether the payload parsed to the end.
func (p *Parser) Complete() bool { return p.done }

// Err returns the terminal error, or nil while parsing is ongoing or after
// successful completion. Use errors.As with *types.Error to branch on kind.
func (p *Parser) Err() error { return p.err }

// Result returns the final ParseResult. ok is false until parsing completes;
// the zero ParseResult returned before then carries no meaning.
func (p *Parser) Result() (types.ParseResult, bool) {
	if !p.done {
		return types.ParseResult{}, false
	}
	return p.result, true
}

// Parse parses a complete payload in one call. It is shorthand for feeding
// input to a fresh Parser and reading the result; a payload that ends
// mid-field yields an error satisfying errors.Is(err, types.ErrIncomplete).
func Parse(input string) (types.ParseResult, error) {
	p := New(input)
	if err := p.Parse(); err != nil {
		return types.ParseResult{}, err
	}
	r, _ := p.Result()
	return r, nil
}
