package buf

import (
	"errors"
	"fmt"
)

// ErrShortBuffer indicates a read needed more characters than are buffered.
// It signals "wait for more input", not a malformed payload.
var ErrShortBuffer = errors.New("buf: short buffer")

// Buffer is an append-only character buffer with a read cursor.
//
// Characters are never physically removed; reads only advance the cursor.
// That makes Append safe at any time, including mid-parse, because absolute
// offsets computed earlier remain valid positions into the same growing
// buffer. A Buffer is not safe for concurrent use.
type Buffer struct {
	data []byte
	pos  int
}

// New returns a Buffer primed with initial, which may be empty.
func New(initial string) *Buffer {
	return &Buffer{data: []byte(initial)}
}

// Append concatenates data onto the buffer. It never fails and does not
// move the cursor.
func (b *Buffer) Append(data string) {
	b.data = append(b.data, data...)
}

// Peek returns the next n characters without advancing the cursor.
func (b *Buffer) Peek(n int) (string, error) {
	if err := b.need(b.pos, n); err != nil {
		return "", err
	}
	return string(b.data[b.pos : b.pos+n]), nil
}

// Read returns the next n characters and advances the cursor past them.
// On ErrShortBuffer the cursor does not move.
func (b *Buffer) Read(n int) (string, error) {
	s, err := b.Peek(n)
	if err != nil {
		return "", err
	}
	b.pos += n
	return s, nil
}

// Window returns the n characters starting at absolute offset off,
// independent of the cursor. The cursor does not move. Window is how
// subfile byte ranges are snapshotted after their (offset, length)
// designator has been read.
func (b *Buffer) Window(off, n int) (string, error) {
	if off < 0 || n < 0 {
		return "", fmt.Errorf("buf: bad window [%d:+%d]", off, n)
	}
	if err := b.need(off, n); err != nil {
		return "", err
	}
	return string(b.data[off : off+n]), nil
}

// Remaining reports how many unread characters follow the cursor.
func (b *Buffer) Remaining() int { return len(b.data) - b.pos }

// Len reports the total number of buffered characters, read or not.
func (b *Buffer) Len() int { return len(b.data) }

// Pos reports the cursor position.
func (b *Buffer) Pos() int { return b.pos }

// String returns everything buffered so far, including consumed characters.
func (b *Buffer) String() string { return string(b.data) }

func (b *Buffer) need(off, n int) error {
	if off+n > len(b.data) {
		return fmt.Errorf("buf: need %d at %d, have %d: %w", n, off, len(b.data), ErrShortBuffer)
	}
	return nil
}
