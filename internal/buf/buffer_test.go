package buf

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuffer_PeekDoesNotAdvance(t *testing.T) {
	b := New("abcdef")

	s, err := b.Peek(3)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
	require.Equal(t, 0, b.Pos())
	require.Equal(t, 6, b.Remaining())

	// Peeking again yields the same characters.
	s, err = b.Peek(3)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestBuffer_ReadAdvances(t *testing.T) {
	b := New("abcdef")

	s, err := b.Read(2)
	require.NoError(t, err)
	require.Equal(t, "ab", s)
	require.Equal(t, 2, b.Pos())
	require.Equal(t, 4, b.Remaining())

	s, err = b.Read(4)
	require.NoError(t, err)
	require.Equal(t, "cdef", s)
	require.Equal(t, 0, b.Remaining())
}

func TestBuffer_ShortBuffer(t *testing.T) {
	b := New("ab")

	_, err := b.Peek(3)
	require.ErrorIs(t, err, ErrShortBuffer)

	// A failed read must not move the cursor.
	_, err = b.Read(3)
	require.ErrorIs(t, err, ErrShortBuffer)
	require.Equal(t, 0, b.Pos())

	// Appending makes the same read succeed.
	b.Append("c")
	s, err := b.Read(3)
	require.NoError(t, err)
	require.Equal(t, "abc", s)
}

func TestBuffer_AppendPreservesCursor(t *testing.T) {
	b := New("abc")
	_, err := b.Read(2)
	require.NoError(t, err)

	b.Append("def")
	require.Equal(t, 2, b.Pos())
	require.Equal(t, 4, b.Remaining())
	require.Equal(t, "abcdef", b.String())
}

func TestBuffer_Window(t *testing.T) {
	b := New("0123456789")

	// Window ignores the cursor entirely.
	_, err := b.Read(8)
	require.NoError(t, err)

	s, err := b.Window(2, 4)
	require.NoError(t, err)
	require.Equal(t, "2345", s)
	require.Equal(t, 8, b.Pos())

	// Beyond the buffered length it reports short buffer, never panics.
	_, err = b.Window(8, 4)
	require.ErrorIs(t, err, ErrShortBuffer)

	// Stable across appends: the same window yields the same characters.
	b.Append("abcd")
	s, err = b.Window(2, 4)
	require.NoError(t, err)
	require.Equal(t, "2345", s)

	s, err = b.Window(8, 4)
	require.NoError(t, err)
	require.Equal(t, "89ab", s)
}

func TestBuffer_WindowBadArgs(t *testing.T) {
	b := New("abc")

	_, err := b.Window(-1, 2)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrShortBuffer)

	_, err = b.Window(0, -1)
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrShortBuffer)
}

func TestBuffer_Empty(t *testing.T) {
	b := New("")
	require.Equal(t, 0, b.Remaining())

	s, err := b.Peek(0)
	require.NoError(t, err)
	require.Equal(t, "", s)

	_, err = b.Read(1)
	require.ErrorIs(t, err, ErrShortBuffer)
}
