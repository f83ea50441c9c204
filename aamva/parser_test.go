package aamva

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scantools/aamvakit/pkg/types"
)

// sub is one subfile block for buildPayload. body is the full block content
// starting with the subfile's own type marker and ending in the segment
// terminator, e.g. "DLDAQT64235789\nDCSSAMPLE\r".
type sub struct {
	typ  string
	body string
}

// buildPayload assembles a payload with correct directory offsets so tests
// never hand-maintain them.
func buildPayload(sep1, sep2, sep3 byte, iin, ver, jur string, subs []sub) string {
	const headerLen = 1 + 3 + len("ANSI ") + 6 + 2 + 2 + 2
	off := headerLen + 10*len(subs)

	var dir, body strings.Builder
	for _, s := range subs {
		fmt.Fprintf(&dir, "%s%04d%04d", s.typ, off, len(s.body))
		body.WriteString(s.body)
		off += len(s.body)
	}
	return fmt.Sprintf("@%c%c%cANSI %s%s%s%02d%s%s",
		sep1, sep2, sep3, iin, ver, jur, len(subs), dir.String(), body.String())
}

// samplePayload is the canonical two-subfile payload used across tests:
// separators \n, \x1E, \r; a DL subfile with records and a jurisdiction ZV
// subfile that must stay unparsed.
func samplePayload() string {
	return buildPayload('\n', 0x1E, '\r', "636000", "11", "00", []sub{
		{typ: "DL", body: "DLDAQT64235789\nDCSSAMPLE\nDACMICHAEL\nDADM\nDBB01091985\r"},
		{typ: "ZV", body: "ZVZVA01\r"},
	})
}

func requireKind(t *testing.T, err error, kind types.ErrKind) {
	t.Helper()
	var te *types.Error
	require.ErrorAs(t, err, &te)
	require.Equal(t, kind, te.Kind)
}

func TestParse_EndToEnd(t *testing.T) {
	result, err := Parse(samplePayload())
	require.NoError(t, err)

	h := result.Header
	assert.Equal(t, byte('\n'), h.DataElementSeparator)
	assert.Equal(t, byte(0x1E), h.RecordSeparator)
	assert.Equal(t, byte('\r'), h.SegmentTerminator)
	assert.Equal(t, "636000", h.IIN)
	assert.Equal(t, "11", h.AAMVAVersion)
	assert.Equal(t, "00", h.JurisdictionVersion)
	assert.Equal(t, 2, h.NumEntries)

	require.Len(t, result.Designators, 2)
	assert.Equal(t, "DL", result.Designators[0].Type)
	assert.Equal(t, "ZV", result.Designators[1].Type)
	assert.Equal(t, 41, result.Designators[0].Offset)

	dl := result.Subfiles["DL"]
	require.NotNil(t, dl)
	assert.Equal(t, "T64235789", dl["DAQ"])
	assert.Equal(t, "SAMPLE", dl["DCS"])
	assert.Equal(t, "MICHAEL", dl["DAC"])
	assert.Equal(t, "M", dl["DAD"])
	assert.Equal(t, "01091985", dl["DBB"])

	// Unrecognized types never show up in the subfile map.
	_, ok := result.Subfiles["ZV"]
	assert.False(t, ok)
}

func TestParser_SingleAppend(t *testing.T) {
	p := New("")
	waiting := p.Append(samplePayload())
	require.False(t, waiting)
	require.True(t, p.Complete())
	require.NoError(t, p.Err())

	result, ok := p.Result()
	require.True(t, ok)
	assert.Equal(t, "636000", result.Header.IIN)
}

// Feeding the payload split at every possible point must yield the same
// result as one shot, including splits inside separators, numeric fields,
// and record values.
func TestParser_IdempotentResumption(t *testing.T) {
	payload := samplePayload()
	want, err := Parse(payload)
	require.NoError(t, err)

	for i := 0; i <= len(payload); i++ {
		p := New(payload[:i])
		err := p.Parse()
		if i < len(payload) {
			require.ErrorIs(t, err, types.ErrIncomplete, "prefix %d", i)
			require.False(t, p.Complete())
			_, ok := p.Result()
			require.False(t, ok, "prefix %d exposed a result", i)
		}
		if i == len(payload) {
			require.NoError(t, err)
		} else {
			require.False(t, p.Append(payload[i:]), "split %d", i)
		}
		got, ok := p.Result()
		require.True(t, ok, "split %d", i)
		require.Equal(t, want, got, "split %d", i)
	}
}

func TestParser_CharacterAtATime(t *testing.T) {
	payload := samplePayload()
	want, err := Parse(payload)
	require.NoError(t, err)

	p := New("")
	for i := 0; i < len(payload); i++ {
		waiting := p.Append(payload[i : i+1])
		if i < len(payload)-1 {
			require.True(t, waiting, "char %d", i)
		} else {
			require.False(t, waiting)
		}
	}
	got, ok := p.Result()
	require.True(t, ok)
	require.Equal(t, want, got)
}

// A header declaring N entries must wait for exactly N designator blocks:
// ending early is an incomplete condition, never a structural error.
func TestParser_ExactEntryCount(t *testing.T) {
	payload := samplePayload()
	const headerLen = 21

	// Header plus one full designator out of two.
	p := New(payload[:headerLen+10])
	err := p.Parse()
	require.ErrorIs(t, err, types.ErrIncomplete)

	// Half a designator more: still incomplete.
	require.True(t, p.Append(payload[headerLen+10:headerLen+15]))

	// The rest completes it.
	require.False(t, p.Append(payload[headerLen+15:]))
	require.True(t, p.Complete())
}

func TestParser_ZeroEntries(t *testing.T) {
	payload := buildPayload('\n', 0x1E, '\r', "636000", "10", "01", nil)
	result, err := Parse(payload)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Header.NumEntries)
	assert.Empty(t, result.Designators)
	assert.Empty(t, result.Subfiles)
}

func TestParser_BadLeadIn(t *testing.T) {
	_, err := Parse("#" + samplePayload()[1:])
	requireKind(t, err, types.ErrKindHeader)
	require.ErrorIs(t, err, types.ErrHeader)
}

// Any separator drawn from [A-Za-z0-9 ] must raise a header error at the
// exact character read.
func TestParser_SeparatorRejection(t *testing.T) {
	for _, bad := range []byte{'A', 'z', '5', ' '} {
		for pos := 1; pos <= 3; pos++ {
			payload := []byte(samplePayload())
			payload[pos] = bad
			_, err := Parse(string(payload))
			requireKind(t, err, types.ErrKindHeader)
			require.ErrorIs(t, err, types.ErrHeader, "separator %d = %q", pos, bad)
		}
	}
}

// The classic malformed capture: spaces where separators belong. This is a
// header error, not a generic structural one.
func TestParser_SpaceSeparators(t *testing.T) {
	_, err := Parse("@  ANSI 636000110000")
	requireKind(t, err, types.ErrKindHeader)
}

func TestParser_BadFileType(t *testing.T) {
	payload := strings.Replace(samplePayload(), "ANSI ", "AAMVA", 1)
	_, err := Parse(payload)
	requireKind(t, err, types.ErrKindStructure)
	require.NotErrorIs(t, err, types.ErrHeader)
}

func TestParser_NonNumericEntryCount(t *testing.T) {
	payload := samplePayload()
	_, err := Parse(payload[:19] + "XX" + payload[21:])
	requireKind(t, err, types.ErrKindStructure)
}

func TestParser_NonNumericDesignatorFields(t *testing.T) {
	const headerLen = 21
	payload := samplePayload()

	// Corrupt the first designator's offset.
	bad := payload[:headerLen+2] + "00x1" + payload[headerLen+6:]
	_, err := Parse(bad)
	requireKind(t, err, types.ErrKindStructure)

	// And its length.
	bad = payload[:headerLen+6] + "27.7" + payload[headerLen+10:]
	_, err = Parse(bad)
	requireKind(t, err, types.ErrKindStructure)
}

// Terminal errors are sticky: the instance cannot make further progress and
// must be discarded.
func TestParser_TerminalErrorSticky(t *testing.T) {
	p := New("#bogus")
	err := p.Parse()
	requireKind(t, err, types.ErrKindHeader)

	require.False(t, p.Append(samplePayload()))
	require.ErrorIs(t, p.Parse(), types.ErrFailed)
	require.False(t, p.Complete())
	_, ok := p.Result()
	require.False(t, ok)
}

func TestParser_AppendAfterComplete(t *testing.T) {
	p := New(samplePayload())
	require.NoError(t, p.Parse())
	require.False(t, p.Append("trailing"))

	// The late append is ignored, not buffered.
	require.Equal(t, samplePayload(), p.Buffer())
}

func TestParser_BufferAccessor(t *testing.T) {
	p := New("@\n")
	p.Append("\x1e\rANSI")
	require.Equal(t, "@\n\x1e\rANSI", p.Buffer())
}
