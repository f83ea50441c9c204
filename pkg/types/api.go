package types

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindIncomplete ErrKind = iota // more input required; not a failure
	ErrKindHeader                    // bad lead-in marker or separator character
	ErrKindStructure                 // malformed literal, count, offset, length, or record key
	ErrKindState                     // invalid operation for current parser state
)

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Sentinels commonly returned by implementations. Detailed errors wrap these
// with fmt.Errorf("...: %w", sentinel) so errors.Is keeps working.
var (
	// ErrIncomplete indicates the payload ended mid-field and parsing is
	// suspended until more input is appended. It is a signal, not a failure.
	ErrIncomplete = &Error{Kind: ErrKindIncomplete, Msg: "incomplete payload, more input required"}
	// ErrHeader indicates the lead-in marker or a separator character is invalid.
	ErrHeader = &Error{Kind: ErrKindHeader, Msg: "invalid header"}
	// ErrStructure indicates the payload violates the fixed AAMVA layout.
	ErrStructure = &Error{Kind: ErrKindStructure, Msg: "malformed payload"}
	// ErrFailed indicates the parser already hit a terminal error and must be
	// discarded and recreated.
	ErrFailed = &Error{Kind: ErrKindState, Msg: "parser in failed state"}
)

// -----------------------------------------------------------------------------
// Data Model
// -----------------------------------------------------------------------------

// Header holds the fixed-layout AAMVA compliance header.
//
// The three separator bytes are taken verbatim from the payload and are
// guaranteed not to be letters, digits, or spaces. All string fields have
// fixed, already-validated lengths by the time a Header is visible to callers.
type Header struct {
	DataElementSeparator byte   // delimiter between records within a subfile
	RecordSeparator      byte   // declared in the header, unused by parsing
	SegmentTerminator    byte   // delimiter ending a subfile's record block
	IIN                  string // issuer identification number, 6 chars
	AAMVAVersion         string // 2 chars
	JurisdictionVersion  string // 2 chars
	NumEntries           int    // number of subfile designators that follow
}

// SubfileDesignator is one directory entry pointing at a subfile's byte range.
//
// Offset and Length are validated as decimal integers when the directory is
// read; whether the range actually exists in the payload is enforced lazily
// when the subfile itself is parsed.
type SubfileDesignator struct {
	Type   string // 2-char code, e.g. "DL", "ID", "ZV"
	Offset int    // absolute position into the full payload
	Length int    // character count of the subfile block
}

// SubfileData maps a 3-letter uppercase element ID to its raw string value.
//
// Element IDs within one subfile are expected to be unique. When a payload
// repeats an ID, the last occurrence wins; the parser does not reject the
// duplicate.
type SubfileData map[string]string

// ParseResult is the fully-parsed payload.
//
// Designators preserve directory order. Subfiles holds records only for
// recognized subfile types ("DL" and "ID"); unrecognized types appear in
// Designators, have their byte range validated, and are absent from Subfiles.
type ParseResult struct {
	Header      Header
	Designators []SubfileDesignator
	Subfiles    map[string]SubfileData
}
