// Package types defines the public data model and error taxonomy for the
// AAMVA DL/ID payload parser.
//
// The types here are pure data: a Header, the SubfileDesignator directory,
// per-subfile record maps, and the aggregate ParseResult. Errors carry a
// stable ErrKind so callers can distinguish "feed me more input"
// (ErrIncomplete) from terminal header or structural failures without
// matching on message text.
package types
