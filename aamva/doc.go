// Package aamva parses the AAMVA DL/ID barcode payload — the text encoded on
// the PDF417 barcode of North American driver's licenses and ID cards — from
// input that may arrive incrementally, a few characters at a time, as happens
// when a barcode scanner emulates keyboard input.
//
// # Overview
//
// The parser is a resumable state machine over a growing buffer. Input is fed
// with Append; at any point the buffer may end mid-field, in which case the
// parser suspends without losing already-validated progress and resumes
// transparently on the next Append. Already-consumed characters are never
// re-validated or re-scanned, and intermediate state is never visible to
// callers: the ParseResult only exists once parsing has fully completed.
//
// # Payload Structure
//
// An AAMVA payload consists of:
//
//	@ <sep1> <sep2> <sep3> ANSI  <iin:6><ver:2><jur:2><entries:2>
//	[ <type:2><offset:4><length:4> ] * entries
//	<subfile blocks at their declared offsets>
//
// sep1 is the data element separator, sep2 the record separator (declared but
// otherwise unused), sep3 the segment terminator. Each subfile block is a run
// of <id:3><value> records delimited by sep1 and closed by sep3. Subfile
// types "DL" and "ID" are parsed into records; other types only have their
// byte range checked.
//
// # Usage
//
// One-shot, when the whole payload is at hand:
//
//	result, err := aamva.Parse(payload)
//
// Incremental, driven by a scanner wedge delivering keystrokes:
//
//	p := aamva.New("")
//	for ch := range keystrokes {
//	    if !p.Append(string(ch)) {
//	        break // complete or failed
//	    }
//	}
//	if result, ok := p.Result(); ok {
//	    fmt.Println(result.Subfiles["DL"]["DAQ"])
//	}
//
// Errors carry a types.ErrKind: types.ErrIncomplete means "wait for more
// input" and is the expected mid-capture condition; header and structural
// errors are terminal, and the parser instance must be discarded.
package aamva
