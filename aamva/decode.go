package aamva

import (
	"golang.org/x/text/encoding/charmap"
)

// DecodeBytes converts raw single-byte AAMVA text to UTF-8 for display.
//
// AAMVA payloads are single-byte text: ASCII for everything structural, with
// ISO 8859-1 extended characters permitted in name fields. Parsing must run
// on the raw bytes (string(raw)) so declared subfile offsets and lengths stay
// byte-accurate; DecodeBytes is for the extracted values afterwards, where
// 0xC9 should render as É rather than an invalid-UTF-8 blob.
func DecodeBytes(raw []byte) (string, error) {
	return charmap.ISO8859_1.NewDecoder().String(string(raw))
}

// DecodeValue decodes one extracted record value for display. Values are
// passed through unchanged when they are already plain ASCII.
func DecodeValue(v string) (string, error) {
	return DecodeBytes([]byte(v))
}
