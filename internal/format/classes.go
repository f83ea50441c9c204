package format

import "fmt"

// Character-class tests and strict numeric parsing for fixed-width fields.

// IsSeparator reports whether c is acceptable as one of the three header
// separator characters. Letters, digits, and the space character are
// forbidden because they collide with field content.
//
// Example:
//
//	IsSeparator('\n')   = true
//	IsSeparator(0x1E)   = true
//	IsSeparator('A')    = false
//	IsSeparator(' ')    = false
func IsSeparator(c byte) bool {
	switch {
	case c >= 'A' && c <= 'Z':
		return false
	case c >= 'a' && c <= 'z':
		return false
	case c >= '0' && c <= '9':
		return false
	case c == ' ':
		return false
	}
	return true
}

// IsElementID reports whether s is a well-formed record key: exactly three
// uppercase ASCII letters.
func IsElementID(s string) bool {
	if len(s) != ElementIDLen {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// ParseDecimal parses a fixed-width field as a non-negative decimal integer.
// Every character must be an ASCII digit; strconv.Atoi is deliberately not
// used because it accepts signs and leading whitespace the wire format
// forbids.
func ParseDecimal(s string) (int, error) {
	if len(s) == 0 {
		return 0, fmt.Errorf("format: empty numeric field")
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("format: non-numeric character %q in field %q", c, s)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}
