package common

import "strings"

// separators are the characters NIST documents use to lay out long parameters.
// They carry no value.
var separators = strings.NewReplacer(" ", "", "\n", "")

//StripSeparators removes every space and newline from s
func StripSeparators(s string) string {
	return separators.Replace(s)
}

//IsHexDigit reports whether c is in [0-9a-fA-F]
func IsHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
