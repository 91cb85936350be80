package utils

import (
	"regexp"
	"strings"
)

// ansiPattern matches CSI and OSC terminal escape sequences.
var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

// StripANSI removes terminal escape sequences, e.g. from a rendered title.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// SanitizeLog makes a message safe for a single log line: escape sequences
// are removed and remaining control characters other than tab are replaced
// by spaces.
func SanitizeLog(message string) string {
	message = StripANSI(message)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\t':
			return r
		case r < 0x20 || r == 0x7f:
			return ' '
		}
		return r
	}, message)
}
