package extract

import (
	"regexp"
	"strings"
)

var horizontalWhitespace = regexp.MustCompile(`[ \t]+`)

// NormalizeWhitespace prepares OCR output for pattern matching: the
// non-breaking spaces OCR tends to emit become ordinary spaces, and runs
// of spaces and tabs collapse to a single space. Newlines are preserved —
// the name pattern is anchored to a single line and must not cross lines.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return horizontalWhitespace.ReplaceAllString(s, " ")
}

// GroupDigitPairs formats a digit string the way a NIR is customarily
// displayed: the first digit alone, then the remainder in consecutive
// pairs, joined by single spaces.
func GroupDigitPairs(digits string) string {
	if digits == "" {
		return ""
	}
	groups := []string{digits[:1]}
	for i := 1; i < len(digits); i += 2 {
		end := i + 2
		if end > len(digits) {
			end = len(digits)
		}
		groups = append(groups, digits[i:end])
	}
	return strings.Join(groups, " ")
}
