package extract

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultMinDigitRun is the minimum length of the digit-and-separator run
// accepted after the "Mon numéro" label. Shorter runs are considered
// noise. The value is empirical, inherited from field experience with
// these documents, not principled.
const DefaultMinDigitRun = 11

// nirLength is the number of digits in a complete NIR-style identifier.
const nirLength = 15

var (
	nonDigit         = regexp.MustCompile(`\D`)
	nonDigitNonSpace = regexp.MustCompile(`[^0-9 ]`)

	// The name label is matched on non-collapsed text: its capture runs
	// to the end of the line, and collapsing would not change what a
	// line contains. Non-breaking spaces still need replacing first —
	// \s does not match U+00A0.
	clientNamePattern = regexp.MustCompile(
		`(?i)Mon\s+nom\s+ou\s+celui\s+de\s+mon\s+ayant\s+droit\s*[:\-]?\s*([^\n]+)`)
)

// ClientExtractor reads the insured person's name and NIR-style number
// from a carte vitale attestation. The zero value is not usable; construct
// with NewClientExtractor.
type ClientExtractor struct {
	minDigitRun   int
	numberPattern *regexp.Regexp
}

// NewClientExtractor returns an extractor with the default minimum digit
// run.
func NewClientExtractor() *ClientExtractor {
	return NewClientExtractorMinRun(DefaultMinDigitRun)
}

// NewClientExtractorMinRun returns an extractor that accepts identifier
// runs of at least n characters (digits, spaces, hyphens) after the
// label. Values below 1 are treated as 1 (a single digit).
func NewClientExtractorMinRun(n int) *ClientExtractor {
	if n < 1 {
		n = 1
	}
	// First character must be a digit, so the run quantifier gets n-1.
	pattern := fmt.Sprintf(`(?i)Mon\s+num[eé]ro\s*[:\-]?\s*([0-9][0-9 \-]{%d,})`, n-1)
	return &ClientExtractor{
		minDigitRun:   n,
		numberPattern: regexp.MustCompile(pattern),
	}
}

// Extract pulls the client name and number out of text. Absent fields are
// nil, never an error.
func (e *ClientExtractor) Extract(file, text string) ClientRecord {
	rec := ClientRecord{File: file}

	collapsed := NormalizeWhitespace(text)

	if m := e.numberPattern.FindStringSubmatch(collapsed); m != nil {
		span := strings.TrimSpace(m[1])
		digits := nonDigit.ReplaceAllString(span, "")
		if len(digits) >= nirLength {
			// A full identifier: force the canonical grouping over the
			// first 15 digits.
			number := GroupDigitPairs(digits[:nirLength])
			rec.ClientNumber = &number
		} else {
			// Partial read: keep the span's own spacing, digits and
			// spaces only.
			number := strings.TrimSpace(nonDigitNonSpace.ReplaceAllString(span, ""))
			rec.ClientNumber = &number
		}
	}

	raw := strings.ReplaceAll(text, "\u00a0", " ")
	if m := clientNamePattern.FindStringSubmatch(raw); m != nil {
		name := strings.TrimSpace(m[1])
		rec.ClientName = &name
	}

	return rec
}
