package extract

import (
	"regexp"
	"strings"
)

var (
	// Title, name and parenthesized birthdate captured as one atomic
	// pattern: a title without a following date is not a person line.
	personPattern = regexp.MustCompile(
		`(?i)\b(Monsieur|Madame|Mlle|M\.|Enfant)\s+([A-Za-zÀ-ÿ' \-]+?)\s*\((\d{2}/\d{2}/\d{4})\)`)

	eyeRightPattern = regexp.MustCompile(
		`(?i)(?:Oeil|Œil)\s*Droit\s*[:\-]?\s*([+\-]?\d+(?:[.,]\d+)?)`)
	eyeLeftPattern = regexp.MustCompile(
		`(?i)(?:Oeil|Œil)\s*Gauche\s*[:\-]?\s*([+\-]?\d+(?:[.,]\d+)?)`)
)

// OrdonnanceExtractor reads the patient line and the corrective eye
// values from an eyeglass prescription.
type OrdonnanceExtractor struct{}

// NewOrdonnanceExtractor returns a prescription extractor.
func NewOrdonnanceExtractor() *OrdonnanceExtractor {
	return &OrdonnanceExtractor{}
}

// Extract pulls the prescription fields out of text. Absent fields are
// nil, never an error. Decimal values are stored with "." as the
// separator regardless of how the document printed them.
func (e *OrdonnanceExtractor) Extract(file, text string) OrdonnanceRecord {
	rec := OrdonnanceRecord{File: file}

	t := NormalizeWhitespace(text)

	if m := personPattern.FindStringSubmatch(t); m != nil {
		title := strings.TrimSpace(m[1])
		name := strings.TrimSpace(m[2])
		birthdate := strings.TrimSpace(m[3])
		rec.Title = &title
		rec.FullName = &name
		rec.Birthdate = &birthdate
	}

	if m := eyeRightPattern.FindStringSubmatch(t); m != nil {
		value := strings.ReplaceAll(m[1], ",", ".")
		rec.EyeRight = &value
	}
	if m := eyeLeftPattern.FindStringSubmatch(t); m != nil {
		value := strings.ReplaceAll(m[1], ",", ".")
		rec.EyeLeft = &value
	}

	return rec
}
