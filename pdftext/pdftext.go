// Package pdftext reads the embedded text layer of a PDF document.
//
// This is a thin wrapper over the text-layer decoder; it does not render
// anything. Scanned documents typically yield little or no text here and
// are handled by the OCR fallback upstream.
package pdftext

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// Reader extracts per-page plain text from a PDF's text layer.
type Reader struct{}

// NewReader creates a text-layer reader.
func NewReader() *Reader { return &Reader{} }

// PageTexts returns the embedded text of each page, in page order. Pages
// whose content cannot be decoded are skipped rather than failing the
// whole document. An error is returned only when the document itself
// cannot be opened or parsed at all.
func (r *Reader) PageTexts(path string) (texts []string, err error) {
	// The decoder panics on certain malformed cross-reference tables;
	// converting that to an error keeps the fallback decision upstream.
	defer func() {
		if rec := recover(); rec != nil {
			texts = nil
			err = fmt.Errorf("text layer parse: %v", rec)
		}
	}()

	f, doc, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	for i := 1; i <= doc.NumPage(); i++ {
		page := doc.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		texts = append(texts, text)
	}
	return texts, nil
}
