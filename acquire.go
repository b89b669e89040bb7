package lookoptique

import (
	"context"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// AcquireText returns the full text of the document at path as a single
// blob. The embedded text layer is tried first; if it is missing, broken,
// or too short to be a real text layer, every page is rasterized and run
// through OCR instead. The result is always one of the two, never a merge.
//
// An unreadable path is reported as an error. A missing rasterizer
// configuration is only an error when the OCR fallback is actually
// needed; text-layer documents acquire fine without it.
func (p *Pipeline) AcquireText(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("document %s: %w", path, err)
	}

	if text, ok := p.attemptStructural(path); ok {
		return norm.NFC.String(text), nil
	}

	images, err := p.rasterizer.Rasterize(ctx, path, p.opts.dpi)
	if err != nil {
		return "", fmt.Errorf("rasterize %s: %w", path, err)
	}

	pageTexts := make([]string, 0, len(images))
	for i, img := range images {
		text, err := p.recognizer.Recognize(ctx, img)
		if err != nil {
			return "", fmt.Errorf("ocr page %d of %s: %w", i+1, path, err)
		}
		pageTexts = append(pageTexts, text)
	}

	return norm.NFC.String(strings.Join(pageTexts, "\n")), nil
}

// attemptStructural reads the embedded text layer and decides whether it
// is usable. It never fails: malformed structure, unsupported encodings,
// and decode errors all report ok == false, which sends the caller down
// the OCR path. A partially successful low-confidence read is
// indistinguishable from total failure at this layer, so both are treated
// the same.
func (p *Pipeline) attemptStructural(path string) (text string, ok bool) {
	pageTexts, err := p.structural.PageTexts(path)
	if err != nil {
		p.opts.logger.Debug("text layer unreadable, falling back to OCR",
			"file", path, "error", err)
		return "", false
	}

	text = strings.TrimSpace(strings.Join(pageTexts, "\n"))
	if utf8.RuneCountInString(text) <= p.opts.minTextLength {
		p.opts.logger.Debug("text layer below threshold, falling back to OCR",
			"file", path, "chars", utf8.RuneCountInString(text))
		return "", false
	}
	return text, true
}
