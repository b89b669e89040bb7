package lookoptique

import (
	"io"
	"log/slog"
)

const (
	// DefaultMinTextLength is the structural-text length above which the
	// embedded text layer is trusted and OCR is skipped. The comparison is
	// strict: a blob of exactly this many characters still falls back to
	// OCR. The value is an empirical cutoff separating real text layers
	// from the negligible metadata text found in scanned documents.
	DefaultMinTextLength = 30

	// DefaultDPI is the rasterization resolution for the OCR fallback.
	// 400 favours small-font legibility over runtime cost.
	DefaultDPI = 400

	// DefaultLanguage is the OCR recognition language. "eng" recognizes
	// the digit-heavy fields well; "fra" may be the better choice for the
	// French labels but is deliberately not the default.
	DefaultLanguage = "eng"
)

// options holds the scalar configuration of a Pipeline.
type options struct {
	minTextLength int
	dpi           int
	language      string
	logger        *slog.Logger
}

// defaultOptions returns the default pipeline options.
func defaultOptions() options {
	return options{
		minTextLength: DefaultMinTextLength,
		dpi:           DefaultDPI,
		language:      DefaultLanguage,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures a Pipeline.
type Option func(*options)

// WithMinTextLength overrides the structural-text acceptance threshold.
func WithMinTextLength(n int) Option {
	return func(o *options) { o.minTextLength = n }
}

// WithDPI overrides the rasterization resolution for the OCR fallback.
func WithDPI(dpi int) Option {
	return func(o *options) { o.dpi = dpi }
}

// WithLanguage overrides the OCR recognition language.
func WithLanguage(lang string) Option {
	return func(o *options) { o.language = lang }
}

// WithLogger sets the logger used for diagnostic output, such as the
// reason a document fell back to OCR. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}
