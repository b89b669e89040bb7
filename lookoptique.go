// Package lookoptique extracts structured fields from French health-care
// PDF documents: client identity lines from carte vitale attestations, and
// corrective eye values from eyeglass prescriptions.
//
// Documents arrive in two shapes. Some carry a real embedded text layer,
// which is read directly. Scanned documents carry little or no embedded
// text; those are rasterized page by page and run through OCR. The
// Pipeline hides that decision behind a single call:
//
//	cfg := config.Load("")
//	p, err := lookoptique.New(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer p.Close()
//
//	text, err := p.AcquireText(ctx, "attestation.pdf")
//
// Field extraction over the acquired text lives in the extract package;
// directory-level processing and JSON persistence live in the batch
// package.
package lookoptique

import (
	"context"

	"github.com/chaymaemezouri/look-optique/config"
	"github.com/chaymaemezouri/look-optique/ocr"
	"github.com/chaymaemezouri/look-optique/pdftext"
	"github.com/chaymaemezouri/look-optique/raster"
)

// StructuralReader reads a PDF's embedded text layer, one string per page
// in page order. Implementations may fail on malformed input; the Pipeline
// treats any failure as "no usable text layer".
type StructuralReader interface {
	PageTexts(path string) ([]string, error)
}

// Rasterizer renders every page of a PDF to an image at the given DPI.
type Rasterizer interface {
	Rasterize(ctx context.Context, path string, dpi int) ([][]byte, error)
}

// Recognizer performs OCR on a single page image.
type Recognizer interface {
	Recognize(ctx context.Context, image []byte) (string, error)
	Close() error
}

// Pipeline acquires the full text of a document, preferring the embedded
// text layer and falling back to rasterization plus OCR for scanned
// documents. A Pipeline is safe for sequential reuse across documents; it
// holds no per-document state.
type Pipeline struct {
	structural StructuralReader
	rasterizer Rasterizer
	recognizer Recognizer

	opts options
}

// New builds a Pipeline wired to the real collaborators: the embedded
// text-layer reader, the poppler rasterizer, and the tesseract OCR client.
// Scalar settings come from cfg; zero values fall back to the package
// defaults, and explicit options win over both.
func New(cfg config.Config, opts ...Option) (*Pipeline, error) {
	o := defaultOptions()
	if cfg.MinTextLength > 0 {
		o.minTextLength = cfg.MinTextLength
	}
	if cfg.DPI > 0 {
		o.dpi = cfg.DPI
	}
	if cfg.Language != "" {
		o.language = cfg.Language
	}
	for _, opt := range opts {
		opt(&o)
	}

	recognizer, err := ocr.New(ocr.Options{
		Language:       o.language,
		TesseractPath:  cfg.TesseractPath,
		TessdataPrefix: cfg.TessdataPrefix,
	})
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		structural: pdftext.NewReader(),
		rasterizer: &raster.Poppler{BinDir: cfg.PopplerPath},
		recognizer: recognizer,
		opts:       o,
	}
	return p, nil
}

// FromCollaborators builds a Pipeline from already-constructed
// collaborators. This is the seam for tests and for callers that need a
// different rasterizer or OCR engine.
func FromCollaborators(s StructuralReader, r Rasterizer, rec Recognizer, opts ...Option) *Pipeline {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Pipeline{
		structural: s,
		rasterizer: r,
		recognizer: rec,
		opts:       o,
	}
}

// Close releases OCR resources. It is safe to call Close multiple times.
func (p *Pipeline) Close() error {
	if p.recognizer != nil {
		err := p.recognizer.Close()
		p.recognizer = nil
		return err
	}
	return nil
}
