package ocr

// Options configures an OCR client. The zero value is usable: language
// defaults to "eng" and the tesseract binary is resolved from PATH.
type Options struct {
	// Language is the recognition language ("eng", "fra", ...). Multiple
	// languages can be combined with "+".
	Language string

	// TesseractPath is the location of the tesseract binary. Only used by
	// the subprocess implementation; the linked (cgo) implementation
	// talks to libtesseract directly.
	TesseractPath string

	// TessdataPrefix is the directory holding the traineddata language
	// resources. Empty means the engine's compiled-in default.
	TessdataPrefix string
}

// withDefaults fills unset fields.
func (o Options) withDefaults() Options {
	if o.Language == "" {
		o.Language = "eng"
	}
	return o
}
