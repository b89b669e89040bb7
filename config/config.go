// Package config holds the process configuration for the extraction
// pipelines. It is built once at startup and passed by value; nothing in
// the module reads the environment after this point.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config carries the external tool locations and the tunable pipeline
// parameters. All tool locations are optional: the poppler location only
// matters when a document actually needs the OCR fallback.
type Config struct {
	// PopplerPath is the directory containing the poppler binaries
	// (pdftoppm). Required only when a scanned document triggers
	// rasterization.
	PopplerPath string `toml:"poppler_path"`

	// TesseractPath is the location of the tesseract binary. When empty
	// the binary is resolved from PATH.
	TesseractPath string `toml:"tesseract_path"`

	// TessdataPrefix is the directory holding OCR language resources
	// (e.g. fra.traineddata).
	TessdataPrefix string `toml:"tessdata_prefix"`

	// Language is the OCR recognition language.
	Language string `toml:"language"`

	// DPI is the rasterization resolution for the OCR fallback.
	DPI int `toml:"dpi"`

	// MinTextLength is the structural-text length above which the
	// embedded text layer is accepted without OCR.
	MinTextLength int `toml:"min_text_length"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Language:      "eng",
		DPI:           400,
		MinTextLength: 30,
	}
}

// Load reads config: defaults -> TOML file -> env vars (env wins).
// A missing file is not an error; defaults plus environment apply.
func Load(path string) Config {
	cfg := Default()

	if path == "" {
		path = "look-optique.toml"
	}

	if data, err := os.ReadFile(path); err == nil {
		_ = toml.Unmarshal(data, &cfg)
	}

	if v := os.Getenv("POPPLER_PATH"); v != "" {
		cfg.PopplerPath = v
	}
	if v := os.Getenv("TESSERACT_PATH"); v != "" {
		cfg.TesseractPath = v
	}
	if v := os.Getenv("TESSDATA_PREFIX"); v != "" {
		cfg.TessdataPrefix = v
	}

	return cfg
}
