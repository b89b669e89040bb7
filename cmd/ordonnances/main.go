// Command ordonnances processes the eyeglass prescriptions in the
// ordonnances/ directory next to the binary — including subdirectories —
// and writes the extracted records to ordonnances.json.
//
// Configuration comes from look-optique.toml (or the file named by
// LOOK_OPTIQUE_CONFIG) with POPPLER_PATH, TESSERACT_PATH and
// TESSDATA_PREFIX environment overrides.
package main

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	lookoptique "github.com/chaymaemezouri/look-optique"
	"github.com/chaymaemezouri/look-optique/batch"
	"github.com/chaymaemezouri/look-optique/config"
	"github.com/chaymaemezouri/look-optique/extract"
)

const (
	inputDirName = "ordonnances"
	outputFile   = "ordonnances.json"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	cfg := config.Load(os.Getenv("LOOK_OPTIQUE_CONFIG"))

	pipeline, err := lookoptique.New(cfg, lookoptique.WithLogger(logger))
	if err != nil {
		logger.Error("pipeline setup failed", "error", err)
		os.Exit(1)
	}
	defer pipeline.Close()

	dir, err := inputDir(inputDirName)
	if err != nil {
		logger.Error("cannot locate input directory", "error", err)
		os.Exit(1)
	}

	extractor := extract.NewOrdonnanceExtractor()
	records, err := batch.Run(context.Background(), pipeline, dir, true, extractor.Extract, logger)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	if err := batch.WriteJSON(outputFile, records); err != nil {
		logger.Error("writing results failed", "error", err)
		os.Exit(1)
	}
	logger.Info("results written", "file", outputFile, "documents", len(records))
}

// inputDir resolves the document directory sitting next to the binary.
func inputDir(name string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), name), nil
}
