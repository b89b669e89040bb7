// Package batch discovers PDF documents in a directory, runs the
// acquisition-plus-extraction pipeline over each one in a deterministic
// order, and persists the collected records as a JSON array.
package batch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/chaymaemezouri/look-optique/raster"
)

// ErrNoInput is returned when the input directory contains no PDF
// documents.
var ErrNoInput = errors.New("no pdf documents found")

// Acquirer yields the full text of one document.
type Acquirer interface {
	AcquireText(ctx context.Context, path string) (string, error)
}

// ExtractFunc turns a document's basename and acquired text into a
// record. Extraction never fails; missing fields are nil in the record.
type ExtractFunc[T any] func(file, text string) T

// Discover lists the PDF documents under dir, lexicographically sorted by
// path so batch output is reproducible regardless of filesystem
// enumeration order. With recursive set, subdirectories are walked too.
// A missing directory is an error; a directory with no PDFs is ErrNoInput.
func Discover(dir string, recursive bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("input directory %s: not a directory", dir)
	}

	var paths []string
	if recursive {
		err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && isPDF(path) {
				paths = append(paths, path)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
	} else {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", dir, err)
		}
		for _, entry := range entries {
			if !entry.IsDir() && isPDF(entry.Name()) {
				paths = append(paths, filepath.Join(dir, entry.Name()))
			}
		}
	}

	sort.Strings(paths)
	if len(paths) == 0 {
		return nil, fmt.Errorf("%s: %w", dir, ErrNoInput)
	}
	return paths, nil
}

func isPDF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".pdf")
}

// Run processes every PDF under dir sequentially: acquire the text,
// apply extract, collect the records in discovery order.
//
// Failures are isolated per document: a document that cannot be acquired
// is logged and skipped, and the batch carries on. The exception is a
// missing rasterizer configuration, which would fail every scanned
// document the same way and therefore aborts the run.
func Run[T any](ctx context.Context, acq Acquirer, dir string, recursive bool, extract ExtractFunc[T], logger *slog.Logger) ([]T, error) {
	paths, err := Discover(dir, recursive)
	if err != nil {
		return nil, err
	}

	records := make([]T, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file := filepath.Base(path)
		text, err := acq.AcquireText(ctx, path)
		if err != nil {
			if errors.Is(err, raster.ErrPopplerNotConfigured) {
				return nil, err
			}
			logger.Error("skipping document", "file", file, "error", err)
			continue
		}

		records = append(records, extract(file, text))
		logger.Info("processed document", "file", file)
	}
	return records, nil
}

// WriteJSON serializes records as a JSON array — four-space indentation,
// non-ASCII characters written literally — and writes the whole result to
// path in one go, replacing any previous run's output.
func WriteJSON[T any](path string, records []T) error {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode results: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
