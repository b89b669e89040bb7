// Package raster renders PDF pages to images for OCR.
//
// Rendering is delegated to poppler's pdftoppm, located via the
// configured poppler directory. Rendered pages are converted to 8-bit
// grayscale before being handed to the OCR engine; color carries no
// information for text recognition and grayscale input keeps the engine's
// binarization predictable.
package raster

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strconv"

	xdraw "golang.org/x/image/draw"
)

// ErrPopplerNotConfigured is returned when rasterization is requested but
// no poppler location has been configured. Set POPPLER_PATH (or
// poppler_path in the config file) to the directory containing pdftoppm.
var ErrPopplerNotConfigured = errors.New("poppler path is not configured")

// Poppler rasterizes PDF pages by invoking pdftoppm.
type Poppler struct {
	// BinDir is the directory containing the poppler binaries.
	BinDir string
}

// Rasterize renders every page of the PDF at path to a grayscale PNG at
// the given DPI, in page order. The configuration check happens here, not
// at construction time: a missing poppler location only matters for
// documents that actually need rendering.
func (p *Poppler) Rasterize(ctx context.Context, path string, dpi int) ([][]byte, error) {
	if p.BinDir == "" {
		return nil, ErrPopplerNotConfigured
	}

	tmp, err := os.MkdirTemp("", "look-optique-raster-")
	if err != nil {
		return nil, fmt.Errorf("create raster workdir: %w", err)
	}
	defer os.RemoveAll(tmp)

	prefix := filepath.Join(tmp, "page")
	bin := filepath.Join(p.BinDir, "pdftoppm")

	cmd := exec.CommandContext(ctx, bin, "-r", strconv.Itoa(dpi), "-png", path, prefix)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("pdftoppm %s: %v: %s", path, err, bytes.TrimSpace(stderr.Bytes()))
	}

	// pdftoppm zero-pads page numbers to a fixed width, so lexical order
	// is page order.
	names, err := filepath.Glob(prefix + "-*.png")
	if err != nil {
		return nil, fmt.Errorf("collect rendered pages: %w", err)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, fmt.Errorf("pdftoppm produced no pages for %s", path)
	}

	pages := make([][]byte, 0, len(names))
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read rendered page %s: %w", name, err)
		}
		gray, err := Grayscale(data)
		if err != nil {
			return nil, fmt.Errorf("preprocess %s: %w", name, err)
		}
		pages = append(pages, gray)
	}
	return pages, nil
}

// Grayscale decodes a page image and re-encodes it as an 8-bit grayscale
// PNG.
func Grayscale(data []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode page image: %w", err)
	}

	bounds := src.Bounds()
	dst := image.NewGray(bounds)
	xdraw.Draw(dst, bounds, src, bounds.Min, xdraw.Src)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return nil, fmt.Errorf("encode grayscale page: %w", err)
	}
	return buf.Bytes(), nil
}
