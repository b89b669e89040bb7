//go:build !ocr

// Package ocr provides OCR (Optical Character Recognition) for the page
// images produced by the rasterizer.
//
// This is the default implementation: it runs the tesseract binary as a
// subprocess, so no cgo or development headers are needed — only a
// tesseract installation, located via Options.TesseractPath or PATH.
// Build with the "ocr" tag to link against libtesseract directly instead.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Client drives the tesseract binary.
type Client struct {
	opts Options
}

// New creates an OCR client. No engine state is held between calls, so
// Close is a no-op for this implementation.
func New(opts Options) (*Client, error) {
	return &Client{opts: opts.withDefaults()}, nil
}

// binary returns the tesseract executable to run.
func (c *Client) binary() string {
	if c.opts.TesseractPath != "" {
		return c.opts.TesseractPath
	}
	return "tesseract"
}

// args builds the tesseract invocation for one page image. Engine mode 3
// (default, LSTM preferred) and page segmentation mode 6 (single uniform
// block) suit the sparse structured blocks these documents carry.
func (c *Client) args(imagePath string) []string {
	return []string{imagePath, "stdout", "-l", c.opts.Language, "--oem", "3", "--psm", "6"}
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) Recognize(ctx context.Context, image []byte) (string, error) {
	tmp, err := os.CreateTemp("", "look-optique-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("stage ocr image: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(image); err != nil {
		tmp.Close()
		return "", fmt.Errorf("stage ocr image: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("stage ocr image: %w", err)
	}

	cmd := exec.CommandContext(ctx, c.binary(), c.args(tmp.Name())...)
	if c.opts.TessdataPrefix != "" {
		cmd.Env = append(os.Environ(), "TESSDATA_PREFIX="+c.opts.TessdataPrefix)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %v: %s", err, bytes.TrimSpace(stderr.Bytes()))
	}

	return strings.TrimSpace(stdout.String()), nil
}

// Close is a no-op for the subprocess implementation. It is safe to call
// on a nil client.
func (c *Client) Close() error { return nil }
