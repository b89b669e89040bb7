//go:build ocr

// Package ocr provides OCR (Optical Character Recognition) for the page
// images produced by the rasterizer.
//
// This implementation links against the Tesseract OCR engine via
// gosseract and is selected with the "ocr" build tag:
//
//	go build -tags ocr
//
// It requires Tesseract and its development headers to be installed. On
// macOS:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr libtesseract-dev
//
// Without the tag, recognition runs the tesseract binary as a
// subprocess instead; see ocr_exec.go.
package ocr

import (
	"context"
	"fmt"
	"strings"

	"github.com/otiai10/gosseract/v2"
)

// Client wraps a linked Tesseract engine.
type Client struct {
	client *gosseract.Client
}

// New creates an OCR client. The client should be closed when no longer
// needed to release engine resources.
func New(opts Options) (*Client, error) {
	opts = opts.withDefaults()

	client := gosseract.NewClient()
	if opts.TessdataPrefix != "" {
		client.TessdataPrefix = opts.TessdataPrefix
	}
	if err := client.SetLanguage(opts.Language); err != nil {
		client.Close()
		return nil, fmt.Errorf("set ocr language %q: %w", opts.Language, err)
	}
	// Single uniform block of text: the fields sit in sparse structured
	// blocks, not flowing prose.
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		client.Close()
		return nil, fmt.Errorf("set page segmentation mode: %w", err)
	}

	return &Client{client: client}, nil
}

// Recognize performs OCR on image data (PNG, TIFF, JPEG, etc.).
// Returns the recognized text with leading/trailing whitespace trimmed.
func (c *Client) Recognize(ctx context.Context, image []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := c.client.SetImageFromBytes(image); err != nil {
		return "", fmt.Errorf("set ocr image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("ocr failed: %w", err)
	}
	return strings.TrimSpace(text), nil
}

// Close releases OCR resources. It is safe to call on a nil client.
func (c *Client) Close() error {
	if c != nil && c.client != nil {
		err := c.client.Close()
		c.client = nil
		return err
	}
	return nil
}
