//go:build !ocr

package ocr

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"os/exec"
	"strings"
	"testing"
)

func TestDefaults(t *testing.T) {
	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	if c.binary() != "tesseract" {
		t.Errorf("expected PATH lookup by default, got %q", c.binary())
	}
	if c.opts.Language != "eng" {
		t.Errorf("expected default language eng, got %q", c.opts.Language)
	}
}

func TestArgs(t *testing.T) {
	c, err := New(Options{Language: "fra", TesseractPath: "/opt/tesseract/bin/tesseract"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	if c.binary() != "/opt/tesseract/bin/tesseract" {
		t.Errorf("configured binary not used: %q", c.binary())
	}

	got := strings.Join(c.args("/tmp/page.png"), " ")
	want := "/tmp/page.png stdout -l fra --oem 3 --psm 6"
	if got != want {
		t.Errorf("args = %q, want %q", got, want)
	}
}

func TestCloseOnNilClient(t *testing.T) {
	var c *Client
	if err := c.Close(); err != nil {
		t.Errorf("Close on nil client should not error: %v", err)
	}
}

func TestRecognize(t *testing.T) {
	if _, err := exec.LookPath("tesseract"); err != nil {
		t.Skipf("tesseract not available: %v", err)
	}

	c, err := New(Options{})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	defer c.Close()

	// A blank page: we only verify the subprocess round-trip, not
	// recognition quality.
	img := image.NewGray(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			img.Set(x, y, color.White)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)

	if _, err := c.Recognize(context.Background(), buf.Bytes()); err != nil {
		t.Errorf("Recognize failed: %v", err)
	}
}
