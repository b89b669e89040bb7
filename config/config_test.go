package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()
	if cfg.Language != "eng" {
		t.Errorf("expected eng, got %s", cfg.Language)
	}
	if cfg.DPI != 400 {
		t.Errorf("expected 400 dpi, got %d", cfg.DPI)
	}
	if cfg.MinTextLength != 30 {
		t.Errorf("expected threshold 30, got %d", cfg.MinTextLength)
	}
	if cfg.PopplerPath != "" {
		t.Errorf("poppler path should default empty, got %s", cfg.PopplerPath)
	}
}

func TestLoadFromTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte(`
poppler_path = "/opt/poppler/bin"
language = "fra"
dpi = 300
`), 0644)

	cfg := Load(path)
	if cfg.PopplerPath != "/opt/poppler/bin" {
		t.Errorf("expected /opt/poppler/bin, got %s", cfg.PopplerPath)
	}
	if cfg.Language != "fra" {
		t.Errorf("expected fra, got %s", cfg.Language)
	}
	if cfg.DPI != 300 {
		t.Errorf("expected 300, got %d", cfg.DPI)
	}
	// Defaults preserved
	if cfg.MinTextLength != 30 {
		t.Errorf("default threshold should be preserved, got %d", cfg.MinTextLength)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("POPPLER_PATH", "/env/poppler")
	t.Setenv("TESSERACT_PATH", "/env/tesseract")
	t.Setenv("TESSDATA_PREFIX", "/env/tessdata")

	cfg := Load("/nonexistent/path.toml")
	if cfg.PopplerPath != "/env/poppler" {
		t.Errorf("expected /env/poppler, got %s", cfg.PopplerPath)
	}
	if cfg.TesseractPath != "/env/tesseract" {
		t.Errorf("expected /env/tesseract, got %s", cfg.TesseractPath)
	}
	if cfg.TessdataPrefix != "/env/tessdata" {
		t.Errorf("expected /env/tessdata, got %s", cfg.TessdataPrefix)
	}
}

func TestEnvWinsOverFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.toml")
	os.WriteFile(path, []byte(`poppler_path = "/file/poppler"`), 0644)
	t.Setenv("POPPLER_PATH", "/env/poppler")

	cfg := Load(path)
	if cfg.PopplerPath != "/env/poppler" {
		t.Errorf("env should win over file, got %s", cfg.PopplerPath)
	}
}
