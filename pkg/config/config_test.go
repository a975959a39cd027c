package config

import (
	"os"
	"path/filepath"
	"testing"

	perrors "github.com/matzehuels/penman/pkg/errors"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeFile(t, `
[read]
full = true
format = "json"

[write]
mark_props = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !cfg.Read.Full || cfg.Read.Reify {
		t.Errorf("Read = %+v", cfg.Read)
	}
	if cfg.Read.Format != "json" {
		t.Errorf("Read.Format = %q, want json", cfg.Read.Format)
	}
	if !cfg.Write.MarkProps {
		t.Error("Write.MarkProps = false, want true")
	}
	if cfg.Render.Format != "svg" {
		t.Errorf("Render.Format = %q, want default svg", cfg.Render.Format)
	}
}

func TestLoadMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	_, err = Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !perrors.Is(err, perrors.ErrCodeFileNotFound) {
		t.Errorf("Load(missing) error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"syntax", "[read\nfull = true"},
		{"unknown key", "[read]\nfancy = true"},
		{"wrong type", "[read]\nfull = \"yes\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if !perrors.Is(err, perrors.ErrCodeInvalidConfig) {
				t.Errorf("Load() error = %v, want INVALID_CONFIG", err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := "/tmp/xdg/penman/config.toml"; got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
