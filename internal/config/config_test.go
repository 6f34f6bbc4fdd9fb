package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

// isolate points HOME and the working directory at empty temp dirs so the
// search order only sees files the test creates.
func isolate(t *testing.T) (home, work string) {
	t.Helper()
	home = t.TempDir()
	work = t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)
	return home, work
}

func TestEmbeddedDefaultMatchesDefault(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded default = %+v, expected %+v", cfg, Default())
	}
}

func TestLoadCustomPath(t *testing.T) {
	isolate(t)
	path := writeFile(t, t.TempDir(), "custom.yaml", "audio:\n  enabled: false\n  volume: 0.3\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Audio.Enabled || cfg.Audio.Volume != 0.3 {
		t.Errorf("audio = %+v, expected values from file", cfg.Audio)
	}
	// Keys absent from the file keep their defaults.
	if cfg.Input != Default().Input {
		t.Errorf("input = %+v, expected defaults", cfg.Input)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	isolate(t)

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom file should fail")
	}

	bad := writeFile(t, t.TempDir(), "bad.yaml", "display: [1, 2\n")
	if _, err := Load(bad); err == nil {
		t.Error("Load() with malformed YAML should fail")
	}

	invalid := writeFile(t, t.TempDir(), "invalid.yaml", "input:\n  cell_pixels: -1\n")
	_, err := Load(invalid)
	if err == nil || !strings.Contains(err.Error(), "cell_pixels") {
		t.Errorf("Load() with invalid values = %v, expected a cell_pixels error", err)
	}
}

func TestSearchOrder(t *testing.T) {
	home, work := isolate(t)

	writeFile(t, work, "configs/blockfall.yaml", "display:\n  fps: 30\n")
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 30 {
		t.Errorf("fps = %d, expected local configs/ file to apply", cfg.Display.FPS)
	}

	writeFile(t, home, ".blockfall/configs/blockfall.yaml", "display:\n  fps: 45\n")
	cfg, err = Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != 45 {
		t.Errorf("fps = %d, expected user file to win over configs/", cfg.Display.FPS)
	}
}

func TestMalformedUserFileIsSkipped(t *testing.T) {
	home, _ := isolate(t)
	writeFile(t, home, ".blockfall/configs/blockfall.yaml", "display: {fps: nope}\n")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Display.FPS != Default().Display.FPS {
		t.Errorf("fps = %d, expected default after skipping a bad file", cfg.Display.FPS)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"zero fps", func(c *Config) { c.Display.FPS = 0 }, "display.fps"},
		{"huge fps", func(c *Config) { c.Display.FPS = 1000 }, "display.fps"},
		{"zero column", func(c *Config) { c.Input.ColumnPixels = 0 }, "column_pixels"},
		{"zero row", func(c *Config) { c.Input.RowPixels = 0 }, "row_pixels"},
		{"loud", func(c *Config) { c.Audio.Volume = 1.5 }, "audio.volume"},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.field) {
				t.Errorf("Validate() = %v, expected error mentioning %s", err, tt.field)
			}
		})
	}
}
