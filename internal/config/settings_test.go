package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeSettings(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid settings", func(t *testing.T) {
		path := writeSettings(t, `log_level: debug
window:
  width: 800
  height: 600
  resizable: false
textures:
  sun: tex/matahari.jpeg
stars:
  seed: 42
  tint: true
info:
  dismiss_on_empty_click: true
sound:
  chime: false
credits:
  - "Kelas: A3"
`)
		s, err := Load(path)
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if s.LogLevel != "debug" {
			t.Errorf("Expected log level 'debug', got '%s'", s.LogLevel)
		}
		if s.Window.Width != 800 || s.Window.Height != 600 {
			t.Errorf("Expected window 800x600, got %dx%d", s.Window.Width, s.Window.Height)
		}
		if s.Resizable() {
			t.Error("Expected window to be fixed size")
		}
		if s.Textures.Sun != "tex/matahari.jpeg" {
			t.Errorf("Expected sun texture override, got '%s'", s.Textures.Sun)
		}
		if s.Textures.Venus != "assets/venus.jpeg" {
			t.Errorf("Expected default venus texture, got '%s'", s.Textures.Venus)
		}
		if s.Stars.Seed != 42 || !s.Stars.Tint {
			t.Errorf("Expected stars seed 42 with tint, got %d/%v", s.Stars.Seed, s.Stars.Tint)
		}
		if !s.Info.DismissOnEmptyClick {
			t.Error("Expected dismiss_on_empty_click to be true")
		}
		if s.ChimeEnabled() {
			t.Error("Expected chime to be disabled")
		}
		if len(s.Credits) != 1 || s.Credits[0] != "Kelas: A3" {
			t.Errorf("Expected custom credits, got %v", s.Credits)
		}
	})

	t.Run("empty file gets defaults", func(t *testing.T) {
		s, err := Load(writeSettings(t, ""))
		if err != nil {
			t.Fatalf("Load() failed: %v", err)
		}
		if s.Window.Width != WindowWidth || s.Window.Height != WindowHeight {
			t.Errorf("Expected default window size, got %dx%d", s.Window.Width, s.Window.Height)
		}
		if s.LogLevel != "info" {
			t.Errorf("Expected default log level 'info', got '%s'", s.LogLevel)
		}
		if !s.Resizable() || !s.ChimeEnabled() {
			t.Error("Expected resizable window and chime by default")
		}
		if len(s.Credits) == 0 {
			t.Error("Expected default credits")
		}
	})

	t.Run("invalid yaml", func(t *testing.T) {
		if _, err := Load(writeSettings(t, "window: [1, 2")); err == nil {
			t.Error("Expected parse error")
		}
	})

	t.Run("invalid log level", func(t *testing.T) {
		if _, err := Load(writeSettings(t, "log_level: loud\n")); err == nil {
			t.Error("Expected validation error")
		}
	})

	t.Run("negative window size", func(t *testing.T) {
		if _, err := Load(writeSettings(t, "window:\n  width: -1\n")); err == nil {
			t.Error("Expected validation error")
		}
	})
}

func TestLoadOrDefault(t *testing.T) {
	s, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("LoadOrDefault() failed: %v", err)
	}
	if s.Textures.Mercury != "assets/mercury.jpeg" {
		t.Errorf("Expected default mercury texture, got '%s'", s.Textures.Mercury)
	}

	if _, err := LoadOrDefault(writeSettings(t, "log_level: loud\n")); err == nil {
		t.Error("Expected validation error to be returned for an existing file")
	}
}
