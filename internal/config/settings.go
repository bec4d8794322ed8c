package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is read when no -config flag is given. A missing file there is not an error.
const DefaultPath = "solar-orbits.yaml"

// Settings holds the user tunable parts of the viewer.
type Settings struct {
	LogLevel string `yaml:"log_level"`
	Window   struct {
		Width     int    `yaml:"width"`
		Height    int    `yaml:"height"`
		Title     string `yaml:"title"`
		Resizable *bool  `yaml:"resizable"`
	} `yaml:"window"`
	Textures TextureSettings `yaml:"textures"`
	Stars    struct {
		// Seed fixes the starfield layout; 0 picks a random one.
		Seed uint64 `yaml:"seed"`
		// Tint draws each star in its flicker colour instead of white.
		Tint bool `yaml:"tint"`
	} `yaml:"stars"`
	Info struct {
		DismissOnEmptyClick bool `yaml:"dismiss_on_empty_click"`
	} `yaml:"info"`
	Sound struct {
		Chime *bool `yaml:"chime"`
	} `yaml:"sound"`
	Credits []string `yaml:"credits"`
}

// TextureSettings holds the surface image path of each body.
type TextureSettings struct {
	Sun     string `yaml:"sun"`
	Mercury string `yaml:"mercury"`
	Venus   string `yaml:"venus"`
}

// Resizable reports whether the window may be resized by the user.
func (s *Settings) Resizable() bool {
	return s.Window.Resizable == nil || *s.Window.Resizable
}

// ChimeEnabled reports whether a successful pick plays a chime.
func (s *Settings) ChimeEnabled() bool {
	return s.Sound.Chime == nil || *s.Sound.Chime
}

// Default returns settings with every optional field filled in.
func Default() *Settings {
	s := &Settings{}
	applyDefaults(s)
	return s
}

// Load reads settings from a YAML file, applies defaults and validates them.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML from %s: %w", path, err)
	}

	applyDefaults(&s)

	if err := validate(&s); err != nil {
		return nil, fmt.Errorf("invalid settings in %s: %w", path, err)
	}
	return &s, nil
}

// LoadOrDefault behaves like Load but falls back to Default when path does not exist.
func LoadOrDefault(path string) (*Settings, error) {
	s, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return s, err
}

func applyDefaults(s *Settings) {
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.Window.Width == 0 {
		s.Window.Width = WindowWidth
	}
	if s.Window.Height == 0 {
		s.Window.Height = WindowHeight
	}
	if s.Window.Title == "" {
		s.Window.Title = "Solar Orbits - move mouse to look, click a body for info, +/- to zoom, Esc/Q: Quit"
	}
	if s.Textures.Sun == "" {
		s.Textures.Sun = "assets/sun.jpeg"
	}
	if s.Textures.Mercury == "" {
		s.Textures.Mercury = "assets/mercury.jpeg"
	}
	if s.Textures.Venus == "" {
		s.Textures.Venus = "assets/venus.jpeg"
	}
	if len(s.Credits) == 0 {
		s.Credits = []string{
			"Solar Orbits",
			"Sun, Mercury and Venus",
			"Not to scale",
		}
	}
}

func validate(s *Settings) error {
	if s.Window.Width < 0 || s.Window.Height < 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "warning", "error",
		"DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		return fmt.Errorf("unknown log_level %q", s.LogLevel)
	}
	return nil
}
