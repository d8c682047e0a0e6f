// Package settings persists the render options for timelines.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/KialHarrison/kh-timelines/internal/render"
)

// Filename is the settings file name inside the config directory.
const Filename = "settings.yml"

// Settings are the persisted render options. Fields absent from the
// file keep their defaults.
type Settings struct {
	ShowMarkers      bool   `yaml:"show_markers"`
	DefaultDateLabel string `yaml:"default_date_label"`
}

// Default returns the out-of-the-box settings.
func Default() Settings {
	return Settings{
		ShowMarkers:      true,
		DefaultDateLabel: "Date",
	}
}

// Config converts the settings into a render configuration.
func (s Settings) Config() render.Config {
	return render.Config{
		ShowMarkers:      s.ShowMarkers,
		DefaultDateLabel: s.DefaultDateLabel,
	}
}

// Path returns the settings file location, or "" when no config
// directory can be resolved.
func Path() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, Filename)
}

// Load reads settings from path. A missing file yields the defaults
// without error; only unreadable or malformed files fail.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, fmt.Errorf("reading settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings %s: %w", path, err)
	}
	return s, nil
}

// Save writes settings to path, creating the parent directory if needed.
func Save(path string, s Settings) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing settings %s: %w", path, err)
	}
	return nil
}
