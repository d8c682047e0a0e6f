package settings

import (
	"os"
	"strconv"
)

// Environment overrides, applied on top of the settings file. These are
// what .env files loaded at startup feed into.
const (
	EnvShowMarkers = "TIMELINES_SHOW_MARKERS"
	EnvDateLabel   = "TIMELINES_DATE_LABEL"
)

// FromEnv returns s with any environment overrides applied. Unset or
// unparseable variables leave the corresponding field untouched.
func FromEnv(s Settings) Settings {
	if raw := os.Getenv(EnvShowMarkers); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			s.ShowMarkers = v
		}
	}
	if raw := os.Getenv(EnvDateLabel); raw != "" {
		s.DefaultDateLabel = raw
	}
	return s
}

// Resolve loads the persisted settings and applies environment
// overrides: the value every command starts from.
func Resolve() (Settings, error) {
	s, err := Load(Path())
	if err != nil {
		return Default(), err
	}
	return FromEnv(s), nil
}
