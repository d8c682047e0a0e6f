package settings

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the timelines configuration directory.
//
// Resolution:
//   - $TIMELINES_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/timelines if set (respects XDG on any platform)
//   - %AppData%/timelines on Windows
//   - ~/.config/timelines on macOS and Linux
func Dir() string {
	if dir := os.Getenv("TIMELINES_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "timelines")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "timelines")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "timelines")
}
