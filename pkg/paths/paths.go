// Package paths provides centralized path handling for hilfsbuch.
// It follows the XDG Base Directory specification and lets every
// location be overridden through environment variables.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvConfigDir overrides the XDG config directory for hilfsbuch
	EnvConfigDir = "HILFSBUCH_CONFIG_DIR"

	// EnvStateDir overrides the XDG state directory for hilfsbuch
	EnvStateDir = "HILFSBUCH_STATE_DIR"
)

const (
	// AppDirName is the directory name used below each XDG base directory
	AppDirName = "hilfsbuch"

	// ConfigFileName is the name of the user configuration file
	ConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "hilfsbuch.log"
)

// ConfigDir returns the directory holding the user configuration
func ConfigDir() string {
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		return expandHome(dir)
	}
	return filepath.Join(xdg.ConfigHome, AppDirName)
}

// ConfigFile returns the default path of the user configuration file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// StateDir returns the directory for state such as log files.
// XDG_STATE_HOME is read on every call so tests can point it elsewhere.
func StateDir() string {
	if dir := os.Getenv(EnvStateDir); dir != "" {
		return expandHome(dir)
	}
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, AppDirName)
	}
	if xdg.StateHome != "" {
		return filepath.Join(xdg.StateHome, AppDirName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return AppDirName
	}
	return filepath.Join(home, ".local", "state", AppDirName)
}

// LogFilePath returns the path to the log file
func LogFilePath() string {
	return filepath.Join(StateDir(), LogFileName)
}

// expandHome expands ~ to the user's home directory
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
