package config

import (
	"os"
	"path/filepath"
)

// TempoHome returns the tempo home directory.
// Respects $TEMPO_HOME, defaulting to ~/.tempo.
func TempoHome() string {
	if home := os.Getenv("TEMPO_HOME"); home != "" {
		return ExpandPath(home)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.tempo" // Fallback to unexpanded path
	}
	return filepath.Join(homeDir, ".tempo")
}

// GetSettingsPath returns the path to the settings file
func GetSettingsPath() string {
	return filepath.Join(TempoHome(), "settings.json")
}

// GetWorkspacePath returns the path to the JSON workspace snapshot file
func GetWorkspacePath() string {
	return filepath.Join(TempoHome(), "workspace.json")
}

// GetDBPath returns the path to the sqlite workspace database
func GetDBPath() string {
	return filepath.Join(TempoHome(), "workspace.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
