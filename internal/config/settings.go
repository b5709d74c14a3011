package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backend names accepted in settings and on the command line
const (
	StorageJSON   = "json"
	StorageSQLite = "sqlite"
)

// Settings represents the structure of ~/.tempo/settings.json
type Settings struct {
	DataDir     string `json:"data_dir,omitempty"`
	Debug       *bool  `json:"debug,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	Storage     string `json:"storage,omitempty"`
}

// LoadSettings loads settings from $TEMPO_HOME/settings.json (or
// ~/.tempo/settings.json if not set).
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil // Not an error, use defaults
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DataDir != "" {
		settings.DataDir = ExpandPath(settings.DataDir)
	}

	return &settings, nil
}

// SaveSettings saves settings to $TEMPO_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
