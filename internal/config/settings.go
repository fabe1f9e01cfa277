package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Settings represents the structure of ~/.barksound/settings.json
type Settings struct {
	BundleDir          string            `json:"bundle_dir,omitempty"`
	Debug              *bool             `json:"debug,omitempty"`
	GroupContainersDir string            `json:"group_containers_dir,omitempty"`
	GroupID            string            `json:"group_id,omitempty"`
	Keys               KeyBindingsConfig `json:"keys,omitempty"`
	LibraryDir         string            `json:"library_dir,omitempty"`
	Locale             string            `json:"locale,omitempty"`
	MaxLogFiles        *int              `json:"max_log_files,omitempty"`
}

// LoadSettings loads settings from $BARKSOUND_HOME/settings.json.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
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

	settings.BundleDir = ExpandPath(settings.BundleDir)
	settings.GroupContainersDir = ExpandPath(settings.GroupContainersDir)
	settings.LibraryDir = ExpandPath(settings.LibraryDir)

	return &settings, nil
}

// SaveSettings saves settings to $BARKSOUND_HOME/settings.json
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
