package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const settingsFileName = "settings.yaml"

// Settings holds user preferences that are not part of a technique.
type Settings struct {
	LastTechnique        string
	NotificationsEnabled bool
	LaunchAtLogin        bool
}

// DefaultSettings returns the preferences used on first run.
func DefaultSettings() Settings {
	return Settings{
		NotificationsEnabled: true,
	}
}

type yamlSettings struct {
	LastTechnique        string `yaml:"last_technique"`
	NotificationsEnabled *bool  `yaml:"notifications_enabled"`
	LaunchAtLogin        bool   `yaml:"launch_at_login"`
}

// LoadSettings reads user preferences from YAML.
// If the settings file does not exist, default settings are returned.
func (store *Store) LoadSettings() (Settings, error) {
	settings := DefaultSettings()

	rawData, err := os.ReadFile(filepath.Join(store.dir, settingsFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	settings.LastTechnique = fileData.LastTechnique
	settings.LaunchAtLogin = fileData.LaunchAtLogin
	if fileData.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *fileData.NotificationsEnabled
	}
	return settings, nil
}

// SaveSettings writes user preferences to YAML.
func (store *Store) SaveSettings(settings Settings) error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	enabled := settings.NotificationsEnabled
	fileData := yamlSettings{
		LastTechnique:        settings.LastTechnique,
		NotificationsEnabled: &enabled,
		LaunchAtLogin:        settings.LaunchAtLogin,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(filepath.Join(store.dir, settingsFileName), serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
