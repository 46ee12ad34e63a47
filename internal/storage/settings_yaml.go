package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"pomocat/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

type yamlSettings struct {
	WorkMinutes       int    `yaml:"work_minutes"`
	ShortBreakMinutes int    `yaml:"short_break_minutes"`
	LongBreakMinutes  int    `yaml:"long_break_minutes"`
	SessionsUntilLong int    `yaml:"sessions_until_long"`
	WaterMinutes      int    `yaml:"water_interval_minutes"`
	Language          string `yaml:"language"`
}

// LoadSettings reads user preferences from the YAML file at path.
// If the file does not exist, default settings are returned.
func LoadSettings(path string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(path)
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

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// DefaultPath returns the settings file location inside the user config dir.
func DefaultPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if fileData.WorkMinutes > 0 {
		settings.WorkMinutes = fileData.WorkMinutes
	}
	if fileData.ShortBreakMinutes > 0 {
		settings.ShortBreakMinutes = fileData.ShortBreakMinutes
	}
	if fileData.LongBreakMinutes > 0 {
		settings.LongBreakMinutes = fileData.LongBreakMinutes
	}
	if fileData.SessionsUntilLong > 0 {
		settings.SessionsUntilLong = fileData.SessionsUntilLong
	}
	if fileData.WaterMinutes > 0 {
		settings.WaterMinutes = fileData.WaterMinutes
	}
	settings.Language = fileData.Language
}
