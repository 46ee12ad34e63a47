package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pomocat/internal/ui/preferences"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write settings: %v", err)
	}
	return path
}

func TestLoadSettingsMissingFile(t *testing.T) {
	settings, err := LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults, got %+v", settings)
	}
}

func TestLoadSettingsOverrides(t *testing.T) {
	path := writeFile(t, `
work_minutes: 50
short_break_minutes: 10
long_break_minutes: 20
sessions_until_long: 3
water_interval_minutes: 45
language: pt
`)
	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := preferences.Settings{
		WorkMinutes:       50,
		ShortBreakMinutes: 10,
		LongBreakMinutes:  20,
		SessionsUntilLong: 3,
		WaterMinutes:      45,
		Language:          "pt",
	}
	if settings != want {
		t.Fatalf("expected %+v, got %+v", want, settings)
	}
	if err := settings.TimerConfig().Validate(); err != nil {
		t.Fatalf("loaded settings invalid: %v", err)
	}
}

func TestLoadSettingsIgnoresNonPositive(t *testing.T) {
	path := writeFile(t, "work_minutes: 0\nshort_break_minutes: -3\nsessions_until_long: 2\n")
	settings, err := LoadSettings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	defaults := preferences.DefaultSettings()
	if settings.WorkMinutes != defaults.WorkMinutes || settings.ShortBreakMinutes != defaults.ShortBreakMinutes {
		t.Fatalf("non-positive values should fall back, got %+v", settings)
	}
	if settings.SessionsUntilLong != 2 {
		t.Fatalf("expected sessions 2, got %d", settings.SessionsUntilLong)
	}
}

func TestLoadSettingsInvalidYaml(t *testing.T) {
	path := writeFile(t, "work_minutes: [oops\n")
	settings, err := LoadSettings(path)
	if err == nil || !strings.Contains(err.Error(), "parse settings yaml") {
		t.Fatalf("expected parse error, got %v", err)
	}
	if settings != preferences.DefaultSettings() {
		t.Fatalf("expected defaults on error, got %+v", settings)
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := DefaultPath("pomocat")
	if err != nil {
		t.Fatalf("default path: %v", err)
	}
	if filepath.Base(path) != settingsFileName || filepath.Base(filepath.Dir(path)) != "pomocat" {
		t.Fatalf("unexpected path %q", path)
	}
}
