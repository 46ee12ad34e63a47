package preferences

import (
	"errors"
	"testing"

	"fyne.io/fyne/v2/test"

	"pomocat/internal/i18n"
)

func TestSaveAppliesEnteredValues(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	var saved Settings
	prefs := New(app, i18n.New("en"), DefaultSettings(), func(settings Settings) error {
		saved = settings
		return nil
	})

	prefs.work.SetText("1")
	prefs.shortBreak.SetText("1")
	prefs.longBreak.SetText("1")
	prefs.sessions.SetText(" 2 ")
	prefs.water.SetText("1")
	prefs.handleSave()

	want := Settings{WorkMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, SessionsUntilLong: 2, WaterMinutes: 1}
	if saved != want {
		t.Fatalf("expected %+v, got %+v", want, saved)
	}
	if prefs.Settings() != want {
		t.Fatalf("window kept %+v", prefs.Settings())
	}
}

func TestSaveErrorKeepsPreviousSettings(t *testing.T) {
	app := test.NewApp()
	defer app.Quit()

	prefs := New(app, i18n.New("en"), DefaultSettings(), func(Settings) error {
		return errors.New("rejected")
	})
	prefs.work.SetText("abc")
	prefs.handleSave()

	if prefs.Settings() != DefaultSettings() {
		t.Fatalf("rejected save should not change settings, got %+v", prefs.Settings())
	}
}

func TestParseInt(t *testing.T) {
	cases := map[string]int{"25": 25, " 7 ": 7, "": 0, "x": 0, "-4": -4}
	for input, want := range cases {
		if got := parseInt(input); got != want {
			t.Fatalf("parseInt(%q) = %d, want %d", input, got, want)
		}
	}
}

func TestSettingsTimerConfigRoundTrip(t *testing.T) {
	settings := DefaultSettings()
	if got := FromMinutes(settings.TimerConfig().Minutes()); got != settings {
		t.Fatalf("expected %+v, got %+v", settings, got)
	}
}
