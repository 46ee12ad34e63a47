package preferences

import (
	"pomocat/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkMinutes       int
	ShortBreakMinutes int
	LongBreakMinutes  int
	SessionsUntilLong int
	WaterMinutes      int

	Language string
}

// DefaultSettings returns default settings for pomocat.
func DefaultSettings() Settings {
	return FromMinutes(model.DefaultTimerConfig().Minutes())
}

// FromMinutes builds settings from the engine's minute view.
func FromMinutes(view model.MinutesView) Settings {
	return Settings{
		WorkMinutes:       view.WorkMinutes,
		ShortBreakMinutes: view.ShortBreakMinutes,
		LongBreakMinutes:  view.LongBreakMinutes,
		SessionsUntilLong: view.SessionsUntilLong,
		WaterMinutes:      view.WaterIntervalMinutes,
	}
}

// TimerConfig converts settings to a TimerConfig.
func (settings Settings) TimerConfig() model.TimerConfig {
	return model.FromMinutes(
		settings.WorkMinutes,
		settings.ShortBreakMinutes,
		settings.LongBreakMinutes,
		settings.SessionsUntilLong,
		settings.WaterMinutes,
	)
}
