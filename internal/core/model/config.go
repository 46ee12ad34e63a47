package model

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidConfig indicates a non-positive duration or session count.
var ErrInvalidConfig = errors.New("invalid timer config")

// TimerConfig contains runtime settings for the pomodoro state machine.
type TimerConfig struct {
	Work       time.Duration
	ShortBreak time.Duration
	LongBreak  time.Duration

	SessionsUntilLong int
	WaterInterval     time.Duration
}

// MinutesView is the configuration as presented to the UI.
type MinutesView struct {
	WorkMinutes          int
	ShortBreakMinutes    int
	LongBreakMinutes     int
	SessionsUntilLong    int
	WaterIntervalMinutes int
}

// DefaultTimerConfig returns the classic 25/5/15 cycle with a water reminder every 30 minutes.
func DefaultTimerConfig() TimerConfig {
	return TimerConfig{
		Work:              25 * time.Minute,
		ShortBreak:        5 * time.Minute,
		LongBreak:         15 * time.Minute,
		SessionsUntilLong: 4,
		WaterInterval:     30 * time.Minute,
	}
}

// FromMinutes builds a TimerConfig from whole-minute values.
func FromMinutes(work, shortBreak, longBreak, sessionsUntilLong, water int) TimerConfig {
	return TimerConfig{
		Work:              time.Duration(work) * time.Minute,
		ShortBreak:        time.Duration(shortBreak) * time.Minute,
		LongBreak:         time.Duration(longBreak) * time.Minute,
		SessionsUntilLong: sessionsUntilLong,
		WaterInterval:     time.Duration(water) * time.Minute,
	}
}

// Validate reports the first field that is not positive.
func (config TimerConfig) Validate() error {
	checks := []struct {
		name  string
		value time.Duration
	}{
		{"work", config.Work},
		{"short break", config.ShortBreak},
		{"long break", config.LongBreak},
		{"water interval", config.WaterInterval},
	}
	for _, check := range checks {
		if check.value < time.Second {
			return fmt.Errorf("%w: %s must be positive", ErrInvalidConfig, check.name)
		}
	}
	if config.SessionsUntilLong <= 0 {
		return fmt.Errorf("%w: sessions until long break must be positive", ErrInvalidConfig)
	}
	return nil
}

// Minutes converts the configuration to whole minutes.
func (config TimerConfig) Minutes() MinutesView {
	return MinutesView{
		WorkMinutes:          int(config.Work / time.Minute),
		ShortBreakMinutes:    int(config.ShortBreak / time.Minute),
		LongBreakMinutes:     int(config.LongBreak / time.Minute),
		SessionsUntilLong:    config.SessionsUntilLong,
		WaterIntervalMinutes: int(config.WaterInterval / time.Minute),
	}
}

// Seconds returns a duration as whole seconds.
func Seconds(value time.Duration) int {
	return int(value / time.Second)
}
