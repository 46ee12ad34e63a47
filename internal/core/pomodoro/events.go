package pomodoro

import "time"

// Mode represents the current phase of the pomodoro cycle.
type Mode string

const (
	ModeWork       Mode = "work"
	ModeShortBreak Mode = "short_break"
	ModeLongBreak  Mode = "long_break"
)

// IsBreak reports whether the mode is either kind of break.
func (mode Mode) IsBreak() bool {
	return mode == ModeShortBreak || mode == ModeLongBreak
}

// EventType defines the type of engine notification.
type EventType string

const (
	EventDisplay EventType = "display"
	EventSound   EventType = "sound"
	EventMessage EventType = "message"
	EventWater   EventType = "water"
)

// Notice identifies the message shown after a phase completes.
type Notice string

const (
	NoticeLongBreak  Notice = "long_break"
	NoticeShortBreak Notice = "short_break"
	NoticeFocus      Notice = "focus"
)

// Event represents an engine update for observers.
type Event struct {
	Type    EventType
	Mode    Mode
	Minutes int
	Seconds int
	Notice  Notice
	At      time.Time
}

func displayEvent(mode Mode, currentTime int, at time.Time) Event {
	return Event{
		Type:    EventDisplay,
		Mode:    mode,
		Minutes: currentTime / 60,
		Seconds: currentTime % 60,
		At:      at,
	}
}
