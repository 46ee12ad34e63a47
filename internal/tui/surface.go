package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pomocat/internal/audio"
	"pomocat/internal/core/pomodoro"
)

// Sender delivers messages into a running program; *tea.Program satisfies it.
type Sender interface {
	Send(msg tea.Msg)
}

// Surface turns bridge calls into program messages.
type Surface struct {
	sender Sender
	player audio.Player
}

// NewSurface returns a surface writing to sender. A nil player mutes the chime.
func NewSurface(sender Sender, player audio.Player) *Surface {
	return &Surface{sender: sender, player: player}
}

func (surface *Surface) UpdateDisplay(minutes, seconds int, mode pomodoro.Mode) {
	surface.sender.Send(displayMsg{minutes: minutes, seconds: seconds, mode: mode})
}

func (surface *Surface) PlayCompletionSound() {
	if surface.player != nil {
		surface.player.Play()
	}
}

func (surface *Surface) ShowMessage(title, body string) {
	surface.sender.Send(noticeMsg{title: title, body: body})
}

func (surface *Surface) TriggerWaterReminder() {
	surface.sender.Send(waterMsg{})
}

// Minimize has no terminal equivalent.
func (surface *Surface) Minimize() {}

func (surface *Surface) Close() {
	surface.sender.Send(quitMsg{})
}
