package tui

import (
	"github.com/charmbracelet/lipgloss"

	"pomocat/internal/core/pomodoro"
)

var (
	colorWork       = lipgloss.Color("#E5484D")
	colorShortBreak = lipgloss.Color("#2EC4B6")
	colorLongBreak  = lipgloss.Color("#3E9DDB")
	colorMuted      = lipgloss.Color("#666666")
	colorWater      = lipgloss.Color("#7CC4F5")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	waterStyle = lipgloss.NewStyle().
			Foreground(colorWater)

	statusStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F39C12"))

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 3).
			Align(lipgloss.Center)
)

func modeColor(mode pomodoro.Mode) lipgloss.Color {
	switch mode {
	case pomodoro.ModeShortBreak:
		return colorShortBreak
	case pomodoro.ModeLongBreak:
		return colorLongBreak
	default:
		return colorWork
	}
}
