// Package tui is the terminal front end: a Bubble Tea model over the
// pomodoro engine that receives engine notifications through the bridge.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"pomocat/internal/core/model"
	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

// waterBanner is how long the water reminder stays on screen.
const waterBanner = 5 * time.Second

// Controller is the subset of the engine the terminal view drives.
type Controller interface {
	Start()
	TogglePause() bool
	Stop()
	Reset() int
	State() pomodoro.TimerState
	Config() model.TimerConfig
	WaterRemaining() int
}

type displayMsg struct {
	minutes int
	seconds int
	mode    pomodoro.Mode
}

type noticeMsg struct {
	title string
	body  string
}

type waterMsg struct{}

type waterDoneMsg struct{}

type quitMsg struct{}

// Model is the root Bubble Tea model.
type Model struct {
	controller Controller
	catalog    *i18n.Catalog

	state    pomodoro.TimerState
	config   model.TimerConfig
	water    int
	notice   string
	watering bool

	help     help.Model
	progress progress.Model
}

// NewModel builds a model showing the controller's current state.
func NewModel(controller Controller, catalog *i18n.Catalog) Model {
	m := Model{
		controller: controller,
		catalog:    catalog,
		help:       help.New(),
		progress:   progress.New(progress.WithDefaultGradient(), progress.WithWidth(40), progress.WithoutPercentage()),
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		width := msg.Width - 12
		if width > 40 {
			width = 40
		}
		if width < 10 {
			width = 10
		}
		m.progress.Width = width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Start):
			m.notice = ""
			m.controller.Start()
		case key.Matches(msg, keys.Pause):
			m.controller.TogglePause()
		case key.Matches(msg, keys.Stop):
			m.controller.Stop()
		case key.Matches(msg, keys.Reset):
			m.controller.Reset()
		default:
			return m, nil
		}
		m.refresh()
		return m, nil

	case displayMsg:
		m.refresh()
		m.state.Mode = msg.mode
		m.state.CurrentTime = msg.minutes*60 + msg.seconds
		return m, nil

	case noticeMsg:
		m.notice = msg.title + " " + msg.body
		return m, nil

	case waterMsg:
		m.watering = true
		return m, tea.Tick(waterBanner, func(time.Time) tea.Msg {
			return waterDoneMsg{}
		})

	case waterDoneMsg:
		m.watering = false
		return m, nil

	case quitMsg:
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) View() string {
	color := modeColor(m.state.Mode)

	title := titleStyle.Render("🍅 pomocat")
	mode := lipgloss.NewStyle().Bold(true).Foreground(color).Render(strings.ToUpper(m.catalog.Mode(string(m.state.Mode))))
	clock := lipgloss.NewStyle().Bold(true).Foreground(color).Render(pomodoro.FormatClock(m.state.CurrentTime))

	sessions := mutedStyle.Render(fmt.Sprintf("%s  %s: %d",
		pomodoro.SessionDots(m.state.SessionsCompleted, m.config.SessionsUntilLong, m.state.Mode),
		m.catalog.T("Sessions"),
		m.state.SessionsCompleted,
	))

	var water string
	if m.watering {
		water = waterStyle.Bold(true).Render(m.catalog.T("water.title") + " " + m.catalog.T("water.body"))
	} else {
		water = waterStyle.Render(fmt.Sprintf("💧 %s %s", m.catalog.T("Next water"), pomodoro.FormatClock(m.water)))
	}

	var status string
	switch {
	case m.state.Paused:
		status = statusStyle.Render(m.catalog.T("paused"))
	case m.notice != "":
		status = statusStyle.Render(m.notice)
	}

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		"",
		mode,
		clock,
		"",
		m.progress.ViewAs(m.elapsed()),
		"",
		sessions,
		water,
		status,
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.BorderForeground(color).Render(content),
		m.help.View(keys),
	)
}

// refresh pulls the latest state from the controller.
func (m *Model) refresh() {
	m.state = m.controller.State()
	m.config = m.controller.Config()
	m.water = m.controller.WaterRemaining()
}

// elapsed is the completed fraction of the current phase.
func (m Model) elapsed() float64 {
	var total time.Duration
	switch m.state.Mode {
	case pomodoro.ModeShortBreak:
		total = m.config.ShortBreak
	case pomodoro.ModeLongBreak:
		total = m.config.LongBreak
	default:
		total = m.config.Work
	}
	seconds := model.Seconds(total)
	if seconds <= 0 {
		return 0
	}
	fraction := 1 - float64(m.state.CurrentTime)/float64(seconds)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
