package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"pomocat/internal/audio"
	"pomocat/internal/bridge"
	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

// Run shows the terminal front end until the user quits. The engine keeps
// running in the background and is stopped on return.
func Run(ctx context.Context, engine *pomodoro.Engine, catalog *i18n.Catalog, player audio.Player) error {
	// The alternate screen owns the terminal, so log lines go to a file.
	if logFile, err := tea.LogToFile(filepath.Join(os.TempDir(), "pomocat-tui.log"), "pomocat"); err == nil {
		defer logFile.Close()
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(NewModel(engine, catalog), tea.WithAltScreen(), tea.WithContext(ctx))

	surface := NewSurface(program, player)
	events := bridge.New(catalog)
	events.Attach(surface)
	events.AttachWindow(surface)
	go events.Run(ctx, engine.Subscribe(64))

	defer engine.Stop()
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
