package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnStart       func()
	OnTogglePause func()
	OnStop        func()
	OnReset       func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app        desktop.App
	catalog    *i18n.Catalog
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	startItem  *fyne.MenuItem
	pauseItem  *fyne.MenuItem
	stopItem   *fyne.MenuItem
	resetItem  *fyne.MenuItem
	items      []*fyne.MenuItem
}

// New creates a tray manager with the provided callbacks. A nil app builds the menu without installing it.
func New(app desktop.App, catalog *i18n.Catalog, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:       app,
		catalog:   catalog,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("pomocat", nil)
	manager.statusItem.Disabled = true

	show := fyne.NewMenuItem(catalog.T("Show"), invoke(&manager.callbacks.OnShow))
	manager.startItem = fyne.NewMenuItem(catalog.T("Start"), invoke(&manager.callbacks.OnStart))
	manager.pauseItem = fyne.NewMenuItem(catalog.T("Pause"), invoke(&manager.callbacks.OnTogglePause))
	manager.stopItem = fyne.NewMenuItem(catalog.T("Stop"), invoke(&manager.callbacks.OnStop))
	manager.resetItem = fyne.NewMenuItem(catalog.T("Reset"), invoke(&manager.callbacks.OnReset))
	preferences := fyne.NewMenuItem(catalog.T("Settings"), invoke(&manager.callbacks.OnPreferences))
	quit := fyne.NewMenuItem(catalog.T("Quit"), invoke(&manager.callbacks.OnQuit))
	quit.IsQuit = true

	manager.items = []*fyne.MenuItem{
		manager.statusItem,
		fyne.NewMenuItemSeparator(),
		show,
		manager.startItem,
		manager.pauseItem,
		manager.stopItem,
		manager.resetItem,
		fyne.NewMenuItemSeparator(),
		preferences,
		quit,
	}
	manager.SetState(pomodoro.TimerState{Mode: pomodoro.ModeWork})

	return manager
}

// SetState updates the status line and enables the items that apply.
func (manager *Manager) SetState(state pomodoro.TimerState) {
	status := fmt.Sprintf("%s %02d:%02d", manager.catalog.Mode(string(state.Mode)), state.CurrentTime/60, state.CurrentTime%60)
	if state.Paused {
		status = fmt.Sprintf("%s (%s)", status, manager.catalog.T("paused"))
	}
	manager.statusItem.Label = status

	if state.Paused {
		manager.pauseItem.Label = manager.catalog.T("Resume")
	} else {
		manager.pauseItem.Label = manager.catalog.T("Pause")
	}
	manager.startItem.Disabled = state.Running && !state.Paused
	manager.pauseItem.Disabled = !state.Running
	manager.stopItem.Disabled = !state.Running

	manager.refreshMenu()
}

// Status returns the current status line.
func (manager *Manager) Status() string {
	return manager.statusItem.Label
}

// Menu returns the menu as last installed.
func (manager *Manager) Menu() *fyne.Menu {
	return fyne.NewMenu("pomocat", manager.items...)
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(manager.Menu())
	}
}

// invoke defers the nil check so callbacks can be replaced after New.
func invoke(handler *func()) func() {
	return func() {
		if *handler != nil {
			(*handler)()
		}
	}
}
