package preferences

import (
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"pomocat/internal/i18n"
)

// Window handles the preferences UI.
type Window struct {
	window     fyne.Window
	settings   Settings
	onSave     func(Settings) error
	work       *widget.Entry
	shortBreak *widget.Entry
	longBreak  *widget.Entry
	sessions   *widget.Entry
	water      *widget.Entry
}

// New creates a preferences window. onSave returning an error keeps the window open.
func New(app fyne.App, catalog *i18n.Catalog, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow(catalog.T("Settings"))

	prefs := &Window{
		window:     window,
		onSave:     onSave,
		work:       widget.NewEntry(),
		shortBreak: widget.NewEntry(),
		longBreak:  widget.NewEntry(),
		sessions:   widget.NewEntry(),
		water:      widget.NewEntry(),
	}
	prefs.UpdateSettings(settings)

	form := widget.NewForm(
		widget.NewFormItem(catalog.T("Work (min)"), prefs.work),
		widget.NewFormItem(catalog.T("Short break (min)"), prefs.shortBreak),
		widget.NewFormItem(catalog.T("Long break (min)"), prefs.longBreak),
		widget.NewFormItem(catalog.T("Sessions until long break"), prefs.sessions),
		widget.NewFormItem(catalog.T("Water reminder (min)"), prefs.water),
	)

	saveButton := widget.NewButton(catalog.T("Save"), prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton(catalog.T("Cancel"), func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 280))
	window.SetCloseIntercept(window.Hide)

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.work.SetText(strconv.Itoa(settings.WorkMinutes))
	prefs.shortBreak.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longBreak.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.sessions.SetText(strconv.Itoa(settings.SessionsUntilLong))
	prefs.water.SetText(strconv.Itoa(settings.WaterMinutes))
}

// Settings returns the last saved values.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.WorkMinutes = parseInt(prefs.work.Text)
	settings.ShortBreakMinutes = parseInt(prefs.shortBreak.Text)
	settings.LongBreakMinutes = parseInt(prefs.longBreak.Text)
	settings.SessionsUntilLong = parseInt(prefs.sessions.Text)
	settings.WaterMinutes = parseInt(prefs.water.Text)

	if prefs.onSave != nil {
		if err := prefs.onSave(settings); err != nil {
			dialog.ShowError(err, prefs.window)
			return
		}
	}
	prefs.settings = settings
	prefs.window.Hide()
}

// parseInt returns 0 for anything that is not an integer so validation rejects it.
func parseInt(value string) int {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return 0
	}
	return parsed
}
