package timer

import (
	"context"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomocat/internal/audio"
	"pomocat/internal/core/model"
	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
	"pomocat/internal/ui/animation"
)

// Controller is the part of the engine the window drives.
type Controller interface {
	Start()
	TogglePause() bool
	Stop()
	Reset() int
	State() pomodoro.TimerState
	Config() model.TimerConfig
	WaterRemaining() int
}

// Commands relays window lifecycle requests to the hosting window.
type Commands interface {
	Minimize()
	Close()
}

// Callbacks defines window action handlers.
type Callbacks struct {
	OnSettings func()
	OnRender   func(pomodoro.TimerState)
	OnQuit     func()
}

// Sprites holds the mascot frames.
type Sprites struct {
	Idle  animation.IdleSpec
	Water animation.WaterSpec
}

const (
	windowWidth  = float32(435)
	windowHeight = float32(635)
	mascotSize   = float32(128)
)

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// Window is the main timer window.
type Window struct {
	app        fyne.App
	window     fyne.Window
	controller Controller
	catalog    *i18n.Catalog
	player     audio.Player
	commands   Commands
	callbacks  Callbacks
	engine     *animation.Engine
	sprites    Sprites
	cancelCtx  context.CancelFunc

	background     *canvas.Rectangle
	mascot         *canvas.Image
	modeLabel      *canvas.Text
	timeLabel      *canvas.Text
	sessionsLabel  *widget.Label
	waterLabel     *widget.Label
	startButton    *widget.Button
	pauseButton    *widget.Button
	stopButton     *widget.Button
	resetButton    *widget.Button
	settingsButton *widget.Button
	minimizeButton *widget.Button
	closeButton    *widget.Button
}

// New creates the timer window. It stays hidden until Show.
func New(app fyne.App, controller Controller, catalog *i18n.Catalog, player audio.Player, sprites Sprites) *Window {
	window := app.NewWindow("Pomodoro Timer 🐱")
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash window is undecorated; minimize and close live in our own title bar.
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	timerWindow := &Window{
		app:        app,
		window:     window,
		controller: controller,
		catalog:    catalog,
		player:     player,
		sprites:    sprites,
	}

	timerWindow.background = canvas.NewRectangle(modeColor(pomodoro.ModeWork))

	timerWindow.mascot = canvas.NewImageFromResource(sprites.Idle.Open)
	timerWindow.mascot.FillMode = canvas.ImageFillContain
	timerWindow.mascot.SetMinSize(fyne.NewSize(mascotSize, mascotSize))

	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}

	timerWindow.modeLabel = canvas.NewText("", white)
	timerWindow.modeLabel.Alignment = fyne.TextAlignCenter
	timerWindow.modeLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerWindow.modeLabel.TextSize = 22

	timerWindow.timeLabel = canvas.NewText("--:--", white)
	timerWindow.timeLabel.Alignment = fyne.TextAlignCenter
	timerWindow.timeLabel.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	timerWindow.timeLabel.TextSize = 72

	timerWindow.sessionsLabel = widget.NewLabel("")
	timerWindow.sessionsLabel.Alignment = fyne.TextAlignCenter
	timerWindow.waterLabel = widget.NewLabel("")
	timerWindow.waterLabel.Alignment = fyne.TextAlignCenter

	timerWindow.startButton = widget.NewButtonWithIcon(catalog.T("Start"), theme.MediaPlayIcon(), timerWindow.handleStart)
	timerWindow.startButton.Importance = widget.HighImportance
	timerWindow.pauseButton = widget.NewButtonWithIcon(catalog.T("Pause"), theme.MediaPauseIcon(), timerWindow.handlePause)
	timerWindow.stopButton = widget.NewButtonWithIcon(catalog.T("Stop"), theme.MediaStopIcon(), timerWindow.handleStop)
	timerWindow.resetButton = widget.NewButtonWithIcon(catalog.T("Reset"), theme.MediaReplayIcon(), timerWindow.handleReset)
	timerWindow.settingsButton = widget.NewButtonWithIcon(catalog.T("Settings"), theme.SettingsIcon(), func() {
		if timerWindow.callbacks.OnSettings != nil {
			timerWindow.callbacks.OnSettings()
		}
	})
	timerWindow.minimizeButton = widget.NewButtonWithIcon("", theme.WindowMinimizeIcon(), func() {
		if timerWindow.commands != nil {
			timerWindow.commands.Minimize()
		}
	})
	timerWindow.minimizeButton.Importance = widget.LowImportance
	timerWindow.closeButton = widget.NewButtonWithIcon("", theme.WindowCloseIcon(), func() {
		if timerWindow.commands != nil {
			timerWindow.commands.Close()
		}
	})
	timerWindow.closeButton.Importance = widget.LowImportance

	title := canvas.NewText("  Pomodoro Timer 🐱", white)
	title.TextStyle = fyne.TextStyle{Bold: true}
	titleBar := container.NewHBox(title, layout.NewSpacer(), timerWindow.minimizeButton, timerWindow.closeButton)

	center := container.NewVBox(
		container.NewCenter(timerWindow.mascot),
		timerWindow.modeLabel,
		timerWindow.timeLabel,
		timerWindow.sessionsLabel,
		timerWindow.waterLabel,
	)
	controls := container.NewGridWithColumns(2,
		timerWindow.startButton,
		timerWindow.pauseButton,
		timerWindow.stopButton,
		timerWindow.resetButton,
	)
	bottom := container.NewPadded(container.NewVBox(controls, timerWindow.settingsButton))

	content := container.NewBorder(titleBar, bottom, nil, nil, container.NewCenter(center))
	window.SetContent(container.NewStack(timerWindow.background, content))
	window.Resize(fyne.NewSize(windowWidth, windowHeight))
	window.SetFixedSize(true)
	window.SetCloseIntercept(window.Hide)

	timerWindow.engine = animation.New(animation.DefaultConfig(), timerWindow.setSprite)
	timerWindow.render(controller.State())

	return timerWindow
}

// SetCommands sets where minimize and close requests go.
func (timerWindow *Window) SetCommands(commands Commands) {
	timerWindow.commands = commands
}

// SetCallbacks sets window action handlers.
func (timerWindow *Window) SetCallbacks(callbacks Callbacks) {
	timerWindow.callbacks = callbacks
}

// Show displays the window and starts the mascot.
func (timerWindow *Window) Show() {
	timerWindow.window.CenterOnScreen()
	timerWindow.window.Show()
	timerWindow.window.RequestFocus()
	timerWindow.startIdle()
}

// Refresh redraws the window from the controller state. Call it on the UI thread.
func (timerWindow *Window) Refresh() {
	timerWindow.render(timerWindow.controller.State())
}

// UpdateDisplay implements bridge.Surface.
func (timerWindow *Window) UpdateDisplay(minutes, seconds int, mode pomodoro.Mode) {
	fyne.Do(func() {
		state := timerWindow.controller.State()
		state.Mode = mode
		state.CurrentTime = minutes*60 + seconds
		timerWindow.render(state)
	})
}

// PlayCompletionSound implements bridge.Surface.
func (timerWindow *Window) PlayCompletionSound() {
	if timerWindow.player != nil {
		timerWindow.player.Play()
	}
}

// ShowMessage implements bridge.Surface.
func (timerWindow *Window) ShowMessage(title, body string) {
	fyne.Do(func() {
		timerWindow.window.Show()
		timerWindow.window.RequestFocus()
		dialog.ShowInformation(title, body, timerWindow.window)
	})
}

// TriggerWaterReminder implements bridge.Surface.
func (timerWindow *Window) TriggerWaterReminder() {
	fyne.Do(func() {
		timerWindow.stopEngine()
		ctx, cancel := context.WithCancel(context.Background())
		timerWindow.cancelCtx = cancel
		timerWindow.engine.StartWater(ctx, timerWindow.sprites.Water, timerWindow.sprites.Idle)
		dialog.ShowInformation(timerWindow.catalog.T("water.title"), timerWindow.catalog.T("water.body"), timerWindow.window)
	})
}

// Minimize implements bridge.Window. Without a native minimize the window is hidden to the tray.
func (timerWindow *Window) Minimize() {
	fyne.Do(func() {
		if !timerWindow.minimizeNative() {
			timerWindow.window.Hide()
		}
	})
}

// Close implements bridge.Window.
func (timerWindow *Window) Close() {
	fyne.Do(func() {
		timerWindow.stopEngine()
		if timerWindow.callbacks.OnQuit != nil {
			timerWindow.callbacks.OnQuit()
			return
		}
		timerWindow.app.Quit()
	})
}

func (timerWindow *Window) handleStart() {
	timerWindow.controller.Start()
	timerWindow.Refresh()
}

func (timerWindow *Window) handlePause() {
	timerWindow.controller.TogglePause()
	timerWindow.Refresh()
}

func (timerWindow *Window) handleStop() {
	timerWindow.controller.Stop()
	timerWindow.Refresh()
}

func (timerWindow *Window) handleReset() {
	timerWindow.controller.Reset()
	timerWindow.Refresh()
}

func (timerWindow *Window) render(state pomodoro.TimerState) {
	config := timerWindow.controller.Config()

	timerWindow.background.FillColor = modeColor(state.Mode)
	timerWindow.background.Refresh()

	timerWindow.modeLabel.Text = timerWindow.catalog.Mode(string(state.Mode))
	timerWindow.modeLabel.Refresh()
	timerWindow.timeLabel.Text = pomodoro.FormatClock(state.CurrentTime)
	timerWindow.timeLabel.Refresh()

	timerWindow.sessionsLabel.SetText(fmt.Sprintf("%s  %s: %d",
		pomodoro.SessionDots(state.SessionsCompleted, config.SessionsUntilLong, state.Mode),
		timerWindow.catalog.T("Sessions"),
		state.SessionsCompleted,
	))
	timerWindow.waterLabel.SetText(fmt.Sprintf("💧 %s %s",
		timerWindow.catalog.T("Next water"),
		pomodoro.FormatClock(timerWindow.controller.WaterRemaining()),
	))

	if state.Paused {
		timerWindow.pauseButton.SetText(timerWindow.catalog.T("Resume"))
		timerWindow.pauseButton.SetIcon(theme.MediaPlayIcon())
	} else {
		timerWindow.pauseButton.SetText(timerWindow.catalog.T("Pause"))
		timerWindow.pauseButton.SetIcon(theme.MediaPauseIcon())
	}
	setEnabled(timerWindow.startButton, !state.Running || state.Paused)
	setEnabled(timerWindow.pauseButton, state.Running)
	setEnabled(timerWindow.stopButton, state.Running)

	if timerWindow.callbacks.OnRender != nil {
		timerWindow.callbacks.OnRender(state)
	}
}

func (timerWindow *Window) setSprite(resource fyne.Resource) {
	fyne.Do(func() {
		timerWindow.mascot.Resource = resource
		timerWindow.mascot.Refresh()
	})
}

func (timerWindow *Window) startIdle() {
	timerWindow.stopEngine()
	ctx, cancel := context.WithCancel(context.Background())
	timerWindow.cancelCtx = cancel
	timerWindow.engine.StartIdle(ctx, timerWindow.sprites.Idle)
}

func (timerWindow *Window) stopEngine() {
	if timerWindow.cancelCtx != nil {
		timerWindow.cancelCtx()
		timerWindow.cancelCtx = nil
	}
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}

func modeColor(mode pomodoro.Mode) color.NRGBA {
	switch mode {
	case pomodoro.ModeShortBreak:
		return color.NRGBA{R: 56, G: 133, B: 138, A: 255}
	case pomodoro.ModeLongBreak:
		return color.NRGBA{R: 57, G: 112, B: 151, A: 255}
	default:
		return color.NRGBA{R: 186, G: 73, B: 73, A: 255}
	}
}
