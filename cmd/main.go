package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"pomocat/internal/audio"
	"pomocat/internal/bridge"
	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
	"pomocat/internal/platform"
	"pomocat/internal/storage"
	"pomocat/internal/tui"
	"pomocat/internal/ui/animation"
	"pomocat/internal/ui/preferences"
	"pomocat/internal/ui/timer"
	"pomocat/internal/ui/tray"
	"pomocat/resources"
)

const (
	appName = "pomocat"
	appID   = "io.github.pomocat"
)

type options struct {
	configPath string
	lang       string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:           appName,
		Short:         "Pomodoro timer with a cat mascot and water reminders",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDesktop(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (default $XDG_CONFIG_HOME/pomocat/settings.yaml)")
	root.PersistentFlags().StringVar(&opts.lang, "lang", "", "interface language: en|pt")

	root.AddCommand(newTUICmd(&opts))
	return root
}

func newTUICmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, catalog, err := loadSettings(*opts)
			if err != nil {
				return err
			}
			engine := pomodoro.New(settings.TimerConfig(), pomodoro.Config{TickInterval: time.Second})
			defer engine.Close()

			return tui.Run(cmd.Context(), engine, catalog, audio.NewChime(nil))
		},
	}
}

func loadSettings(opts options) (preferences.Settings, *i18n.Catalog, error) {
	path := opts.configPath
	if path == "" {
		var err error
		path, err = storage.DefaultPath(appName)
		if err != nil {
			return preferences.Settings{}, nil, err
		}
	}
	settings, err := storage.LoadSettings(path)
	if err != nil {
		return preferences.Settings{}, nil, err
	}

	lang := opts.lang
	if lang == "" {
		lang = settings.Language
	}
	return settings, i18n.Detect(lang), nil
}

func runDesktop(ctx context.Context, opts options) error {
	lock, err := platform.AcquireLock(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Printf("single instance: %v", err)
			return nil
		}
		return err
	}
	defer func() {
		_ = lock.Release()
	}()

	settings, catalog, err := loadSettings(opts)
	if err != nil {
		return err
	}

	engine := pomodoro.New(settings.TimerConfig(), pomodoro.Config{TickInterval: time.Second})
	defer engine.Close()

	fyneApp := app.NewWithID(appID)
	activeIcon := resources.MustLogo(resources.LogoActive)
	pausedIcon := resources.MustLogo(resources.LogoPaused)
	fyneApp.SetIcon(activeIcon)

	timerWindow := timer.New(fyneApp, engine, catalog, audio.NewChime(nil), timer.Sprites{
		Idle: animation.IdleSpec{
			Open:   resources.MustSprite(resources.CatOpen),
			Closed: resources.MustSprite(resources.CatClosed),
		},
		Water: animation.WaterSpec{
			Full:  resources.MustSprite(resources.WaterFull),
			Empty: resources.MustSprite(resources.WaterEmpty),
		},
	})

	events := bridge.New(catalog)
	events.Attach(timerWindow)
	events.AttachWindow(timerWindow)
	timerWindow.SetCommands(events)

	bridgeCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go events.Run(bridgeCtx, engine.Subscribe(64))

	appDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			fyne.Do(fyneApp.Quit)
		case <-appDone:
		}
	}()

	prefsWindow := preferences.New(fyneApp, catalog, settings, func(updated preferences.Settings) error {
		if err := engine.UpdateConfig(updated.TimerConfig()); err != nil {
			return err
		}
		timerWindow.Refresh()
		return nil
	})

	var trayApp desktop.App
	desktopApp, hasTray := fyneApp.(desktop.App)
	if hasTray {
		trayApp = desktopApp
	} else {
		log.Printf("system tray unsupported on this platform")
	}

	trayManager := tray.New(trayApp, catalog, tray.Callbacks{
		OnShow: timerWindow.Show,
		OnStart: func() {
			engine.Start()
			timerWindow.Refresh()
		},
		OnTogglePause: func() {
			engine.TogglePause()
			timerWindow.Refresh()
		},
		OnStop: func() {
			engine.Stop()
			timerWindow.Refresh()
		},
		OnReset: func() {
			engine.Reset()
			timerWindow.Refresh()
		},
		OnPreferences: prefsWindow.Show,
		OnQuit:        fyneApp.Quit,
	})

	trayPaused := false
	timerWindow.SetCallbacks(timer.Callbacks{
		OnSettings: prefsWindow.Show,
		OnRender: func(state pomodoro.TimerState) {
			trayManager.SetState(state)
			if hasTray && state.Paused != trayPaused {
				trayPaused = state.Paused
				if trayPaused {
					desktopApp.SetSystemTrayIcon(pausedIcon)
				} else {
					desktopApp.SetSystemTrayIcon(activeIcon)
				}
			}
		},
		OnQuit: fyneApp.Quit,
	})

	if hasTray {
		desktopApp.SetSystemTrayIcon(activeIcon)
	}
	timerWindow.Refresh()
	timerWindow.Show()
	fyneApp.Run()
	close(appDone)
	return nil
}
