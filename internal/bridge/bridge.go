// Package bridge forwards engine events to whatever UI surface is attached
// and relays window commands from the UI to the hosting window.
package bridge

import (
	"context"
	"log"
	"sync"

	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

// Surface renders engine notifications.
type Surface interface {
	UpdateDisplay(minutes, seconds int, mode pomodoro.Mode)
	PlayCompletionSound()
	ShowMessage(title, body string)
	TriggerWaterReminder()
}

// Window is the hosting window.
type Window interface {
	Minimize()
	Close()
}

// Bridge dispatches events to the attached surface.
type Bridge struct {
	mu      sync.Mutex
	surface Surface
	window  Window
	catalog *i18n.Catalog
}

// New creates a bridge that resolves notice text with catalog.
func New(catalog *i18n.Catalog) *Bridge {
	return &Bridge{catalog: catalog}
}

// Attach sets the surface that receives notifications.
func (bridge *Bridge) Attach(surface Surface) {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	bridge.surface = surface
}

// Detach removes the surface; later events are dropped.
func (bridge *Bridge) Detach() {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	bridge.surface = nil
}

// AttachWindow sets the window that receives lifecycle commands.
func (bridge *Bridge) AttachWindow(window Window) {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	bridge.window = window
}

// Run dispatches events until ctx is done or the channel is closed.
func (bridge *Bridge) Run(ctx context.Context, events <-chan pomodoro.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			bridge.Dispatch(event)
		}
	}
}

// Dispatch translates a single event into a surface call.
func (bridge *Bridge) Dispatch(event pomodoro.Event) {
	surface := bridge.currentSurface()
	if surface == nil {
		return
	}

	switch event.Type {
	case pomodoro.EventDisplay:
		surface.UpdateDisplay(event.Minutes, event.Seconds, event.Mode)
	case pomodoro.EventSound:
		surface.PlayCompletionSound()
	case pomodoro.EventMessage:
		title, body := bridge.catalog.Notice(string(event.Notice))
		surface.ShowMessage(title, body)
	case pomodoro.EventWater:
		surface.TriggerWaterReminder()
	default:
		log.Printf("bridge: unknown event type %q", event.Type)
	}
}

// Minimize forwards the command to the hosting window.
func (bridge *Bridge) Minimize() {
	if window := bridge.currentWindow(); window != nil {
		window.Minimize()
	}
}

// Close forwards the command to the hosting window.
func (bridge *Bridge) Close() {
	if window := bridge.currentWindow(); window != nil {
		window.Close()
	}
}

func (bridge *Bridge) currentSurface() Surface {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	return bridge.surface
}

func (bridge *Bridge) currentWindow() Window {
	bridge.mu.Lock()
	defer bridge.mu.Unlock()
	return bridge.window
}
