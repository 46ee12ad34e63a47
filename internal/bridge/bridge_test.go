package bridge

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"pomocat/internal/core/model"
	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

type recordingSurface struct {
	mu    sync.Mutex
	calls []string
}

func (surface *recordingSurface) record(call string) {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	surface.calls = append(surface.calls, call)
}

func (surface *recordingSurface) Calls() []string {
	surface.mu.Lock()
	defer surface.mu.Unlock()
	return append([]string(nil), surface.calls...)
}

func (surface *recordingSurface) UpdateDisplay(minutes, seconds int, mode pomodoro.Mode) {
	surface.record(fmt.Sprintf("display %02d:%02d %s", minutes, seconds, mode))
}

func (surface *recordingSurface) PlayCompletionSound() {
	surface.record("sound")
}

func (surface *recordingSurface) ShowMessage(title, body string) {
	surface.record("message " + title + " | " + body)
}

func (surface *recordingSurface) TriggerWaterReminder() {
	surface.record("water")
}

type recordingWindow struct {
	minimized int
	closed    int
}

func (window *recordingWindow) Minimize() { window.minimized++ }
func (window *recordingWindow) Close()    { window.closed++ }

func TestDispatchTranslatesEvents(t *testing.T) {
	surface := &recordingSurface{}
	bridge := New(i18n.New("pt"))
	bridge.Attach(surface)

	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventDisplay, Minutes: 24, Seconds: 5, Mode: pomodoro.ModeWork})
	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventSound})
	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventMessage, Notice: pomodoro.NoticeShortBreak})
	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventWater})
	bridge.Dispatch(pomodoro.Event{Type: "bogus"})

	want := []string{
		"display 24:05 work",
		"sound",
		"message Bom trabalho! ☕ | Hora do intervalo!",
		"water",
	}
	got := surface.Calls()
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestNoSurfaceIsNoop(t *testing.T) {
	bridge := New(i18n.New("en"))
	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventSound})
	bridge.Minimize()
	bridge.Close()

	surface := &recordingSurface{}
	bridge.Attach(surface)
	bridge.Detach()
	bridge.Dispatch(pomodoro.Event{Type: pomodoro.EventWater})
	if calls := surface.Calls(); len(calls) != 0 {
		t.Fatalf("detached surface received %v", calls)
	}
}

func TestWindowCommandsForwarded(t *testing.T) {
	window := &recordingWindow{}
	bridge := New(i18n.New("en"))
	bridge.AttachWindow(window)

	bridge.Minimize()
	bridge.Minimize()
	bridge.Close()

	if window.minimized != 2 || window.closed != 1 {
		t.Fatalf("unexpected forwards: %+v", window)
	}
}

func TestRunStopsOnClosedChannel(t *testing.T) {
	surface := &recordingSurface{}
	bridge := New(i18n.New("en"))
	bridge.Attach(surface)

	events := make(chan pomodoro.Event, 2)
	events <- pomodoro.Event{Type: pomodoro.EventSound}
	close(events)

	done := make(chan struct{})
	go func() {
		bridge.Run(context.Background(), events)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after channel close")
	}
	if calls := surface.Calls(); len(calls) != 1 || calls[0] != "sound" {
		t.Fatalf("unexpected calls %v", calls)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	bridge := New(i18n.New("en"))
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		bridge.Run(ctx, make(chan pomodoro.Event))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}

func TestEngineCompletionReachesSurface(t *testing.T) {
	config := model.DefaultTimerConfig()
	config.Work = 2 * time.Second
	engine := pomodoro.New(config, pomodoro.Config{TickInterval: time.Millisecond, PollInterval: time.Millisecond})
	defer engine.Close()

	surface := &recordingSurface{}
	bridge := New(i18n.New("en"))
	bridge.Attach(surface)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go bridge.Run(ctx, engine.Subscribe(64))

	engine.Start()

	want := []string{
		"display 00:01 work",
		"display 00:00 work",
		"sound",
		"message Good job! ☕ | Time for a break!",
		"display 05:00 short_break",
	}
	deadline := time.Now().Add(5 * time.Second)
	for len(surface.Calls()) < len(want) {
		if time.Now().After(deadline) {
			t.Fatalf("timed out, got %v", surface.Calls())
		}
		time.Sleep(time.Millisecond)
	}
	got := surface.Calls()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
