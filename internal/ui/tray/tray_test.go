package tray

import (
	"testing"

	"pomocat/internal/core/pomodoro"
	"pomocat/internal/i18n"
)

func TestSetStateUpdatesStatus(t *testing.T) {
	manager := New(nil, i18n.New("en"), Callbacks{})

	manager.SetState(pomodoro.TimerState{Mode: pomodoro.ModeWork, Running: true, CurrentTime: 754})
	if got := manager.Status(); got != "Focus 12:34" {
		t.Fatalf("unexpected status %q", got)
	}
	if !manager.startItem.Disabled || manager.pauseItem.Disabled || manager.stopItem.Disabled {
		t.Fatal("running state should disable start only")
	}

	manager.SetState(pomodoro.TimerState{Mode: pomodoro.ModeLongBreak, Running: true, Paused: true, CurrentTime: 900})
	if got := manager.Status(); got != "Long break 15:00 (paused)" {
		t.Fatalf("unexpected paused status %q", got)
	}
	if manager.pauseItem.Label != "Resume" || manager.startItem.Disabled {
		t.Fatal("paused state should offer resume and start")
	}
}

func TestMenuInvokesCallbacks(t *testing.T) {
	calls := map[string]int{}
	manager := New(nil, i18n.New("pt"), Callbacks{
		OnStart: func() { calls["start"]++ },
		OnQuit:  func() { calls["quit"]++ },
	})

	for _, item := range manager.Menu().Items {
		if item.Action != nil {
			item.Action()
		}
	}
	if calls["start"] != 1 || calls["quit"] != 1 {
		t.Fatalf("unexpected calls %v", calls)
	}
	if manager.startItem.Label != "Iniciar" {
		t.Fatalf("expected translated label, got %q", manager.startItem.Label)
	}
}

func TestCallbacksReplacedAfterNew(t *testing.T) {
	manager := New(nil, i18n.New("en"), Callbacks{})
	stopped := false
	manager.callbacks.OnStop = func() { stopped = true }

	manager.stopItem.Action()
	if !stopped {
		t.Fatal("replaced callback not invoked")
	}
}
