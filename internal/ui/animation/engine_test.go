package animation

import (
	"context"
	"math/rand"
	"sync"
	"testing"
	"time"

	"fyne.io/fyne/v2"
)

type frameLog struct {
	mu     sync.Mutex
	frames []fyne.Resource
}

func (log *frameLog) record(resource fyne.Resource) {
	log.mu.Lock()
	defer log.mu.Unlock()
	log.frames = append(log.frames, resource)
}

func (log *frameLog) snapshot() []fyne.Resource {
	log.mu.Lock()
	defer log.mu.Unlock()
	return append([]fyne.Resource(nil), log.frames...)
}

var (
	openFrame   = fyne.NewStaticResource("open", []byte("o"))
	closedFrame = fyne.NewStaticResource("closed", []byte("c"))
	fullFrame   = fyne.NewStaticResource("full", []byte("f"))
	emptyFrame  = fyne.NewStaticResource("empty", []byte("e"))
)

func fastConfig() Config {
	return Config{
		BlinkClosedDuration: Range{Min: time.Millisecond, Max: time.Millisecond},
		BlinkInterval:       Range{Min: time.Millisecond, Max: 2 * time.Millisecond},
		DoubleBlinkGap:      Range{Min: time.Millisecond, Max: time.Millisecond},
		WaterFrame:          2 * time.Millisecond,
		WaterDuration:       20 * time.Millisecond,
	}
}

func waitFrames(t *testing.T, log *frameLog, match func([]fyne.Resource) bool) []fyne.Resource {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		frames := log.snapshot()
		if match(frames) {
			return frames
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("frames never matched: %v", log.snapshot())
	return nil
}

func contains(frames []fyne.Resource, target fyne.Resource) bool {
	for _, frame := range frames {
		if frame == target {
			return true
		}
	}
	return false
}

func TestRangeRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	fixed := Range{Min: time.Second, Max: time.Second}
	if got := fixed.Random(rng); got != time.Second {
		t.Fatalf("expected fixed value, got %v", got)
	}
	span := Range{Min: time.Second, Max: 2 * time.Second}
	for i := 0; i < 100; i++ {
		got := span.Random(rng)
		if got < span.Min || got >= span.Max {
			t.Fatalf("value %v outside %v", got, span)
		}
	}
}

func TestIdleBlinks(t *testing.T) {
	log := &frameLog{}
	engine := New(fastConfig(), log.record)
	engine.StartIdle(context.Background(), IdleSpec{Open: openFrame, Closed: closedFrame})
	defer engine.Stop()

	frames := waitFrames(t, log, func(frames []fyne.Resource) bool {
		return len(frames) >= 3 && contains(frames, closedFrame)
	})
	if frames[0] != openFrame {
		t.Fatalf("idle should start with open frame, got %v", frames[0])
	}
}

func TestWaterReturnsToIdle(t *testing.T) {
	log := &frameLog{}
	engine := New(fastConfig(), log.record)
	engine.StartWater(context.Background(), WaterSpec{Full: fullFrame, Empty: emptyFrame}, IdleSpec{Open: openFrame, Closed: closedFrame})
	defer engine.Stop()

	frames := waitFrames(t, log, func(frames []fyne.Resource) bool {
		return contains(frames, openFrame)
	})
	if frames[0] != fullFrame {
		t.Fatalf("water should start with full frame, got %v", frames[0])
	}
	if !contains(frames, emptyFrame) {
		t.Fatalf("water never alternated: %v", frames)
	}
}

func TestStopHaltsUpdates(t *testing.T) {
	log := &frameLog{}
	engine := New(fastConfig(), log.record)
	engine.StartIdle(context.Background(), IdleSpec{Open: openFrame, Closed: closedFrame})
	waitFrames(t, log, func(frames []fyne.Resource) bool { return len(frames) >= 2 })

	engine.Stop()
	time.Sleep(10 * time.Millisecond)
	before := len(log.snapshot())
	time.Sleep(20 * time.Millisecond)
	if after := len(log.snapshot()); after != before {
		t.Fatalf("frames kept arriving after stop: %d -> %d", before, after)
	}
}
