package animation

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// Range defines a duration range with random sampling.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// Random returns a random duration within the range.
func (value Range) Random(rng *rand.Rand) time.Duration {
	if value.Max <= value.Min {
		return value.Min
	}
	delta := value.Max - value.Min
	return value.Min + time.Duration(rng.Int63n(int64(delta)))
}

// Config contains animation timing values.
type Config struct {
	BlinkClosedDuration Range
	BlinkInterval       Range
	DoubleBlinkChance   float64
	DoubleBlinkGap      Range

	WaterFrame    time.Duration
	WaterDuration time.Duration
}

// Engine manages sprite animations for the mascot.
type Engine struct {
	mu           sync.Mutex
	config       Config
	updateSprite func(fyne.Resource)
	cancel       context.CancelFunc
	rng          *rand.Rand
}

// New creates a new animation engine.
func New(config Config, updateSprite func(fyne.Resource)) *Engine {
	return &Engine{
		config:       config,
		updateSprite: updateSprite,
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// StartIdle starts an endless blinking loop.
func (engine *Engine) StartIdle(ctx context.Context, idle IdleSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		engine.runIdle(runCtx, idle)
	})
}

// StartWater flashes the water frames for WaterDuration, then returns to idle blinking.
func (engine *Engine) StartWater(ctx context.Context, water WaterSpec, idle IdleSpec) {
	engine.start(ctx, func(runCtx context.Context) {
		deadline := time.Now().Add(engine.config.WaterDuration)
		full := true
		for time.Now().Before(deadline) {
			if full {
				engine.updateSprite(water.Full)
			} else {
				engine.updateSprite(water.Empty)
			}
			full = !full
			if !sleepWithContext(runCtx, engine.config.WaterFrame) {
				return
			}
		}
		engine.runIdle(runCtx, idle)
	})
}

// Stop terminates any active animation.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.cancel != nil {
		engine.cancel()
		engine.cancel = nil
	}
}

func (engine *Engine) start(parent context.Context, run func(context.Context)) {
	engine.mu.Lock()
	if engine.cancel != nil {
		engine.cancel()
	}
	runCtx, cancel := context.WithCancel(parent)
	engine.cancel = cancel
	engine.mu.Unlock()

	go run(runCtx)
}

func (engine *Engine) runIdle(ctx context.Context, idle IdleSpec) {
	engine.updateSprite(idle.Open)
	for {
		if !sleepWithContext(ctx, engine.random(engine.config.BlinkInterval)) {
			return
		}
		if !engine.blink(ctx, idle) {
			return
		}
		if engine.chance() <= engine.config.DoubleBlinkChance {
			if !sleepWithContext(ctx, engine.random(engine.config.DoubleBlinkGap)) {
				return
			}
			if !engine.blink(ctx, idle) {
				return
			}
		}
	}
}

func (engine *Engine) blink(ctx context.Context, idle IdleSpec) bool {
	engine.updateSprite(idle.Closed)
	if !sleepWithContext(ctx, engine.random(engine.config.BlinkClosedDuration)) {
		return false
	}
	engine.updateSprite(idle.Open)
	return true
}

// rand.Rand is not safe for concurrent use; a replaced run may still be sampling.
func (engine *Engine) random(value Range) time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return value.Random(engine.rng)
}

func (engine *Engine) chance() float64 {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.rng.Float64()
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
