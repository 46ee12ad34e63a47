package pomodoro

import (
	"sync"
	"time"

	"pomocat/internal/core/model"
)

// Config contains runtime options for Engine.
type Config struct {
	TickInterval time.Duration
	PollInterval time.Duration
}

// TimerState is a snapshot of the countdown.
type TimerState struct {
	Mode              Mode
	Running           bool
	Paused            bool
	CurrentTime       int // seconds remaining
	SessionsCompleted int
}

// WaterReminderState tracks the hydration countdown in seconds.
type WaterReminderState struct {
	Interval  int
	Remaining int
}

// tickLoop is the handle of one running tick goroutine.
type tickLoop struct {
	stopCh chan struct{}
	done   chan struct{}
}

// Engine is a state machine that drives work and break phases.
type Engine struct {
	mu      sync.Mutex
	config  model.TimerConfig
	options Config
	state   TimerState
	water   WaterReminderState
	events  []chan Event
	loop    *tickLoop
	closed  bool
	now     func() time.Time
}

// New creates an Engine with the provided configuration.
// An invalid configuration is replaced by the defaults.
func New(config model.TimerConfig, options Config) *Engine {
	if options.TickInterval <= 0 {
		options.TickInterval = time.Second
	}
	if options.PollInterval <= 0 {
		options.PollInterval = 100 * time.Millisecond
	}
	if config.Validate() != nil {
		config = model.DefaultTimerConfig()
	}

	engine := &Engine{
		config:  config,
		options: options,
		state:   TimerState{Mode: ModeWork},
		now:     time.Now,
	}
	engine.state.CurrentTime = engine.durationLocked(ModeWork)
	engine.resetWaterLocked()
	return engine
}

// Subscribe registers a new observer channel.
func (engine *Engine) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	engine.mu.Lock()
	if engine.closed {
		close(ch)
	} else {
		engine.events = append(engine.events, ch)
	}
	engine.mu.Unlock()
	return ch
}

// Start marks the timer as running and launches the tick loop if none is alive.
func (engine *Engine) Start() {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.closed {
		return
	}
	engine.state.Running = true
	engine.state.Paused = false
	if engine.loop != nil {
		return
	}

	loop := &tickLoop{
		stopCh: make(chan struct{}),
		done:   make(chan struct{}),
	}
	engine.loop = loop
	go engine.run(loop)
}

// TogglePause flips the paused flag and returns the new value.
// It has no effect while the timer is not running.
func (engine *Engine) TogglePause() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if !engine.state.Running {
		return engine.state.Paused
	}
	engine.state.Paused = !engine.state.Paused
	return engine.state.Paused
}

// Stop halts the countdown and restores the current mode's full duration.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	engine.state.Running = false
	engine.state.Paused = false
	engine.state.CurrentTime = engine.durationLocked(engine.state.Mode)
	loop := engine.detachLoopLocked()
	engine.mu.Unlock()

	if loop != nil {
		<-loop.done
	}
}

// Reset restores the current mode's full duration and returns it in seconds.
// Mode, running and paused flags are left untouched.
func (engine *Engine) Reset() int {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.state.CurrentTime = engine.durationLocked(engine.state.Mode)
	return engine.state.CurrentTime
}

// Configure replaces every configuration value. Durations are whole minutes.
// The current countdown and the water reminder restart from the new values.
func (engine *Engine) Configure(work, shortBreak, longBreak, sessionsUntilLong, water int) error {
	return engine.UpdateConfig(model.FromMinutes(work, shortBreak, longBreak, sessionsUntilLong, water))
}

// UpdateConfig validates and applies a full configuration.
func (engine *Engine) UpdateConfig(config model.TimerConfig) error {
	if err := config.Validate(); err != nil {
		return err
	}
	engine.mu.Lock()
	defer engine.mu.Unlock()
	engine.config = config
	engine.resetWaterLocked()
	engine.state.CurrentTime = engine.durationLocked(engine.state.Mode)
	return nil
}

// State returns a copy of the timer state.
func (engine *Engine) State() TimerState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.state
}

// Config returns the active configuration.
func (engine *Engine) Config() model.TimerConfig {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.config
}

// Minutes returns the active configuration in whole minutes.
func (engine *Engine) Minutes() model.MinutesView {
	return engine.Config().Minutes()
}

// Water returns a copy of the water reminder state.
func (engine *Engine) Water() WaterReminderState {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.water
}

// WaterRemaining returns the seconds left until the next water reminder.
func (engine *Engine) WaterRemaining() int {
	return engine.Water().Remaining
}

// Close terminates the tick loop and closes observers.
func (engine *Engine) Close() {
	engine.mu.Lock()
	if engine.closed {
		engine.mu.Unlock()
		return
	}
	engine.closed = true
	engine.state.Running = false
	engine.state.Paused = false
	loop := engine.detachLoopLocked()
	events := engine.events
	engine.events = nil
	engine.mu.Unlock()

	if loop != nil {
		<-loop.done
	}
	for _, ch := range events {
		close(ch)
	}
}

func (engine *Engine) run(loop *tickLoop) {
	defer close(loop.done)

	timer := time.NewTimer(engine.waitInterval())
	defer timer.Stop()

	for {
		select {
		case <-loop.stopCh:
			return
		case <-timer.C:
		}

		engine.mu.Lock()
		if engine.loop != loop {
			engine.mu.Unlock()
			return
		}
		if engine.tickLocked() {
			engine.completeLocked()
			engine.loop = nil
			engine.mu.Unlock()
			return
		}
		wait := engine.waitIntervalLocked()
		engine.mu.Unlock()

		timer.Reset(wait)
	}
}

// tickLocked advances the countdown by one second and reports whether it expired.
func (engine *Engine) tickLocked() bool {
	if !engine.state.Running {
		return false
	}
	if engine.state.CurrentTime <= 0 {
		engine.state.CurrentTime = 0
		return true
	}
	if engine.state.Paused {
		return false
	}

	now := engine.now()
	engine.state.CurrentTime--
	engine.advanceWaterLocked(now)
	engine.emitLocked(displayEvent(engine.state.Mode, engine.state.CurrentTime, now))
	return engine.state.CurrentTime == 0
}

func (engine *Engine) advanceWaterLocked(now time.Time) {
	if engine.water.Remaining > 0 {
		engine.water.Remaining--
		return
	}
	engine.emitLocked(Event{
		Type: EventWater,
		Mode: engine.state.Mode,
		At:   now,
	})
	engine.water.Remaining = engine.water.Interval
}

func (engine *Engine) completeLocked() {
	now := engine.now()
	engine.emitLocked(Event{
		Type: EventSound,
		Mode: engine.state.Mode,
		At:   now,
	})

	var notice Notice
	if engine.state.Mode == ModeWork {
		engine.state.SessionsCompleted++
		if engine.state.SessionsCompleted%engine.config.SessionsUntilLong == 0 {
			engine.state.Mode = ModeLongBreak
			notice = NoticeLongBreak
		} else {
			engine.state.Mode = ModeShortBreak
			notice = NoticeShortBreak
		}
	} else {
		engine.state.Mode = ModeWork
		notice = NoticeFocus
	}
	engine.state.CurrentTime = engine.durationLocked(engine.state.Mode)
	engine.emitLocked(Event{
		Type:   EventMessage,
		Mode:   engine.state.Mode,
		Notice: notice,
		At:     now,
	})

	engine.state.Running = false
	engine.state.Paused = false
	engine.emitLocked(displayEvent(engine.state.Mode, engine.state.CurrentTime, now))
}

func (engine *Engine) detachLoopLocked() *tickLoop {
	loop := engine.loop
	if loop != nil {
		close(loop.stopCh)
		engine.loop = nil
	}
	return loop
}

func (engine *Engine) durationLocked(mode Mode) int {
	switch mode {
	case ModeShortBreak:
		return model.Seconds(engine.config.ShortBreak)
	case ModeLongBreak:
		return model.Seconds(engine.config.LongBreak)
	default:
		return model.Seconds(engine.config.Work)
	}
}

func (engine *Engine) resetWaterLocked() {
	engine.water.Interval = model.Seconds(engine.config.WaterInterval)
	engine.water.Remaining = engine.water.Interval
}

func (engine *Engine) waitInterval() time.Duration {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.waitIntervalLocked()
}

func (engine *Engine) waitIntervalLocked() time.Duration {
	if engine.state.Paused {
		return engine.options.PollInterval
	}
	return engine.options.TickInterval
}

func (engine *Engine) emitLocked(event Event) {
	for _, ch := range engine.events {
		select {
		case ch <- event:
		default:
		}
	}
}
