// Package engine implements the typewriter animation state machine: a
// cooperative, timer-driven loop that types a configured sequence of
// strings into a text sink one character at a time, erases each string,
// and advances to the next, optionally looping forever.
package engine

import (
	"errors"
	"sync"
	"time"

	"github.com/isbosykh/typist/internal/curve"
)

// ErrNoSink is returned by New when no text sink is provided.
var ErrNoSink = errors.New("engine: no text sink")

// TextSink receives the full visible substring once per step.
type TextSink interface {
	SetText(s string)
}

// CursorPresenter receives cursor blink state on a fixed interval,
// independent of the typing phase.
type CursorPresenter interface {
	SetCursorVisible(visible bool)
}

// StepObserver is notified after every sink update with the delay the
// engine computed before its next step.
type StepObserver interface {
	OnStep(t time.Time, text string, stringIndex int, backspacing bool, delay time.Duration)
}

type phase int

const (
	phaseTyping phase = iota
	phaseBackspacing
)

// Engine drives the animation. All state is guarded by mu; at most one
// step timer is pending at any time, and a monotonically increasing epoch
// invalidates timer callbacks queued before a Start/Stop/Reset/Destroy.
type Engine struct {
	mu sync.Mutex

	cfg       Config
	sink      TextSink
	presenter CursorPresenter
	clock     Clock

	stringIdx int
	charIdx   int
	phase     phase
	epoch     uint64

	pending Timer
	blink   Timer

	cursorVisible bool
	destroyed     bool
}

// New builds an engine around the given sink and presenter and begins
// animating: immediately when no start delay is configured, otherwise
// after the configured delay. The presenter may be nil, which disables
// cursor blinking regardless of configuration. An empty string sequence
// leaves the engine idle.
func New(sink TextSink, presenter CursorPresenter, opts ...Option) (*Engine, error) {
	if sink == nil {
		return nil, ErrNoSink
	}

	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	clk := cfg.clock
	if clk == nil {
		clk = SystemClock
	}

	e := &Engine{
		cfg:           cfg,
		sink:          sink,
		presenter:     presenter,
		clock:         clk,
		cursorVisible: true,
	}

	e.mu.Lock()
	if cfg.ShowCursor && presenter != nil {
		e.scheduleBlinkLocked()
	}
	epoch := e.epoch
	immediate := len(cfg.Strings) > 0 && cfg.StartDelay <= 0
	if len(cfg.Strings) > 0 && cfg.StartDelay > 0 {
		e.scheduleLocked(cfg.StartDelay)
	}
	e.mu.Unlock()

	if immediate {
		e.step(epoch)
	}

	return e, nil
}

// Start restarts the animation from the first string, cancelling any
// pending step and bypassing the start delay. No-op once destroyed.
func (e *Engine) Start() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.cancelPendingLocked()
	e.stringIdx = 0
	e.charIdx = 0
	e.phase = phaseTyping
	epoch := e.epoch
	e.mu.Unlock()

	e.step(epoch)
}

// Stop cancels the pending step without resetting state. The cursor blink
// timer keeps running.
func (e *Engine) Stop() {
	e.mu.Lock()
	e.cancelPendingLocked()
	e.mu.Unlock()
}

// Reset stops the animation, rewinds to the first string, and clears the
// sink. It does not resume automatically.
func (e *Engine) Reset() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.cancelPendingLocked()
	e.stringIdx = 0
	e.charIdx = 0
	e.phase = phaseTyping
	e.mu.Unlock()

	e.sink.SetText("")
}

// Destroy freezes the engine: both timers are cancelled, the cursor is
// restored to visible, and the sink is cleared. Idempotent; every other
// operation becomes a no-op afterwards.
func (e *Engine) Destroy() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.destroyed = true
	e.cancelPendingLocked()
	if e.blink != nil {
		e.blink.Stop()
		e.blink = nil
	}
	e.cursorVisible = true
	presenter := e.presenter
	e.mu.Unlock()

	if presenter != nil {
		presenter.SetCursorVisible(true)
	}
	e.sink.SetText("")
}

// UpdateOptions applies options on top of the live configuration. The new
// configuration takes effect from the next step; an already-scheduled step
// keeps its captured delay. No-op once destroyed.
func (e *Engine) UpdateOptions(opts ...Option) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.destroyed {
		return
	}
	cfg := e.cfg
	for _, opt := range opts {
		opt(&cfg)
	}
	e.cfg = cfg
}

// CurrentString returns the string at the current index, or "" when the
// index is transiently out of range.
func (e *Engine) CurrentString() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stringIdx < 0 || e.stringIdx >= len(e.cfg.Strings) {
		return ""
	}
	return e.cfg.Strings[e.stringIdx]
}

// CurrentStringIndex returns the index of the string being animated.
func (e *Engine) CurrentStringIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.stringIdx
}

// IsRunning reports whether a step is currently pending.
func (e *Engine) IsRunning() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending != nil
}

// cancelPendingLocked stops any pending step timer and bumps the epoch so
// a callback that already fired on the scheduler side returns without
// effect.
func (e *Engine) cancelPendingLocked() {
	if e.pending != nil {
		e.pending.Stop()
		e.pending = nil
	}
	e.epoch++
}

func (e *Engine) scheduleLocked(d time.Duration) {
	epoch := e.epoch
	e.pending = e.clock.AfterFunc(d, func() {
		e.step(epoch)
	})
}

// step performs one unit of animation work: append or remove a single
// character, or transition between phases. Exactly one future step is
// scheduled before returning, unless the animation completed or the
// engine was stopped mid-step.
func (e *Engine) step(epoch uint64) {
	e.mu.Lock()
	if e.destroyed || epoch != e.epoch {
		e.mu.Unlock()
		return
	}
	e.pending = nil

	cfg := e.cfg
	if len(cfg.Strings) == 0 {
		e.mu.Unlock()
		return
	}

	var (
		notify []func()
		text   string
		wrote  bool
		delay  time.Duration
	)

	cur := []rune(cfg.Strings[e.stringIdx])

	switch e.phase {
	case phaseTyping:
		if e.charIdx == 0 {
			if fn := cfg.OnStringStart; fn != nil {
				idx := e.stringIdx
				notify = append(notify, func() { fn(idx) })
			}
		}
		if e.charIdx < len(cur) {
			// Progress is taken before the increment so it stays
			// in [0,1).
			progress := float64(e.charIdx) / float64(len(cur))
			e.charIdx++
			text = string(cur[:e.charIdx])
			wrote = true
			delay = curve.Delay(cfg.Curvature, cfg.TypeSpeed, progress)
			e.scheduleLocked(delay)
		} else {
			if fn := cfg.OnStringComplete; fn != nil {
				idx := e.stringIdx
				notify = append(notify, func() { fn(idx) })
			}
			e.phase = phaseBackspacing
			delay = cfg.BackDelay
			e.scheduleLocked(delay)
		}

	case phaseBackspacing:
		if e.charIdx > 0 {
			e.charIdx--
			text = string(cur[:e.charIdx])
			wrote = true
			delay = cfg.BackSpeed
			e.scheduleLocked(delay)
		} else {
			e.stringIdx++
			if e.stringIdx >= len(cfg.Strings) {
				if cfg.Loop {
					e.stringIdx = 0
				} else {
					e.stringIdx = len(cfg.Strings)
					if fn := cfg.OnComplete; fn != nil {
						notify = append(notify, fn)
					}
					e.mu.Unlock()
					e.fire(notify)
					return
				}
			}
			e.phase = phaseTyping
			delay = stringPause
			e.scheduleLocked(delay)
		}
	}

	observer := cfg.observer
	stringIdx := e.stringIdx
	backspacing := e.phase == phaseBackspacing
	now := e.clock.Now()
	e.mu.Unlock()

	if wrote {
		e.sink.SetText(text)
		if observer != nil {
			observer.OnStep(now, text, stringIdx, backspacing, delay)
		}
	}
	e.fire(notify)
}

func (e *Engine) fire(notify []func()) {
	for _, fn := range notify {
		fn()
	}
}

// blinkStep toggles cursor visibility and reschedules itself until the
// engine is destroyed.
func (e *Engine) blinkStep() {
	e.mu.Lock()
	if e.destroyed {
		e.mu.Unlock()
		return
	}
	e.cursorVisible = !e.cursorVisible
	visible := e.cursorVisible
	presenter := e.presenter
	e.scheduleBlinkLocked()
	e.mu.Unlock()

	presenter.SetCursorVisible(visible)
}

func (e *Engine) scheduleBlinkLocked() {
	e.blink = e.clock.AfterFunc(blinkInterval, e.blinkStep)
}
