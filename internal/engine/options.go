package engine

import (
	"time"

	"github.com/isbosykh/typist/internal/curve"
)

const (
	DefaultTypeSpeed  = 50 * time.Millisecond
	DefaultBackSpeed  = 25 * time.Millisecond
	DefaultBackDelay  = 1000 * time.Millisecond
	DefaultCursorChar = "|"

	// blinkInterval is the fixed half-period of the cursor blink timer.
	blinkInterval = 530 * time.Millisecond

	// stringPause is the fixed pause between erasing one string and
	// typing the next.
	stringPause = 500 * time.Millisecond
)

// Config is the engine's full configuration. It is treated as an immutable
// value: UpdateOptions builds a new Config and swaps it in wholesale, and
// each step reads the live Config fresh, so a step never observes a
// half-applied update.
type Config struct {
	Strings    []string
	TypeSpeed  time.Duration
	BackSpeed  time.Duration
	StartDelay time.Duration
	BackDelay  time.Duration
	Loop       bool
	ShowCursor bool
	CursorChar string
	Curvature  curve.Curvature

	OnStringStart    func(index int)
	OnStringComplete func(index int)
	OnComplete       func()

	clock    Clock
	observer StepObserver
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		TypeSpeed:  DefaultTypeSpeed,
		BackSpeed:  DefaultBackSpeed,
		BackDelay:  DefaultBackDelay,
		ShowCursor: true,
		CursorChar: DefaultCursorChar,
		Curvature:  curve.Sine,
	}
}

// Option mutates a Config. Options are applied on top of DefaultConfig at
// construction and on top of the live Config by UpdateOptions.
type Option func(*Config)

// WithStrings sets the sequence of strings to animate. An empty sequence
// leaves the engine idle.
func WithStrings(strs ...string) Option {
	return func(c *Config) { c.Strings = strs }
}

// WithTypeSpeed sets the base delay per typed character. Negative values
// are passed to the scheduler unchanged; the resulting timing is
// scheduler-defined.
func WithTypeSpeed(d time.Duration) Option {
	return func(c *Config) { c.TypeSpeed = d }
}

// WithBackSpeed sets the delay per erased character. Backspacing is never
// curve-modulated.
func WithBackSpeed(d time.Duration) Option {
	return func(c *Config) { c.BackSpeed = d }
}

// WithStartDelay delays the first step after construction.
func WithStartDelay(d time.Duration) Option {
	return func(c *Config) { c.StartDelay = d }
}

// WithBackDelay sets the pause between finishing a string and erasing it.
func WithBackDelay(d time.Duration) Option {
	return func(c *Config) { c.BackDelay = d }
}

// WithLoop wraps to the first string after the last instead of completing.
func WithLoop(loop bool) Option {
	return func(c *Config) { c.Loop = loop }
}

// WithCursor enables or disables the blinking cursor timer.
func WithCursor(show bool) Option {
	return func(c *Config) { c.ShowCursor = show }
}

// WithCursorChar sets the literal cursor glyph handed to the presenter.
func WithCursorChar(s string) Option {
	return func(c *Config) { c.CursorChar = s }
}

// WithCurvature selects the typing speed curve.
func WithCurvature(c curve.Curvature) Option {
	return func(cfg *Config) { cfg.Curvature = c }
}

// WithClock injects a Clock; used by tests.
func WithClock(clk Clock) Option {
	return func(c *Config) { c.clock = clk }
}

// OnStringStart registers a callback fired when a string begins typing.
func OnStringStart(fn func(index int)) Option {
	return func(c *Config) { c.OnStringStart = fn }
}

// OnStringComplete registers a callback fired when a string finishes typing.
func OnStringComplete(fn func(index int)) Option {
	return func(c *Config) { c.OnStringComplete = fn }
}

// OnComplete registers a callback fired once when a non-looping engine has
// typed and erased its last string.
func OnComplete(fn func()) Option {
	return func(c *Config) { c.OnComplete = fn }
}

// WithObserver registers a step observer; used by the trace recorder.
func WithObserver(o StepObserver) Option {
	return func(c *Config) { c.observer = o }
}
