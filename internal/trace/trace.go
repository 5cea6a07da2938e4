// Package trace records the step-by-step timeline of a typing animation
// and persists recorded runs to disk for later listing and export.
package trace

import (
	"sync"
	"time"
)

// Frame is one sink update: the visible text after a step and the delay
// the engine computed before its next step.
type Frame struct {
	Offset      time.Duration
	Text        string
	StringIndex int
	Backspacing bool
	Delay       time.Duration
}

// Recorder implements the engine's StepObserver and accumulates frames
// relative to the first observed step.
type Recorder struct {
	mu     sync.Mutex
	start  time.Time
	frames []Frame
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OnStep(t time.Time, text string, stringIndex int, backspacing bool, delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frames == nil {
		r.start = t
	}
	r.frames = append(r.frames, Frame{
		Offset:      t.Sub(r.start),
		Text:        text,
		StringIndex: stringIndex,
		Backspacing: backspacing,
		Delay:       delay,
	})
}

// Frames returns a copy of the recorded timeline.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

// Duration is the wall time covered by the recording.
func (r *Recorder) Duration() time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return 0
	}
	return r.frames[len(r.frames)-1].Offset
}
