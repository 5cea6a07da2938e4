package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// Sender is implemented by bubbletea Program and test doubles.
type Sender interface {
	Send(msg tea.Msg)
}

// TextMsg carries the visible text after an animation step.
type TextMsg string

// CursorMsg carries cursor blink state.
type CursorMsg bool

// StringMsg announces that the string at Index started typing.
type StringMsg struct {
	Index int
}

// DoneMsg announces that a non-looping animation completed.
type DoneMsg struct{}

// Sink bridges the engine's collaborator interfaces to a bubbletea
// program: every sink update becomes a message. Safe to hand to the
// engine before binding; unbound updates are dropped.
type Sink struct {
	mu     sync.Mutex
	sender Sender
}

func NewSink() *Sink {
	return &Sink{}
}

// Bind attaches the running program (or a test double).
func (s *Sink) Bind(sender Sender) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sender = sender
}

func (s *Sink) emit(msg tea.Msg) {
	s.mu.Lock()
	sender := s.sender
	s.mu.Unlock()
	if sender == nil {
		return
	}
	sender.Send(msg)
}

func (s *Sink) SetText(text string) {
	s.emit(TextMsg(text))
}

func (s *Sink) SetCursorVisible(visible bool) {
	s.emit(CursorMsg(visible))
}
