// Package tui is the terminal front-end for the typing engine: a preset
// menu plus a live animation view, built on bubbletea.
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/isbosykh/typist/internal/config"
	"github.com/isbosykh/typist/internal/engine"
)

var presetInfo = map[string]string{
	"classic":  "the default typewriter",
	"human":    "eased, hesitant typing",
	"rapid":    "constant-speed burst",
	"dramatic": "slow exponential build",
	"terminal": "shell session with block cursor",
}

const (
	stateMenu = iota
	stateRunning
)

// startedMsg delivers the engine built on a command goroutine. Building
// it there, not in Update, keeps the engine's synchronous first step off
// the program's event loop.
type startedMsg struct {
	eng *engine.Engine
	err error
}

type model struct {
	state   int
	cursor  int
	presets []string

	sink  *Sink
	eng   *engine.Engine
	cfg   *config.Config
	extra []engine.Option

	selected      string
	text          string
	cursorVisible bool
	strIdx        int
	done          bool
	oneShot       bool
	err           error

	width, height int
}

func newModel(sink *Sink) model {
	return model{
		presets:       config.ListPresets(),
		sink:          sink,
		cursorVisible: true,
		width:         80,
		height:        24,
	}
}

func (m model) Init() tea.Cmd {
	if m.oneShot {
		return m.startCmd()
	}
	return nil
}

// startCmd builds the engine against the bound sink, wiring engine
// callbacks back into program messages.
func (m model) startCmd() tea.Cmd {
	sink := m.sink
	cfg := m.cfg
	extra := m.extra
	return func() tea.Msg {
		opts, err := cfg.EngineOptions()
		if err != nil {
			return startedMsg{err: err}
		}
		opts = append(opts, extra...)
		opts = append(opts,
			engine.OnStringStart(func(i int) { sink.emit(StringMsg{Index: i}) }),
			engine.OnComplete(func() { sink.emit(DoneMsg{}) }),
		)
		eng, err := engine.New(sink, sink, opts...)
		return startedMsg{eng: eng, err: err}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case startedMsg:
		m.eng, m.err = msg.eng, msg.err
		if m.err != nil && m.oneShot {
			return m, tea.Quit
		}
	case TextMsg:
		m.text = string(msg)
	case CursorMsg:
		m.cursorVisible = bool(msg)
	case StringMsg:
		m.strIdx = msg.Index
	case DoneMsg:
		m.done = true
		if m.oneShot {
			m.teardown()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.state {
	case stateMenu:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.presets)-1 {
				m.cursor++
			}
		case "enter", " ":
			name := m.presets[m.cursor]
			cfg := config.GetPreset(name)
			if cfg == nil {
				m.err = fmt.Errorf("unknown preset %q", name)
				return m, nil
			}
			m.selected = name
			m.cfg = cfg
			m.state = stateRunning
			m.text = ""
			m.strIdx = 0
			m.done = false
			return m, m.startCmd()
		}
	case stateRunning:
		switch msg.String() {
		case "q", "ctrl+c":
			m.teardown()
			return m, tea.Quit
		case "r":
			if m.eng != nil {
				m.eng.Start()
				m.done = false
			}
		case "s":
			if m.eng != nil {
				m.eng.Stop()
			}
		case "esc", "b":
			m.teardown()
			if m.oneShot {
				return m, tea.Quit
			}
			m.state = stateMenu
			m.text = ""
			m.done = false
		}
	}
	return m, nil
}

func (m *model) teardown() {
	if m.eng != nil {
		m.eng.Destroy()
		m.eng = nil
	}
}

func (m model) View() string {
	if m.err != nil {
		return dim.Render("error: ") + m.err.Error() + "\n"
	}
	switch m.state {
	case stateMenu:
		return m.menuView()
	default:
		return m.liveView()
	}
}

func (m model) menuView() string {
	var b strings.Builder
	b.WriteString("\n  " + cyan.Bold(true).Render("typist") + dim.Render("  pick a preset") + "\n\n")
	for i, name := range m.presets {
		marker := "  "
		line := white.Render(name)
		if i == m.cursor {
			marker = magenta.Render("> ")
			line = magenta.Bold(true).Render(name)
		}
		info := ""
		if desc, ok := presetInfo[name]; ok {
			info = dimmer.Render("  " + desc)
		}
		b.WriteString(fmt.Sprintf("  %s%s%s\n", marker, line, info))
	}
	b.WriteString("\n  " + dim.Render("j/k move · enter select · q quit") + "\n")
	return b.String()
}

func (m model) liveView() string {
	cursorChar := ""
	if m.cfg != nil && m.cfg.CursorEnabled() {
		cursorChar = m.cfg.CursorChar
		if cursorChar == "" {
			cursorChar = config.DefaultCursorChar
		}
		if !m.cursorVisible {
			cursorChar = strings.Repeat(" ", len([]rune(cursorChar)))
		}
	}

	line := typedStyle.Render(m.text) + cursorStyle.Render(cursorChar)
	panel := panelStyle.Width(maxInt(20, m.width-8)).Render(line)

	status := green.Render("typing")
	if m.done {
		status = yellow.Render("done")
	} else if m.eng != nil && !m.eng.IsRunning() {
		status = dim.Render("stopped")
	}

	total := 0
	if m.cfg != nil {
		total = len(m.cfg.Strings)
	}

	var b strings.Builder
	b.WriteString("\n  " + cyan.Bold(true).Render("typist"))
	if m.selected != "" {
		b.WriteString(dim.Render("  " + m.selected))
	}
	b.WriteString("\n\n")
	b.WriteString("  " + panel + "\n\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", status,
		dim.Render(fmt.Sprintf("string %d/%d", m.strIdx+1, total))))
	b.WriteString("\n  " + dim.Render("r restart · s stop · b back · q quit") + "\n")
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RunInteractive starts the preset menu.
func RunInteractive() error {
	sink := NewSink()
	p := tea.NewProgram(newModel(sink), tea.WithAltScreen())
	sink.Bind(p)
	_, err := p.Run()
	return err
}

// Run animates a single configuration and returns when it completes (or,
// for looping configurations, when the user quits). Extra engine options
// let the caller attach a trace observer.
func Run(cfg *config.Config, extra ...engine.Option) error {
	sink := NewSink()
	m := newModel(sink)
	m.cfg = cfg
	m.oneShot = true
	m.state = stateRunning

	p := tea.NewProgram(m, tea.WithAltScreen())
	sink.Bind(p)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok && fm.err != nil {
		return fm.err
	}
	return nil
}
