// Package script runs scripted typing scenarios: YAML playlists of
// animation steps executed back-to-back against a single sink.
package script

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/isbosykh/typist/internal/config"
	"github.com/isbosykh/typist/internal/engine"
)

// Scenario defines a scripted animation sequence.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep is a single step: either a named preset or an inline
// configuration, plus an optional pause before the next step. Looping
// steps are rejected since they would never hand over to the next one.
type ScenarioStep struct {
	Preset        string `yaml:"preset,omitempty"`
	config.Config `yaml:",inline"`
	PauseMs       int `yaml:"pause_ms"`
}

// LoadScenario loads a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, err
	}
	return &scenario, nil
}

// resolve turns a step into a full configuration, preset values first,
// inline fields overriding.
func (s *ScenarioStep) resolve() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if s.Preset != "" {
		p := config.GetPreset(s.Preset)
		if p == nil {
			return nil, fmt.Errorf("script: unknown preset %q", s.Preset)
		}
		*cfg = *p
	}
	if len(s.Strings) > 0 {
		cfg.Strings = s.Strings
	}
	if s.TypeSpeedMs > 0 {
		cfg.TypeSpeedMs = s.TypeSpeedMs
	}
	if s.BackSpeedMs > 0 {
		cfg.BackSpeedMs = s.BackSpeedMs
	}
	if s.BackDelayMs > 0 {
		cfg.BackDelayMs = s.BackDelayMs
	}
	if s.StartDelayMs > 0 {
		cfg.StartDelayMs = s.StartDelayMs
	}
	if s.Curvature != "" {
		cfg.Curvature = s.Curvature
	}
	if s.CursorChar != "" {
		cfg.CursorChar = s.CursorChar
	}
	if s.ShowCursor != nil {
		cfg.ShowCursor = s.ShowCursor
	}
	// Steps must terminate.
	cfg.Loop = false
	return cfg, nil
}

// RunScenario executes all steps sequentially, waiting for each animation
// to complete before starting the next. Extra engine options (e.g. an
// observer) are applied to every step.
func RunScenario(ctx context.Context, scenario *Scenario, sink engine.TextSink, presenter engine.CursorPresenter, extra ...engine.Option) error {
	for i, step := range scenario.Steps {
		cfg, err := step.resolve()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
		if len(cfg.Strings) == 0 {
			return fmt.Errorf("step %d: no strings", i+1)
		}

		opts, err := cfg.EngineOptions()
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		done := make(chan struct{})
		opts = append(opts, extra...)
		opts = append(opts, engine.OnComplete(func() { close(done) }))

		eng, err := engine.New(sink, presenter, opts...)
		if err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}

		select {
		case <-done:
			eng.Destroy()
		case <-ctx.Done():
			eng.Destroy()
			return ctx.Err()
		}

		if step.PauseMs > 0 {
			select {
			case <-time.After(time.Duration(step.PauseMs) * time.Millisecond):
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
	return nil
}
