package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/isbosykh/typist/internal/curve"
	"github.com/isbosykh/typist/internal/engine"
)

const (
	DefaultTypeSpeedMs = 50
	DefaultBackSpeedMs = 25
	DefaultBackDelayMs = 1000
	DefaultCursorChar  = "|"
	DefaultCurvature   = "sine"
)

type Config struct {
	Strings      []string `yaml:"strings"`
	TypeSpeedMs  int      `yaml:"type_speed_ms"`
	BackSpeedMs  int      `yaml:"back_speed_ms"`
	StartDelayMs int      `yaml:"start_delay_ms"`
	BackDelayMs  int      `yaml:"back_delay_ms"`
	Loop         bool     `yaml:"loop"`
	ShowCursor   *bool    `yaml:"show_cursor,omitempty"`
	CursorChar   string   `yaml:"cursor_char"`
	Curvature    string   `yaml:"curvature"`
}

func DefaultConfig() *Config {
	show := true
	return &Config{
		TypeSpeedMs: DefaultTypeSpeedMs,
		BackSpeedMs: DefaultBackSpeedMs,
		BackDelayMs: DefaultBackDelayMs,
		ShowCursor:  &show,
		CursorChar:  DefaultCursorChar,
		Curvature:   DefaultCurvature,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// CursorEnabled resolves the tri-state show_cursor field; unset means on.
func (c *Config) CursorEnabled() bool {
	return c.ShowCursor == nil || *c.ShowCursor
}

// EngineOptions converts the file-level configuration into engine options.
func (c *Config) EngineOptions() ([]engine.Option, error) {
	name := c.Curvature
	if name == "" {
		name = DefaultCurvature
	}
	cv, err := curve.Parse(name)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	cursorChar := c.CursorChar
	if cursorChar == "" {
		cursorChar = DefaultCursorChar
	}

	return []engine.Option{
		engine.WithStrings(c.Strings...),
		engine.WithTypeSpeed(time.Duration(c.TypeSpeedMs) * time.Millisecond),
		engine.WithBackSpeed(time.Duration(c.BackSpeedMs) * time.Millisecond),
		engine.WithStartDelay(time.Duration(c.StartDelayMs) * time.Millisecond),
		engine.WithBackDelay(time.Duration(c.BackDelayMs) * time.Millisecond),
		engine.WithLoop(c.Loop),
		engine.WithCursor(c.CursorEnabled()),
		engine.WithCursorChar(cursorChar),
		engine.WithCurvature(cv),
	}, nil
}
