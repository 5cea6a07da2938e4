package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.TypeSpeedMs != 50 {
		t.Errorf("expected type speed 50ms, got %d", cfg.TypeSpeedMs)
	}
	if cfg.BackSpeedMs != 25 {
		t.Errorf("expected back speed 25ms, got %d", cfg.BackSpeedMs)
	}
	if cfg.Curvature != "sine" {
		t.Errorf("expected sine curvature, got %s", cfg.Curvature)
	}
	if !cfg.CursorEnabled() {
		t.Error("cursor should be enabled by default")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typist.yaml")
	data := []byte("strings:\n  - hello\ntype_speed_ms: 80\ncurvature: linear\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.TypeSpeedMs != 80 {
		t.Errorf("expected type speed 80, got %d", cfg.TypeSpeedMs)
	}
	if cfg.BackSpeedMs != DefaultBackSpeedMs {
		t.Errorf("unset field should keep default, got %d", cfg.BackSpeedMs)
	}
	if len(cfg.Strings) != 1 || cfg.Strings[0] != "hello" {
		t.Errorf("unexpected strings: %v", cfg.Strings)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "typist.yaml")
	cfg := DefaultConfig()
	cfg.Strings = []string{"a", "b"}
	cfg.Loop = true

	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if !loaded.Loop {
		t.Error("loop flag lost in round trip")
	}
	if len(loaded.Strings) != 2 {
		t.Errorf("strings lost in round trip: %v", loaded.Strings)
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Strings = []string{"x"}

	opts, err := cfg.EngineOptions()
	if err != nil {
		t.Fatalf("engine options: %v", err)
	}
	if len(opts) == 0 {
		t.Fatal("expected options")
	}
}

func TestEngineOptionsBadCurvature(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Curvature = "wobbly"

	if _, err := cfg.EngineOptions(); err == nil {
		t.Error("expected error for unknown curvature")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("classic")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if len(cfg.Strings) == 0 {
		t.Error("preset should carry strings")
	}

	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Fatal("expected presets")
	}
	for _, name := range names {
		if _, err := GetPreset(name).EngineOptions(); err != nil {
			t.Errorf("preset %s does not convert: %v", name, err)
		}
	}
}
