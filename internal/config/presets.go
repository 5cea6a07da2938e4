package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Strings: []string{
			"Hello, world.",
			"This is a typewriter.",
			"One character at a time.",
		},
		TypeSpeedMs: 50, BackSpeedMs: 25, BackDelayMs: 1000,
		Curvature: "sine", Loop: true,
	},
	"human": {
		Strings: []string{
			"typing like a person would,",
			"slowing into every sentence,",
			"speeding up in the middle.",
		},
		TypeSpeedMs: 70, BackSpeedMs: 30, BackDelayMs: 1500,
		Curvature: "bezier", Loop: true,
	},
	"rapid": {
		Strings: []string{
			"no hesitation",
			"no easing",
			"just output",
		},
		TypeSpeedMs: 15, BackSpeedMs: 10, BackDelayMs: 400,
		Curvature: "linear", Loop: true,
	},
	"dramatic": {
		Strings: []string{
			"it begins slowly...",
			"then all at once.",
		},
		TypeSpeedMs: 90, BackSpeedMs: 35, BackDelayMs: 2000,
		Curvature: "exponential", Loop: true, StartDelayMs: 500,
	},
	"terminal": {
		Strings: []string{
			"$ make build",
			"$ make test",
			"$ make deploy",
		},
		TypeSpeedMs: 35, BackSpeedMs: 20, BackDelayMs: 800,
		Curvature: "linear", CursorChar: "█", Loop: true,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
