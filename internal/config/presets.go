package config

import "sort"

var Presets = map[string]*Config{
	// the original visualizer: bubble sort, descending, slider at 30
	"classic": {
		Algorithm: "bubble", Order: "descending", Elements: "int",
		Speed: 30, Theme: "dark", Limit: 100,
	},
	"fast": {
		Algorithm: "bubble", Order: "ascending", Elements: "int",
		Speed: 195, Theme: "retro", Limit: 100,
	},
	"quick": {
		Algorithm: "randomized_quick", Order: "ascending", Elements: "int",
		Speed: 30, Theme: "minimal", Limit: 100,
	},
	"words": {
		Algorithm: "merge", Order: "ascending", Elements: "string",
		Speed: 30, Theme: "lavender", Limit: 100,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	if cfg.DataDir == "" {
		cfg.DataDir = DefaultDataDir
	}
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
