package config

import (
	"fmt"
	"sort"
)

// Preset is a named set of board rules.
type Preset struct {
	Name        string
	Description string
	Size        int
	ProbFour    float64 // Probability of spawning 4 instead of 2 (0.0-1.0)
	Target      int
}

// Presets lists the built-in rule sets. Board size, the chance of a 4 and
// the target tile vary per preset.
var Presets = map[string]Preset{
	"classic": {Name: "classic", Description: "4x4, target 2048", Size: 4, ProbFour: 0.10, Target: 2048},
	"relaxed": {Name: "relaxed", Description: "4x4, only twos, target 1024", Size: 4, ProbFour: 0.0, Target: 1024},
	"hard":    {Name: "hard", Description: "4x4, frequent fours, target 4096", Size: 4, ProbFour: 0.25, Target: 4096},
	"big":     {Name: "big", Description: "5x5, target 8192", Size: 5, ProbFour: 0.10, Target: 8192},
	"tiny":    {Name: "tiny", Description: "3x3, target 256", Size: 3, ProbFour: 0.10, Target: 256},
}

// PresetNames returns the names of all presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ApplyPreset modifies the board section based on a named preset.
// An empty name leaves the config untouched.
func ApplyPreset(cfg *Config, name string) error {
	if name == "" {
		return nil
	}
	p, ok := Presets[name]
	if !ok {
		return fmt.Errorf("config: unknown preset %q (available: %v)", name, PresetNames())
	}
	cfg.Board.Size = p.Size
	cfg.Board.ProbFour = p.ProbFour
	cfg.Board.Target = p.Target
	return nil
}
