package components

import (
	g "maragu.dev/gomponents"
)

// Preset selects one of the two section variants. It is chosen from
// configuration when the page is composed, never from the content.
type Preset string

const (
	PresetMinimal   Preset = "minimal"
	PresetDecorated Preset = "decorated"
)

// ParsePreset maps a configuration value to a Preset, defaulting to decorated.
func ParsePreset(s string) Preset {
	if Preset(s) == PresetMinimal {
		return PresetMinimal
	}
	return PresetDecorated
}

func (p Preset) Decorated() bool {
	return p != PresetMinimal
}

// Site is the per-deployment presentation settings shared by every page.
type Site struct {
	Name   string
	Preset Preset
}

func (s Site) name() string {
	if s.Name == "" {
		return "Intellect"
	}
	return s.Name
}

// nothing renders no output.
func nothing() g.Node {
	return g.Group(nil)
}

// orDefaults returns items, or the built-in dataset when items is empty.
func orDefaults[T any](items []T, defaults func() []T) []T {
	if len(items) > 0 {
		return items
	}
	return defaults()
}
