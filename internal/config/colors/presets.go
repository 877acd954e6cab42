package colors

import (
	"maps"
	"slices"
)

// presets maps a preset name to its palette. "default" is the fallback for
// unknown names.
var presets = map[string]ColorScheme{
	"default": {
		Preset: "default",
		Accent: "#874BFD",
		Create: "#5FD75F", Edit: "#5F87D7", Delete: "#FF5F5F",
		Border: "#5F87D7", SelectedBg: "#3A3A3A",
		Title: "#D75FD7", Subtle: "#585858", Normal: "#D0D0D0",
		InfoFg: "#00AFFF", InfoBg: "#00005F",
		ErrorFg: "#FF0000", ErrorBg: "#5F0000",
	},
	"monochrome": {
		Preset: "monochrome",
		Accent: "#FFFFFF",
		Create: "#FFFFFF", Edit: "#FFFFFF", Delete: "#FFFFFF",
		Border: "#FFFFFF", SelectedBg: "#3A3A3A",
		Title: "#FFFFFF", Subtle: "#585858", Normal: "#D0D0D0",
		InfoFg: "#FFFFFF", InfoBg: "#1C1C1C",
		ErrorFg: "#FFFFFF", ErrorBg: "#585858",
	},
	// light terminals
	"campus": {
		Preset: "campus",
		Accent: "#00875F",
		Create: "#008700", Edit: "#005FAF", Delete: "#AF0000",
		Border: "#00875F", SelectedBg: "#D7D7D7",
		Title: "#AF5F00", Subtle: "#8A8A8A", Normal: "#262626",
		InfoFg: "#005FAF", InfoBg: "#D7EEFF",
		ErrorFg: "#AF0000", ErrorBg: "#FFD7D7",
	},
}

// Default returns the default color scheme (purple theme)
func Default() *ColorScheme { return GetPreset("default") }

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme { return GetPreset("monochrome") }

// GetPreset returns a copy of the named preset, or the default one
func GetPreset(name string) *ColorScheme {
	p, ok := presets[name]
	if !ok {
		p = presets["default"]
	}
	return &p
}

// PresetNames lists the known presets in sorted order
func PresetNames() []string {
	return slices.Sorted(maps.Keys(presets))
}
