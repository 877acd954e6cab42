package config

import "github.com/thenoetrevino/filieres/internal/config/colors"

// DefaultColorScheme returns the palette used when the config names none
func DefaultColorScheme() colors.ColorScheme {
	return *colors.Default()
}

// PresetColorScheme returns a named palette; unknown names give the default
func PresetColorScheme(name string) colors.ColorScheme {
	return *colors.GetPreset(name)
}
