package filiereform

import "github.com/thenoetrevino/filieres/internal/config"

// KeyMap holds the key strings (as reported by tea.KeyPressMsg.String) that
// drive the form.
type KeyMap struct {
	Save    string
	Cancel  string
	Next    string
	Prev    string
	Confirm string
}

// DefaultKeyMap returns the bindings used when no configuration is supplied
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Save:    "ctrl+s",
		Cancel:  "esc",
		Next:    "tab",
		Prev:    "shift+tab",
		Confirm: "enter",
	}
}

// KeyMapFromConfig applies the configurable form keys on top of the defaults
func KeyMapFromConfig(km config.KeyMappings) KeyMap {
	keys := DefaultKeyMap()
	if km.SaveForm != "" {
		keys.Save = km.SaveForm
	}
	if km.CancelForm != "" {
		keys.Cancel = km.CancelForm
	}
	return keys
}
