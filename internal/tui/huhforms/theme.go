// Package huhforms builds the huh dialogs of the list view.
package huhforms

import (
	"charm.land/huh/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/config/colors"
)

// dangerTheme styles a destructive confirmation: border and focused button
// in the delete color, everything else from the configured palette.
func dangerTheme(cs colors.ColorScheme) huh.Theme {
	danger := lipgloss.Color(cs.Delete)
	subtle := lipgloss.Color(cs.Subtle)

	return huh.ThemeFunc(func(isDark bool) *huh.Styles {
		s := huh.ThemeBase(isDark)

		focused := &s.Focused
		focused.Base = focused.Base.BorderForeground(danger)
		focused.Title = focused.Title.Foreground(lipgloss.Color(cs.Title)).Bold(true)
		focused.Description = focused.Description.Foreground(subtle)
		focused.ErrorMessage = focused.ErrorMessage.Foreground(danger)
		focused.FocusedButton = focused.FocusedButton.
			Foreground(lipgloss.Color(cs.Normal)).
			Background(danger).
			Bold(true)
		focused.BlurredButton = focused.BlurredButton.
			Foreground(lipgloss.Color(cs.Normal)).
			Background(lipgloss.Color(cs.SelectedBg))

		// a single-field dialog is never blurred, keep both identical
		s.Blurred = s.Focused
		return s
	})
}
