package filiereform

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/config/colors"
	"github.com/thenoetrevino/filieres/internal/filiere"
)

// Styles groups every style the form renders with
type Styles struct {
	CreateBox      lipgloss.Style
	EditBox        lipgloss.Style
	Title          lipgloss.Style
	Label          lipgloss.Style
	FieldError     lipgloss.Style
	Banner         lipgloss.Style
	Button         lipgloss.Style
	ActiveButton   lipgloss.Style
	DisabledButton lipgloss.Style
	Help           lipgloss.Style
}

// NewStyles builds the form styles from a color scheme
func NewStyles(cs colors.ColorScheme) Styles {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2)

	return Styles{
		CreateBox:  box.BorderForeground(lipgloss.Color(cs.Create)),
		EditBox:    box.BorderForeground(lipgloss.Color(cs.Edit)),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cs.Title)).MarginBottom(1),
		Label:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cs.Accent)),
		FieldError: lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Delete)),
		Banner: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.ErrorFg)).
			Background(lipgloss.Color(cs.ErrorBg)).
			Padding(0, 1),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Normal)).
			Padding(0, 2),
		ActiveButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color(cs.Accent)).
			Bold(true).
			Padding(0, 2),
		DisabledButton: lipgloss.NewStyle().
			Foreground(lipgloss.Color(cs.Subtle)).
			Padding(0, 2),
		Help: lipgloss.NewStyle().Foreground(lipgloss.Color(cs.Subtle)),
	}
}

// DefaultStyles uses the default color scheme
func DefaultStyles() Styles {
	return NewStyles(*colors.Default())
}

func (s Styles) box(mode filiere.Mode) lipgloss.Style {
	if mode == filiere.ModeEdit {
		return s.EditBox
	}
	return s.CreateBox
}
