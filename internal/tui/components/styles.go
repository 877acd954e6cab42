// Package components provides the rendering pieces of the list view.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/config/colors"
	"github.com/thenoetrevino/filieres/internal/tui/theme"
)

var (
	// PanelStyle frames the list and the detail pane
	PanelStyle lipgloss.Style

	// TitleStyle defines the appearance of panel titles
	TitleStyle lipgloss.Style

	// ItemStyle and SelectedItemStyle render list rows
	ItemStyle         lipgloss.Style
	SelectedItemStyle lipgloss.Style

	// SubtleStyle renders muted text such as empty states and hints
	SubtleStyle lipgloss.Style

	// DeleteConfirmBoxStyle defines the base style for deletion confirmations (red border)
	DeleteConfirmBoxStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(cs colors.ColorScheme) {
	theme.Init(cs)

	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cs.Border)).
		Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Title))

	ItemStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Normal))

	SelectedItemStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Accent)).
		Background(lipgloss.Color(cs.SelectedBg))

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Subtle)).
		Italic(true)

	DeleteConfirmBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cs.Delete)).
		Padding(1, 2)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Subtle))
}
