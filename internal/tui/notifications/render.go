// Package notifications renders the one-line status messages of the list view.
package notifications

import (
	"charm.land/lipgloss/v2"
)

// Notification is a message shown in the status line until the next action
type Notification struct {
	Severity Severity
	Message  string
}

// RenderInline renders a compact inline notification
func RenderInline(n Notification) string {
	style := n.Severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Padding(0, 1).
		Render(style.icon + " " + n.Message)
}
