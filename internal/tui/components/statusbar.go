package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps is the content of the bottom line
type StatusBarProps struct {
	Width int
	Left  string
	Right string
}

// RenderStatusBar pins Right to the right edge. Left is cut when both do
// not fit on one line.
func RenderStatusBar(props StatusBarProps) string {
	right := StatusBarStyle.Render(props.Right)
	left := props.Left

	if room := props.Width - lipgloss.Width(right) - 1; room > 0 && lipgloss.Width(left) > room {
		left = lipgloss.NewStyle().MaxWidth(room).Render(left)
	}

	gap := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}
