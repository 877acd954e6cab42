package notifications

import "github.com/thenoetrevino/filieres/internal/tui/theme"

// Severity selects the icon and colors of a notification
type Severity int

const (
	Info Severity = iota
	Error
)

func (s Severity) String() string {
	if s == Error {
		return "error"
	}
	return "info"
}

type style struct {
	icon       string
	foreground string
	background string
}

// style reads the theme at render time so a reloaded theme applies at once
func (s Severity) style() style {
	if s == Error {
		return style{icon: "✕", foreground: theme.ErrorFg, background: theme.ErrorBg}
	}
	return style{icon: "✓", foreground: theme.InfoFg, background: theme.InfoBg}
}
