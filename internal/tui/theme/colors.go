// Package theme holds the active color values shared by the TUI renderers.
package theme

import "github.com/thenoetrevino/filieres/internal/config/colors"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight  string
	Subtle     string
	Normal     string
	Title      string
	Create     string
	Edit       string
	Delete     string
	Border     string
	SelectedBg string
	InfoFg     string
	InfoBg     string
	ErrorFg    string
	ErrorBg    string
)

// Init initializes the theme colors from the given color scheme
func Init(cs colors.ColorScheme) {
	Highlight = cs.Accent
	Subtle = cs.Subtle
	Normal = cs.Normal
	Title = cs.Title
	Create = cs.Create
	Edit = cs.Edit
	Delete = cs.Delete
	Border = cs.Border
	SelectedBg = cs.SelectedBg
	InfoFg = cs.InfoFg
	InfoBg = cs.InfoBg
	ErrorFg = cs.ErrorFg
	ErrorBg = cs.ErrorBg
}
