// Package styles renders human-readable command output.
package styles

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/config/colors"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
)

var (
	// Card styles
	CardStyle lipgloss.Style
	CardWidth = 60

	// Text styles
	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style
	LabelStyle    lipgloss.Style // For field labels like "Secteur :"
	ValueStyle    lipgloss.Style

	// Status styles
	SuccessStyle lipgloss.Style
	ErrorStyle   lipgloss.Style
)

func init() {
	Init(config.DefaultColorScheme())
}

// Init initializes all CLI styles with the given color scheme
func Init(cs colors.ColorScheme) {
	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(cs.Accent)).
		Padding(0, 2).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Title))

	SubtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Subtle))

	LabelStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.Accent))

	ValueStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(cs.Normal))

	SuccessStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.InfoFg)).
		Background(lipgloss.Color(cs.InfoBg)).
		Padding(0, 1)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(cs.ErrorFg)).
		Background(lipgloss.Color(cs.ErrorBg)).
		Padding(0, 1)
}

// RenderFiliereCard renders one filière as a bordered card
func RenderFiliereCard(f *models.Filiere) string {
	groupes := filiere.JoinGroupes(f.Groupes)
	if groupes == "" {
		groupes = SubtitleStyle.Render("aucun")
	}

	lines := []string{
		TitleStyle.Render(f.CodeFiliere) + "  " + SubtitleStyle.Render(f.ID),
		field("Intitulé", f.IntituleFiliere),
		field("Secteur", f.Secteur),
		field("Groupes", groupes),
	}
	return CardStyle.Render(strings.Join(lines, "\n"))
}

// RenderFiliereRow renders one filière on a single line for listings
func RenderFiliereRow(f *models.Filiere) string {
	return fmt.Sprintf("%s  %s  %s  %s",
		TitleStyle.Render(fmt.Sprintf("%-10s", f.CodeFiliere)),
		ValueStyle.Render(f.IntituleFiliere),
		SubtitleStyle.Render("["+f.Secteur+"]"),
		SubtitleStyle.Render(f.ID))
}

func field(label, value string) string {
	return LabelStyle.Render(label+" :") + " " + ValueStyle.Render(value)
}
