package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	"github.com/thenoetrevino/filieres/internal/models"
)

type DetailProps struct {
	Filiere *models.Filiere
	Width   int
}

// Cache Glamour renderers by width to avoid expensive re-creation
var (
	rendererCache sync.Map // map[int]*glamour.TermRenderer
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// DetailMarkdown builds the markdown document describing a filière
func DetailMarkdown(f *models.Filiere) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", f.CodeFiliere)
	fmt.Fprintf(&b, "**Intitulé** : %s\n\n", f.IntituleFiliere)
	fmt.Fprintf(&b, "**Secteur** : %s\n\n", f.Secteur)

	b.WriteString("## Groupes\n\n")
	if len(f.Groupes) == 0 {
		b.WriteString("_Aucun groupe_\n")
	}
	for _, g := range f.Groupes {
		fmt.Fprintf(&b, "- %s\n", g)
	}

	if !f.UpdatedAt.IsZero() {
		fmt.Fprintf(&b, "\n_Mis à jour le %s_\n", f.UpdatedAt.Local().Format("02/01/2006 15:04"))
	}
	return b.String()
}

// RenderDetail renders the selected filière, falling back to the raw
// markdown when glamour cannot render it.
func RenderDetail(props DetailProps) string {
	if props.Filiere == nil {
		return SubtleStyle.Render("Aucune filière sélectionnée")
	}

	md := DetailMarkdown(props.Filiere)
	renderer, err := getRenderer(max(props.Width, 20))
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimSpace(rendered)
}
