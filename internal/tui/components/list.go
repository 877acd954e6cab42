package components

import (
	"fmt"

	"github.com/thenoetrevino/filieres/internal/models"
)

// ListProps describes the visible slice of the filière list
type ListProps struct {
	Filieres []*models.Filiere
	Selected int
	Height   int
	Width    int
	Query    string
}

// RenderList renders the list panel content: a header with the count and
// the rows that fit in Height, scrolled so that the selection stays visible.
//
// Layout:
//
//	Filières ({count})
//	▲ (if scrolled down)
//	{rows}
//	▼ (if more rows below)
func RenderList(props ListProps) string {
	header := fmt.Sprintf("Filières (%d)", len(props.Filieres))
	if props.Query != "" {
		header += fmt.Sprintf(" · « %s »", props.Query)
	}
	content := TitleStyle.Render(header) + "\n"

	if len(props.Filieres) == 0 {
		if props.Query != "" {
			return content + SubtleStyle.Render("Aucun résultat")
		}
		return content + SubtleStyle.Render("Aucune filière, appuyez sur a pour en ajouter une")
	}

	// header and two indicator lines
	visible := max(props.Height-3, 1)
	offset := ScrollOffset(props.Selected, visible, len(props.Filieres))

	if offset > 0 {
		content += SubtleStyle.Render("▲") + "\n"
	} else {
		content += "\n"
	}

	end := min(offset+visible, len(props.Filieres))
	for i := offset; i < end; i++ {
		content += renderRow(props.Filieres[i], i == props.Selected, props.Width) + "\n"
	}

	if end < len(props.Filieres) {
		content += SubtleStyle.Render("▼")
	}
	return content
}

// ScrollOffset returns the first visible index keeping selected in view
func ScrollOffset(selected, visible, total int) int {
	if total <= visible || selected < visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}

func renderRow(f *models.Filiere, selected bool, width int) string {
	text := fmt.Sprintf("%-10s %s", f.CodeFiliere, f.IntituleFiliere)
	style := ItemStyle
	prefix := "  "
	if selected {
		style = SelectedItemStyle
		prefix = "▸ "
	}
	if width > 0 {
		style = style.MaxWidth(width)
	}
	return style.Render(prefix + text)
}
