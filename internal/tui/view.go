package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/tui/components"
	"github.com/thenoetrevino/filieres/internal/tui/notifications"
)

// View renders the current state of the application
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true
	view.Content = m.render()
	return view
}

func (m Model) render() string {
	if m.width == 0 {
		return "Chargement..."
	}

	switch m.mode {
	case FormMode:
		if m.form != nil {
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.form.View())
		}
	case DeleteConfirmMode:
		if m.confirm != nil {
			box := components.DeleteConfirmBoxStyle.Width(min(60, m.width-4)).Render(m.confirm.View())
			return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.renderPanels(), m.renderStatusBar())
}

func (m Model) renderPanels() string {
	// status bar line and panel borders
	panelHeight := max(m.height-3, 5)
	listWidth := max(m.width*2/5, 30)
	detailWidth := max(m.width-listWidth-4, 20)

	list := components.RenderList(components.ListProps{
		Filieres: m.visible,
		Selected: m.selected,
		Height:   panelHeight - 2,
		Width:    listWidth - 4,
		Query:    m.query,
	})
	detail := components.RenderDetail(components.DetailProps{
		Filiere: m.Selected(),
		Width:   detailWidth - 4,
	})

	listPanel := components.PanelStyle.Width(listWidth).Height(panelHeight).Render(list)
	detailPanel := components.PanelStyle.Width(detailWidth).Height(panelHeight).Render(detail)
	return lipgloss.JoinHorizontal(lipgloss.Top, listPanel, detailPanel)
}

func (m Model) renderStatusBar() string {
	km := m.Config.KeyMappings

	var left string
	switch {
	case m.mode == SearchMode:
		left = m.search.View()
	case m.notification != nil:
		left = notifications.RenderInline(*m.notification)
	default:
		left = components.StatusBarStyle.Render(fmt.Sprintf("%d filière(s)", len(m.filieres)))
	}

	help := fmt.Sprintf("%s ajouter · %s modifier · %s supprimer · %s rechercher · %s recharger · %s quitter",
		km.AddFiliere, km.EditFiliere, km.DeleteFiliere, km.Search, km.Reload, km.Quit)
	if m.mode == SearchMode {
		help = "entrée valider · échap effacer"
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width: m.width,
		Left:  left,
		Right: help,
	})
}
