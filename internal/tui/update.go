package tui

import (
	"fmt"
	"log/slog"

	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/filieres/internal/tui/filiereform"
	"github.com/thenoetrevino/filieres/internal/tui/huhforms"
	"github.com/thenoetrevino/filieres/internal/tui/notifications"
)

// Update handles all messages and updates the model accordingly
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.form != nil {
			m.form.SetWidth(m.formWidth())
		}
		return m, nil

	case filieresLoadedMsg:
		if msg.err != nil {
			slog.Error("Error reloading filieres", "error", msg.err)
			m.notify(notifications.Error, msg.err.Error())
			return m, nil
		}
		m.setFilieres(msg.filieres)
		return m, nil

	case filiereform.SaveResultMsg:
		return m.handleSaveResult(msg)

	case formClosedMsg:
		if m.form != nil && m.form.ID() == msg.formID {
			m.closeForm()
		}
		return m, nil

	case deleteResultMsg:
		if msg.err != nil {
			slog.Error("Error deleting filiere", "code", msg.code, "error", msg.err)
			m.notify(notifications.Error, msg.err.Error())
			return m, nil
		}
		m.notify(notifications.Info, fmt.Sprintf("Filière %s supprimée", msg.code))
		return m, loadCmd(m.ctx, m.App.FiliereService)

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		switch m.mode {
		case FormMode:
			return m.updateForm(msg)
		case DeleteConfirmMode:
			return m.updateDeleteConfirm(msg)
		case SearchMode:
			return m.updateSearch(msg)
		default:
			return m.updateList(msg)
		}
	}

	// spinner ticks, cursor blinks and huh internals
	switch m.mode {
	case FormMode:
		return m.updateForm(msg)
	case DeleteConfirmMode:
		return m.updateDeleteConfirm(msg)
	}
	return m, nil
}

// handleSaveResult routes a save outcome to the form that started it. A
// result from a form that is no longer open is dropped, except that a
// successful one still refreshes the list.
func (m Model) handleSaveResult(msg filiereform.SaveResultMsg) (tea.Model, tea.Cmd) {
	if m.form == nil || m.form.ID() != msg.FormID {
		slog.Debug("Dropping save result of a closed form", "form", msg.FormID, "error", msg.Err)
		if msg.Err == nil {
			return m, loadCmd(m.ctx, m.App.FiliereService)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	if msg.Err != nil {
		return m, cmd
	}

	verb := "ajoutée"
	if msg.Record.HasID() {
		verb = "mise à jour"
	}
	m.closeForm()
	m.notify(notifications.Info, fmt.Sprintf("Filière %s %s", msg.Record.CodeFiliere, verb))
	return m, loadCmd(m.ctx, m.App.FiliereService)
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form == nil {
		m.mode = ListMode
		return m, nil
	}
	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch msg.String() {
	case km.Quit:
		return m, tea.Quit
	case km.NextItem, "down":
		if m.selected < len(m.visible)-1 {
			m.selected++
		}
	case km.PrevItem, "up":
		if m.selected > 0 {
			m.selected--
		}
	case "home", "g":
		m.selected = 0
	case "end", "G":
		m.selected = max(len(m.visible)-1, 0)
	case km.AddFiliere:
		return m, m.openForm(nil)
	case km.EditFiliere, "enter":
		if f := m.Selected(); f != nil {
			return m, m.openForm(f)
		}
	case km.DeleteFiliere:
		if m.Selected() != nil {
			return m, m.openDeleteConfirm()
		}
	case km.Search:
		m.mode = SearchMode
		m.search.SetValue(m.query)
		return m, m.search.Focus()
	case km.Reload:
		m.notification = nil
		return m, loadCmd(m.ctx, m.App.FiliereService)
	case "esc":
		if m.query != "" {
			m.query = ""
			m.applyFilter()
		}
		m.notification = nil
	}
	return m, nil
}

func (m Model) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.query = ""
		m.search.SetValue("")
		m.search.Blur()
		m.mode = ListMode
		m.applyFilter()
		return m, nil
	case "enter":
		m.search.Blur()
		m.mode = ListMode
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if q := m.search.Value(); q != m.query {
		m.query = q
		m.selected = 0
		m.applyFilter()
	}
	return m, cmd
}

func (m *Model) openDeleteConfirm() tea.Cmd {
	m.pendingDelete = m.Selected()
	m.confirmDelete = new(bool)
	m.confirm = huhforms.DeleteFiliereForm(m.pendingDelete, m.confirmDelete, m.Config.ColorScheme)
	m.mode = DeleteConfirmMode
	m.notification = nil
	return m.confirm.Init()
}

func (m *Model) closeDeleteConfirm() {
	m.confirm = nil
	m.confirmDelete = nil
	m.pendingDelete = nil
	m.mode = ListMode
}

// updateDeleteConfirm drives the huh confirmation. y and n answer directly,
// esc backs out.
func (m Model) updateDeleteConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm == nil || m.pendingDelete == nil {
		m.closeDeleteConfirm()
		return m, nil
	}

	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "esc", "n", "N":
			m.closeDeleteConfirm()
			return m, nil
		case "y", "Y":
			*m.confirmDelete = true
			m.confirm.State = huh.StateCompleted
			return m.finishDeleteConfirm()
		}
	}

	model, cmd := m.confirm.Update(msg)
	if form, ok := model.(*huh.Form); ok {
		m.confirm = form
	}

	switch m.confirm.State {
	case huh.StateCompleted:
		return m.finishDeleteConfirm()
	case huh.StateAborted:
		m.closeDeleteConfirm()
		return m, nil
	}
	return m, cmd
}

func (m Model) finishDeleteConfirm() (tea.Model, tea.Cmd) {
	target := m.pendingDelete
	confirmed := m.confirmDelete != nil && *m.confirmDelete
	m.closeDeleteConfirm()
	if !confirmed {
		return m, nil
	}
	return m, deleteCmd(m.ctx, m.App.FiliereService, target)
}
