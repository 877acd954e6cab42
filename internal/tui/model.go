// Package tui implements the interactive filière browser: a list with a
// detail pane that opens the add/edit form and a delete confirmation.
package tui

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"
	"github.com/thenoetrevino/filieres/internal/app"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
	"github.com/thenoetrevino/filieres/internal/tui/components"
	"github.com/thenoetrevino/filieres/internal/tui/filiereform"
	"github.com/thenoetrevino/filieres/internal/tui/notifications"
)

// Mode is what the list view currently routes input to
type Mode int

const (
	ListMode Mode = iota
	FormMode
	DeleteConfirmMode
	SearchMode
)

// Model represents the application state for the TUI
type Model struct {
	ctx    context.Context
	App    *app.App
	Config *config.Config

	filieres []*models.Filiere
	visible  []*models.Filiere
	selected int
	mode     Mode

	form       *filiereform.Model
	lastFormID int
	formKeys   filiereform.KeyMap
	formStyles filiereform.Styles

	confirm       *huh.Form
	confirmDelete *bool
	pendingDelete *models.Filiere

	search textinput.Model
	query  string

	notification *notifications.Notification

	width  int
	height int
}

// InitialModel creates and initializes the TUI model with data from the database
func InitialModel(ctx context.Context, a *app.App, cfg *config.Config) Model {
	components.InitStyles(cfg.ColorScheme)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "code, intitulé, secteur ou groupe"

	m := Model{
		ctx:        ctx,
		App:        a,
		Config:     cfg,
		formKeys:   filiereform.KeyMapFromConfig(cfg.KeyMappings),
		formStyles: filiereform.NewStyles(cfg.ColorScheme),
		search:     search,
	}

	items, err := a.FiliereService.GetAllFilieres(ctx)
	if err != nil {
		slog.Error("Error loading filieres", "error", err)
		m.notify(notifications.Error, err.Error())
		items = []*models.Filiere{}
	}
	m.setFilieres(items)
	return m
}

// Init initializes the Bubble Tea application
func (m Model) Init() tea.Cmd {
	return nil
}

// Mode returns the current input mode
func (m Model) Mode() Mode { return m.mode }

// Form returns the open form, or nil
func (m Model) Form() *filiereform.Model { return m.form }

// Visible returns the filières shown with the current search query
func (m Model) Visible() []*models.Filiere { return m.visible }

// Selected returns the filière under the cursor, or nil
func (m Model) Selected() *models.Filiere {
	if m.selected < 0 || m.selected >= len(m.visible) {
		return nil
	}
	return m.visible[m.selected]
}

// Notification returns the current status message, or nil
func (m Model) Notification() *notifications.Notification { return m.notification }

func (m *Model) notify(severity notifications.Severity, message string) {
	slog.Debug("Notification", "severity", severity.String(), "message", message)
	m.notification = &notifications.Notification{Severity: severity, Message: message}
}

// setFilieres replaces the loaded list, keeping the cursor on the same record
// when it is still present.
func (m *Model) setFilieres(items []*models.Filiere) {
	var keep string
	if cur := m.Selected(); cur != nil {
		keep = cur.ID
	}
	m.filieres = items
	m.applyFilter()

	for i, f := range m.visible {
		if keep != "" && f.ID == keep {
			m.selected = i
			return
		}
	}
	m.clampSelection()
}

func (m *Model) applyFilter() {
	if m.query == "" {
		m.visible = m.filieres
	} else {
		m.visible = make([]*models.Filiere, 0, len(m.filieres))
		for _, f := range m.filieres {
			if filiere.Matches(f, m.query) {
				m.visible = append(m.visible, f)
			}
		}
	}
	m.clampSelection()
}

func (m *Model) clampSelection() {
	if m.selected >= len(m.visible) {
		m.selected = len(m.visible) - 1
	}
	if m.selected < 0 {
		m.selected = 0
	}
}

// openForm mounts a fresh form instance. f is nil for a creation.
func (m *Model) openForm(f *models.Filiere) tea.Cmd {
	m.lastFormID++
	id := m.lastFormID

	m.form = filiereform.New(id, filiereform.Props{
		Filiere:    f,
		IsEditMode: f != nil,
		OnSave:     saveFunc(m.App.FiliereService),
		OnClose: func() tea.Cmd {
			return func() tea.Msg { return formClosedMsg{formID: id} }
		},
		Ctx: m.ctx,
	}, m.formKeys, m.formStyles)
	m.form.SetWidth(m.formWidth())

	m.mode = FormMode
	m.notification = nil
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.mode = ListMode
}

func (m Model) formWidth() int {
	if m.width == 0 {
		return 60
	}
	return min(max(m.width/2, 50), m.width-4)
}

// saveFunc adapts the service to the form's save contract: records with an
// id are updated, the others created.
func saveFunc(svc filiereservice.Service) filiereform.SaveFunc {
	return func(ctx context.Context, f models.Filiere) error {
		if f.HasID() {
			_, err := svc.UpdateFiliere(ctx, filiereservice.FromRecord(f))
			return err
		}
		_, err := svc.CreateFiliere(ctx, filiereservice.CreateFiliereRequest{
			CodeFiliere:     f.CodeFiliere,
			IntituleFiliere: f.IntituleFiliere,
			Secteur:         f.Secteur,
			Groupes:         f.Groupes,
		})
		return err
	}
}
