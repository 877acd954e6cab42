package tui

import (
	"context"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/models"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// filieresLoadedMsg carries the result of a reload
type filieresLoadedMsg struct {
	filieres []*models.Filiere
	err      error
}

// formClosedMsg is emitted by a form's OnClose
type formClosedMsg struct {
	formID int
}

// deleteResultMsg reports the outcome of a confirmed deletion
type deleteResultMsg struct {
	code string
	err  error
}

func loadCmd(ctx context.Context, svc filiereservice.Service) tea.Cmd {
	return func() tea.Msg {
		items, err := svc.GetAllFilieres(ctx)
		return filieresLoadedMsg{filieres: items, err: err}
	}
}

func deleteCmd(ctx context.Context, svc filiereservice.Service, f *models.Filiere) tea.Cmd {
	id, code := f.ID, f.CodeFiliere
	return func() tea.Msg {
		return deleteResultMsg{code: code, err: svc.DeleteFiliere(ctx, id)}
	}
}
