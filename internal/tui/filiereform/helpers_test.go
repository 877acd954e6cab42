package filiereform

import (
	"context"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

// saveRecorder stands in for the caller's save operation
type saveRecorder struct {
	mu    sync.Mutex
	calls []models.Filiere
	err   error
}

func (r *saveRecorder) save(_ context.Context, f models.Filiere) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, f)
	return r.err
}

func (r *saveRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

type closeMsg struct{}

// newTestForm mounts a form with recording callbacks; closes counts OnClose calls
func newTestForm(t *testing.T, f *models.Filiere, rec *saveRecorder) (*Model, *int) {
	t.Helper()
	closes := 0
	m := New(1, Props{
		Filiere:    f,
		IsEditMode: f != nil,
		OnSave:     rec.save,
		OnClose: func() tea.Cmd {
			closes++
			return func() tea.Msg { return closeMsg{} }
		},
		Ctx: context.Background(),
	}, DefaultKeyMap(), DefaultStyles())
	return m, &closes
}

// collectMsgs runs a command synchronously, flattening batches
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collectMsgs(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// runSave executes the command returned by a submission and returns the save result
func runSave(t *testing.T, cmd tea.Cmd) SaveResultMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if result, ok := msg.(SaveResultMsg); ok {
			return result
		}
	}
	t.Fatal("Expected a SaveResultMsg from the submit command")
	return SaveResultMsg{}
}

func fillValid(m *Model) {
	m.UpdateField(filiere.FieldCode, "INF")
	m.UpdateField(filiere.FieldIntitule, "Informatique")
	m.UpdateField(filiere.FieldSecteur, "Tech")
	m.UpdateField(filiere.FieldGroupes, "G1, G2")
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func typeText(m *Model, s string) *Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	return m
}
