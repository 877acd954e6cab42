package filiereform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
)

// SubmitState is the state of the submission coordinator
type SubmitState int

const (
	// StateIdle accepts input and submissions
	StateIdle SubmitState = iota
	// StateSubmitting has one save in flight; input and buttons are disabled
	StateSubmitting
)

func (s SubmitState) String() string {
	if s == StateSubmitting {
		return "submitting"
	}
	return "idle"
}

// SaveResultMsg reports the outcome of a save started by the form with id
// FormID. The caller sees it too: a nil Err is its cue to close the form.
type SaveResultMsg struct {
	FormID int
	Record models.Filiere
	Err    error
}

// ErrNoSaveHandler is reported when the form was mounted without OnSave
var ErrNoSaveHandler = errors.New("aucune fonction d'enregistrement configurée")

// Submit validates the draft and, when it is valid and no save is already in
// flight, starts saving the normalized record.
func (m *Model) Submit() (*Model, tea.Cmd) {
	if m.state == StateSubmitting {
		return m, nil
	}

	draft := m.Draft()
	errs, ok := filiere.Validate(draft)
	m.errors = errs
	if !ok {
		slog.Debug("Filiere form invalid", "form", m.id, "fields", len(errs))
		return m, nil
	}

	record := filiere.ToRecord(draft, m.mode, m.originalID)
	m.state = StateSubmitting
	m.setFocus(focusSubmit)

	slog.Debug("Submitting filiere form", "form", m.id, "mode", m.mode.String(), "code", record.CodeFiliere)
	return m, tea.Batch(m.spinner.Tick, m.saveCmd(record))
}

// Cancel asks the caller to close the form. It does nothing while a save is
// in flight.
func (m *Model) Cancel() (*Model, tea.Cmd) {
	if m.state == StateSubmitting || m.props.OnClose == nil {
		return m, nil
	}
	return m, m.props.OnClose()
}

func (m *Model) saveCmd(record models.Filiere) tea.Cmd {
	id := m.id
	onSave := m.props.OnSave
	ctx := m.props.Ctx
	if ctx == nil {
		ctx = context.Background()
	}

	return func() (msg tea.Msg) {
		// a panicking save must not take the program down with it
		defer func() {
			if r := recover(); r != nil {
				slog.Error("Save callback panicked", "form", id, "panic", r)
				msg = SaveResultMsg{FormID: id, Record: record, Err: fmt.Errorf("%v", r)}
			}
		}()

		if onSave == nil {
			return SaveResultMsg{FormID: id, Record: record, Err: ErrNoSaveHandler}
		}
		return SaveResultMsg{FormID: id, Record: record, Err: onSave(ctx, record)}
	}
}

func (m *Model) handleSaveResult(msg SaveResultMsg) tea.Cmd {
	m.state = StateIdle

	if msg.Err == nil {
		slog.Debug("Filiere form saved", "form", m.id)
		return nil
	}

	text := msg.Err.Error()
	if strings.TrimSpace(text) == "" {
		text = filiere.MsgSaveFailed
	}
	m.errors[filiere.FieldSubmit] = text
	slog.Warn("Filiere save failed", "form", m.id, "error", msg.Err)

	return nil
}
