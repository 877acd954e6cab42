// Package filiereform implements the add/edit form for a single filière as a
// bubbletea component. The form owns the draft and its error map, validates on
// submit, and hands the normalized record to a caller-supplied save function.
package filiereform

import (
	"context"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
)

// SaveFunc persists a record. A nil error is the success signal; the error
// message of a failure is shown to the user as is.
type SaveFunc func(ctx context.Context, f models.Filiere) error

// Props is the calling contract of the form
type Props struct {
	// Filiere is the record being edited; nil opens the form in create mode
	Filiere *models.Filiere
	// IsEditMode is expected to agree with Filiere != nil
	IsEditMode bool
	OnSave     SaveFunc
	// OnClose is invoked when the user cancels
	OnClose func() tea.Cmd
	// Ctx is handed to OnSave. No timeout is applied to it.
	Ctx context.Context
}

type fieldSpec struct {
	field       filiere.Field
	label       string
	placeholder string
}

var fieldSpecs = []fieldSpec{
	{filiere.FieldCode, "Code Filière", "Entrez le code de la filière"},
	{filiere.FieldIntitule, "Intitulé Filière", "Entrez l'intitulé de la filière"},
	{filiere.FieldSecteur, "Secteur", "Entrez le secteur"},
	{filiere.FieldGroupes, "Groupes", "Entrez les groupes (séparés par des virgules)"},
}

// Focus positions after the inputs
var (
	focusSubmit = len(fieldSpecs)
	focusCancel = len(fieldSpecs) + 1
)

// Model is the form component
type Model struct {
	id    int
	props Props
	mode  filiere.Mode

	// source is the record the draft was last initialized from
	source     *models.Filiere
	originalID string

	// draft holds the values exactly as loaded or edited. The inputs only
	// display it; an input is copied back when the user changes it.
	draft  filiere.Draft
	inputs []textinput.Model
	errors filiere.Errors
	state  SubmitState
	focus  int

	spinner spinner.Model
	keys    KeyMap
	styles  Styles
	width   int
}

// New mounts a form. id distinguishes this instance from earlier ones so that
// late save results can be routed or dropped by the caller.
func New(id int, props Props, keys KeyMap, styles Styles) *Model {
	mode := filiere.ModeFor(props.Filiere)
	if props.IsEditMode != (mode == filiere.ModeEdit) {
		slog.Warn("Edit flag disagrees with supplied record, using record presence",
			"form", id, "is_edit_mode", props.IsEditMode, "mode", mode.String())
	}

	inputs := make([]textinput.Model, len(fieldSpecs))
	for i, spec := range fieldSpecs {
		ti := textinput.New()
		ti.Placeholder = spec.placeholder
		ti.Prompt = "> "
		inputs[i] = ti
	}

	m := &Model{
		id:      id,
		props:   props,
		mode:    mode,
		inputs:  inputs,
		errors:  filiere.Errors{},
		state:   StateIdle,
		spinner: spinner.New(spinner.WithSpinner(spinner.Dot)),
		keys:    keys,
		styles:  styles,
	}
	m.initialize(props.Filiere)
	return m
}

// Init focuses the first field
func (m *Model) Init() tea.Cmd {
	return m.setFocus(0)
}

// SetFiliere re-initializes the draft when the supplied record changes.
// Passing the same pointer again, or nil, leaves the draft untouched. The
// mode chosen by New is kept.
func (m *Model) SetFiliere(f *models.Filiere) *Model {
	if f == nil || f == m.source {
		return m
	}
	m.props.Filiere = f
	m.initialize(f)
	return m
}

func (m *Model) initialize(f *models.Filiere) {
	m.draft = filiere.NewDraft(f)
	m.source = f
	if m.mode == filiere.ModeEdit && f != nil {
		m.originalID = f.ID
	}
	for i, spec := range fieldSpecs {
		m.inputs[i].SetValue(m.draft.Get(spec.field))
	}
}

// UpdateField overwrites one field and drops the error shown for it. The
// field is not re-validated.
func (m *Model) UpdateField(field filiere.Field, value string) *Model {
	for i, spec := range fieldSpecs {
		if spec.field == field {
			m.draft = m.draft.With(field, value)
			m.inputs[i].SetValue(value)
			m.clearError(field)
			break
		}
	}
	return m
}

func (m *Model) clearError(field filiere.Field) {
	delete(m.errors, field)
}

// Draft returns the current draft record
func (m *Model) Draft() filiere.Draft {
	return m.draft
}

// Errors returns a copy of the current error map
func (m *Model) Errors() filiere.Errors {
	return m.errors.Clone()
}

// ID returns the instance id given to New
func (m *Model) ID() int { return m.id }

// Mode returns the mode selected at mount
func (m *Model) Mode() filiere.Mode { return m.mode }

// State returns the submission state
func (m *Model) State() SubmitState { return m.state }

// SetWidth sets the rendered width of the form box
func (m *Model) SetWidth(w int) { m.width = w }

func (m *Model) setFocus(i int) tea.Cmd {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
	m.focus = i
	if i < len(m.inputs) {
		return m.inputs[i].Focus()
	}
	return nil
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	total := len(fieldSpecs) + 2
	return m.setFocus(((m.focus+delta)%total + total) % total)
}
