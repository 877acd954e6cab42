package filiereform

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
)

// Update handles messages for the form
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SaveResultMsg:
		if msg.FormID != m.id {
			return m, nil
		}
		return m, m.handleSaveResult(msg)

	case spinner.TickMsg:
		if m.state != StateSubmitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyPressMsg:
		if m.state == StateSubmitting {
			return m, nil
		}
		return m.handleKey(msg)
	}

	// Cursor blinks, pastes and other input messages go to the focused field
	if m.state == StateIdle && m.focus < len(m.inputs) {
		return m, m.updateFocusedInput(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (*Model, tea.Cmd) {
	key := msg.String()

	switch key {
	case m.keys.Save:
		return m.Submit()
	case m.keys.Cancel:
		return m.Cancel()
	case m.keys.Next:
		return m, m.moveFocus(1)
	case m.keys.Prev:
		return m, m.moveFocus(-1)
	case m.keys.Confirm:
		switch {
		case m.focus == focusSubmit:
			return m.Submit()
		case m.focus == focusCancel:
			return m.Cancel()
		case m.focus == len(m.inputs)-1:
			return m.Submit()
		default:
			return m, m.moveFocus(1)
		}
	}

	if m.focus >= len(m.inputs) {
		switch key {
		case "left", "right", "h", "l":
			if m.focus == focusSubmit {
				m.focus = focusCancel
			} else {
				m.focus = focusSubmit
			}
		}
		return m, nil
	}

	return m, m.updateFocusedInput(msg)
}

// updateFocusedInput forwards msg to the focused input and copies its value
// into the draft only when the input actually changed.
func (m *Model) updateFocusedInput(msg tea.Msg) tea.Cmd {
	field := fieldSpecs[m.focus].field
	before := m.inputs[m.focus].Value()

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	if after := m.inputs[m.focus].Value(); after != before {
		m.draft = m.draft.With(field, after)
		m.clearError(field)
	}
	return cmd
}
