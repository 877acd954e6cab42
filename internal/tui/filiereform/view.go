package filiereform

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/filiere"
)

// Title returns the heading shown for the current mode
func (m *Model) Title() string {
	if m.mode == filiere.ModeEdit {
		return "Modifier la Filière"
	}
	return "Ajouter une Filière"
}

func (m *Model) submitLabel() string {
	if m.mode == filiere.ModeEdit {
		return "Mettre à jour"
	}
	return "Ajouter"
}

// View renders the form inside its bordered box
func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.Title()))
	b.WriteString("\n")

	for i, spec := range fieldSpecs {
		b.WriteString(m.styles.Label.Render(spec.label))
		b.WriteString("\n")
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
		if msg, ok := m.errors[spec.field]; ok && msg != "" {
			b.WriteString(m.styles.FieldError.Render(msg))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if msg, ok := m.errors[filiere.FieldSubmit]; ok && msg != "" {
		b.WriteString(m.styles.Banner.Render(msg))
		b.WriteString("\n\n")
	}

	b.WriteString(m.renderButtons())
	b.WriteString("\n\n")
	b.WriteString(m.styles.Help.Render(
		m.keys.Next + "/" + m.keys.Prev + ": naviguer • " + m.keys.Save + ": enregistrer • " + m.keys.Cancel + ": annuler",
	))

	box := m.styles.box(m.mode)
	if m.width > 0 {
		box = box.Width(m.width)
	}
	return box.Render(b.String())
}

func (m *Model) renderButtons() string {
	cancel := m.styles.Button
	submit := m.styles.Button
	submitText := m.submitLabel()

	switch {
	case m.state == StateSubmitting:
		cancel = m.styles.DisabledButton
		submit = m.styles.DisabledButton
		submitText = m.spinner.View() + " " + submitText
	case m.focus == focusCancel:
		cancel = m.styles.ActiveButton
	case m.focus == focusSubmit:
		submit = m.styles.ActiveButton
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		cancel.Render("Annuler"),
		" ",
		submit.Render(submitText),
	)
}
