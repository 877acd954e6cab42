package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/app"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/testutil"
	"github.com/thenoetrevino/filieres/internal/tui/filiereform"
)

// SetupTestModel creates a sized model over an in-memory database holding
// two filières, GC and INF.
func SetupTestModel(t *testing.T) (Model, *app.App) {
	t.Helper()

	a := testutil.SetupTestApp(t)
	testutil.CreateTestFiliere(t, a, "INF", "Informatique", "Tech", "G1", "G2")
	testutil.CreateTestFiliere(t, a, "GC", "Génie Civil", "BTP")

	m := InitialModel(context.Background(), a, config.Default())
	m, _ = updateModel(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m, a
}

func updateModel(m Model, msg tea.Msg) (Model, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

// press sends one key and drops the returned command
func press(m Model, msg tea.KeyPressMsg) Model {
	m, _ = updateModel(m, msg)
	return m
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func ctrlS() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
}

// drain executes cmd and feeds the application messages it produces back
// into the model until nothing is left. Timer based messages (spinner and
// cursor ticks) are dropped.
func drain(m Model, cmd tea.Cmd) Model {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}

		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case filiereform.SaveResultMsg, filieresLoadedMsg, formClosedMsg, deleteResultMsg:
			var next tea.Cmd
			m, next = updateModel(m, msg)
			queue = append(queue, next)
		}
	}
	return m
}
