package tui

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
	"github.com/thenoetrevino/filieres/internal/testutil"
	"github.com/thenoetrevino/filieres/internal/tui/filiereform"
	"github.com/thenoetrevino/filieres/internal/tui/notifications"
)

// ============================================================================
// LOADING AND NAVIGATION
// ============================================================================

func TestInitialModel_LoadsOrderedList(t *testing.T) {
	m, _ := SetupTestModel(t)

	visible := m.Visible()
	if len(visible) != 2 {
		t.Fatalf("Expected 2 filieres, got %d", len(visible))
	}
	if visible[0].CodeFiliere != "GC" || visible[1].CodeFiliere != "INF" {
		t.Errorf("Expected GC then INF, got %s then %s", visible[0].CodeFiliere, visible[1].CodeFiliere)
	}
	if m.Mode() != ListMode {
		t.Errorf("Expected list mode, got %d", m.Mode())
	}
}

func TestNavigation(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('j'))
	if got := m.Selected().CodeFiliere; got != "INF" {
		t.Errorf("Expected INF after j, got %s", got)
	}

	// bottom of the list
	m = press(m, runeKey('j'))
	if got := m.Selected().CodeFiliere; got != "INF" {
		t.Errorf("Expected selection to stay on INF, got %s", got)
	}

	m = press(m, runeKey('k'))
	if got := m.Selected().CodeFiliere; got != "GC" {
		t.Errorf("Expected GC after k, got %s", got)
	}
}

func TestQuit(t *testing.T) {
	m, _ := SetupTestModel(t)

	_, cmd := updateModel(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("Expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("Expected tea.QuitMsg")
	}
}

// ============================================================================
// FORM FLOWS
// ============================================================================

func TestCreateFlow(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('a'))
	if m.Mode() != FormMode || m.Form() == nil {
		t.Fatal("Expected the form to open")
	}
	if m.Form().Mode() != filiere.ModeCreate {
		t.Errorf("Expected create mode, got %s", m.Form().Mode())
	}

	m.Form().UpdateField(filiere.FieldCode, "MEC")
	m.Form().UpdateField(filiere.FieldIntitule, "Mécanique")
	m.Form().UpdateField(filiere.FieldSecteur, "Industrie")
	m.Form().UpdateField(filiere.FieldGroupes, "M1, M2")

	m, cmd := updateModel(m, ctrlS())
	m = drain(m, cmd)

	if m.Mode() != ListMode || m.Form() != nil {
		t.Fatal("Expected the form to close after a successful save")
	}
	if len(m.Visible()) != 3 {
		t.Errorf("Expected 3 filieres after reload, got %d", len(m.Visible()))
	}
	n := m.Notification()
	if n == nil || n.Severity != notifications.Info || !strings.Contains(n.Message, "MEC ajoutée") {
		t.Errorf("Expected creation notification, got %+v", n)
	}
}

func TestEditFlow(t *testing.T) {
	m, a := SetupTestModel(t)

	m = press(m, runeKey('j'))
	target := m.Selected()

	m = press(m, runeKey('e'))
	if m.Form() == nil || m.Form().Mode() != filiere.ModeEdit {
		t.Fatal("Expected the form to open in edit mode")
	}
	if got := m.Form().Draft().Groupes; got != "G1, G2" {
		t.Errorf("Expected groupes 'G1, G2', got %q", got)
	}

	m.Form().UpdateField(filiere.FieldIntitule, "Informatique appliquée")
	m, cmd := updateModel(m, ctrlS())
	m = drain(m, cmd)

	if m.Mode() != ListMode {
		t.Fatalf("Expected list mode, got %d", m.Mode())
	}

	stored, err := a.FiliereService.GetFiliereByID(context.Background(), target.ID)
	if err != nil {
		t.Fatalf("GetFiliereByID failed: %v", err)
	}
	if stored.IntituleFiliere != "Informatique appliquée" {
		t.Errorf("Expected updated title, got %q", stored.IntituleFiliere)
	}
	if len(stored.Groupes) != 2 {
		t.Errorf("Expected groups preserved, got %v", stored.Groupes)
	}
	if got := m.Selected(); got == nil || got.ID != target.ID {
		t.Error("Expected the cursor to stay on the edited filiere")
	}
	if n := m.Notification(); n == nil || !strings.Contains(n.Message, "mise à jour") {
		t.Errorf("Expected update notification, got %+v", n)
	}
}

func TestDuplicateCodeKeepsFormOpen(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('a'))
	m.Form().UpdateField(filiere.FieldCode, "GC")
	m.Form().UpdateField(filiere.FieldIntitule, "Doublon")
	m.Form().UpdateField(filiere.FieldSecteur, "BTP")

	m, cmd := updateModel(m, ctrlS())
	m = drain(m, cmd)

	if m.Mode() != FormMode || m.Form() == nil {
		t.Fatal("Expected the form to stay open after a failed save")
	}
	if m.Form().State() != filiereform.StateIdle {
		t.Errorf("Expected idle form, got %s", m.Form().State())
	}
	want := filiereservice.ErrDuplicateCode.Error()
	if got := m.Form().Errors()[filiere.FieldSubmit]; got != want {
		t.Errorf("Expected submit error %q, got %q", want, got)
	}
	if len(m.Visible()) != 2 {
		t.Errorf("Expected no new filiere, got %d", len(m.Visible()))
	}
}

func TestInvalidFormDoesNotSave(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('a'))
	m, cmd := updateModel(m, ctrlS())
	if cmd != nil {
		t.Error("Expected no command for an invalid form")
	}
	if len(m.Form().Errors()) != 3 {
		t.Errorf("Expected 3 field errors, got %v", m.Form().Errors())
	}
}

func TestEscClosesForm(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('a'))
	m, cmd := updateModel(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(m, cmd)

	if m.Mode() != ListMode || m.Form() != nil {
		t.Error("Expected esc to close the form")
	}
}

func TestStaleSaveResults(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('a'))
	staleID := m.Form().ID()
	m, cmd := updateModel(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	m = drain(m, cmd)

	m = press(m, runeKey('a'))
	current := m.Form()
	if current.ID() == staleID {
		t.Fatal("Expected a new form instance id")
	}

	m, cmd = updateModel(m, filiereform.SaveResultMsg{FormID: staleID, Err: filiereservice.ErrDuplicateCode})
	if cmd != nil {
		t.Error("Expected a failed stale result to be dropped")
	}
	if len(m.Form().Errors()) != 0 {
		t.Errorf("Expected the open form untouched, got %v", m.Form().Errors())
	}

	m, cmd = updateModel(m, filiereform.SaveResultMsg{FormID: staleID, Record: models.Filiere{CodeFiliere: "X"}})
	if cmd == nil {
		t.Error("Expected a successful stale result to trigger a reload")
	}
	if m.Mode() != FormMode || m.Form() != current {
		t.Error("Expected the open form to stay mounted")
	}
}

func TestSaveFuncRoutesByID(t *testing.T) {
	a := testutil.SetupTestApp(t)
	existing := testutil.CreateTestFiliere(t, a, "INF", "Informatique", "Tech")
	save := saveFunc(a.FiliereService)
	ctx := context.Background()

	if err := save(ctx, models.Filiere{CodeFiliere: "GC", IntituleFiliere: "Génie Civil", Secteur: "BTP"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated := *existing
	updated.Secteur = "Numérique"
	if err := save(ctx, updated); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	all, err := a.FiliereService.GetAllFilieres(ctx)
	if err != nil {
		t.Fatalf("GetAllFilieres failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("Expected 2 filieres, got %d", len(all))
	}
	for _, f := range all {
		if f.ID == existing.ID && f.Secteur != "Numérique" {
			t.Errorf("Expected updated sector, got %q", f.Secteur)
		}
	}
}

// ============================================================================
// SEARCH AND DELETE
// ============================================================================

func TestSearch_AccentInsensitive(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('/'))
	if m.Mode() != SearchMode {
		t.Fatalf("Expected search mode, got %d", m.Mode())
	}
	for _, r := range "genie" {
		m = press(m, runeKey(r))
	}

	if len(m.Visible()) != 1 || m.Visible()[0].CodeFiliere != "GC" {
		t.Fatalf("Expected only GC to match, got %d results", len(m.Visible()))
	}

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	if m.Mode() != ListMode || len(m.Visible()) != 1 {
		t.Error("Expected enter to keep the filter and return to the list")
	}

	m = press(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if len(m.Visible()) != 2 {
		t.Errorf("Expected esc to clear the filter, got %d results", len(m.Visible()))
	}
}

func TestDelete(t *testing.T) {
	m, _ := SetupTestModel(t)

	m = press(m, runeKey('d'))
	if m.Mode() != DeleteConfirmMode {
		t.Fatalf("Expected delete confirmation, got %d", m.Mode())
	}

	m = press(m, runeKey('n'))
	if m.Mode() != ListMode || len(m.Visible()) != 2 {
		t.Fatal("Expected n to cancel the deletion")
	}

	m = press(m, runeKey('d'))
	m, cmd := updateModel(m, runeKey('y'))
	m = drain(m, cmd)

	if len(m.Visible()) != 1 || m.Visible()[0].CodeFiliere != "INF" {
		t.Fatalf("Expected GC to be deleted, got %d filieres", len(m.Visible()))
	}
	if n := m.Notification(); n == nil || !strings.Contains(n.Message, "GC supprimée") {
		t.Errorf("Expected deletion notification, got %+v", n)
	}
}

// ============================================================================
// VIEW
// ============================================================================

func TestView(t *testing.T) {
	a := testutil.SetupTestApp(t)
	m := InitialModel(context.Background(), a, config.Default())

	if v := m.View(); v.Content != "Chargement..." {
		t.Errorf("Expected loading placeholder before sizing, got %q", v.Content)
	}

	m, _ = SetupTestModel(t)
	v := m.View()
	if !v.AltScreen {
		t.Error("Expected alt screen")
	}
	for _, want := range []string{"Filières (2)", "GC", "INF", "ajouter"} {
		if !strings.Contains(v.Content, want) {
			t.Errorf("Expected view to contain %q", want)
		}
	}

	m = press(m, runeKey('a'))
	if !strings.Contains(m.View().Content, "Ajouter une Filière") {
		t.Error("Expected the form to be rendered")
	}
}
