package components

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/models"
)

func init() {
	InitStyles(config.DefaultColorScheme())
}

func sampleFilieres(n int) []*models.Filiere {
	out := make([]*models.Filiere, n)
	for i := range out {
		out[i] = &models.Filiere{
			ID:              string(rune('a' + i)),
			CodeFiliere:     "F" + string(rune('A'+i)),
			IntituleFiliere: "Filière " + string(rune('A'+i)),
		}
	}
	return out
}

// ============================================================================
// LIST
// ============================================================================

func TestRenderList_Empty(t *testing.T) {
	out := RenderList(ListProps{Height: 10})
	if !strings.Contains(out, "Filières (0)") {
		t.Errorf("Expected count header, got %q", out)
	}
	if !strings.Contains(out, "Aucune filière") {
		t.Errorf("Expected empty state, got %q", out)
	}

	out = RenderList(ListProps{Height: 10, Query: "xyz"})
	if !strings.Contains(out, "Aucun résultat") {
		t.Errorf("Expected no-result state, got %q", out)
	}
}

func TestRenderList_ShowsSelectionAndIndicators(t *testing.T) {
	items := sampleFilieres(10)
	out := RenderList(ListProps{Filieres: items, Selected: 8, Height: 6})

	if !strings.Contains(out, "▸ FI") {
		t.Errorf("Expected selected row FI to be marked, got %q", out)
	}
	if !strings.Contains(out, "▲") {
		t.Error("Expected scroll-up indicator")
	}
	if strings.Contains(out, "FA ") {
		t.Error("Expected first row to be scrolled out of view")
	}
}

func TestScrollOffset(t *testing.T) {
	tests := []struct {
		selected, visible, total, want int
	}{
		{0, 5, 3, 0},
		{4, 5, 10, 0},
		{5, 5, 10, 1},
		{9, 5, 10, 5},
	}
	for _, tt := range tests {
		if got := ScrollOffset(tt.selected, tt.visible, tt.total); got != tt.want {
			t.Errorf("ScrollOffset(%d, %d, %d) = %d, want %d", tt.selected, tt.visible, tt.total, got, tt.want)
		}
	}
}

// ============================================================================
// DETAIL
// ============================================================================

func TestDetailMarkdown(t *testing.T) {
	md := DetailMarkdown(&models.Filiere{
		CodeFiliere:     "INF",
		IntituleFiliere: "Informatique",
		Secteur:         "Tech",
		Groupes:         []string{"G1", "G2"},
	})

	for _, want := range []string{"# INF", "Informatique", "Tech", "- G1", "- G2"} {
		if !strings.Contains(md, want) {
			t.Errorf("Expected markdown to contain %q, got %q", want, md)
		}
	}

	md = DetailMarkdown(&models.Filiere{CodeFiliere: "X"})
	if !strings.Contains(md, "Aucun groupe") {
		t.Errorf("Expected empty groups note, got %q", md)
	}
}

func TestRenderDetail(t *testing.T) {
	if out := RenderDetail(DetailProps{Width: 40}); !strings.Contains(out, "Aucune filière sélectionnée") {
		t.Errorf("Expected placeholder, got %q", out)
	}

	out := RenderDetail(DetailProps{
		Filiere: &models.Filiere{CodeFiliere: "INF", IntituleFiliere: "Informatique", Secteur: "Tech"},
		Width:   40,
	})
	if !strings.Contains(out, "INF") || !strings.Contains(out, "Informatique") {
		t.Errorf("Expected rendered detail, got %q", out)
	}
}

func TestRenderStatusBar(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 40, Left: "left", Right: "right"})
	if !strings.HasPrefix(out, "left") || !strings.Contains(out, "right") {
		t.Errorf("unexpected status bar %q", out)
	}
}

func TestRenderStatusBar_CutsLeftWhenNarrow(t *testing.T) {
	out := RenderStatusBar(StatusBarProps{Width: 20, Left: strings.Repeat("x", 40), Right: "12"})
	if w := lipgloss.Width(out); w > 20 {
		t.Errorf("Expected at most 20 columns, got %d: %q", w, out)
	}
	if !strings.Contains(out, "12") {
		t.Errorf("Expected right text to survive, got %q", out)
	}
}
