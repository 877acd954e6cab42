package notifications

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/tui/theme"
)

func TestRenderInline(t *testing.T) {
	theme.Init(config.DefaultColorScheme())

	tests := []struct {
		name string
		n    Notification
		icon string
	}{
		{"info", Notification{Severity: Info, Message: "Filière ajoutée"}, "✓"},
		{"error", Notification{Severity: Error, Message: "filière introuvable"}, "✕"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderInline(tt.n)
			if !strings.Contains(out, tt.n.Message) {
				t.Errorf("Expected message in %q", out)
			}
			if !strings.Contains(out, tt.icon) {
				t.Errorf("Expected icon %s in %q", tt.icon, out)
			}
		})
	}
}
