package huhforms

import (
	"fmt"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/filieres/internal/config/colors"
	"github.com/thenoetrevino/filieres/internal/models"
)

// DeleteFiliereForm asks for confirmation before deleting f. The answer is
// written to confirm; it starts on "Non".
func DeleteFiliereForm(f *models.Filiere, confirm *bool, cs colors.ColorScheme) *huh.Form {
	*confirm = false

	field := huh.NewConfirm().
		Key("confirm").
		Title(fmt.Sprintf("Supprimer la filière %s ?", f.CodeFiliere)).
		Description(fmt.Sprintf("%s · %d groupe(s). Cette action est définitive.", f.IntituleFiliere, len(f.Groupes))).
		Affirmative("Oui").
		Negative("Non").
		Value(confirm)

	return huh.NewForm(huh.NewGroup(field)).
		WithTheme(dangerTheme(cs)).
		WithShowHelp(false)
}
