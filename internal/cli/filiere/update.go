package filiere

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli"
	"github.com/thenoetrevino/filieres/internal/cli/styles"
	draft "github.com/thenoetrevino/filieres/internal/filiere"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// updateFlags maps each update flag to the draft field it overrides
var updateFlags = []struct {
	name  string
	field draft.Field
}{
	{"code", draft.FieldCode},
	{"intitule", draft.FieldIntitule},
	{"secteur", draft.FieldSecteur},
	{"groupes", draft.FieldGroupes},
}

// UpdateCmd returns the filiere update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Modifier une filière",
		Long: `Modifier une filière existante. Seuls les champs passés sont modifiés.

Examples:
  filieres filiere update 0b1c... --intitule "Informatique appliquée"
  filieres filiere update 0b1c... --groupes ""
`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("code", "", "Nouveau code")
	cmd.Flags().String("intitule", "", "Nouvel intitulé")
	cmd.Flags().String("secteur", "", "Nouveau secteur")
	cmd.Flags().String("groupes", "", "Nouveaux groupes séparés par des virgules (vide pour aucun)")
	addOutputFlags(cmd, "Sortie minimale (identifiant seulement)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	id := args[0]

	changed := map[draft.Field]string{}
	for _, flag := range updateFlags {
		if cmd.Flags().Changed(flag.name) {
			changed[flag.field], _ = cmd.Flags().GetString(flag.name)
		}
	}
	if len(changed) == 0 {
		return formatter.Fail("NO_UPDATES",
			cli.Exitf(cli.ExitUsage, "au moins un de --code, --intitule, --secteur ou --groupes est requis"))
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	existing, err := cliInstance.App.FiliereService.GetFiliereByID(ctx, id)
	if err != nil {
		return formatter.Fail("FILIERE_FETCH_ERROR", err)
	}

	d := draft.NewDraft(existing)
	for field, value := range changed {
		d = d.With(field, value)
	}
	if err := validate(d); err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	record := draft.ToRecord(d, draft.ModeEdit, existing.ID)
	req := filiereservice.UpdateFiliereRequest{ID: existing.ID}
	if _, ok := changed[draft.FieldCode]; ok {
		req.CodeFiliere = &record.CodeFiliere
	}
	if _, ok := changed[draft.FieldIntitule]; ok {
		req.IntituleFiliere = &record.IntituleFiliere
	}
	if _, ok := changed[draft.FieldSecteur]; ok {
		req.Secteur = &record.Secteur
	}
	if _, ok := changed[draft.FieldGroupes]; ok {
		req.Groupes = &record.Groupes
	}

	f, err := cliInstance.App.FiliereService.UpdateFiliere(ctx, req)
	if err != nil {
		return formatter.Fail("FILIERE_UPDATE_ERROR", err)
	}

	if formatter.Quiet {
		fmt.Println(f.ID)
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"filiere": f,
		})
	}

	fmt.Printf("✓ Filière '%s' mise à jour\n", f.CodeFiliere)
	fmt.Println(styles.RenderFiliereCard(f))
	return nil
}
