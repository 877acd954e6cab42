package filiere

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli/styles"
	draft "github.com/thenoetrevino/filieres/internal/filiere"
	filiereservice "github.com/thenoetrevino/filieres/internal/services/filiere"
)

// CreateCmd returns the filiere create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Créer une filière",
		Long: `Créer une filière. Le code, l'intitulé et le secteur sont requis.

Examples:
  # Sortie lisible
  filieres filiere create --code INF --intitule Informatique --secteur Tech

  # Avec des groupes
  filieres filiere create --code INF --intitule Informatique --secteur Tech --groupes "G1, G2"

  # Récupérer l'identifiant dans un script
  ID=$(filieres filiere create --code INF --intitule Informatique --secteur Tech --quiet)
`,
		Args: cobra.NoArgs,
		RunE: runCreate,
	}

	cmd.Flags().String("code", "", "Code de la filière (requis)")
	cmd.Flags().String("intitule", "", "Intitulé de la filière (requis)")
	cmd.Flags().String("secteur", "", "Secteur (requis)")
	cmd.Flags().String("groupes", "", "Groupes séparés par des virgules")
	addOutputFlags(cmd, "Sortie minimale (identifiant seulement)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	d := draft.Draft{}
	d.CodeFiliere, _ = cmd.Flags().GetString("code")
	d.IntituleFiliere, _ = cmd.Flags().GetString("intitule")
	d.Secteur, _ = cmd.Flags().GetString("secteur")
	d.Groupes, _ = cmd.Flags().GetString("groupes")

	if err := validate(d); err != nil {
		return formatter.Fail("VALIDATION_ERROR", err)
	}

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	record := draft.ToRecord(d, draft.ModeCreate, "")
	f, err := cliInstance.App.FiliereService.CreateFiliere(ctx, filiereservice.CreateFiliereRequest{
		CodeFiliere:     record.CodeFiliere,
		IntituleFiliere: record.IntituleFiliere,
		Secteur:         record.Secteur,
		Groupes:         record.Groupes,
	})
	if err != nil {
		return formatter.Fail("FILIERE_CREATE_ERROR", err)
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

	fmt.Printf("✓ Filière '%s' créée (ID: %s)\n", f.CodeFiliere, f.ID)
	fmt.Println(styles.RenderFiliereCard(f))
	return nil
}
