package filiere

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli"
	"github.com/thenoetrevino/filieres/internal/cli/styles"
	draft "github.com/thenoetrevino/filieres/internal/filiere"
	"github.com/thenoetrevino/filieres/internal/models"
)

// ListCmd returns the filiere list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Lister les filières",
		Long: `Lister les filières, triées par code.

Examples:
  filieres filiere list
  filieres filiere list --secteur Tech
  filieres filiere list --search genie --json
`,
		Args: cobra.NoArgs,
		RunE: runList,
	}

	cmd.Flags().String("secteur", "", "Ne garder que ce secteur (casse et accents ignorés)")
	cmd.Flags().String("search", "", "Recherche dans le code, l'intitulé, le secteur et les groupes")
	addOutputFlags(cmd, "Sortie minimale (identifiants seulement)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	secteur, _ := cmd.Flags().GetString("secteur")
	search, _ := cmd.Flags().GetString("search")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	all, err := cliInstance.App.FiliereService.GetAllFilieres(ctx)
	if err != nil {
		return formatter.Fail("FILIERE_FETCH_ERROR", err)
	}
	filieres := filter(all, secteur, search)

	return cli.List(formatter, filieres, func() error {
		if len(filieres) == 0 {
			fmt.Println("Aucune filière")
			return nil
		}
		if secteur == "" && search == "" {
			fmt.Printf("%d filière(s)\n", len(filieres))
		} else {
			total, err := cliInstance.App.Count(ctx)
			if err != nil {
				return formatter.Fail("FILIERE_COUNT_ERROR", err)
			}
			fmt.Printf("%d filière(s) sur %d\n", len(filieres), total)
		}
		for _, f := range filieres {
			fmt.Println(styles.RenderFiliereRow(f))
		}
		return nil
	})
}

// filter keeps the filières of secteur (when set) that match search. The
// result is never nil so that JSON output is an empty array.
func filter(all []*models.Filiere, secteur, search string) []*models.Filiere {
	out := make([]*models.Filiere, 0, len(all))
	want := draft.Fold(secteur)
	for _, f := range all {
		if secteur != "" && draft.Fold(f.Secteur) != want {
			continue
		}
		if !draft.Matches(f, search) {
			continue
		}
		out = append(out, f)
	}
	return out
}
