package filiere

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteCmd returns the filiere delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete ID",
		Short: "Supprimer une filière",
		Long:  "Supprimer une filière et ses groupes. Une confirmation est demandée sauf avec --force ou --quiet.",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cmd.Flags().Bool("force", false, "Ne pas demander de confirmation")
	addOutputFlags(cmd, "Sortie minimale")

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)
	force, _ := cmd.Flags().GetBool("force")

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	f, err := cliInstance.App.FiliereService.GetFiliereByID(ctx, args[0])
	if err != nil {
		return formatter.Fail("FILIERE_FETCH_ERROR", err)
	}

	if !force && !formatter.Quiet && !formatter.JSON {
		fmt.Printf("Supprimer la filière %s (%s) ? (o/N) : ", f.CodeFiliere, f.IntituleFiliere)
		response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(response)) {
		case "o", "oui", "y", "yes":
		default:
			fmt.Println("Annulé")
			return nil
		}
	}

	if err := cliInstance.App.FiliereService.DeleteFiliere(ctx, f.ID); err != nil {
		return formatter.Fail("FILIERE_DELETE_ERROR", err)
	}

	if formatter.Quiet {
		return nil
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success":    true,
			"filiere_id": f.ID,
		})
	}

	fmt.Printf("✓ Filière %s supprimée\n", f.CodeFiliere)
	return nil
}
