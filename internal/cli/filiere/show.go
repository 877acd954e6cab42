package filiere

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli/styles"
)

// ShowCmd returns the filiere show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Afficher une filière",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}
	addOutputFlags(cmd, "")
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := formatterFor(cmd)

	cliInstance, closeCLI, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeCLI()

	f, err := cliInstance.App.FiliereService.GetFiliereByID(ctx, args[0])
	if err != nil {
		return formatter.Fail("FILIERE_FETCH_ERROR", err)
	}

	if formatter.JSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"success": true,
			"filiere": f,
		})
	}

	fmt.Println(styles.RenderFiliereCard(f))
	return nil
}
