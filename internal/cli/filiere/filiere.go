// Package filiere holds all cli commands related to filières
//
// e.g., filieres filiere ...
package filiere

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli"
)

// FiliereCmd returns the filiere parent command
func FiliereCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "filiere",
		Aliases: []string{"filieres", "f"},
		Short:   "Gérer les filières",
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(UpdateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

func formatterFor(cmd *cobra.Command) *cli.OutputFormatter {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	return &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}
}

// openCLI resolves the CLI for cmd, reporting initialization failures
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil, nil, formatter.Fail("INITIALIZATION_ERROR", err)
	}
	return cliInstance, func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}, nil
}

func addOutputFlags(cmd *cobra.Command, quietHelp string) {
	cmd.Flags().Bool("json", false, "Sortie au format JSON")
	if quietHelp != "" {
		cmd.Flags().Bool("quiet", false, quietHelp)
	}
}
