// Package cmd holds the command tree of the filieres binary.
package cmd

import (
	"github.com/spf13/cobra"
	configcmd "github.com/thenoetrevino/filieres/internal/cli/config"
	"github.com/thenoetrevino/filieres/internal/cli/filiere"
	"github.com/thenoetrevino/filieres/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "filieres",
	Short: "Filieres - manage academic programs from the terminal",
	Long: `Filieres keeps the list of filières (code, intitulé, secteur, groupes).

Run without a subcommand to open the interactive editor, or use the
filiere subcommands for scripting.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(filiere.FiliereCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
