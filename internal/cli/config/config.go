// Package config holds the cli commands that manage the configuration file
//
// e.g., filieres config ...
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/filieres/internal/cli"
	settings "github.com/thenoetrevino/filieres/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Gérer le fichier de configuration",
	}

	cmd.AddCommand(InitCmd())
	cmd.AddCommand(PathCmd())

	return cmd
}

// InitCmd returns the config init subcommand
func InitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Écrire la configuration par défaut",
		Long: `Écrire la configuration par défaut à l'emplacement habituel
(FILIERES_CONFIG, $XDG_CONFIG_HOME/filieres/config.yaml ou
~/.config/filieres/config.yaml).

Examples:
  filieres config init
  filieres config init --preset campus --force
`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().Bool("force", false, "Remplacer un fichier existant")
	cmd.Flags().String("preset", "default", "Palette de couleurs (default, monochrome, campus)")
	cmd.Flags().Bool("json", false, "Sortie au format JSON")

	return cmd
}

type initResult struct {
	Path   string `json:"path"`
	Preset string `json:"preset"`
}

func (r initResult) String() string {
	return fmt.Sprintf("✓ Configuration écrite dans %s (palette %s)", r.Path, r.Preset)
}

func runInit(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")
	formatter := &cli.OutputFormatter{JSON: jsonOutput}
	force, _ := cmd.Flags().GetBool("force")
	preset, _ := cmd.Flags().GetString("preset")

	path, err := settings.Path()
	if err != nil {
		return formatter.Fail("CONFIG_PATH_ERROR", err)
	}

	if _, err := os.Stat(path); err == nil && !force {
		return formatter.Fail("CONFIG_EXISTS",
			cli.Exitf(cli.ExitConflict, "%s existe déjà (utilisez --force pour le remplacer)", path))
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return formatter.Fail("CONFIG_PATH_ERROR", err)
	}

	cfg := settings.Default()
	cfg.ColorScheme = settings.PresetColorScheme(preset)
	if err := cfg.Save(); err != nil {
		return formatter.Fail("CONFIG_WRITE_ERROR", err)
	}

	return formatter.Success(initResult{Path: path, Preset: cfg.ColorScheme.Preset})
}

// PathCmd returns the config path subcommand
func PathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Afficher l'emplacement du fichier de configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := settings.Path()
			if err != nil {
				formatter := &cli.OutputFormatter{}
				return formatter.Fail("CONFIG_PATH_ERROR", err)
			}
			fmt.Println(path)
			return nil
		},
	}
}
