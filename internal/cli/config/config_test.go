package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/filieres/internal/cli"
	settings "github.com/thenoetrevino/filieres/internal/config"
	"github.com/thenoetrevino/filieres/internal/testutil"
)

func execute(t *testing.T, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	cmd.SetArgs(args)
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = cmd.Execute()
	})
	return out, err
}

func useConfigFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "filieres", "config.yaml")
	t.Setenv("FILIERES_CONFIG", path)
	return path
}

func TestConfigInit_WritesDefaults(t *testing.T) {
	path := useConfigFile(t)

	out, err := execute(t, InitCmd(), "--preset", "campus")
	require.NoError(t, err)
	assert.Contains(t, out, path)

	loaded, err := settings.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "campus", loaded.ColorScheme.Preset)
	assert.Equal(t, settings.DefaultKeyMappings(), loaded.KeyMappings)
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	path := useConfigFile(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))

	_, err := execute(t, InitCmd())
	require.Error(t, err)
	assert.Equal(t, cli.ExitConflict, cli.ExitCode(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(data))

	_, err = execute(t, InitCmd(), "--force")
	require.NoError(t, err)
	loaded, err := settings.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "info", loaded.LogLevel)
}

func TestConfigPath(t *testing.T) {
	path := useConfigFile(t)

	out, err := execute(t, PathCmd())
	require.NoError(t, err)
	assert.Equal(t, path, strings.TrimSpace(out))
}

func TestConfigCmd_Subcommands(t *testing.T) {
	cmd := ConfigCmd()
	for _, want := range []string{"init", "path"} {
		found, _, err := cmd.Find([]string{want})
		require.NoError(t, err)
		assert.Equal(t, want, found.Name())
	}
}
