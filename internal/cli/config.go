package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage relnotes configuration",
	Long: `Manage relnotes configuration settings.

Configuration is loaded with the following priority (highest to lowest):
  1. Command-line flags
  2. Environment variables (RELNOTES_*)
  3. Project config (.relnotes/config.yml)
  4. User config (~/.config/relnotes/config.yml)
  5. Built-in defaults`,
	Example: `  # Show the effective value of a key and where it comes from
  relnotes config get sort

  # Set a configuration value
  relnotes config set sort semver --project

  # Flip a boolean key
  relnotes config toggle plain

  # List every known key
  relnotes config keys`,
	GroupID: GroupConfiguration,
}

// configTarget resolves which config file the editing subcommands write to.
// With project=true the .relnotes directory must already exist; user scope
// needs no setup because the path is created on first write.
func configTarget(project bool) (path, scope string, err error) {
	if project {
		if _, statErr := os.Stat(config.ProjectConfigDir()); statErr != nil {
			return "", "", clierrors.NewConfigError(
				"not in a project directory (no .relnotes/ found)",
				"Run 'relnotes config init --project' to create one",
			)
		}
		return config.ProjectConfigPath(), "project", nil
	}
	userPath, err := config.UserConfigPath()
	if err != nil {
		return "", "", clierrors.Wrap(err, clierrors.Configuration)
	}
	return userPath, "user", nil
}

func init() {
	rootCmd.AddCommand(configCmd)
}
