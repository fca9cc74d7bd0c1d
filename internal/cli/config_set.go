package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
)

var configSetProjectFlag bool

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value in the user or project config file.

Values are validated against the key's schema before writing, so a typo
like 'relnotes config set sort semvr' fails instead of silently breaking
the list command. The file is created if it does not exist yet.`,
	Example: `  # Write to the user config (default)
  relnotes config set sort semver

  # Write to .relnotes/config.yml instead
  relnotes config set plain true --project`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigSet(cmd, args)
	},
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if _, err := config.ValidateValue(key, value); err != nil {
		return clierrors.NewConfigError(err.Error())
	}

	path, scope, err := configTarget(configSetProjectFlag)
	if err != nil {
		return err
	}
	if err := config.SetConfigValue(path, key, value); err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s in %s config\n", key, value, scope)
	return nil
}

func init() {
	configSetCmd.Flags().BoolVar(&configSetProjectFlag, "project", false, "write to the project config (.relnotes/config.yml)")
	configCmd.AddCommand(configSetCmd)
}
