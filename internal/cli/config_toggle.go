package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
)

var configToggleProjectFlag bool

var configToggleCmd = &cobra.Command{
	Use:   "toggle <key>",
	Short: "Flip a boolean configuration value",
	Long: `Flip a boolean configuration value in the user or project config file.

A key missing from the target file counts as false, so the first toggle
writes true. Non-boolean keys are rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigToggle(cmd, args)
	},
}

func runConfigToggle(cmd *cobra.Command, args []string) error {
	key := args[0]

	schema, err := config.GetKeySchema(key)
	if err != nil {
		return clierrors.NewConfigError(
			err.Error(),
			"Run 'relnotes config keys' to list known keys",
		)
	}
	if schema.Type != config.TypeBool {
		return clierrors.NewConfigError(
			fmt.Sprintf("key %q is not a boolean (type: %s)", key, schema.Type),
			"Use 'relnotes config set' for non-boolean keys",
		)
	}

	path, scope, err := configTarget(configToggleProjectFlag)
	if err != nil {
		return err
	}
	oldValue, newValue, err := config.ToggleConfigValue(path, key)
	if err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Toggled %s: %t -> %t in %s config\n", key, oldValue, newValue, scope)
	return nil
}

func init() {
	configToggleCmd.Flags().BoolVar(&configToggleProjectFlag, "project", false, "write to the project config (.relnotes/config.yml)")
	configCmd.AddCommand(configToggleCmd)
}
