package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
)

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Show the effective value of a configuration key",
	Long: `Show the effective value of a configuration key and where it comes from.

The value is resolved the same way commands resolve it: environment
variables win over the project config, which wins over the user config.
Keys left at their built-in default are reported as not set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigGet(cmd, args)
	},
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	value, source, err := config.EffectiveValue(key, configFlag)
	if err != nil {
		var unknown config.ErrUnknownKey
		if errors.As(err, &unknown) {
			return clierrors.NewConfigError(
				err.Error(),
				"Run 'relnotes config keys' to list known keys",
			)
		}
		return clierrors.Wrap(err, clierrors.Configuration)
	}

	out := cmd.OutOrStdout()
	switch source {
	case config.SourceDefault:
		if value == "" {
			fmt.Fprintf(out, "%s: not set\n", key)
		} else {
			fmt.Fprintf(out, "%s: not set (default: %s)\n", key, value)
		}
	case config.SourceEnv:
		fmt.Fprintf(out, "%s: %s (from environment)\n", key, value)
	default:
		fmt.Fprintf(out, "%s: %s (from %s config)\n", key, value, source)
	}
	return nil
}

func init() {
	configCmd.AddCommand(configGetCmd)
}
