package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
)

var (
	configInitProjectFlag bool
	configInitForceFlag   bool
)

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file with commented defaults",
	Long: `Create a config file populated with the built-in defaults.

Every option is listed with a comment explaining what it does, so the
file doubles as documentation. By default the user config is created;
pass --project to create .relnotes/config.yml instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runConfigInit(cmd, args)
	},
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := ""
	if configInitProjectFlag {
		path = config.ProjectConfigPath()
	} else {
		userPath, err := config.UserConfigPath()
		if err != nil {
			return clierrors.Wrap(err, clierrors.Configuration)
		}
		path = userPath
	}

	if _, err := os.Stat(path); err == nil && !configInitForceFlag {
		return clierrors.NewConfigError(
			fmt.Sprintf("config file already exists at %s", path),
			"Pass --force to overwrite it",
		)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}
	if err := os.WriteFile(path, []byte(config.GetDefaultConfigTemplate()), 0o644); err != nil {
		return clierrors.Wrap(err, clierrors.Configuration)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", path)
	return nil
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitProjectFlag, "project", false, "create the project config (.relnotes/config.yml)")
	configInitCmd.Flags().BoolVar(&configInitForceFlag, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd)
}
