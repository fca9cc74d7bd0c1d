// Package cli implements the relnotes command line interface.
//
// Each command lives in its own file as a package-level *cobra.Command,
// registered on the root command in init. Commands delegate their work to
// run<Name> functions that take the command (for its writers and context)
// plus parsed arguments, which keeps them testable without Execute.
package cli

import (
	"context"
	"errors"
	"log"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/ariel-frischer/relnotes/internal/git"
	"github.com/spf13/cobra"
)

// Command group IDs used to organize help output.
const (
	GroupExtraction    = "extraction"
	GroupInspection    = "inspection"
	GroupConfiguration = "configuration"
	GroupInternal      = "internal"
)

// Persistent flags shared by all commands.
var (
	changelogFlag string
	configFlag    string
	debugFlag     bool
)

var rootCmd = &cobra.Command{
	Use:   "relnotes",
	Short: "Extract release notes from CHANGELOG.md",
	Long: `relnotes pulls version sections out of a Keep a Changelog style
CHANGELOG.md for release publishing.

The extract command writes one version's section to a file for CI release
steps. The inspection commands (show, list, latest, verify, watch) help
draft and check the changelog before tagging.

By default the changelog is CHANGELOG.md one directory above the relnotes
binary, i.e. the repository root for a tool installed under bin/. Override
with --changelog, RELNOTES_CHANGELOG, or the changelog config key.

More information: https://github.com/ariel-frischer/relnotes`,
	Example: `  relnotes extract v1.2.3 dist/release-notes.md
  relnotes show v1.2.3
  relnotes list --sort semver
  relnotes latest
  relnotes verify --tags
  relnotes watch v1.3.0 --out dist/release-notes.md`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debugFlag {
			debugLog := log.New(cmd.ErrOrStderr(), "", 0)
			git.SetDebugLogger(debugLog.Printf)
		}
	},
}

func init() {
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupExtraction, Title: "Extraction Commands:"},
		&cobra.Group{ID: GroupInspection, Title: "Inspection Commands:"},
		&cobra.Group{ID: GroupConfiguration, Title: "Configuration Commands:"},
		&cobra.Group{ID: GroupInternal, Title: "Internal Commands:"},
	)

	rootCmd.PersistentFlags().StringVar(&changelogFlag, "changelog", "",
		"Changelog path or URL (default: CHANGELOG.md above the install dir)")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "",
		"Path to project config file (default: .relnotes/config.yml)")
	rootCmd.PersistentFlags().BoolVarP(&debugFlag, "debug", "d", false,
		"Enable debug logging to stderr")
}

// Execute runs the root command, rendering any failure to stderr. Every
// failure produces exactly one diagnostic; commands that have already
// reported their findings return an exit error, which is not re-printed.
func Execute() error {
	err := rootCmd.Execute()
	if err == nil {
		return nil
	}
	reportError(err)
	return err
}

func reportError(err error) {
	var exitErr *exitError
	if errors.As(err, &exitErr) {
		return
	}
	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		clierrors.PrintError(cliErr)
		return
	}
	clierrors.PrintSimpleError(err, clierrors.Runtime)
}

// loadConfig loads the effective configuration, honoring the --config flag.
func loadConfig() (*config.Configuration, error) {
	return config.Load(configFlag)
}

// resolveChangelogPath returns the changelog location for this invocation:
// the --changelog flag when set, then the configured override (which covers
// RELNOTES_CHANGELOG and the config files), then the executable-relative
// default.
func resolveChangelogPath(cfg *config.Configuration) (string, error) {
	if changelogFlag != "" {
		return changelogFlag, nil
	}
	if cfg.Changelog != "" {
		return cfg.Changelog, nil
	}
	return changelog.DefaultPath()
}

// loadChangelogDocument resolves the changelog location and reads it, from
// disk or over HTTP when the override is a URL.
func loadChangelogDocument(ctx context.Context, cfg *config.Configuration) (*changelog.Document, error) {
	path, err := resolveChangelogPath(cfg)
	if err != nil {
		return nil, err
	}
	return changelog.LoadSource(ctx, path)
}
