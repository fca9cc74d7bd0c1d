package cli

import (
	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

var showPlainFlag bool

var showCmd = &cobra.Command{
	Use:   "show <version>",
	Short: "Print a version's changelog section",
	Long: `Print a version's changelog section to stdout.

Styled output bolds the heading, colors Keep a Changelog category
sub-headings (Added, Fixed, ...), and wraps list items to the terminal
width. With --plain the output is byte-identical to what extract writes,
so it can be piped into other tooling.

Examples:
  relnotes show v1.2.3
  relnotes show 1.2.3 --plain
  relnotes show Unreleased`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runShow(cmd, args[0])
	},
}

func init() {
	showCmd.GroupID = GroupInspection
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runShow(cmd *cobra.Command, version string) error {
	normalized := changelog.NormalizeVersion(version)
	if normalized == "" {
		return clierrors.EmptyVersion()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadChangelogDocument(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	section, err := doc.Extract(normalized)
	if err != nil {
		return err
	}

	plain := cfg.Plain
	if cmd.Flags().Changed("plain") {
		plain = showPlainFlag
	}

	return changelog.FormatSection(section, cmd.OutOrStdout(), changelog.FormatOptions{Plain: plain})
}
