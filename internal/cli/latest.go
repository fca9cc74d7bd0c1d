package cli

import (
	"fmt"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

var (
	latestSectionFlag bool
	latestPlainFlag   bool
)

var latestCmd = &cobra.Command{
	Use:   "latest",
	Short: "Print the newest released version",
	Long: `Print the newest released version in the changelog.

"Newest" means the first section in document order that is not the
unreleased section. With --section the full section is printed instead of
just the version identifier, so release scripts can do both lookups with
one command.

Examples:
  relnotes latest                # e.g. "1.2.3"
  relnotes latest --section      # the whole 1.2.3 section
  git tag "v$(relnotes latest)"`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runLatest(cmd)
	},
}

func init() {
	latestCmd.GroupID = GroupInspection
	rootCmd.AddCommand(latestCmd)

	latestCmd.Flags().BoolVar(&latestSectionFlag, "section", false, "Print the full section instead of the version id")
	latestCmd.Flags().BoolVar(&latestPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runLatest(cmd *cobra.Command) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadChangelogDocument(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	parsed := changelog.Parse([]byte(doc.Content))
	if len(parsed.Entries) == 0 {
		return clierrors.NoVersionSections(doc.Path)
	}

	release := parsed.LatestRelease()
	if release == nil {
		return clierrors.NoReleasedVersions(doc.Path)
	}

	if !latestSectionFlag {
		fmt.Fprintln(cmd.OutOrStdout(), release.Version)
		return nil
	}

	section, err := doc.Extract(changelog.NormalizeVersion(release.Version))
	if err != nil {
		return err
	}

	plain := cfg.Plain
	if cmd.Flags().Changed("plain") {
		plain = latestPlainFlag
	}

	return changelog.FormatSection(section, cmd.OutOrStdout(), changelog.FormatOptions{Plain: plain})
}
