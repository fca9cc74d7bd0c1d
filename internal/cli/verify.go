package cli

import (
	"errors"
	"fmt"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	"github.com/ariel-frischer/relnotes/internal/config"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/ariel-frischer/relnotes/internal/git"
	"github.com/spf13/cobra"
)

var (
	verifyTagsFlag         bool
	verifyRequireDatesFlag bool
)

var verifyCmd = &cobra.Command{
	Use:   "verify [version...]",
	Short: "Check the changelog for release readiness",
	Long: `Check the changelog for problems that would break a later extract.

Without arguments the whole document is linted: duplicate versions, more
than one unreleased section, released sections without a YYYY-MM-DD date,
and sections that extraction would reject (unreachable heading or empty
body). With version arguments only those versions are checked.

--tags cross-checks the repository's git tags: every tag that looks like a
version must have a matching changelog section. Useful as a CI gate before
tagging a release.

Returns exit code 0 when clean, or 1 with one line per finding on stderr.

Examples:
  relnotes verify
  relnotes verify v1.2.3
  relnotes verify --tags
  relnotes verify --require-dates=false`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, args)
	},
}

func init() {
	verifyCmd.GroupID = GroupInspection
	rootCmd.AddCommand(verifyCmd)

	verifyCmd.Flags().BoolVar(&verifyTagsFlag, "tags", false, "Cross-check git tags against changelog sections")
	verifyCmd.Flags().BoolVar(&verifyRequireDatesFlag, "require-dates", true, "Require YYYY-MM-DD dates on released sections")
}

func runVerify(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadChangelogDocument(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	result, err := verifyDocument(cmd, cfg, doc, args)
	if err != nil {
		return err
	}

	if !result.Ok() {
		for _, issue := range result.Issues {
			fmt.Fprintf(cmd.ErrOrStderr(), "error: %s\n", issue)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "✗ %s: %d problem(s) found\n", doc.Path, len(result.Issues))
		return NewExitError(ExitFailure)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ %s: %d section(s) verified\n", doc.Path, result.Sections)
	return nil
}

func verifyDocument(cmd *cobra.Command, cfg *config.Configuration, doc *changelog.Document, args []string) (*changelog.VerifyResult, error) {
	if len(args) > 0 {
		versions := make([]string, len(args))
		for i, arg := range args {
			versions[i] = changelog.NormalizeVersion(arg)
		}
		return changelog.VerifyVersions(doc, versions), nil
	}

	requireDates := cfg.RequireDates
	if cmd.Flags().Changed("require-dates") {
		requireDates = verifyRequireDatesFlag
	}

	opts := changelog.VerifyOptions{RequireDates: requireDates}
	if verifyTagsFlag {
		tags, err := git.TagNames()
		if err != nil {
			if errors.Is(err, git.ErrNotRepository) {
				return nil, clierrors.GitNotRepository()
			}
			return nil, err
		}
		opts.Tags = changelog.FilterVersionTags(tags)
	}

	return changelog.Verify(doc, opts), nil
}
