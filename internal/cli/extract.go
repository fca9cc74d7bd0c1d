package cli

import (
	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

// extractUsage is the diagnostic printed on a wrong argument count. Release
// scripts see this exact line, so it stays free of cobra's help decoration.
const extractUsage = "relnotes extract <version> <output_path>"

var extractCmd = &cobra.Command{
	Use:   "extract <version> <output_path>",
	Short: "Write a version's changelog section to a file",
	Long: `Write a version's changelog section to a file for release publishing.

The output file contains the section heading, a blank line, and the section
body, UTF-8 encoded with a trailing newline. Missing parent directories of
the output path are created. Nothing is written when extraction fails, so a
failed run never leaves a partial file behind.

The command is silent on success and exits 0; every failure prints a single
diagnostic line to stderr and exits 1, which makes it safe to wire directly
into CI release steps.

Examples:
  relnotes extract v1.2.3 dist/release-notes.md
  relnotes extract 1.2.3 /tmp/notes.md     # v prefix optional
  relnotes extract Unreleased draft.md`,
	// Argument count is checked in the run function so the failure prints
	// the usage diagnostic instead of cobra's error text.
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract(cmd, args)
	},
}

func init() {
	extractCmd.GroupID = GroupExtraction
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	if len(args) != 2 {
		return clierrors.NewUsageError(extractUsage)
	}

	version := changelog.NormalizeVersion(args[0])
	if version == "" {
		return clierrors.EmptyVersion()
	}
	outputPath := args[1]

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	doc, err := loadChangelogDocument(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	section, err := doc.Extract(version)
	if err != nil {
		return err
	}

	return changelog.WriteSection(outputPath, section)
}
