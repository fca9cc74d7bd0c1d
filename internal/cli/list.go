package cli

import (
	"fmt"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/spf13/cobra"
)

var (
	listSortFlag  string
	listPlainFlag bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List changelog versions",
	Long: `List every version section in the changelog, one per line, with the
release date when the heading carries one.

The default order is document order (newest first by Keep a Changelog
convention). --sort semver orders numerically instead, which differs from
document order when sections were inserted out of sequence; entries that
are not versions (like Unreleased) stay on top.

Examples:
  relnotes list
  relnotes list --sort semver
  relnotes list --plain`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runList(cmd)
	},
}

func init() {
	listCmd.GroupID = GroupInspection
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listSortFlag, "sort", "", "Section order: document or semver (default from config)")
	listCmd.Flags().BoolVar(&listPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runList(cmd *cobra.Command) error {
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

	sortOrder := cfg.Sort
	if cmd.Flags().Changed("sort") {
		sortOrder = listSortFlag
	}

	entries := parsed.Entries
	switch sortOrder {
	case "document":
	case "semver":
		entries = changelog.SortBySemver(entries)
	default:
		return clierrors.InvalidSortOrder(sortOrder)
	}

	plain := cfg.Plain
	if cmd.Flags().Changed("plain") {
		plain = listPlainFlag
	}

	opts := changelog.FormatOptions{Plain: plain}
	for i := range entries {
		fmt.Fprintln(cmd.OutOrStdout(), changelog.FormatVersionLine(&entries[i], opts))
	}
	return nil
}
