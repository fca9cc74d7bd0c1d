package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/ariel-frischer/relnotes/internal/changelog"
	clierrors "github.com/ariel-frischer/relnotes/internal/errors"
	"github.com/ariel-frischer/relnotes/internal/progress"
	"github.com/ariel-frischer/relnotes/internal/watch"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var (
	watchOutFlag      string
	watchIntervalFlag time.Duration
	watchPlainFlag    bool
)

var watchCmd = &cobra.Command{
	Use:   "watch <version>",
	Short: "Re-render a section whenever the changelog changes",
	Long: `Re-render a version's section whenever the changelog file changes.

Useful while drafting release notes: keep the watch running in one terminal
and edit CHANGELOG.md in another. Each save re-extracts and re-renders the
section. Extraction failures while the file is mid-edit are reported as
warnings and the watch keeps running.

With --out the section is also rewritten to a file on every change,
mirroring what extract would produce. Stop with Ctrl-C.

Examples:
  relnotes watch v1.3.0
  relnotes watch Unreleased --plain
  relnotes watch v1.3.0 --out dist/release-notes.md`,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWatch(cmd, args[0])
	},
}

func init() {
	watchCmd.GroupID = GroupInspection
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&watchOutFlag, "out", "", "Also rewrite the section to this file on every change")
	watchCmd.Flags().DurationVar(&watchIntervalFlag, "interval", watch.DefaultInterval, "Backup polling interval")
	watchCmd.Flags().BoolVar(&watchPlainFlag, "plain", false, "Plain text output (no colors/icons)")
}

func runWatch(cmd *cobra.Command, version string) error {
	normalized := changelog.NormalizeVersion(version)
	if normalized == "" {
		return clierrors.EmptyVersion()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path, err := resolveChangelogPath(cfg)
	if err != nil {
		return err
	}
	if changelog.IsRemotePath(path) {
		return clierrors.NewArgumentError(
			"watch requires a local changelog file",
			"Point --changelog (or the changelog config key) at a local path",
		)
	}

	interval := cfg.WatchInterval
	if cmd.Flags().Changed("interval") {
		interval = watchIntervalFlag
	}

	plain := cfg.Plain
	if cmd.Flags().Changed("plain") {
		plain = watchPlainFlag
	}

	watcher, err := watch.New(path, interval)
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var spin *progress.Spinner
	if !plain {
		caps := progress.DetectTerminalCapabilities()
		spin = progress.NewSpinner(caps, " watching "+filepath.Base(watcher.Path()))
	}
	defer spin.Stop()

	opts := changelog.FormatOptions{Plain: plain}
	render := func() {
		spin.Stop()
		renderWatchCycle(cmd, watcher.Path(), normalized, opts)
		spin.Start()
	}

	render()

	group, ctx := errgroup.WithContext(ctx)
	changes := watcher.Changes(ctx)

	group.Go(func() error {
		for range changes {
			render()
		}
		return nil
	})
	group.Go(func() error {
		// Unblocks the event loop when a signal or cancellation arrives.
		<-ctx.Done()
		return watcher.Close()
	})

	return group.Wait()
}

// renderWatchCycle runs one extract-and-render pass. A failing pass is
// normal while the file is being edited, so it only warns.
func renderWatchCycle(cmd *cobra.Command, path, version string, opts changelog.FormatOptions) {
	doc, err := changelog.Load(path)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return
	}

	section, err := doc.Extract(version)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return
	}

	if err := changelog.FormatSection(section, cmd.OutOrStdout(), opts); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		return
	}
	fmt.Fprintln(cmd.OutOrStdout())

	if watchOutFlag != "" {
		if err := changelog.WriteSection(watchOutFlag, section); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}
}
