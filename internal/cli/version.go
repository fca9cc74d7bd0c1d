package cli

import (
	"fmt"
	"runtime"

	"github.com/ariel-frischer/relnotes/internal/build"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Long:  `Show the relnotes version, commit, build date, and platform.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "relnotes %s\n", build.Version)
		fmt.Fprintf(out, "  commit:     %s\n", build.Commit)
		fmt.Fprintf(out, "  built:      %s\n", build.BuildDate)
		fmt.Fprintf(out, "  go version: %s\n", runtime.Version())
		fmt.Fprintf(out, "  platform:   %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	versionCmd.GroupID = GroupInternal
	rootCmd.AddCommand(versionCmd)
}
