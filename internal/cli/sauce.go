package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// SourceURL is the canonical home of the relnotes source code.
const SourceURL = "https://github.com/ariel-frischer/relnotes"

var sauceCmd = &cobra.Command{
	Use:   "sauce",
	Short: "Show where the source (sauce) lives",
	Long:  `Print the URL of the relnotes source repository. The secret sauce.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), SourceURL)
	},
}

func init() {
	sauceCmd.GroupID = GroupInternal
	rootCmd.AddCommand(sauceCmd)
}
