package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Set at build time via -ldflags
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the current version of worktree-manager.`,
	Args:  usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		if mustGetBool(cmd, "json") {
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"version": Version,
				"commit":  Commit,
				"date":    BuildDate,
			})
		}

		fmt.Fprintf(cmd.OutOrStdout(), "worktree-manager version %s (%s, built %s)\n", Version, Commit, BuildDate)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
