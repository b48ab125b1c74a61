package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getRootCmd = &cobra.Command{
	Use:     "get-root",
	Aliases: []string{"root"},
	Short:   "Print the repository root",
	Long: `Prints the directory containing the repository's common git directory.
The result is the same from the main worktree and from every linked one.`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openAppContext(cmd)
		if err != nil {
			return err
		}

		root, err := app.Repo.Root(cmd.Context())
		if err != nil {
			return err
		}

		if mustGetBool(cmd, "json") {
			return writeJSON(cmd.OutOrStdout(), map[string]string{"root": root})
		}

		fmt.Fprintln(cmd.OutOrStdout(), root)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getRootCmd)
}
