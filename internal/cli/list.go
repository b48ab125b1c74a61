package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rawnly/worktree-manager/internal/git"
	"github.com/rawnly/worktree-manager/internal/ui"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available worktrees",
	Long: `Lists the worktrees of the current repository that are checked out on a
named branch, in git's order. Detached and bare worktrees are not shown.

Paths under the repository root are abbreviated with the configured root
marker ("@" by default).

Examples:
  worktree-manager list
  worktree-manager ls --json`,
	Args: usageArgs(cobra.NoArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openAppContext(cmd)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		worktrees, err := app.Repo.List(ctx)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		if mustGetBool(cmd, "json") {
			if worktrees == nil {
				worktrees = []git.Worktree{}
			}
			return writeJSON(out, worktrees)
		}

		root, err := app.Repo.Root(ctx)
		if err != nil {
			return err
		}

		for _, wt := range worktrees {
			path := git.AbbreviatePath(wt.Path, root, app.Config.RootMarker)
			fmt.Fprintln(out, ui.FormatWorktreeLine(path, wt.Branch))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
