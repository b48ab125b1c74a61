package cli

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rawnly/worktree-manager/internal/ui"
	"github.com/rawnly/worktree-manager/internal/worktree"
)

var removeCmd = &cobra.Command{
	Use:     "remove",
	Aliases: []string{"rm"},
	Short:   "Remove a worktree",
	Long: `Prompts for a worktree and removes it with "git worktree remove".

The worktree you are in is never offered. When git refuses because the
worktree has modified or untracked files, you are asked whether to force
the removal. Pass --force to skip that question.`,
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

		wt, err := app.Selector("Delete a worktree").Pick(ctx, worktrees, worktree.ModeInteractive)
		if handled, err := handleSelectionOutcome(err); handled {
			return err
		}

		result, err := app.Remover().Remove(ctx, wt, mustGetBool(cmd, "force"))
		if err != nil {
			return err
		}

		if !result.Removed {
			ui.PrintWarning("worktree not removed")
			return nil
		}

		if result.Stderr != "" {
			log.Warn("git reported", "stderr", result.Stderr)
		}

		if mustGetBool(cmd, "json") {
			return writeJSON(cmd.OutOrStdout(), struct {
				Path   string `json:"path"`
				Branch string `json:"branch"`
				Forced bool   `json:"forced"`
			}{wt.Path, wt.Branch, result.Forced})
		}

		ui.PrintDone("worktree removed successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(removeCmd)

	removeCmd.Flags().BoolP("force", "f", false, "Force removal without asking")
}
