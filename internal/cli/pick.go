package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/ui"
	"github.com/rawnly/worktree-manager/internal/worktree"
)

var pickCmd = &cobra.Command{
	Use:     "pick",
	Aliases: []string{"print-path", "path"},
	Short:   "Pick a worktree and print its path",
	Long: `Prompts for a worktree and prints its path, enabling shell navigation.

The worktree you are in is left out of the menu. With --current the current
worktree is printed without prompting.

The prompt is drawn on stderr, so the command is safe inside command
substitution:
  cd "$(worktree-manager pick)"

"worktree-manager init" generates a shell function doing exactly that.`,
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

		mode := worktree.ModeInteractive
		if mustGetBool(cmd, "current") {
			mode = worktree.ModeCurrent
		}

		wt, err := app.Selector("Select a worktree").Pick(ctx, worktrees, mode)
		if handled, err := handleSelectionOutcome(err); handled {
			return err
		}

		if mustGetBool(cmd, "json") {
			return writeJSON(cmd.OutOrStdout(), wt)
		}

		fmt.Fprintln(cmd.OutOrStdout(), wt.Path)
		return nil
	},
}

// handleSelectionOutcome reports the selection results that end a command
// without being failures. It returns handled=true when the caller must stop,
// together with the error to return.
func handleSelectionOutcome(err error) (bool, error) {
	if err == nil {
		return false, nil
	}

	if errors.Is(err, wmerrors.ErrNoOtherWorktrees) {
		ui.PrintInfo(wmerrors.ErrNoOtherWorktrees.Error())
		return true, nil
	}

	var sel *wmerrors.InvalidSelectionError
	if errors.As(err, &sel) {
		ui.PrintWarning(fmt.Sprintf("Invalid worktree branch: %s", ui.PathStyle.Render(sel.Branch)))
		return true, nil
	}

	return true, err
}

func init() {
	rootCmd.AddCommand(pickCmd)

	pickCmd.Flags().BoolP("current", "c", false, "Print the current worktree without prompting")
}
