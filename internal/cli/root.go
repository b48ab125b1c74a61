package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/ui"
)

var rootCmd = &cobra.Command{
	Use:   "worktree-manager",
	Short: "Pick, list and remove git worktrees",
	Long: `worktree-manager lists the worktrees of the current repository,
lets you pick one interactively and removes worktrees safely.

Run "worktree-manager init <shell>" and evaluate its output in your shell
profile to get a function that changes into the picked worktree.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command and reports the error, if any, on stderr.
func Execute(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
	case ui.IsAbort(err):
		ui.PrintWarning("cancelled")
	default:
		ui.PrintError(err.Error())
	}
	return err
}

func init() {
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", wmerrors.ErrInvalidArguments, err)
	})

	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Path to a config file")
}
