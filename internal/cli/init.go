package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/shell"
)

var initCmd = &cobra.Command{
	Use:   "init [bash|zsh|fish]",
	Short: "Print the shell integration script",
	Long: `Prints a script defining the worktree-manager-go shell function, which
changes into the worktree you pick, plus the wm and wmg aliases and three
git aliases (git wt, git wtls, git wtrm).

When the shell is omitted, the default_shell config value is used, then the
basename of $SHELL.

Add one of these to your shell profile:
  eval "$(worktree-manager init bash)"
  eval "$(worktree-manager init zsh)"
  worktree-manager init fish | source`,
	Args:      usageArgs(cobra.MaximumNArgs(1)),
	ValidArgs: []string{"bash", "zsh", "fish"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := openAppContext(cmd)
		if err != nil {
			return err
		}

		dialect, err := resolveDialect(args, app.Config.DefaultShell)
		if err != nil {
			return err
		}

		script := shell.Generate(dialect, mustGetBool(cmd, "no-alias"), mustGetBool(cmd, "no-git-alias"))
		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	},
}

func resolveDialect(args []string, configured shell.Dialect) (shell.Dialect, error) {
	if len(args) > 0 {
		d, err := shell.ParseDialect(args[0])
		if err != nil {
			return 0, fmt.Errorf("%w: %w", wmerrors.ErrInvalidArguments, err)
		}
		return d, nil
	}
	if configured != 0 {
		return configured, nil
	}
	d, err := shell.DetectDialect(os.Getenv("SHELL"))
	if err != nil {
		return 0, fmt.Errorf("%w; pass the shell explicitly", err)
	}
	return d, nil
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("no-alias", false, "Do not define the wm and wmg aliases")
	initCmd.Flags().Bool("no-git-alias", false, "Do not register the git aliases")
}
