package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/rawnly/worktree-manager/internal/config"
	wmexec "github.com/rawnly/worktree-manager/internal/exec"
	"github.com/rawnly/worktree-manager/internal/git"
	"github.com/rawnly/worktree-manager/internal/ui"
	"github.com/rawnly/worktree-manager/internal/worktree"
)

const testListing = `/repo/main     abc1234 [main]
/repo/feat-a   def5678 [feat-a]
/repo/scratch  0123abc (detached HEAD)
/repo/feat-b   9876fed [feat-b]
`

var (
	listArgs = []string{"worktree", "list"}
	rootArgs = []string{"rev-parse", "--git-common-dir"}
)

// scriptedPrompter answers prompts from queues and records what it was shown.
type scriptedPrompter struct {
	selections []string
	confirms   []bool
	selectErr  error
	confirmErr error

	selectTitles  []string
	selectOptions [][]string
	confirmTitles []string
}

var _ worktree.Prompter = (*scriptedPrompter)(nil)

func (p *scriptedPrompter) Select(_ context.Context, title string, options []string) (string, error) {
	p.selectTitles = append(p.selectTitles, title)
	p.selectOptions = append(p.selectOptions, options)
	if p.selectErr != nil {
		return "", p.selectErr
	}
	if len(p.selections) == 0 {
		return "", nil
	}
	s := p.selections[0]
	p.selections = p.selections[1:]
	return s, nil
}

func (p *scriptedPrompter) Confirm(_ context.Context, title string, def bool) (bool, error) {
	p.confirmTitles = append(p.confirmTitles, title)
	if p.confirmErr != nil {
		return false, p.confirmErr
	}
	if len(p.confirms) == 0 {
		return def, nil
	}
	c := p.confirms[0]
	p.confirms = p.confirms[1:]
	return c, nil
}

// newTestApp wires an AppContext around a mock commander. The working
// directory is reported as cwd.
func newTestApp(mock *wmexec.MockCommander, p *scriptedPrompter, cwd string) *AppContext {
	executor := wmexec.NewCommandExecutor(mock)
	return &AppContext{
		Config:   config.Default(),
		Executor: executor,
		Repo:     git.NewRepository(executor, "/repo/main"),
		Prompter: p,
		Getwd:    func() (string, error) { return cwd, nil },
	}
}

type commandOutput struct {
	stdout string
	status string
}

// runCommand executes the root command with args against app, capturing
// stdout and the status stream.
func runCommand(t *testing.T, app *AppContext, args ...string) (commandOutput, error) {
	t.Helper()

	prevOpen := openAppContext
	prevStatus := ui.Status
	t.Cleanup(func() {
		openAppContext = prevOpen
		ui.Status = prevStatus
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	openAppContext = func(*cobra.Command) (*AppContext, error) { return app, nil }

	var stdout, status bytes.Buffer
	ui.Status = &status
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&status)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)

	err := Execute(context.Background())
	return commandOutput{stdout: stdout.String(), status: status.String()}, err
}

// resetFlags restores every flag to its default; cobra commands are package
// globals and keep parsed values between executions.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}
