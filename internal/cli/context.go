package cli

import (
	"context"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/rawnly/worktree-manager/internal/config"
	"github.com/rawnly/worktree-manager/internal/exec"
	"github.com/rawnly/worktree-manager/internal/git"
	"github.com/rawnly/worktree-manager/internal/ui"
	"github.com/rawnly/worktree-manager/internal/worktree"
)

// AppContext bundles the collaborators every command works with.
type AppContext struct {
	Config   *config.Config
	Executor *exec.CommandExecutor
	Repo     *git.Repository
	Prompter worktree.Prompter

	Getwd    func() (string, error)
	Progress func(ctx context.Context, title string, action func(context.Context) error) error
}

// openAppContext is replaced in tests.
var openAppContext = OpenAppContext

// OpenAppContext loads configuration, configures logging and wires the
// production collaborators.
func OpenAppContext(cmd *cobra.Command) (*AppContext, error) {
	cfg, err := config.Load(mustGetString(cmd, "config"))
	if err != nil {
		return nil, err
	}

	configureLogging(cfg, mustGetBool(cmd, "verbose"))

	executor := exec.DefaultExecutor.WithGitBinary(cfg.GitBinary)

	return &AppContext{
		Config:   cfg,
		Executor: executor,
		Repo:     git.NewRepository(executor, ""),
		Prompter: ui.NewPrompter(ui.ThemeByName(cfg.Theme)),
		Getwd:    os.Getwd,
		Progress: ui.RunWithSpinner,
	}, nil
}

func configureLogging(cfg *config.Config, verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetReportTimestamp(false)

	level := cfg.LogLevel
	if verbose {
		level = log.DebugLevel
	}
	log.SetLevel(level)
}

func (a *AppContext) Selector(title string) *worktree.Selector {
	s := worktree.NewSelector(a.Prompter)
	if a.Getwd != nil {
		s.Getwd = a.Getwd
	}
	if title != "" {
		s.Title = title
	}
	return s
}

func (a *AppContext) Remover() *worktree.Remover {
	r := worktree.NewRemover(a.Executor, a.Prompter, a.Repo.Dir)
	r.Progress = a.Progress
	return r
}
