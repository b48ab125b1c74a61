package worktree

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/exec"
	"github.com/rawnly/worktree-manager/internal/git"
)

// forceHint is what git prints when a removal needs --force, e.g.
// "fatal: '/repo/feat' contains modified or untracked files, use --force to delete it".
const forceHint = "--force"

// RemoveResult describes the outcome of a removal.
type RemoveResult struct {
	Removed bool
	Forced  bool

	// Stderr is git's diagnostic output, kept even when the removal succeeded.
	Stderr string
}

// Remover removes worktrees, negotiating --force with the user when git asks for it.
type Remover struct {
	executor *exec.CommandExecutor
	Prompter Prompter

	// Dir is where git runs. Empty means the process working directory.
	Dir string

	// Progress, when set, wraps every git invocation (the CLI shows a spinner).
	Progress func(ctx context.Context, title string, action func(context.Context) error) error
}

// NewRemover creates a Remover. A nil executor uses exec.DefaultExecutor.
func NewRemover(executor *exec.CommandExecutor, p Prompter, dir string) *Remover {
	if executor == nil {
		executor = exec.DefaultExecutor
	}
	return &Remover{executor: executor, Prompter: p, Dir: dir}
}

// Remove runs `git worktree remove` for wt. When git refuses without --force
// the user is asked to confirm, defaulting to no; a yes retries exactly once
// with --force, a no returns a result with Removed false.
func (r *Remover) Remove(ctx context.Context, wt git.Worktree, force bool) (RemoveResult, error) {
	result, err := r.attempt(ctx, wt, force)
	if !errors.Is(err, wmerrors.ErrRemovalRequiresForce) {
		return result, err
	}

	log.Debug("worktree removal requires force", "path", wt.Path, "stderr", result.Stderr)

	confirmed, err := r.Prompter.Confirm(ctx, "force delete?", false)
	if err != nil {
		return result, err
	}
	if !confirmed {
		log.Debug("force removal declined", "path", wt.Path)
		return result, nil
	}

	return r.attempt(ctx, wt, true)
}

func (r *Remover) attempt(ctx context.Context, wt git.Worktree, force bool) (RemoveResult, error) {
	args := []string{"worktree", "remove"}
	if force {
		args = append(args, "--force")
	}
	args = append(args, wt.Path)

	var res exec.Result
	run := func(ctx context.Context) error {
		var err error
		res, err = r.executor.Git(ctx, r.Dir, args...)
		return err
	}

	var err error
	if r.Progress != nil {
		err = r.Progress(ctx, fmt.Sprintf("Removing %s", wt.Path), run)
	} else {
		err = run(ctx)
	}
	if err != nil {
		return RemoveResult{}, fmt.Errorf("removing worktree %s: %w", wt.Path, err)
	}

	if !utf8.Valid(res.Stdout) || !utf8.Valid(res.Stderr) {
		return RemoveResult{}, fmt.Errorf("removing worktree %s: %w", wt.Path, wmerrors.ErrEncoding)
	}

	result := RemoveResult{
		Forced: force,
		Stderr: strings.TrimSpace(string(res.Stderr)),
	}

	if strings.TrimSpace(string(res.Stdout)) != "" {
		result.Removed = true
		return result, nil
	}

	if !force && strings.Contains(result.Stderr, forceHint) {
		return result, wmerrors.ErrRemovalRequiresForce
	}

	// git exits zero on success and may still print warnings.
	if !res.Success() {
		return result, &wmerrors.RemovalError{Path: wt.Path, Stderr: result.Stderr}
	}

	result.Removed = true
	return result, nil
}
