// Package worktree holds the interactive flows built on top of the git
// worktree listing: choosing a worktree and removing one.
package worktree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/git"
)

// Prompter is the interactive capability the selector and remover need.
// ui.Prompter implements it with huh forms.
type Prompter interface {
	Select(ctx context.Context, title string, options []string) (string, error)
	Confirm(ctx context.Context, title string, def bool) (bool, error)
}

// Mode controls how Pick chooses a worktree.
type Mode int

const (
	// ModeInteractive prompts with every worktree except the current one.
	ModeInteractive Mode = iota

	// ModeCurrent returns the current worktree without prompting when one is
	// detected, and falls back to ModeInteractive otherwise.
	ModeCurrent
)

// Selector chooses a worktree from a listing.
type Selector struct {
	Prompter Prompter

	// Getwd reports the caller's working directory. Defaults to os.Getwd.
	Getwd func() (string, error)

	Title string
}

// NewSelector creates a Selector prompting through p.
func NewSelector(p Prompter) *Selector {
	return &Selector{
		Prompter: p,
		Getwd:    os.Getwd,
		Title:    "Select a worktree",
	}
}

// Current returns the worktree whose path matches the working directory, or
// nil when the caller is not inside a listed worktree root.
func (s *Selector) Current(worktrees []git.Worktree) (*git.Worktree, error) {
	getwd := s.Getwd
	if getwd == nil {
		getwd = os.Getwd
	}

	cwd, err := getwd()
	if err != nil {
		return nil, fmt.Errorf("getting current directory: %w", err)
	}

	i := currentIndex(worktrees, cwd)
	if i < 0 {
		return nil, nil
	}

	log.Debug("detected current worktree", "path", worktrees[i].Path, "branch", worktrees[i].Branch)
	return &worktrees[i], nil
}

// Pick chooses a worktree according to mode. It returns
// wmerrors.ErrNoOtherWorktrees when there is nothing to choose from and
// wmerrors.ErrUserCancelled when the prompt is aborted.
func (s *Selector) Pick(ctx context.Context, worktrees []git.Worktree, mode Mode) (git.Worktree, error) {
	current, err := s.Current(worktrees)
	if err != nil {
		return git.Worktree{}, err
	}

	if mode == ModeCurrent && current != nil {
		return *current, nil
	}

	options := Options(worktrees, current)
	if len(options) == 0 {
		return git.Worktree{}, wmerrors.ErrNoOtherWorktrees
	}

	branch, err := s.Prompter.Select(ctx, s.Title, options)
	if err != nil {
		return git.Worktree{}, err
	}

	return Lookup(worktrees, branch)
}

// Options lists the branches offered in the menu, in listing order, leaving
// out current when it is non-nil.
func Options(worktrees []git.Worktree, current *git.Worktree) []string {
	options := make([]string, 0, len(worktrees))
	for _, wt := range worktrees {
		if current != nil && wt.Path == current.Path {
			continue
		}
		options = append(options, wt.Branch)
	}
	return options
}

// Lookup finds the worktree for branch. The listing can change between
// prompting and lookup, in which case an *InvalidSelectionError is returned.
func Lookup(worktrees []git.Worktree, branch string) (git.Worktree, error) {
	for _, wt := range worktrees {
		if wt.Branch == branch {
			return wt, nil
		}
	}
	return git.Worktree{}, &wmerrors.InvalidSelectionError{Branch: branch}
}

func currentIndex(worktrees []git.Worktree, cwd string) int {
	target := normalizePath(cwd)
	for i, wt := range worktrees {
		if normalizePath(wt.Path) == target {
			return i
		}
	}
	return -1
}

// normalizePath cleans p, which also drops trailing separators, and resolves
// symlinks when the path exists.
func normalizePath(p string) string {
	if p == "" {
		return ""
	}

	p = filepath.Clean(p)
	if resolved, err := filepath.EvalSymlinks(p); err == nil {
		p = resolved
	}
	return p
}
