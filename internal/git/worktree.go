package git

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/log"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
	"github.com/rawnly/worktree-manager/internal/exec"
)

// Worktree represents a git worktree checked out on a named branch
type Worktree struct {
	Path   string `json:"path"`
	Branch string `json:"branch"`
}

// Repository runs read-only git queries against the repository containing Dir
type Repository struct {
	executor *exec.CommandExecutor

	// Dir is the directory git runs in. Empty means the process working directory.
	Dir string
}

// NewRepository creates a Repository. A nil executor uses exec.DefaultExecutor.
func NewRepository(executor *exec.CommandExecutor, dir string) *Repository {
	if executor == nil {
		executor = exec.DefaultExecutor
	}
	return &Repository{executor: executor, Dir: dir}
}

// List returns the worktrees reported by `git worktree list`, in git's order.
// Detached and bare entries are skipped.
func (r *Repository) List(ctx context.Context) ([]Worktree, error) {
	output, err := r.git(ctx, "worktree", "list")
	if err != nil {
		return nil, fmt.Errorf("listing worktrees: %w", err)
	}

	worktrees := ParseWorktreeList(output)
	log.Debug("parsed worktree list", "count", len(worktrees))
	return worktrees, nil
}

// Root returns the parent of the repository's common git directory.
func (r *Repository) Root(ctx context.Context) (string, error) {
	output, err := r.git(ctx, "rev-parse", "--git-common-dir")
	if err != nil {
		return "", fmt.Errorf("resolving worktree root: %w", err)
	}

	commonDir := strings.TrimSpace(output)
	if !filepath.IsAbs(commonDir) {
		base, err := r.workDir()
		if err != nil {
			return "", fmt.Errorf("resolving worktree root: %w", err)
		}
		commonDir = filepath.Join(base, commonDir)
	}
	commonDir = filepath.Clean(commonDir)

	root := filepath.Dir(commonDir)
	if root == commonDir {
		return "", fmt.Errorf("cannot find parent directory of %s", commonDir)
	}

	return root, nil
}

// ParseWorktreeList turns the human-readable `git worktree list` output into
// worktrees. Each line is "<path> <head> [<branch>]"; lines whose branch token
// is empty or wrapped in parentheses, such as "(detached HEAD)" or "(bare)",
// are skipped.
//
// Paths containing whitespace are not supported by this format.
func ParseWorktreeList(output string) []Worktree {
	var worktrees []Worktree

	for _, line := range strings.Split(output, "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}

		branch := strings.NewReplacer("[", "", "]", "").Replace(branchToken(fields[1:]))
		if branch == "" || (strings.HasPrefix(branch, "(") && strings.HasSuffix(branch, ")")) {
			continue
		}

		worktrees = append(worktrees, Worktree{
			Path:   fields[0],
			Branch: branch,
		})
	}

	return worktrees
}

// branchToken picks the branch token from the fields following the path.
// The last bracketed field wins, so trailing "locked" or "prunable" markers
// are ignored. A parenthesized group spanning several fields is returned
// whole. Otherwise the last field is used.
func branchToken(fields []string) string {
	for i := len(fields) - 1; i >= 0; i-- {
		if strings.HasPrefix(fields[i], "[") && strings.HasSuffix(fields[i], "]") {
			return fields[i]
		}
	}

	for i, f := range fields {
		if !strings.HasPrefix(f, "(") {
			continue
		}
		for j := i; j < len(fields); j++ {
			if strings.HasSuffix(fields[j], ")") {
				return strings.Join(fields[i:j+1], " ")
			}
		}
	}

	return fields[len(fields)-1]
}

// AbbreviatePath replaces a leading root in path with marker, for display.
// Siblings sharing a name prefix with root, like /src/app-feature next to
// /src/app, are left untouched.
func AbbreviatePath(path, root, marker string) string {
	if root == "" {
		return path
	}
	if path == root {
		return marker
	}
	if !strings.HasPrefix(path, root+string(filepath.Separator)) {
		return path
	}
	return marker + strings.TrimPrefix(path, root)
}

func (r *Repository) git(ctx context.Context, args ...string) (string, error) {
	result, err := r.executor.Git(ctx, r.Dir, args...)
	if err != nil {
		return "", err
	}

	if !result.Success() {
		return "", &wmerrors.GitError{
			Args:     args,
			ExitCode: result.ExitCode,
			Stderr:   strings.TrimSpace(string(result.Stderr)),
		}
	}

	if !utf8.Valid(result.Stdout) {
		return "", fmt.Errorf("git %s: %w", strings.Join(args, " "), wmerrors.ErrEncoding)
	}

	return string(result.Stdout), nil
}

func (r *Repository) workDir() (string, error) {
	if r.Dir != "" {
		return filepath.Abs(r.Dir)
	}
	return os.Getwd()
}
