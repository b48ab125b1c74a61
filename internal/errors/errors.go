// Package errors defines the error taxonomy shared by every worktree-manager
// package and maps it onto process exit codes.
package errors

import (
	"errors"
	"fmt"
)

var (
	// ErrExecution means an external program could not be started.
	ErrExecution = errors.New("command execution failed")

	// ErrEncoding means an external program produced output that is not valid UTF-8.
	ErrEncoding = errors.New("invalid output encoding")

	// ErrUserCancelled is returned when the user aborts an interactive prompt.
	ErrUserCancelled = errors.New("user cancelled")

	// ErrInvalidSelection means the selected branch is no longer among the listed worktrees.
	ErrInvalidSelection = errors.New("invalid worktree selection")

	// ErrRemovalRequiresForce marks a removal git refused without --force.
	// It drives the confirm/retry negotiation and never reaches the user.
	ErrRemovalRequiresForce = errors.New("worktree removal requires --force")

	ErrRemovalFailed = errors.New("worktree removal failed")

	// ErrNoOtherWorktrees is a normal outcome: nothing is left to choose from.
	ErrNoOtherWorktrees = errors.New("no other worktrees available")

	ErrGitOperationFailed = errors.New("git operation failed")
	ErrConfigInvalid      = errors.New("invalid configuration")

	// ErrInvalidArguments wraps command-line usage errors.
	ErrInvalidArguments = errors.New("invalid arguments")
)

// InvalidSelectionError carries the branch that could not be resolved.
type InvalidSelectionError struct {
	Branch string
}

func (e *InvalidSelectionError) Error() string {
	return fmt.Sprintf("invalid worktree branch: %s", e.Branch)
}

func (e *InvalidSelectionError) Is(target error) bool {
	return target == ErrInvalidSelection
}

// RemovalError describes a `git worktree remove` that exited non-zero.
type RemovalError struct {
	Path   string
	Stderr string
}

func (e *RemovalError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("removing worktree %s: %s", e.Path, ErrRemovalFailed)
	}
	return fmt.Sprintf("removing worktree %s: %s", e.Path, e.Stderr)
}

func (e *RemovalError) Is(target error) bool {
	return target == ErrRemovalFailed
}

// GitError describes a git invocation that exited with a non-zero status.
type GitError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *GitError) Error() string {
	return fmt.Sprintf("git %v exited with status %d: %s", e.Args, e.ExitCode, e.Stderr)
}

func (e *GitError) Is(target error) bool {
	return target == ErrGitOperationFailed
}

const (
	ExitSuccess = iota
	ExitGeneralError
	ExitInvalidArguments
	ExitExecutionFailed
	ExitGitOperationFailed
	ExitConfigurationError
)

// ExitUserCancelled follows the shell convention for SIGINT.
const ExitUserCancelled = 130

// ExitCode maps an error returned by a command onto the process exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitSuccess
	case errors.Is(err, ErrUserCancelled):
		return ExitUserCancelled
	case errors.Is(err, ErrExecution):
		return ExitExecutionFailed
	case errors.Is(err, ErrGitOperationFailed),
		errors.Is(err, ErrEncoding),
		errors.Is(err, ErrRemovalFailed):
		return ExitGitOperationFailed
	case errors.Is(err, ErrConfigInvalid):
		return ExitConfigurationError
	case errors.Is(err, ErrInvalidArguments):
		return ExitInvalidArguments
	default:
		return ExitGeneralError
	}
}
