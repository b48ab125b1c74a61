package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypedErrors(t *testing.T) {
	assert.True(t, errors.Is(ErrExecution, ErrExecution))
	assert.False(t, errors.Is(ErrExecution, ErrEncoding))
	assert.False(t, errors.Is(ErrEncoding, ErrGitOperationFailed))

	wrapped := fmt.Errorf("context: %w", ErrUserCancelled)
	assert.True(t, errors.Is(wrapped, ErrUserCancelled))
	assert.False(t, errors.Is(wrapped, ErrExecution))
}

func TestWrappedErrors_Chain(t *testing.T) {
	original := fmt.Errorf("original: %w", ErrGitOperationFailed)
	wrapped := fmt.Errorf("wrapped: %w", original)

	assert.True(t, errors.Is(wrapped, ErrGitOperationFailed))
	assert.True(t, errors.Is(wrapped, original))
}

func TestInvalidSelectionError(t *testing.T) {
	err := fmt.Errorf("pick: %w", &InvalidSelectionError{Branch: "feature-x"})

	assert.True(t, errors.Is(err, ErrInvalidSelection))
	assert.Contains(t, err.Error(), "feature-x")

	var sel *InvalidSelectionError
	assert.True(t, errors.As(err, &sel))
	assert.Equal(t, "feature-x", sel.Branch)
}

func TestRemovalError(t *testing.T) {
	err := &RemovalError{Path: "/repo/feat", Stderr: "fatal: not a working tree"}

	assert.True(t, errors.Is(err, ErrRemovalFailed))
	assert.False(t, errors.Is(err, ErrRemovalRequiresForce))
	assert.Contains(t, err.Error(), "/repo/feat")
	assert.Contains(t, err.Error(), "not a working tree")

	empty := &RemovalError{Path: "/repo/feat"}
	assert.Contains(t, empty.Error(), ErrRemovalFailed.Error())
}

func TestGitError(t *testing.T) {
	err := &GitError{Args: []string{"worktree", "list"}, ExitCode: 128, Stderr: "fatal: not a git repository"}

	assert.True(t, errors.Is(err, ErrGitOperationFailed))
	assert.Contains(t, err.Error(), "128")
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"cancelled", fmt.Errorf("pick: %w", ErrUserCancelled), ExitUserCancelled},
		{"execution", fmt.Errorf("git: %w", ErrExecution), ExitExecutionFailed},
		{"encoding", ErrEncoding, ExitGitOperationFailed},
		{"git", &GitError{ExitCode: 1}, ExitGitOperationFailed},
		{"removal", &RemovalError{Path: "/p"}, ExitGitOperationFailed},
		{"config", fmt.Errorf("load: %w", ErrConfigInvalid), ExitConfigurationError},
		{"arguments", fmt.Errorf("%w: accepts at most 1 arg(s), received 2", ErrInvalidArguments), ExitInvalidArguments},
		{"other", errors.New("boom"), ExitGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}
