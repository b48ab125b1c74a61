// Package exec provides interfaces and implementations for command execution.
// This abstraction allows git-backed components to be tested against scripted
// output instead of a real repository.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
)

// Result holds the captured output and exit status of a finished command.
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Success reports whether the command exited with status zero.
func (r Result) Success() bool {
	return r.ExitCode == 0
}

// Commander defines the interface for executing commands.
// Implementations can provide real command execution or mock behavior for testing.
type Commander interface {
	// Run executes a command in the specified directory with the given arguments.
	// A non-zero exit status is reported through Result.ExitCode, not as an error.
	// The error is non-nil only when the command could not be run at all.
	Run(ctx context.Context, dir string, command string, args ...string) (Result, error)
}

// RealCommander executes commands using the real operating system.
type RealCommander struct{}

// Run executes the command using exec.CommandContext with stdout and stderr
// captured separately.
func (c *RealCommander) Run(ctx context.Context, dir string, command string, args ...string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, command, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr) && ctx.Err() == nil:
		result.ExitCode = exitErr.ExitCode()
	default:
		return result, fmt.Errorf("%w: %s: %w", wmerrors.ErrExecution, command, err)
	}

	log.Debug("command finished", "cmd", command, "args", strings.Join(args, " "), "dir", dir, "exit", result.ExitCode)
	return result, nil
}

// CommandExecutor provides a higher-level interface for common execution patterns.
// It wraps a Commander and fixes the git binary used by Git.
type CommandExecutor struct {
	commander Commander
	gitBinary string
}

// NewCommandExecutor creates a new CommandExecutor with the given Commander.
// If commander is nil, a RealCommander is used.
func NewCommandExecutor(commander Commander) *CommandExecutor {
	if commander == nil {
		commander = &RealCommander{}
	}
	return &CommandExecutor{commander: commander, gitBinary: "git"}
}

// WithGitBinary returns a copy of the executor that runs the given git executable.
// An empty name keeps the current binary.
func (e *CommandExecutor) WithGitBinary(name string) *CommandExecutor {
	clone := *e
	if name != "" {
		clone.gitBinary = name
	}
	return &clone
}

// GitBinary returns the executable Git runs.
func (e *CommandExecutor) GitBinary() string {
	return e.gitBinary
}

// Run executes an arbitrary command.
func (e *CommandExecutor) Run(ctx context.Context, dir string, command string, args ...string) (Result, error) {
	log.Debug("running command", "cmd", command, "args", strings.Join(args, " "))
	return e.commander.Run(ctx, dir, command, args...)
}

// Git executes git with the given arguments.
func (e *CommandExecutor) Git(ctx context.Context, dir string, args ...string) (Result, error) {
	return e.Run(ctx, dir, e.gitBinary, args...)
}

// DefaultExecutor is a package-level default executor using RealCommander.
var DefaultExecutor = NewCommandExecutor(nil)
