package ui

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmerrors "github.com/rawnly/worktree-manager/internal/errors"
)

func TestNormalizeAbort(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		abort bool
	}{
		{"huh abort", huh.ErrUserAborted, true},
		{"wrapped huh abort", fmt.Errorf("form: %w", huh.ErrUserAborted), true},
		{"closed stdin", io.EOF, true},
		{"context cancelled", context.Canceled, true},
		{"other error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NormalizeAbort(tt.err)
			assert.Equal(t, tt.abort, IsAbort(err))
			if !tt.abort {
				assert.Equal(t, tt.err, err)
			}
		})
	}

	assert.NoError(t, NormalizeAbort(nil))
}

func TestErrUserAborted_IsUserCancelled(t *testing.T) {
	assert.True(t, errors.Is(NormalizeAbort(huh.ErrUserAborted), wmerrors.ErrUserCancelled))
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"charm", "dracula", "base16", "base", "catppuccin", "unknown", ""} {
		assert.NotNil(t, ThemeByName(name), name)
	}
}

func TestPrintHelpers(t *testing.T) {
	var buf bytes.Buffer
	orig := Status
	Status = &buf
	t.Cleanup(func() { Status = orig })

	PrintDone("worktree removed successfully")
	PrintInfo("no other worktrees available")
	PrintWarning("careful")
	PrintError("failed")

	out := buf.String()
	assert.Contains(t, out, "worktree removed successfully")
	assert.Contains(t, out, "no other worktrees available")
	assert.Contains(t, out, "careful")
	assert.Contains(t, out, "failed")
}

func TestFormatWorktreeLine(t *testing.T) {
	line := FormatWorktreeLine("@/feat", "feature-x")

	assert.Contains(t, line, "@/feat")
	assert.Contains(t, line, " on ")
	assert.Contains(t, line, "feature-x")
}

func TestRunWithSpinner_NoTerminal(t *testing.T) {
	orig := spinnerEnabled
	spinnerEnabled = func() bool { return false }
	t.Cleanup(func() { spinnerEnabled = orig })

	called := false
	err := RunWithSpinner(context.Background(), "working", func(ctx context.Context) error {
		called = true
		return errors.New("action failed")
	})

	assert.True(t, called)
	assert.EqualError(t, err, "action failed")
}

func TestRunWithSpinner_KeepsStdoutClean(t *testing.T) {
	orig := spinnerEnabled
	spinnerEnabled = func() bool { return true }
	t.Cleanup(func() { spinnerEnabled = orig })

	r, w, err := os.Pipe()
	require.NoError(t, err)

	stdout := os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = stdout })

	called := false
	runErr := RunWithSpinner(context.Background(), "Removing /repo/feat", func(ctx context.Context) error {
		called = true
		time.Sleep(200 * time.Millisecond)
		return nil
	})

	os.Stdout = stdout
	require.NoError(t, w.Close())
	captured, err := io.ReadAll(r)
	require.NoError(t, err)

	assert.NoError(t, runErr)
	assert.True(t, called)
	assert.Empty(t, string(captured), "spinner must not draw on stdout")
}
