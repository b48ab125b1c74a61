package ui

import (
	"context"
	"os"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/x/term"
)

var spinnerEnabled = func() bool {
	return term.IsTerminal(os.Stderr.Fd())
}

// RunWithSpinner runs action while showing a spinner titled title.
// The spinner is drawn on stderr, and only when stderr is a terminal.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !spinnerEnabled() {
		return action(ctx)
	}

	var actionErr error
	err := spinner.New().
		Title(title).
		Output(os.Stderr).
		Context(ctx).
		Action(func() {
			actionErr = action(ctx)
		}).
		Run()
	if err != nil {
		return NormalizeAbort(err)
	}

	return actionErr
}
