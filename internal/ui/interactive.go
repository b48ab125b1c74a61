package ui

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/x/term"
)

// Prompter renders huh forms. Forms draw on Output so that stdout stays free
// for data consumed by shell command substitution.
type Prompter struct {
	Theme  *huh.Theme
	Input  io.Reader
	Output io.Writer

	// Accessible switches huh to line-based prompts, used when stdin is not a terminal.
	Accessible bool
}

// NewPrompter creates a Prompter reading stdin and drawing on stderr.
func NewPrompter(theme *huh.Theme) *Prompter {
	if theme == nil {
		theme = huh.ThemeCatppuccin()
	}
	return &Prompter{
		Theme:      theme,
		Input:      os.Stdin,
		Output:     os.Stderr,
		Accessible: !term.IsTerminal(os.Stdin.Fd()),
	}
}

// Select asks the user to choose one of options.
func (p *Prompter) Select(ctx context.Context, title string, options []string) (string, error) {
	var selected string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(huh.NewOptions(options...)...).
				Value(&selected),
		),
	)

	if err := p.run(ctx, form); err != nil {
		return "", err
	}

	return selected, nil
}

// Confirm asks a yes/no question, preselecting def.
func (p *Prompter) Confirm(ctx context.Context, title string, def bool) (bool, error) {
	confirmed := def

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	)

	if err := p.run(ctx, form); err != nil {
		return false, err
	}

	return confirmed, nil
}

func (p *Prompter) run(ctx context.Context, form *huh.Form) error {
	form = form.
		WithTheme(p.Theme).
		WithAccessible(p.Accessible).
		WithInput(p.Input).
		WithOutput(p.Output)

	return NormalizeAbort(form.RunWithContext(ctx))
}

// ThemeByName maps a configured theme name to a huh theme.
// Unknown names fall back to catppuccin.
func ThemeByName(name string) *huh.Theme {
	switch name {
	case "charm":
		return huh.ThemeCharm()
	case "dracula":
		return huh.ThemeDracula()
	case "base16":
		return huh.ThemeBase16()
	case "base":
		return huh.ThemeBase()
	default:
		return huh.ThemeCatppuccin()
	}
}
