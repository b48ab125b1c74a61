// Package shell generates the shell integration scripts printed by
// `worktree-manager init`. A child process cannot change its parent's working
// directory, so the scripts define a shell function that does the cd.
package shell

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Dialect is a supported shell.
type Dialect int

const (
	Bash Dialect = iota + 1
	Zsh
	Fish
)

// Dialects lists every supported dialect.
var Dialects = []Dialect{Bash, Zsh, Fish}

const (
	binaryName   = "worktree-manager"
	functionName = "worktree-manager-go"
)

var gitAliases = []string{
	`git config --global alias.wt "!worktree-manager"`,
	`git config --global alias.wtls "!worktree-manager list"`,
	`git config --global alias.wtrm "!worktree-manager remove"`,
}

func (d Dialect) String() string {
	switch d {
	case Bash:
		return "bash"
	case Zsh:
		return "zsh"
	case Fish:
		return "fish"
	default:
		return fmt.Sprintf("Dialect(%d)", int(d))
	}
}

// ParseDialect parses a shell name such as "bash", case-insensitively.
func ParseDialect(name string) (Dialect, error) {
	for _, d := range Dialects {
		if strings.EqualFold(name, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unsupported shell %q (expected bash, zsh or fish)", name)
}

// DetectDialect derives the dialect from a $SHELL value like "/bin/zsh".
func DetectDialect(shellPath string) (Dialect, error) {
	if shellPath == "" {
		return 0, fmt.Errorf("cannot detect shell: $SHELL is not set")
	}
	return ParseDialect(filepath.Base(shellPath))
}

// UnmarshalText lets configuration decoding produce a Dialect from a string.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := ParseDialect(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Generate returns the integration script for d. noAlias drops the wm/wmg
// aliases and noGitAlias drops the git alias registrations; nothing else
// changes.
func Generate(d Dialect, noAlias, noGitAlias bool) string {
	blocks := [][]string{function(d)}

	if !noAlias {
		blocks = append(blocks, aliases(d))
	}

	if !noGitAlias {
		blocks = append(blocks, gitAliases)
	}

	var sb strings.Builder
	for i, block := range blocks {
		if i > 0 {
			sb.WriteString("\n")
		}
		for _, line := range block {
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func function(d Dialect) []string {
	switch d {
	case Fish:
		return []string{
			"function " + functionName,
			"    set -l p (" + binaryName + " pick $argv); or return",
			`    test -n "$p"; and cd "$p"`,
			"end",
		}
	case Zsh:
		return []string{
			functionName + "() {",
			"    local p",
			`    p="$(` + binaryName + ` pick "$@")" || return`,
			`    [ -n "$p" ] && cd "$p"`,
			"}",
		}
	default:
		return []string{
			"function " + functionName + "() {",
			"    local p",
			`    p="$(` + binaryName + ` pick "$@")" || return`,
			`    [ -n "$p" ] && cd "$p"`,
			"}",
		}
	}
}

func aliases(d Dialect) []string {
	if d == Fish {
		return []string{
			"alias wm '" + binaryName + "'",
			"alias wmg '" + functionName + "'",
		}
	}
	return []string{
		"alias wm=" + binaryName,
		"alias wmg=" + functionName,
	}
}
