package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	PathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	BranchStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	DoneStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	InfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	WarningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	ErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// Status messages go to stderr so stdout carries only data.
var Status io.Writer = os.Stderr

func PrintDone(msg string) {
	fmt.Fprintf(Status, "%s %s\n", DoneStyle.Render("✓"), msg)
}

func PrintInfo(msg string) {
	fmt.Fprintf(Status, "%s %s\n", InfoStyle.Render("•"), msg)
}

func PrintWarning(msg string) {
	fmt.Fprintf(Status, "%s %s\n", WarningStyle.Render("!"), msg)
}

func PrintError(msg string) {
	fmt.Fprintf(Status, "%s %s\n", ErrorStyle.Render("✗"), msg)
}

// FormatWorktreeLine renders a worktree as "<path> on <branch>".
func FormatWorktreeLine(path, branch string) string {
	return fmt.Sprintf("%s on %s", PathStyle.Render(path), BranchStyle.Render(branch))
}
