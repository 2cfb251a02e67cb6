// Package ui renders terminal output for the cado commands.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Out receives every status line. Tests swap it for a buffer.
var Out io.Writer = os.Stdout

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#CA8A04"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#16A34A"))
	hintStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
)

// status lines share one layout: an indented three-cell mark, then text.
func status(mark string, style lipgloss.Style, text string) {
	fmt.Fprintf(Out, "  %s %s\n", style.Render(fmt.Sprintf("%-3s", mark)), text)
}

// FormatError returns a styled multi-line error message.
func FormatError(title, detail, suggestion string) string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Error: " + title))
	b.WriteByte('\n')
	for _, line := range []string{detail, hint(suggestion)} {
		if line != "" {
			b.WriteString("  " + line + "\n")
		}
	}
	return b.String()
}

func hint(suggestion string) string {
	if suggestion == "" {
		return ""
	}
	return hintStyle.Render("Hint: " + suggestion)
}

// GeneratorDone reports a finished generator with its summary.
func GeneratorDone(name, detail string) {
	if detail != "" {
		name += " " + dimStyle.Render(detail)
	}
	status("OK", successStyle, name)
}

// GeneratorSkipped reports a generator whose platform is not in the plan.
func GeneratorSkipped(name string) {
	status("--", dimStyle, dimStyle.Render(name+" (skipped)"))
}

// Success prints a green success message.
func Success(msg string) {
	fmt.Fprintln(Out, successStyle.Render(msg))
}

// Warn prints a yellow warning message.
func Warn(msg string) {
	fmt.Fprintln(Out, warnStyle.Render("Warning: "+msg))
}

func Bold(s string) string {
	return boldStyle.Render(s)
}

func Hint(s string) string {
	return hintStyle.Render(s)
}

// ValidationOK prints a passed check.
func ValidationOK(field, detail string) {
	status("OK", successStyle, field+": "+detail)
}

// ValidationErr prints a failed check and, when known, how to fix it.
func ValidationErr(field, message, suggestion string) {
	status("ERR", errorStyle, field+": "+message)
	if h := hint(suggestion); h != "" {
		fmt.Fprintf(Out, "      %s\n", h)
	}
}
