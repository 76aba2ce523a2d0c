// Package ui renders the framed status report.
package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

// IsTTY indicates whether stdout is an interactive terminal.
// When false, rendering produces plain text without colors or borders.
var IsTTY = term.IsTerminal(os.Stdout.Fd())

var (
	Green    = lipgloss.Color("#58D68D")
	Gray     = lipgloss.Color("#AAB7B8")
	DarkGray = lipgloss.Color("#5D6D7E")
	Gold     = lipgloss.Color("#F4D03F")
)

var (
	// Title for panel headings
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Gold)

	// Success for configured entries
	Success = lipgloss.NewStyle().
		Foreground(Green)

	// Muted for entries that are not set up
	Muted = lipgloss.NewStyle().
		Foreground(Gray)

	// Panel is a rounded box around a report
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(DarkGray).
		Padding(0, 1)
)

// Render applies a style only when writing to a terminal.
func Render(style lipgloss.Style, text string) string {
	if !IsTTY {
		return text
	}
	return style.Render(text)
}
