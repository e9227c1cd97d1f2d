package shell

import "github.com/charmbracelet/lipgloss"

// Styles controls how the shell decorates prompts and output.
type Styles struct {
	Prompt  lipgloss.Style
	Default lipgloss.Style
	Header  lipgloss.Style
	Success lipgloss.Style
	Failure lipgloss.Style
	Notice  lipgloss.Style
}

// DefaultStyles returns the colored theme used on a terminal.
func DefaultStyles() Styles {
	return Styles{
		Prompt:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Default: lipgloss.NewStyle().Faint(true),
		Header:  lipgloss.NewStyle().Bold(true),
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Failure: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Notice:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

// PlainStyles returns undecorated styles.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Prompt:  plain,
		Default: plain,
		Header:  plain,
		Success: plain,
		Failure: plain,
		Notice:  plain,
	}
}
