package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Help     lipgloss.Style
	Card     lipgloss.Style
	Strokes  lipgloss.Style
	Total    lipgloss.Style
	Row      lipgloss.Style
	Toast    lipgloss.Style
}

func DefaultTheme() Theme {
	return Theme{
		Title:    lipgloss.NewStyle().Bold(true),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Help:     lipgloss.NewStyle().Faint(true),
		Card: lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")),
		Strokes: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")).
			Padding(1, 4),
		Total: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Row:   lipgloss.NewStyle().PaddingLeft(1),
		Toast: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}
