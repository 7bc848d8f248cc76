package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type holeKeys struct {
	Increment key.Binding
	Decrement key.Binding
	Next      key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultHoleKeys() holeKeys {
	return holeKeys{
		Increment: key.NewBinding(
			key.WithKeys(" ", "+", "up"),
			key.WithHelp("space/+/↑", "add stroke"),
		),
		Decrement: key.NewBinding(
			key.WithKeys("-", "backspace", "down"),
			key.WithHelp("-/↓", "remove stroke"),
		),
		Next: key.NewBinding(
			key.WithKeys("enter", "n", "right"),
			key.WithHelp("enter/n", "next hole"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k holeKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Increment, k.Next, k.Help, k.Quit}
}

func (k holeKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Increment, k.Decrement, k.Next},
		{k.Help, k.Quit},
	}
}

type cardKeys struct {
	NewRound key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultCardKeys() cardKeys {
	return cardKeys{
		NewRound: key.NewBinding(
			key.WithKeys("r", "N"),
			key.WithHelp("r", "new round"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back to hole 18"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k cardKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.NewRound, k.Back, k.Quit}
}

func (k cardKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NewRound, k.Back},
		{k.Help, k.Quit},
	}
}

var (
	_ help.KeyMap = holeKeys{}
	_ help.KeyMap = cardKeys{}
)
