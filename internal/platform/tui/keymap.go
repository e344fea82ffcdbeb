package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/roadjump/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Start   key.Binding
	JumpOne key.Binding
	JumpTwo key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Start, k.JumpOne, k.JumpTwo, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Quit},
		{k.JumpOne, k.JumpTwo},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "start"),
		),
		JumpOne: key.NewBinding(
			key.WithKeys("left", "j"),
			key.WithHelp("left/j", "jump 1"),
		),
		JumpTwo: key.NewBinding(
			key.WithKeys("right", "k"),
			key.WithHelp("right/k", "jump 2"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Start):
		return core.ActionStart
	case key.Matches(msg, k.JumpOne):
		return core.ActionJumpOne
	case key.Matches(msg, k.JumpTwo):
		return core.ActionJumpTwo
	}
	return core.ActionNone
}
