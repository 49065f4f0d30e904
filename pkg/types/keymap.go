package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the navigation keybindings of the TUI. Verb keys are not
// listed here: they come from the verb store.
type KeyMap struct {
	Up           key.Binding
	Down         key.Binding
	GotoTop      key.Binding
	GotoBottom   key.Binding
	Open         key.Binding // Enter on a directory focuses it
	EnterCmdMode key.Binding // ':' or space starts typing a verb

	// Command mode specific
	ExecuteCmd  key.Binding
	ExitCmdMode key.Binding
}

// DefaultKeyMap returns the navigation bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:           key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		GotoTop:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "top")),
		GotoBottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "bottom")),
		Open:         key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		EnterCmdMode: key.NewBinding(key.WithKeys(":", " "), key.WithHelp(":", "verb")),
		ExecuteCmd:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "run")),
		ExitCmdMode:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}
