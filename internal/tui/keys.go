package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the todo screen reacts to.
type KeyMap struct {
	Submit      key.Binding
	SwitchFocus key.Binding
	Up          key.Binding
	Down        key.Binding
	Delete      key.Binding
	Back        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the bindings used by Model and Form.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "create todo")),
		SwitchFocus: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "form/list")),
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Delete:      key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "delete")),
		Back:        key.NewBinding(key.WithKeys("esc", "q"), key.WithHelp("q", "quit")),
		Quit:        key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.SwitchFocus, k.Delete, k.Back}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.SwitchFocus},
		{k.Up, k.Down, k.Delete},
		{k.Back, k.Quit},
	}
}
