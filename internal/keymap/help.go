package keymap

import "github.com/charmbracelet/bubbles/key"

// NavigateHelp returns the footer hints shown while navigating.
func NavigateHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("h", "j", "k", "l"), key.WithHelp("hjkl", "move")),
		key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "edit")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "replace")),
		key.NewBinding(key.WithKeys("H"), key.WithHelp("H", "header")),
		key.NewBinding(key.WithKeys("o", "O"), key.WithHelp("o/O", "row")),
		key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n/N", "col")),
		key.NewBinding(key.WithKeys("d", "D"), key.WithHelp("d/D", "delete")),
		key.NewBinding(key.WithKeys("y", "p"), key.WithHelp("y/p", "copy/paste")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "save+quit")),
	}
}

// EditHelp returns the footer hints shown while editing a cell or header.
func EditHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		key.NewBinding(key.WithKeys("backspace"), key.WithHelp("bksp", "delete char")),
	}
}
