package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of the editor.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Search      key.Binding
	MissingOnly key.Binding
	SameOnly    key.Binding
	Edit        key.Binding
	Done        key.Binding
	Cancel      key.Binding
	SaveFile    key.Binding
	Clipboard   key.Binding
	NextLang    key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		MissingOnly: key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "empty only")),
		SameOnly:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "same only")),
		Edit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit")),
		Done:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "done")),
		Cancel:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		SaveFile:    key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "export")),
		Clipboard:   key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
		NextLang:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next language")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.MissingOnly, k.SameOnly, k.Edit, k.SaveFile, k.Clipboard, k.NextLang, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.Search, k.MissingOnly, k.SameOnly},
		{k.SaveFile, k.Clipboard, k.NextLang, k.Quit},
	}
}
