package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit       key.Binding
	Focus      key.Binding
	UpDown     key.Binding
	Toggle     key.Binding
	SelectAll  key.Binding
	Clear      key.Binding
	Filter     key.Binding
	Prefix     key.Binding
	Rescan     key.Binding
	Close      key.Binding
	ToggleHelp key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Focus:      key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "name/files")),
		UpDown:     key.NewBinding(key.WithKeys("up", "down", "j", "k"), key.WithHelp("j/k", "navigate")),
		Toggle:     key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		SelectAll:  key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "all")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear")),
		Filter:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),
		Prefix:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prefix name")),
		Rescan:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rescan")),
		Close:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		ToggleHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Focus, k.UpDown, k.Toggle, k.Prefix, k.ToggleHelp, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Focus, k.UpDown, k.Toggle, k.SelectAll, k.Clear},
		{k.Filter, k.Prefix, k.Rescan, k.Close, k.Quit},
	}
}
