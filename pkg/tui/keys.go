package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	toggleLang key.Binding
	english    key.Binding
	bangla     key.Binding
	up         key.Binding
	down       key.Binding
	activate   key.Binding
	console    key.Binding
	help       key.Binding
	quit       key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.activate, k.toggleLang, k.help, k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.activate},
		{k.toggleLang, k.english, k.bangla},
		{k.console, k.help, k.quit},
	}
}

func newKeyMap() keyMap {
	return keyMap{
		toggleLang: key.NewBinding(key.WithKeys("l", "tab"), key.WithHelp("l/tab", "language")),
		english:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "english")),
		bangla:     key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "বাংলা")),
		up:         key.NewBinding(key.WithKeys("up", "k", "shift+tab"), key.WithHelp("↑/k", "previous")),
		down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next")),
		activate:   key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		console:    key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "console")),
		help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
