package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	tab     key.Binding
	backtab key.Binding
	submit  key.Binding
	delete  key.Binding
	refresh key.Binding
	copy    key.Binding
	yes     key.Binding
	no      key.Binding
	quit    key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
	down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),
	tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	backtab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous field")),
	submit:  key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
	delete:  key.NewBinding(key.WithKeys("ctrl+d"), key.WithHelp("ctrl+d", "delete")),
	refresh: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "refresh")),
	copy:    key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy number")),
	yes:     key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	no:      key.NewBinding(key.WithKeys("n", "N", "esc"), key.WithHelp("n", "no")),
	quit:    key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.tab, k.submit, k.delete, k.refresh, k.copy, k.quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.tab, k.backtab, k.up, k.down},
		{k.submit, k.delete, k.refresh, k.copy},
		{k.yes, k.no, k.quit},
	}
}

func (k keyMap) confirmHelp() []key.Binding {
	return []key.Binding{k.yes, k.no}
}
