package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap defines the [key.Binding] mapping for the TUI.
type keyMap struct {
	up        key.Binding
	down      key.Binding
	enter     key.Binding
	back      key.Binding
	next      key.Binding
	toggle    key.Binding
	watched   key.Binding
	watchlist key.Binding
	favorite  key.Binding
	rate      key.Binding
	open      key.Binding
	quit      key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		up:        key.NewBinding(key.WithKeys("up", "ctrl+k"), key.WithHelp("↑", "up")),
		down:      key.NewBinding(key.WithKeys("down", "ctrl+j"), key.WithHelp("↓", "down")),
		enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		back:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		next:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
		toggle:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle")),
		watched:   key.NewBinding(key.WithKeys("ctrl+w"), key.WithHelp("ctrl+w", "watched")),
		watchlist: key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "watchlist")),
		favorite:  key.NewBinding(key.WithKeys("ctrl+f"), key.WithHelp("ctrl+f", "favorite")),
		rate:      key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "rate")),
		open:      key.NewBinding(key.WithKeys("ctrl+o"), key.WithHelp("ctrl+o", "open in browser")),
		quit:      key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.up, k.down, k.enter},
		{k.back, k.next, k.toggle},
		{k.watched, k.watchlist, k.favorite},
		{k.rate, k.open, k.quit},
	}
}
