package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	Tab      key.Binding
	Search   key.Binding
	Sort     key.Binding
	Order    key.Binding
	Filter   key.Binding
	Type     key.Binding
	Complete key.Binding
	Refresh  key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "missions/clients")),
		Search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Sort:     key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort key")),
		Order:    key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "asc/desc")),
		Filter:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "tier/priority filter")),
		Type:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "type filter")),
		Complete: key.NewBinding(key.WithKeys("c", " "), key.WithHelp("c", "complete")),
		Refresh:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Search, k.Sort, k.Order, k.Complete, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Tab},
		{k.Search, k.Sort, k.Order},
		{k.Filter, k.Type, k.Complete},
		{k.Refresh, k.Help, k.Quit},
	}
}
