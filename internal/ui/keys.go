package ui

import "github.com/charmbracelet/bubbles/key"

// searchKeys are shown while the search input has focus
type searchKeys struct {
	Submit key.Binding
	Leave  key.Binding
	Quit   key.Binding
}

func (k searchKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Leave, k.Quit}
}

func (k searchKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// tableKeys are shown while the story table has focus
type tableKeys struct {
	Up     key.Binding
	Down   key.Binding
	Remove key.Binding
	Open   key.Binding
	Search key.Binding
	Retry  key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func (k tableKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Remove, k.Open, k.Search, k.Help, k.Quit}
}

func (k tableKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Remove, k.Open},
		{k.Search, k.Retry},
		{k.Help, k.Quit},
	}
}

func newSearchKeys() searchKeys {
	return searchKeys{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "submit search")),
		Leave:  key.NewBinding(key.WithKeys("esc", "tab"), key.WithHelp("esc/tab", "go to results")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

func newTableKeys() tableKeys {
	return tableKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Remove: key.NewBinding(key.WithKeys("d", "x", "delete"), key.WithHelp("d", "remove")),
		Open:   key.NewBinding(key.WithKeys("enter", "o"), key.WithHelp("enter", "details")),
		Search: key.NewBinding(key.WithKeys("/", "s", "tab"), key.WithHelp("/", "edit search")),
		Retry:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "retry search")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
