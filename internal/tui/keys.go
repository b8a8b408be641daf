package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextFocus key.Binding
	PrevFocus key.Binding
	Left      key.Binding
	Right     key.Binding
	Activate  key.Binding
	NextSize  key.Binding
	NextColor key.Binding
	Features  key.Binding
	AddToCart key.Binding
	ScrollUp  key.Binding
	ScrollDn  key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextFocus: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next section")),
		PrevFocus: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous section")),
		Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Activate:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "select")),
		NextSize:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "next size")),
		NextColor: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next color")),
		Features:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "show more/less")),
		AddToCart: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add to cart")),
		ScrollUp:  key.NewBinding(key.WithKeys("up", "k", "pgup"), key.WithHelp("↑/k", "scroll up")),
		ScrollDn:  key.NewBinding(key.WithKeys("down", "j", "pgdown"), key.WithHelp("↓/j", "scroll down")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextFocus, k.Left, k.Right, k.Activate, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextFocus, k.PrevFocus, k.Left, k.Right, k.Activate},
		{k.NextSize, k.NextColor, k.Features, k.AddToCart},
		{k.ScrollUp, k.ScrollDn, k.Help, k.Quit},
	}
}
