package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Overview   key.Binding
	Dashboard  key.Binding
	Advantages key.Binding
	Footer     key.Binding

	ScrollUp   key.Binding
	ScrollDown key.Binding
	PageUp     key.Binding
	PageDown   key.Binding

	ToggleMode  key.Binding
	Trend       key.Binding
	Structure   key.Binding
	PrevCity    key.Binding
	NextCity    key.Binding
	CursorLeft  key.Binding
	CursorRight key.Binding

	PrevItem key.Binding
	NextItem key.Binding
	Open     key.Binding
	Close    key.Binding
	Copy     key.Binding

	Help key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Overview:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "overview")),
		Dashboard:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "dashboard")),
		Advantages: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "advantages")),
		Footer:     key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "about")),

		ScrollUp:   key.NewBinding(key.WithKeys("k"), key.WithHelp("k", "scroll up")),
		ScrollDown: key.NewBinding(key.WithKeys("j"), key.WithHelp("j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),

		ToggleMode:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle view")),
		Trend:       key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "trend")),
		Structure:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "structure")),
		PrevCity:    key.NewBinding(key.WithKeys("up", "["), key.WithHelp("↑/[", "prev city")),
		NextCity:    key.NewBinding(key.WithKeys("down", "]"), key.WithHelp("↓/]", "next city")),
		CursorLeft:  key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev point")),
		CursorRight: key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next point")),

		PrevItem: key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "prev highlight")),
		NextItem: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "next highlight")),
		Open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Close:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy")),

		Help: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.NextCity, k.CursorRight, k.Open, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Overview, k.Dashboard, k.Advantages, k.Footer},
		{k.ScrollUp, k.ScrollDown, k.PageUp, k.PageDown},
		{k.ToggleMode, k.Trend, k.Structure, k.PrevCity, k.NextCity, k.CursorLeft, k.CursorRight},
		{k.PrevItem, k.NextItem, k.Open, k.Close, k.Copy, k.Help, k.Quit},
	}
}
