package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type navigation struct {
	TabNext   key.Binding
	TabPrev   key.Binding
	PageNext  key.Binding
	PagePrev  key.Binding
	FocusNext key.Binding
	FocusPrev key.Binding
}

// Navigation returns key bindings for navigation.
var Navigation = navigation{
	TabNext: key.NewBinding(
		key.WithKeys("right", "l"),
		key.WithHelp("→/l", "next tab"),
	),
	TabPrev: key.NewBinding(
		key.WithKeys("left", "h"),
		key.WithHelp("←/h", "previous tab"),
	),
	PageNext: key.NewBinding(
		key.WithKeys("]", "pgdown"),
		key.WithHelp("]/pgdn", "next page"),
	),
	PagePrev: key.NewBinding(
		key.WithKeys("[", "pgup"),
		key.WithHelp("[/pgup", "previous page"),
	),
	FocusNext: key.NewBinding(
		key.WithKeys("tab", "down", "j"),
		key.WithHelp("tab/↓/j", "next switch"),
	),
	FocusPrev: key.NewBinding(
		key.WithKeys("shift+tab", "up", "k"),
		key.WithHelp("shift+tab/↑/k", "previous switch"),
	),
}
