package keys

import (
	"github.com/charmbracelet/bubbles/key"
)

type global struct {
	Quit   key.Binding
	Help   key.Binding
	Escape key.Binding
}

var Global = global{
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("^c", "exit"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close help"),
	),
}
