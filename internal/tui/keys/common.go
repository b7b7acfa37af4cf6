package keys

import "github.com/charmbracelet/bubbles/key"

type common struct {
	Toggle    key.Binding
	AddTab    key.Binding
	RemoveTab key.Binding
}

// Keys shared by several models.
var Common = common{
	Toggle: key.NewBinding(
		key.WithKeys(" ", "enter"),
		key.WithHelp("space/enter", "toggle switch"),
	),
	AddTab: key.NewBinding(
		key.WithKeys("+", "a"),
		key.WithHelp("+/a", "add tab"),
	),
	RemoveTab: key.NewBinding(
		key.WithKeys("-", "x"),
		key.WithHelp("-/x", "remove tab"),
	),
}
