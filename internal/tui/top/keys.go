package top

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/leg100/flick/internal/tui/keys"
)

type keyMap struct {
	Yes key.Binding
}

var localKeys = keyMap{
	Yes: key.NewBinding(
		key.WithKeys("y"),
	),
}

var (
	tabBindings = []key.Binding{
		keys.Navigation.TabNext,
		keys.Navigation.TabPrev,
		keys.Navigation.PageNext,
		keys.Navigation.PagePrev,
		keys.Common.AddTab,
		keys.Common.RemoveTab,
	}
	switchBindings = []key.Binding{
		keys.Navigation.FocusNext,
		keys.Navigation.FocusPrev,
		keys.Common.Toggle,
	}
)
