package tabs

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/flick/internal/pubsub"
	"github.com/leg100/flick/internal/tui"
)

const (
	SelectionChangedEvent  pubsub.EventType = "selection-changed"
	TabsChangedEvent       pubsub.EventType = "tabs-changed"
	PaginationChangedEvent pubsub.EventType = "pagination-changed"
)

// PaginationChangedMsg is sent whenever the pagination of the strip with the
// given ID changes.
type PaginationChangedMsg struct {
	ID       string
	Snapshot Snapshot
}

// SelectionChangedMsg is sent whenever a different tab is selected.
type SelectionChangedMsg struct {
	ID       string
	Selected int
	Tab      Tab
}

// TabsChangedMsg is sent whenever tabs are added or removed.
type TabsChangedMsg struct {
	ID    string
	Count int
}

// recomputeMsg triggers a scheduled recompute of the pagination.
type recomputeMsg struct {
	id string
}

// growEndMsg removes the grow state from an ink bar.
type growEndMsg struct {
	id  string
	seq int
}

func selectionChanged(id string, sel Selection) tea.Cmd {
	index := sel.Selected()
	tab, _ := sel.At(index)
	return tui.CmdHandler(SelectionChangedMsg{ID: id, Selected: index, Tab: tab})
}
