package tabs

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// DefaultGrowDuration is how long the ink bar remains in its grow state after
// moving.
const DefaultGrowDuration = 250 * time.Millisecond

// InkBar is the indicator beneath the selected tab.
type InkBar struct {
	id       string
	duration time.Duration

	hidden bool
	// Left and Width are in the coordinates of the tab strip.
	left  int
	width int
	grow  bool

	// seq identifies the most recently scheduled removal of the grow state.
	seq int
}

func NewInkBar(duration time.Duration) *InkBar {
	return &InkBar{
		id:       uuid.NewString(),
		duration: duration,
		hidden:   true,
	}
}

func (b *InkBar) Hidden() bool { return b.hidden }

func (b *InkBar) Left() int { return b.left }

func (b *InkBar) Width() int { return b.width }

// Growing is true while the bar is in its grow state.
func (b *InkBar) Growing() bool { return b.grow }

// Sync positions the bar beneath the selected tab. The bar is hidden if there
// is no selected tab, fewer than two tabs, or only one tab on the current
// page.
func (b *InkBar) Sync(s Snapshot) tea.Cmd {
	if s.Selected < 0 || s.Tabs < 2 || s.PageTabs == 1 {
		b.hidden = true
		return nil
	}
	b.hidden = false
	b.left = s.Metrics.Left
	b.width = s.Metrics.Width
	if b.width == 0 {
		return nil
	}
	b.grow = true
	b.seq++
	id, seq := b.id, b.seq
	return tea.Tick(b.duration, func(time.Time) tea.Msg {
		return growEndMsg{id: id, seq: seq}
	})
}

// Update removes the grow state once its time is up, unless it has since been
// rescheduled.
func (b *InkBar) Update(msg tea.Msg) {
	if msg, ok := msg.(growEndMsg); ok && msg.id == b.id && msg.seq == b.seq {
		b.grow = false
	}
}
