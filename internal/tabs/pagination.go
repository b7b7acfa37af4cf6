package tabs

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/flick/internal/anim"
	"github.com/leg100/flick/internal/layout"
	"github.com/leg100/flick/internal/tui"
)

// frame is the interval within which requests to recompute the pagination are
// coalesced.
const frame = time.Second / 60

// State is the pagination state of a tab strip.
type State struct {
	// Page is the index of the current page, or -1 if the pagination has yet
	// to be computed or is inactive.
	Page int
	// Active is true when the tabs do not fit on a single page.
	Active  bool
	HasPrev bool
	HasNext bool
	// Count is the number of pages.
	Count int
}

// Snapshot is a read-only copy of the pagination state together with the
// metrics of the selected tab.
type Snapshot struct {
	State
	// Selected is the index of the selected tab, or -1.
	Selected int
	// Metrics of the selected tab. Zero if the tab has yet to be measured.
	Metrics layout.Tab
	// Tabs is the total number of tabs.
	Tabs int
	// PageTabs is the number of tabs on the current page.
	PageTabs int
}

// Measurer measures the tab strip.
type Measurer interface {
	// NaturalWidths returns the width of each tab, unconstrained by the width
	// of the strip.
	NaturalWidths() []int
	// UsableWidth is the width available to tabs on a page.
	UsableWidth() int
}

// Strip applies the pagination to the tab strip.
type Strip interface {
	// ID identifies the strip in transition end messages.
	ID() string
	// SetMargins sets the filler margin before each tab. Nil clears them.
	SetMargins([]int)
	// Slide moves the strip to the given horizontal offset, animating the
	// move. The command should produce an anim.EndMsg once the strip arrives.
	Slide(offset float64) tea.Cmd
	// Offset is the offset the strip is currently at.
	Offset() float64
	// Sliding is true while the strip is moving.
	Sliding() bool
}

// Focuser moves the keyboard focus between tabs.
type Focuser interface {
	Focus(index int)
	Blur(index int)
}

// Pagination partitions the tabs of a strip into pages and keeps the page
// containing the selected tab in view.
type Pagination struct {
	selection Selection
	measurer  Measurer
	strip     Strip
	focuser   Focuser

	state  State
	layout layout.PageSet

	// dirty is true when a recompute has been scheduled.
	dirty bool
	// pending is the future for the slide in progress.
	pending *Future
	// focused is the index of the focused tab, or -1.
	focused int
}

func NewPagination(selection Selection, measurer Measurer, strip Strip, focuser Focuser) *Pagination {
	return &Pagination{
		selection: selection,
		measurer:  measurer,
		strip:     strip,
		focuser:   focuser,
		state:     State{Page: -1},
		focused:   -1,
	}
}

func (p *Pagination) State() State { return p.state }

// Layout returns the most recently computed layout.
func (p *Pagination) Layout() layout.PageSet { return p.layout }

// Focused returns the index of the focused tab, or -1.
func (p *Pagination) Focused() int { return p.focused }

// Snapshot returns a copy of the current state.
func (p *Pagination) Snapshot() Snapshot {
	s := Snapshot{
		State:    p.state,
		Selected: p.selection.Selected(),
		Tabs:     p.selection.Count(),
	}
	if s.Selected >= 0 && s.Selected < len(p.layout.Tabs) {
		s.Metrics = p.layout.Tabs[s.Selected]
	}
	switch {
	case p.state.Active && p.state.Page >= 0 && p.state.Page < len(p.layout.Pages):
		s.PageTabs = p.layout.Pages[p.state.Page].Len()
	case !p.state.Active && len(p.layout.Pages) == 1:
		s.PageTabs = p.layout.Pages[0].Len()
	}
	return s
}

// MarkDirty schedules a recompute. Any further requests made before the
// recompute takes place are coalesced into it.
func (p *Pagination) MarkDirty() tea.Cmd {
	if p.dirty {
		return nil
	}
	p.dirty = true
	id := p.strip.ID()
	return tea.Tick(frame, func(time.Time) tea.Msg {
		return recomputeMsg{id: id}
	})
}

// TabsChanged discards the layout, which is indexed by tabs that may no longer
// exist, and schedules a recompute. Until the recompute the selected tab has
// no metrics and every tab is deemed to be on the first page.
func (p *Pagination) TabsChanged() tea.Cmd {
	p.layout = layout.PageSet{}
	return p.MarkDirty()
}

// TabRemoved keeps the focus on the same tab after the tab at the given index
// has been removed, or drops the focus if it was the focused tab.
func (p *Pagination) TabRemoved(index int) tea.Cmd {
	switch {
	case p.focused < 0 || index > p.focused:
	case index == p.focused:
		p.focuser.Blur(index)
		p.focused = -1
	default:
		p.focus(p.focused - 1)
	}
	return p.TabsChanged()
}

// Update handles scheduled recomputes and the end of slides.
func (p *Pagination) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case recomputeMsg:
		if msg.id == p.strip.ID() && p.dirty {
			return p.Recompute()
		}
	case anim.EndMsg:
		return p.HandleTransitionEnd(msg)
	}
	return nil
}

// Recompute measures the tabs and lays them out onto pages. If there is more
// than one page then pagination is activated and the page containing the
// selected tab is brought into view.
func (p *Pagination) Recompute() tea.Cmd {
	p.dirty = false

	cmds := []tea.Cmd{p.deactivate()}

	p.layout = layout.Compute(p.measurer.NaturalWidths(), p.measurer.UsableWidth())
	p.state.Count = len(p.layout.Pages)
	if p.state.Count > 1 {
		p.state.Active = true
		p.strip.SetMargins(p.layout.Fillers())
		_, cmd := p.NavigateTo(p.layout.PageOf(p.selection.Selected()))
		cmds = append(cmds, cmd)
	}
	cmds = append(cmds, p.broadcast())
	return tea.Batch(cmds...)
}

func (p *Pagination) deactivate() tea.Cmd {
	_, cmd := p.slide(0)
	p.strip.SetMargins(nil)
	p.state = State{Page: -1}
	return cmd
}

// NavigateTo brings the page with the given index into view. The index is
// clamped to the range of pages. The returned future resolves once the strip
// has slid into position.
func (p *Pagination) NavigateTo(page int) (*Future, tea.Cmd) {
	pages := p.layout.Pages
	if len(pages) == 0 {
		return resolvedFuture(), nil
	}
	page = max(0, min(page, len(pages)-1))
	if page == p.state.Page {
		return resolvedFuture(), nil
	}
	p.state.Page = page
	p.state.HasPrev = page > 0
	p.state.HasNext = page < len(pages)-1

	broadcast := p.broadcast()
	future, slide := p.slide(-float64(pages[page].Left))
	return future, tea.Batch(broadcast, slide)
}

// slide moves the strip, superseding any slide in progress. The returned
// future is resolved straight away only if the strip is already at rest at
// the offset.
func (p *Pagination) slide(offset float64) (*Future, tea.Cmd) {
	if p.pending != nil {
		p.pending.cancel()
		p.pending = nil
	}
	if !p.strip.Sliding() && p.strip.Offset() == offset {
		return resolvedFuture(), nil
	}
	p.pending = newFuture(offset)
	return p.pending, p.strip.Slide(offset)
}

// HandleTransitionEnd resolves the pending future if the transition that
// ended is the strip arriving at the expected offset. The end of any other
// transition is ignored.
func (p *Pagination) HandleTransitionEnd(msg anim.EndMsg) tea.Cmd {
	if p.pending == nil || msg.Target != p.strip.ID() || msg.Value != p.pending.offset {
		return nil
	}
	future := p.pending
	p.pending = nil
	return future.resolve()
}

// SelectionChanged brings the page containing the newly selected tab into
// view. If pagination is inactive a recompute is scheduled instead.
func (p *Pagination) SelectionChanged() tea.Cmd {
	if !p.state.Active {
		return p.MarkDirty()
	}
	_, cmd := p.NavigateTo(p.layout.PageOf(p.selection.Selected()))
	return cmd
}

// FocusTab focuses the tab with the given index. If the tab is on another
// page then that page is brought into view first and the tab is focused only
// once it has arrived.
func (p *Pagination) FocusTab(index int) tea.Cmd {
	if index < 0 || index >= p.selection.Count() {
		return nil
	}
	page := p.layout.PageOf(index)
	if !p.state.Active || page == p.state.Page {
		p.focus(index)
		return nil
	}
	if p.focused >= 0 {
		p.focuser.Blur(p.focused)
	}
	future, cmd := p.NavigateTo(page)
	return tea.Batch(cmd, future.Then(func() tea.Cmd {
		p.focus(index)
		return nil
	}))
}

// ChangePage moves to the next (+1) or previous (-1) page. Once the page is
// in view its first tab, or its last tab when moving backwards, is selected
// and focused.
func (p *Pagination) ChangePage(increment int) tea.Cmd {
	if !p.state.Active {
		return nil
	}
	target := p.state.Page + increment
	if target < 0 || target >= len(p.layout.Pages) {
		return nil
	}
	entry := p.layout.Pages[target].FirstTab
	if increment < 0 {
		entry = p.layout.Pages[target].LastTab
	}
	future, cmd := p.NavigateTo(target)
	return tea.Batch(cmd, future.Then(func() tea.Cmd {
		p.selection.Select(entry)
		p.focus(entry)
		return selectionChanged(p.strip.ID(), p.selection)
	}))
}

func (p *Pagination) focus(index int) {
	p.focused = index
	p.focuser.Focus(index)
}

func (p *Pagination) broadcast() tea.Cmd {
	return tui.CmdHandler(PaginationChangedMsg{
		ID:       p.strip.ID(),
		Snapshot: p.Snapshot(),
	})
}
