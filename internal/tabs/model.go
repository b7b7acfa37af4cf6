package tabs

import (
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/flick/internal/anim"
	"github.com/leg100/flick/internal/pubsub"
	"github.com/leg100/flick/internal/tui"
	"github.com/leg100/flick/internal/tui/keys"
	zone "github.com/lrstanley/bubblezone"
)

const (
	// PaginatorsWidth is the combined width of the previous and next page
	// buttons either side of the strip.
	PaginatorsWidth = 4
	// DefaultSlideDuration is the default duration of the slide between
	// pages.
	DefaultSlideDuration = 300 * time.Millisecond

	prevPaginator = "‹ "
	nextPaginator = " ›"
)

// Model is a horizontal strip of tabs. Tabs that do not fit within the width
// of the strip are split across pages, and the strip slides between pages.
type Model struct {
	list       *List
	pagination *Pagination
	ink        *InkBar

	// slide animates the horizontal offset of the strip.
	slide *anim.Transition
	// margins are the filler margins before each tab.
	margins []int
	// focused is the index of the tab with keyboard focus, or -1.
	focused int
	width   int
	// noInkBar disables the ink bar.
	noInkBar bool

	zones     *zone.Manager
	publisher pubsub.Publisher[Snapshot]
}

type Option func(*Model)

// WithWidth sets the total width, including paginators.
func WithWidth(width int) Option {
	return func(m *Model) {
		m.width = width
	}
}

// WithZones marks the tabs and paginators using the zone manager, permitting
// them to be clicked.
func WithZones(zones *zone.Manager) Option {
	return func(m *Model) {
		m.zones = zones
	}
}

// WithPublisher publishes changes to the strip.
func WithPublisher(publisher pubsub.Publisher[Snapshot]) Option {
	return func(m *Model) {
		m.publisher = publisher
	}
}

func WithSlideDuration(d time.Duration, opts ...anim.Option) Option {
	return func(m *Model) {
		opts = append([]anim.Option{anim.WithID(m.slide.ID())}, opts...)
		m.slide = anim.New(d, opts...)
	}
}

func WithGrowDuration(d time.Duration) Option {
	return func(m *Model) {
		m.ink.duration = d
	}
}

// WithoutInkBar renders the strip without an ink bar beneath the selected
// tab.
func WithoutInkBar() Option {
	return func(m *Model) {
		m.noInkBar = true
	}
}

func New(list *List, opts ...Option) *Model {
	m := &Model{
		list:    list,
		ink:     NewInkBar(DefaultGrowDuration),
		slide:   anim.New(DefaultSlideDuration),
		focused: -1,
	}
	for _, fn := range opts {
		fn(m)
	}
	m.pagination = NewPagination(list, (*measurer)(m), (*strip)(m), (*focuser)(m))
	return m
}

// ID identifies the strip.
func (m *Model) ID() string { return m.slide.ID() }

func (m *Model) List() *List { return m.list }

func (m *Model) Pagination() *Pagination { return m.pagination }

func (m *Model) InkBar() *InkBar { return m.ink }

// Focused returns the index of the tab with keyboard focus, or -1.
func (m *Model) Focused() int { return m.focused }

func (m *Model) Init() tea.Cmd {
	return m.pagination.MarkDirty()
}

// SetWidth sets the total width, including paginators.
func (m *Model) SetWidth(width int) tea.Cmd {
	if width == m.width {
		return nil
	}
	m.width = width
	return m.pagination.MarkDirty()
}

// AddTab appends a tab with the given title. The title must be unique.
func (m *Model) AddTab(title string) (tea.Cmd, error) {
	if _, err := m.list.AddTab(title); err != nil {
		return nil, err
	}
	cmds := []tea.Cmd{m.pagination.TabsChanged(), m.tabsChanged()}
	if m.list.Count() == 1 {
		cmds = append(cmds, selectionChanged(m.ID(), m.list))
	}
	return tea.Batch(cmds...), nil
}

// RemoveTab removes the tab at the given index.
func (m *Model) RemoveTab(index int) tea.Cmd {
	selected := m.list.Selected()
	if _, ok := m.list.RemoveTab(index); !ok {
		return nil
	}
	cmds := []tea.Cmd{m.pagination.TabRemoved(index), m.tabsChanged()}
	if index <= selected {
		cmds = append(cmds, selectionChanged(m.ID(), m.list))
	}
	return tea.Batch(cmds...)
}

// Select selects and focuses the tab at the given index.
func (m *Model) Select(index int) tea.Cmd {
	if index < 0 || index >= m.list.Count() || index == m.list.Selected() {
		return nil
	}
	m.list.Select(index)
	return tea.Batch(
		selectionChanged(m.ID(), m.list),
		m.pagination.FocusTab(index),
	)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cmds = append(cmds, m.SetWidth(msg.Width))
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Navigation.TabNext):
			cmds = append(cmds, m.Select(m.list.Selected()+1))
		case key.Matches(msg, keys.Navigation.TabPrev):
			cmds = append(cmds, m.Select(m.list.Selected()-1))
		case key.Matches(msg, keys.Navigation.PageNext):
			cmds = append(cmds, m.pagination.ChangePage(+1))
		case key.Matches(msg, keys.Navigation.PagePrev):
			cmds = append(cmds, m.pagination.ChangePage(-1))
		}
	case tea.MouseMsg:
		if m.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		switch {
		case m.zones.Get(m.prevZone()).InBounds(msg):
			cmds = append(cmds, m.pagination.ChangePage(-1))
		case m.zones.Get(m.nextZone()).InBounds(msg):
			cmds = append(cmds, m.pagination.ChangePage(+1))
		default:
			for i, tab := range m.list.Tabs() {
				if m.zones.Get(tab.ID).InBounds(msg) {
					cmds = append(cmds, m.Select(i))
					break
				}
			}
		}
	case anim.FrameMsg:
		cmds = append(cmds, m.slide.Update(msg))
	case anim.EndMsg:
		cmds = append(cmds, m.pagination.HandleTransitionEnd(msg))
	case recomputeMsg:
		cmds = append(cmds, m.pagination.Update(msg))
	case growEndMsg:
		m.ink.Update(msg)
	case PaginationChangedMsg:
		if msg.ID == m.ID() {
			m.publish(PaginationChangedEvent, msg.Snapshot)
			cmds = append(cmds, m.syncInkBar(msg.Snapshot))
		}
	case SelectionChangedMsg:
		if msg.ID == m.ID() {
			cmds = append(cmds, m.pagination.SelectionChanged())
			snapshot := m.pagination.Snapshot()
			m.publish(SelectionChangedEvent, snapshot)
			cmds = append(cmds, m.syncInkBar(snapshot))
		}
	case TabsChangedMsg:
		if msg.ID == m.ID() {
			m.publish(TabsChangedEvent, m.pagination.Snapshot())
			cmds = append(cmds, m.pagination.MarkDirty())
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) syncInkBar(snapshot Snapshot) tea.Cmd {
	if m.noInkBar {
		return nil
	}
	return m.ink.Sync(snapshot)
}

func (m *Model) View() string {
	var (
		usable = m.usableWidth()
		state  = m.pagination.State()
		prev   = strings.Repeat(" ", PaginatorsWidth/2)
		next   = prev
	)
	if state.Active {
		prev = m.paginator(prevPaginator, m.prevZone(), state.HasPrev)
		next = m.paginator(nextPaginator, m.nextZone(), state.HasNext)
	}
	tabs := lipgloss.JoinHorizontal(lipgloss.Top, prev, m.viewStrip(usable), next)
	ink := strings.Repeat(" ", PaginatorsWidth/2) + m.viewInkBar(usable)
	return lipgloss.JoinVertical(lipgloss.Left, tabs, ink)
}

// window returns the range of strip offsets currently in view.
func (m *Model) window(usable int) (from, to int) {
	from = int(math.Round(-m.slide.Value()))
	return from, from + usable
}

func (m *Model) viewStrip(usable int) string {
	var (
		b        strings.Builder
		pos      int
		from, to = m.window(usable)
		selected = m.list.Selected()
	)
	for i, tab := range m.list.Tabs() {
		if i < len(m.margins) {
			filler := m.margins[i]
			b.WriteString(tui.Cut(strings.Repeat(" ", filler), from-pos, to-pos))
			pos += filler
		}
		label := m.label(i, tab)
		visible := tui.Cut(label, from-pos, to-pos)
		pos += tui.Width(label)
		if visible == "" {
			continue
		}
		style := tui.Regular.Foreground(tui.InactiveTabColor)
		if i == selected {
			style = tui.Bold.Foreground(tui.ActiveTabColor)
		}
		if i == m.focused {
			style = style.Underline(true)
			if i != selected {
				style = style.Foreground(tui.FocusedTabColor)
			}
		}
		visible = style.Render(visible)
		if m.zones != nil {
			visible = m.zones.Mark(tab.ID, visible)
		}
		b.WriteString(visible)
	}
	rendered := b.String()
	return rendered + strings.Repeat(" ", max(0, usable-tui.Width(rendered)))
}

func (m *Model) viewInkBar(usable int) string {
	var a, b int
	if !m.noInkBar && !m.ink.Hidden() {
		from, _ := m.window(usable)
		a = max(0, min(m.ink.Left()-from, usable))
		b = max(0, min(m.ink.Left()+m.ink.Width()-from, usable))
	}
	color := tui.InkBarColor
	if m.ink.Growing() {
		color = tui.InkBarGrowColor
	}
	return tui.Faint.Render(strings.Repeat("─", a)) +
		tui.Regular.Foreground(color).Render(strings.Repeat("━", b-a)) +
		tui.Faint.Render(strings.Repeat("─", usable-b))
}

func (m *Model) paginator(arrow, id string, enabled bool) string {
	if !enabled {
		return tui.Faint.Render(arrow)
	}
	rendered := tui.Bold.Foreground(tui.PaginatorColor).Render(arrow)
	if m.zones != nil {
		rendered = m.zones.Mark(id, rendered)
	}
	return rendered
}

// label returns the unstyled label of a tab, truncated to the width it was
// allotted when the strip was laid out.
func (m *Model) label(i int, tab Tab) string {
	natural := naturalLabel(tab)
	metrics := m.pagination.Layout().Tabs
	if i >= len(metrics) || metrics[i].Width >= tui.Width(natural) {
		return natural
	}
	width := metrics[i].Width
	if width < 3 {
		return tui.Cut(natural, 0, width)
	}
	truncated := " " + tui.Truncate(tab.Title, width-2) + " "
	return truncated + strings.Repeat(" ", max(0, width-tui.Width(truncated)))
}

func naturalLabel(tab Tab) string {
	return " " + tab.Title + " "
}

func (m *Model) usableWidth() int {
	return max(0, m.width-PaginatorsWidth)
}

func (m *Model) prevZone() string { return m.ID() + "-prev" }

func (m *Model) nextZone() string { return m.ID() + "-next" }

func (m *Model) tabsChanged() tea.Cmd {
	return tui.CmdHandler(TabsChangedMsg{ID: m.ID(), Count: m.list.Count()})
}

func (m *Model) publish(t pubsub.EventType, snapshot Snapshot) {
	if m.publisher != nil {
		m.publisher.Publish(t, snapshot)
	}
}

// measurer implements Measurer for a tab strip.
type measurer Model

func (m *measurer) NaturalWidths() []int {
	tabs := m.list.Tabs()
	widths := make([]int, len(tabs))
	for i, tab := range tabs {
		widths[i] = tui.Width(naturalLabel(tab))
	}
	return widths
}

func (m *measurer) UsableWidth() int {
	return (*Model)(m).usableWidth()
}

// strip implements Strip for a tab strip.
type strip Model

func (s *strip) ID() string { return s.slide.ID() }

func (s *strip) SetMargins(margins []int) { s.margins = margins }

func (s *strip) Slide(offset float64) tea.Cmd { return s.slide.Start(offset) }

func (s *strip) Offset() float64 { return s.slide.Value() }

func (s *strip) Sliding() bool { return s.slide.Running() }

// focuser implements Focuser for a tab strip.
type focuser Model

func (f *focuser) Focus(index int) { f.focused = index }

func (f *focuser) Blur(index int) {
	if f.focused == index {
		f.focused = -1
	}
}
