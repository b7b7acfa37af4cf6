package tabs

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/flick/internal/layout"
	"github.com/leg100/flick/internal/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	events []pubsub.Event[Snapshot]
}

func (f *fakePublisher) Publish(t pubsub.EventType, payload Snapshot) {
	f.events = append(f.events, pubsub.NewEvent(t, payload))
}

func (f *fakePublisher) types() []pubsub.EventType {
	types := make([]pubsub.EventType, len(f.events))
	for i, event := range f.events {
		types[i] = event.Type
	}
	return types
}

// newModel constructs a strip of six tabs, each seven cells wide, with room
// for twenty cells of tabs per page, i.e. three pages of two tabs.
func newModel(t *testing.T, opts ...Option) *Model {
	t.Helper()

	list, err := NewList("tab-0", "tab-1", "tab-2", "tab-3", "tab-4", "tab-5")
	require.NoError(t, err)

	opts = append([]Option{
		WithWidth(PaginatorsWidth + 20),
		WithSlideDuration(0),
		WithGrowDuration(0),
	}, opts...)
	m := New(list, opts...)
	drain(t, m, m.Init())
	return m
}

// drain runs the command and feeds the resulting messages back into the
// model until there are no more commands to run. The messages are returned.
func drain(t *testing.T, m *Model, cmd tea.Cmd) []tea.Msg {
	t.Helper()

	var msgs []tea.Msg
	queue := []tea.Cmd{cmd}
	for i := 0; len(queue) > 0; i++ {
		require.Less(t, i, 1000, "too many commands")

		next := queue[0]
		queue = queue[1:]
		for _, msg := range collect(next) {
			msgs = append(msgs, msg)
			queue = append(queue, m.Update(msg))
		}
	}
	return msgs
}

func send(t *testing.T, m *Model, msg tea.Msg) []tea.Msg {
	t.Helper()

	return drain(t, m, m.Update(msg))
}

func TestModel_Init(t *testing.T) {
	m := newModel(t)

	assert.Equal(t, State{Page: 0, Active: true, HasNext: true, Count: 3}, m.Pagination().State())
	assert.Equal(t, []int{0, 0, 6, 0, 6, 0}, m.margins)

	view := m.View()
	assert.Contains(t, view, "tab-0")
	assert.Contains(t, view, "tab-1")
	assert.NotContains(t, view, "tab-2")
	assert.Contains(t, view, nextPaginator)

	bar := m.InkBar()
	assert.False(t, bar.Hidden())
	assert.Equal(t, 0, bar.Left())
	assert.Equal(t, 7, bar.Width())
}

func TestModel_View(t *testing.T) {
	m := newModel(t)

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	for _, line := range lines {
		assert.Equal(t, PaginatorsWidth+20, len([]rune(line)))
	}
	// ink bar beneath the first tab
	assert.Equal(t, "  ━━━━━━━─────────────  ", lines[1])
}

func TestModel_ChangePage(t *testing.T) {
	m := newModel(t)

	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})

	assert.Equal(t, 1, m.Pagination().State().Page)
	assert.Equal(t, 2, m.List().Selected())
	assert.Equal(t, 2, m.Focused())
	assert.Equal(t, 20, m.InkBar().Left())

	view := m.View()
	assert.Contains(t, view, "tab-2")
	assert.Contains(t, view, "tab-3")
	assert.NotContains(t, view, "tab-1")
	assert.Contains(t, view, prevPaginator)

	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'['}})

	assert.Equal(t, 0, m.Pagination().State().Page)
	assert.Equal(t, 1, m.List().Selected())
}

func TestModel_NextTabOnNextPage(t *testing.T) {
	m := newModel(t)

	send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.List().Selected())
	assert.Equal(t, 0, m.Pagination().State().Page)

	send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.List().Selected())
	assert.Equal(t, 1, m.Pagination().State().Page)
	assert.Equal(t, 2, m.Focused())
}

func TestModel_Resize(t *testing.T) {
	m := newModel(t)
	send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{']'}})

	send(t, m, tea.WindowSizeMsg{Width: 100, Height: 10})

	assert.False(t, m.Pagination().State().Active)
	assert.Nil(t, m.margins)
	assert.Equal(t, 0.0, m.slide.Value())
	// selection survives
	assert.Equal(t, 2, m.List().Selected())
	assert.Equal(t, 14, m.InkBar().Left())
	assert.NotContains(t, m.View(), nextPaginator)
}

func TestModel_AddAndRemoveTabs(t *testing.T) {
	pub := &fakePublisher{}
	list, err := NewList("tab-0")
	require.NoError(t, err)
	m := New(list, WithWidth(PaginatorsWidth+20), WithSlideDuration(0), WithGrowDuration(0), WithPublisher(pub))
	drain(t, m, m.Init())

	// a single tab has no ink bar
	assert.True(t, m.InkBar().Hidden())

	cmd, err := m.AddTab("tab-1")
	require.NoError(t, err)
	drain(t, m, cmd)
	assert.False(t, m.InkBar().Hidden())
	assert.Contains(t, pub.types(), TabsChangedEvent)

	_, err = m.AddTab("tab-1")
	assert.ErrorIs(t, err, ErrDuplicateTab)

	for _, title := range []string{"tab-2", "tab-3"} {
		cmd, err := m.AddTab(title)
		require.NoError(t, err)
		drain(t, m, cmd)
	}
	assert.True(t, m.Pagination().State().Active)

	drain(t, m, m.RemoveTab(3))
	drain(t, m, m.RemoveTab(2))
	assert.False(t, m.Pagination().State().Active)
	assert.Equal(t, 2, m.List().Count())

	last := pub.events[len(pub.events)-1]
	assert.Equal(t, PaginationChangedEvent, last.Type)
	assert.Equal(t, 2, last.Payload.Tabs)
}

func TestModel_PublishesSelection(t *testing.T) {
	pub := &fakePublisher{}
	m := newModel(t, WithPublisher(pub))

	send(t, m, tea.KeyMsg{Type: tea.KeyRight})

	require.Contains(t, pub.types(), SelectionChangedEvent)
	for _, event := range pub.events {
		if event.Type == SelectionChangedEvent {
			assert.Equal(t, 1, event.Payload.Selected)
		}
	}
}

func TestModel_IgnoresOtherStrips(t *testing.T) {
	m := newModel(t)
	other := newModel(t)

	m.Update(SelectionChangedMsg{ID: other.ID(), Selected: 4})
	m.Update(recomputeMsg{id: other.ID()})

	assert.Equal(t, 0, m.Pagination().State().Page)
}

func TestModel_WithoutInkBar(t *testing.T) {
	m := newModel(t, WithoutInkBar())

	msgs := send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, m.List().Selected())

	assert.True(t, m.InkBar().Hidden())
	assert.False(t, m.InkBar().Growing())
	assert.Empty(t, ofType[growEndMsg](msgs))

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "  "+strings.Repeat("─", 20)+"  ", lines[1])
}

func TestModel_RemoveTabBeforeSelected(t *testing.T) {
	list, err := NewList("x", "yyyyyyy", "z")
	require.NoError(t, err)
	m := New(list, WithWidth(PaginatorsWidth+20), WithSlideDuration(0), WithGrowDuration(0))
	drain(t, m, m.Init())
	drain(t, m, m.Select(2))
	require.Equal(t, 12, m.InkBar().Left())
	require.Equal(t, 3, m.InkBar().Width())

	cmd := m.RemoveTab(0)
	require.Equal(t, 1, m.List().Selected())
	assert.Equal(t, layout.Tab{}, m.Pagination().Snapshot().Metrics)

	// the selection change arrives before the strip is laid out again
	for _, msg := range ofType[SelectionChangedMsg](collect(cmd)) {
		m.Update(msg)
	}
	assert.Equal(t, 0, m.InkBar().Width())
	assert.False(t, m.InkBar().Growing())

	drain(t, m, cmd)
	assert.Equal(t, 9, m.InkBar().Left())
	assert.Equal(t, 3, m.InkBar().Width())
}

func TestModel_RemoveTabKeepsFocus(t *testing.T) {
	m := newModel(t)
	drain(t, m, m.Select(3))
	require.Equal(t, 3, m.Focused())

	drain(t, m, m.RemoveTab(1))
	assert.Equal(t, 2, m.Focused())
	assert.Equal(t, 2, m.Pagination().Focused())
	assert.Equal(t, "tab-3", m.List().Tabs()[m.Focused()].Title)

	drain(t, m, m.RemoveTab(2))
	assert.Equal(t, -1, m.Focused())
	assert.Equal(t, -1, m.Pagination().Focused())
}
