package tabs

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/flick/internal/anim"
	"github.com/stretchr/testify/require"
)

const stripID = "strip"

type fakeMeasurer struct {
	widths []int
	usable int
}

func (f *fakeMeasurer) NaturalWidths() []int { return f.widths }

func (f *fakeMeasurer) UsableWidth() int { return f.usable }

type fakeStrip struct {
	margins []int
	offset  float64
	sliding bool
	slides  []float64
}

func (f *fakeStrip) ID() string { return stripID }

func (f *fakeStrip) SetMargins(margins []int) { f.margins = margins }

func (f *fakeStrip) Slide(offset float64) tea.Cmd {
	f.offset = offset
	f.slides = append(f.slides, offset)
	return func() tea.Msg {
		return anim.EndMsg{Target: stripID, Value: offset}
	}
}

func (f *fakeStrip) Offset() float64 { return f.offset }

func (f *fakeStrip) Sliding() bool { return f.sliding }

type fakeFocuser struct {
	calls []string
}

func (f *fakeFocuser) Focus(index int) { f.calls = append(f.calls, fmt.Sprintf("focus %d", index)) }

func (f *fakeFocuser) Blur(index int) { f.calls = append(f.calls, fmt.Sprintf("blur %d", index)) }

type fixture struct {
	*Pagination

	list     *List
	measurer *fakeMeasurer
	strip    *fakeStrip
	focuser  *fakeFocuser
}

// setup constructs a pagination of tabs of the given widths.
func setup(t *testing.T, usable int, widths ...int) *fixture {
	t.Helper()

	titles := make([]string, len(widths))
	for i := range widths {
		titles[i] = fmt.Sprintf("tab-%d", i)
	}
	list, err := NewList(titles...)
	require.NoError(t, err)

	f := &fixture{
		list:     list,
		measurer: &fakeMeasurer{widths: widths, usable: usable},
		strip:    &fakeStrip{},
		focuser:  &fakeFocuser{},
	}
	f.Pagination = NewPagination(list, f.measurer, f.strip, f.focuser)
	return f
}

// collect runs the command and any batched commands, returning the messages
// they produce.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case nil:
		return nil
	case tea.BatchMsg:
		var msgs []tea.Msg
		for _, cmd := range msg {
			msgs = append(msgs, collect(cmd)...)
		}
		return msgs
	default:
		return []tea.Msg{msg}
	}
}

// ofType filters messages of type T.
func ofType[T tea.Msg](msgs []tea.Msg) []T {
	var filtered []T
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			filtered = append(filtered, m)
		}
	}
	return filtered
}
