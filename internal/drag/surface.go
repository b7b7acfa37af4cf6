package drag

import (
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

// Surface is the document-wide scope on which pointer inputs are broadcast to
// every attached recognizer.
type Surface struct {
	listeners []listener
	next      int
}

type listener struct {
	id int
	fn func(Input)
}

func NewSurface() *Surface {
	return &Surface{}
}

// Listen registers fn to receive every input dispatched on the surface. The
// returned function removes the listener.
func (s *Surface) Listen(fn func(Input)) func() {
	s.next++
	id := s.next
	s.listeners = append(s.listeners, listener{id: id, fn: fn})
	return func() {
		s.listeners = slices.DeleteFunc(s.listeners, func(l listener) bool {
			return l.id == id
		})
	}
}

// Len returns the number of listeners.
func (s *Surface) Len() int {
	return len(s.listeners)
}

// Dispatch sends the input to all listeners, in order of registration.
func (s *Surface) Dispatch(in Input) {
	// listeners may detach themselves or others whilst handling the input.
	for _, l := range slices.Clone(s.listeners) {
		l.fn(in)
	}
}

// Update dispatches bubbletea messages that are relevant to dragging: mouse
// messages, and loss of terminal focus.
func (s *Surface) Update(msg tea.Msg) {
	switch msg := msg.(type) {
	case tea.MouseMsg:
		if in, ok := FromMouse(msg); ok {
			s.Dispatch(in)
		}
	case tea.BlurMsg:
		s.Dispatch(FromBlur())
	}
}

// ZoneElement is an element whose bounds are those of a bubblezone zone.
type ZoneElement struct {
	Zones *zone.Manager
	ID    string
}

func (z ZoneElement) Contains(x, y int) bool {
	if z.Zones == nil {
		return false
	}
	return z.Zones.Get(z.ID).InBounds(tea.MouseMsg{X: x, Y: y})
}
