package drag

import tea "github.com/charmbracelet/bubbletea"

// Pointer is the input family that produced an event.
type Pointer int

const (
	Mouse Pointer = iota + 1
	Touch
	Pen
)

func (p Pointer) String() string {
	switch p {
	case Mouse:
		return "mouse"
	case Touch:
		return "touch"
	case Pen:
		return "pen"
	default:
		return "unknown"
	}
}

// Phase is the stage of a pointer interaction an event belongs to.
type Phase int

const (
	Start Phase = iota + 1
	Move
	End
	// Cancel ends an interaction without a known position, e.g. when the
	// pointer leaves the tracked surface. The session's last position is
	// used instead.
	Cancel
)

// Input is a pointer event, normalized across input families.
type Input struct {
	Phase   Phase
	Pointer Pointer
	X, Y    int
}

// FromMouse converts a bubbletea mouse message into an input. False is
// returned for messages that play no part in dragging, such as wheel events
// or presses of buttons other than the left button.
func FromMouse(msg tea.MouseMsg) (Input, bool) {
	in := Input{Pointer: Mouse, X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return Input{}, false
		}
		in.Phase = Start
	case tea.MouseActionMotion:
		in.Phase = Move
	case tea.MouseActionRelease:
		in.Phase = End
	default:
		return Input{}, false
	}
	return in, true
}

// FromBlur returns the input to dispatch when the terminal loses focus: the
// mouse can no longer be tracked so any mouse drag is cancelled.
func FromBlur() Input {
	return Input{Phase: Cancel, Pointer: Mouse}
}
