package drag

import "time"

// Direction of travel relative to the start position.
type Direction string

const (
	None  Direction = ""
	Left  Direction = "left"
	Right Direction = "right"
)

// Session is the live record of one drag, from start to end.
type Session struct {
	// Pointer is the input family that started the session. Only events from
	// the same family may update or end it.
	Pointer Pointer

	StartX    int
	StartTime time.Time

	// X is the most recent position.
	X int
	// Distance is StartX - X: positive when moving left.
	Distance  int
	Direction Direction
	Elapsed   time.Duration
	// Velocity is the absolute distance travelled per millisecond.
	Velocity float64

	// Value is free for handlers to carry state between callbacks.
	Value float64
}

func (s *Session) update(x int, now time.Time) {
	s.X = x
	s.Distance = s.StartX - x
	switch {
	case s.Distance > 0:
		s.Direction = Left
	case s.Distance < 0:
		s.Direction = Right
	default:
		s.Direction = None
	}
	s.Elapsed = now.Sub(s.StartTime)
	if ms := float64(s.Elapsed) / float64(time.Millisecond); ms > 0 {
		s.Velocity = float64(abs(s.Distance)) / ms
	} else {
		s.Velocity = 0
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
