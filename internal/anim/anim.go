// Package anim animates a single numeric property of a widget, such as the
// horizontal offset of a tab strip or the position of a switch thumb, and
// reports the end of each transition.
package anim

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

// fps is the frame rate at which transitions are advanced.
const fps = 60

// FrameMsg advances the transition identified by ID.
type FrameMsg struct {
	ID   string
	Time time.Time

	tag int
}

// EndMsg is sent when a transition completes. Target identifies the element
// whose transition ended, and Value is the property's final value. Listeners
// must check Target: an EndMsg for some other element, e.g. a child element,
// is not theirs.
type EndMsg struct {
	Target string
	Value  float64
}

// Transition animates a value towards a target over a fixed duration.
type Transition struct {
	id       string
	duration time.Duration

	from, to float64
	value    float64
	started  time.Time
	running  bool

	// tag invalidates frames belonging to superseded transitions.
	tag int

	now func() time.Time
}

type Option func(*Transition)

// WithClock overrides the clock used to time transitions.
func WithClock(now func() time.Time) Option {
	return func(t *Transition) {
		t.now = now
	}
}

// WithID sets the element ID instead of generating one.
func WithID(id string) Option {
	return func(t *Transition) {
		t.id = id
	}
}

// New constructs a transition with the given duration. A duration of zero or
// less disables animation: transitions complete on the next message.
func New(duration time.Duration, opts ...Option) *Transition {
	t := &Transition{
		id:       uuid.NewString(),
		duration: duration,
		now:      time.Now,
	}
	for _, fn := range opts {
		fn(t)
	}
	return t
}

// ID identifies the element being animated.
func (t *Transition) ID() string { return t.id }

// Value is the current, possibly mid-transition, value.
func (t *Transition) Value() float64 { return t.value }

// Target is the value the transition is heading towards, or the current value
// if no transition is running.
func (t *Transition) Target() float64 {
	if t.running {
		return t.to
	}
	return t.value
}

// Running is true while a transition is in flight.
func (t *Transition) Running() bool { return t.running }

// Set jumps immediately to v, abandoning any running transition. No EndMsg is
// sent.
func (t *Transition) Set(v float64) {
	t.tag++
	t.running = false
	t.value = v
	t.to = v
}

// Start begins a transition from the current value to the given value. It
// returns nil if the value is already heading to the target, in which case no
// EndMsg is sent. A transition back to the current value, abandoning one in
// flight, ends immediately.
func (t *Transition) Start(to float64) tea.Cmd {
	if t.Target() == to {
		return nil
	}
	t.tag++
	t.from = t.value
	t.to = to
	t.started = t.now()
	t.running = true

	if t.duration <= 0 || t.from == t.to {
		return t.finish()
	}
	return t.frame()
}

// Update advances the transition upon receipt of one of its own frames.
func (t *Transition) Update(msg tea.Msg) tea.Cmd {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.ID != t.id || frame.tag != t.tag || !t.running {
		return nil
	}
	progress := float64(frame.Time.Sub(t.started)) / float64(t.duration)
	if progress >= 1 {
		return t.finish()
	}
	t.value = t.from + (t.to-t.from)*easeOut(max(0, progress))
	return t.frame()
}

func (t *Transition) finish() tea.Cmd {
	t.running = false
	t.value = t.to

	end := EndMsg{Target: t.id, Value: t.to}
	return func() tea.Msg { return end }
}

func (t *Transition) frame() tea.Cmd {
	id, tag := t.id, t.tag
	return tea.Tick(time.Second/fps, func(now time.Time) tea.Msg {
		return FrameMsg{ID: id, Time: now, tag: tag}
	})
}

// easeOut is a cubic ease-out curve.
func easeOut(p float64) float64 {
	q := 1 - p
	return 1 - q*q*q
}
