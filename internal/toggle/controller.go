// Package toggle implements an on/off switch that can be flipped either by
// tapping it or by dragging its thumb.
package toggle

import (
	"math"

	"github.com/leg100/flick/internal/drag"
)

// DefaultTapThreshold is the distance, in cells, under which a drag is
// treated as a tap. A track is only a handful of cells wide, so by default
// only a release where the press happened is a tap.
const DefaultTapThreshold = 1

// Thumb is the visual thumb of a switch. Its position is expressed as a
// fraction of its travel: 0 is the unchecked resting position, 1 the checked
// resting position.
type Thumb interface {
	// SetTranslate positions the thumb, overriding its resting position.
	SetTranslate(fraction float64)
	// ClearTranslate removes any override, returning the thumb to the resting
	// position for the current state.
	ClearTranslate()
	// SetAnimated enables or disables animation of the thumb's movement.
	SetAnimated(bool)
}

// ControllerOptions binds a controller to a switch whose state is owned
// elsewhere.
type ControllerOptions struct {
	Checked  func() bool
	Disabled func() bool
	// Commit is called with the new state when the switch flips.
	Commit func(bool)
	// Width measures the distance the thumb travels between its resting
	// positions.
	Width func() int
	Thumb Thumb
	// TapThreshold defaults to DefaultTapThreshold.
	TapThreshold int
}

// Controller binds a switch's state to drag gestures.
type Controller struct {
	opts  ControllerOptions
	width int
}

func NewController(opts ControllerOptions) *Controller {
	if opts.TapThreshold <= 0 {
		opts.TapThreshold = DefaultTapThreshold
	}
	if opts.Disabled == nil {
		opts.Disabled = func() bool { return false }
	}
	return &Controller{opts: opts}
}

// Handlers returns the drag handlers to attach to a recognizer.
func (c *Controller) Handlers() drag.Handlers {
	return drag.Handlers{
		OnDragStart: c.OnDragStart,
		OnDrag:      c.OnDrag,
		OnDragEnd:   c.OnDragEnd,
	}
}

func (c *Controller) OnDragStart(_ drag.Input, _ *drag.Session) bool {
	if c.opts.Disabled() {
		return false
	}
	c.width = c.opts.Width()
	c.opts.Thumb.SetAnimated(false)
	return true
}

func (c *Controller) OnDrag(_ drag.Input, s *drag.Session) bool {
	s.Value = Translate(s.Distance, c.width, c.opts.Checked())
	c.opts.Thumb.SetTranslate(s.Value)
	return true
}

func (c *Controller) OnDragEnd(_ drag.Input, s *drag.Session) bool {
	if c.opts.Disabled() {
		return false
	}
	c.opts.Thumb.SetAnimated(true)
	c.opts.Thumb.ClearTranslate()

	checked := c.opts.Checked()
	// The end input may carry a position not yet seen by OnDrag.
	s.Value = Translate(s.Distance, c.width, checked)
	if ShouldFlip(s.Distance, s.Value, checked, c.opts.TapThreshold) {
		c.opts.Commit(!checked)
	}
	return true
}

// Translate computes the thumb position for a drag of the given distance.
// Dragging always moves the thumb from its resting position towards the
// opposite one, and never beyond either.
func Translate(distance, width int, checked bool) float64 {
	var percent float64
	if width > 0 {
		percent = float64(distance) / float64(width)
	}
	var t float64
	if checked {
		t = 1 - percent
	} else {
		t = -percent
	}
	return math.Max(0, math.Min(1, t))
}

// ShouldFlip decides whether a finished drag flips the switch. A drag shorter
// than the tap threshold is a tap and always flips. Otherwise the thumb must
// have crossed the midpoint heading away from its resting position.
func ShouldFlip(distance int, translate float64, checked bool, tapThreshold int) bool {
	if abs(distance) < tapThreshold {
		return true
	}
	if checked {
		return translate < 0.5
	}
	return translate > 0.5
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
