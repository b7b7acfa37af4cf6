// Package drag recognizes horizontal drag gestures from raw pointer events.
package drag

import "time"

// Handler is invoked at each stage of a drag. Returning false vetoes the
// drag: from OnDragStart it discards the session, from OnDrag it ends the
// drag immediately. The return value of OnDragEnd is ignored.
type Handler func(Input, *Session) bool

type Handlers struct {
	OnDragStart Handler
	OnDrag      Handler
	OnDragEnd   Handler
}

// Element is the region on which a drag may start.
type Element interface {
	Contains(x, y int) bool
}

// ElementFunc adapts a function into an Element.
type ElementFunc func(x, y int) bool

func (f ElementFunc) Contains(x, y int) bool { return f(x, y) }

type state int

const (
	idle state = iota
	dragging
)

// Recognizer turns pointer inputs into at most one drag session at a time.
type Recognizer struct {
	element  Element
	handlers Handlers

	state   state
	session *Session
	// pointerDown is true from a start input until any end input, whether
	// or not a session was started.
	pointerDown bool

	now func() time.Time
}

type Option func(*Recognizer)

// WithClock overrides the clock used to time sessions.
func WithClock(now func() time.Time) Option {
	return func(r *Recognizer) {
		r.now = now
	}
}

// New constructs a recognizer for drags starting on the element.
func New(element Element, handlers Handlers, opts ...Option) *Recognizer {
	r := &Recognizer{
		element:  element,
		handlers: handlers,
		now:      time.Now,
	}
	for _, fn := range opts {
		fn(r)
	}
	return r
}

// Attach constructs a recognizer and registers it with the surface. Start
// inputs are only honoured within the element, whereas move and end inputs
// are honoured anywhere on the surface, so that a drag that wanders off the
// element is still tracked and terminated. The returned function detaches
// the recognizer and must be called when the element is torn down.
func Attach(surface *Surface, element Element, handlers Handlers, opts ...Option) (*Recognizer, func()) {
	r := New(element, handlers, opts...)
	return r, surface.Listen(r.Handle)
}

// Dragging is true while a session is active.
func (r *Recognizer) Dragging() bool {
	return r.state == dragging
}

// Session returns a copy of the active session.
func (r *Recognizer) Session() (Session, bool) {
	if r.session == nil {
		return Session{}, false
	}
	return *r.session, true
}

// Handle feeds an input to the recognizer.
func (r *Recognizer) Handle(in Input) {
	switch in.Phase {
	case Start:
		r.start(in)
	case Move:
		r.move(in)
	case End, Cancel:
		r.end(in)
	}
}

func (r *Recognizer) start(in Input) {
	if r.pointerDown || r.state == dragging {
		return
	}
	if r.element != nil && !r.element.Contains(in.X, in.Y) {
		return
	}
	r.pointerDown = true

	now := r.now()
	r.session = &Session{
		Pointer:   in.Pointer,
		StartX:    in.X,
		StartTime: now,
	}
	r.session.update(in.X, now)
	r.state = dragging

	if !call(r.handlers.OnDragStart, in, r.session) {
		r.reset()
	}
}

func (r *Recognizer) move(in Input) {
	if !r.matches(in) {
		return
	}
	r.session.update(in.X, r.now())

	if !call(r.handlers.OnDrag, in, r.session) {
		r.end(in)
	}
}

func (r *Recognizer) end(in Input) {
	r.pointerDown = false
	if !r.matches(in) {
		return
	}
	x := in.X
	if in.Phase == Cancel {
		x = r.session.X
	}
	r.session.update(x, r.now())

	call(r.handlers.OnDragEnd, in, r.session)
	r.reset()
}

// matches is true if the input belongs to the active session.
func (r *Recognizer) matches(in Input) bool {
	return r.state == dragging && r.session != nil && in.Pointer == r.session.Pointer
}

func (r *Recognizer) reset() {
	r.state = idle
	r.session = nil
}

func call(fn Handler, in Input, s *Session) bool {
	if fn == nil {
		return true
	}
	return fn(in, s)
}
