package toggle

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leg100/flick/internal/anim"
	"github.com/leg100/flick/internal/drag"
	"github.com/leg100/flick/internal/tui"
	"github.com/leg100/flick/internal/tui/keys"
	zone "github.com/lrstanley/bubblezone"
)

const (
	// DefaultWidth is the default width of the track, in cells.
	DefaultWidth = 8
	// DefaultDuration is the default duration of the thumb's animation.
	DefaultDuration = 150 * time.Millisecond

	thumbWidth = 2
)

// Switch is an on/off control. It flips when tapped, or when its thumb is
// dragged past the middle of its track.
type Switch struct {
	label    string
	checked  bool
	disabled bool
	focused  bool

	// width of the track, including the thumb
	width int

	zones   *zone.Manager
	element drag.Element

	ctrl       *Controller
	recognizer *drag.Recognizer
	detach     func()

	// thumb animates the thumb between its resting positions.
	thumb *anim.Transition
	// live is the thumb position while it is being dragged.
	live     *float64
	animated bool

	onChange func(bool)
}

type Option func(*Switch)

// Checked sets the initial state.
func Checked(checked bool) Option {
	return func(s *Switch) {
		s.checked = checked
	}
}

func Disabled(disabled bool) Option {
	return func(s *Switch) {
		s.disabled = disabled
	}
}

// WithWidth sets the width of the track.
func WithWidth(width int) Option {
	return func(s *Switch) {
		s.width = max(width, thumbWidth+1)
	}
}

// WithZones marks the track using the zone manager, and starts drags only
// within the track's bounds.
func WithZones(zones *zone.Manager) Option {
	return func(s *Switch) {
		s.zones = zones
	}
}

// WithElement overrides the element on which drags start.
func WithElement(element drag.Element) Option {
	return func(s *Switch) {
		s.element = element
	}
}

// WithDuration sets the duration of the thumb's animation.
func WithDuration(d time.Duration) Option {
	return func(s *Switch) {
		s.thumb = anim.New(d, anim.WithID(s.thumb.ID()))
	}
}

func WithTapThreshold(threshold int) Option {
	return func(s *Switch) {
		if threshold > 0 {
			s.ctrl.opts.TapThreshold = threshold
		}
	}
}

// OnChange registers a function called whenever the switch is flipped.
func OnChange(fn func(bool)) Option {
	return func(s *Switch) {
		s.onChange = fn
	}
}

// New constructs a switch and attaches it to the surface, from which it
// receives pointer inputs.
func New(surface *drag.Surface, label string, opts ...Option) *Switch {
	s := &Switch{
		label:    label,
		width:    DefaultWidth,
		thumb:    anim.New(DefaultDuration),
		animated: true,
	}
	s.ctrl = NewController(ControllerOptions{
		Checked:  s.Checked,
		Disabled: s.Disabled,
		Commit:   s.commit,
		Width:    s.travel,
		Thumb:    (*thumb)(s),
	})
	for _, fn := range opts {
		fn(s)
	}
	if s.element == nil {
		s.element = drag.ZoneElement{Zones: s.zones, ID: s.thumb.ID()}
	}
	s.thumb.Set(s.resting())
	s.recognizer, s.detach = drag.Attach(surface, s.element, s.ctrl.Handlers())
	return s
}

func (s *Switch) Label() string { return s.label }

func (s *Switch) Checked() bool { return s.checked }

func (s *Switch) Disabled() bool { return s.disabled }

func (s *Switch) SetDisabled(disabled bool) { s.disabled = disabled }

func (s *Switch) Focused() bool { return s.focused }

func (s *Switch) Focus() { s.focused = true }

func (s *Switch) Blur() { s.focused = false }

// Dragging is true while the thumb is being dragged.
func (s *Switch) Dragging() bool { return s.recognizer.Dragging() }

// Close detaches the switch from its surface.
func (s *Switch) Close() {
	s.detach()
}

// Update handles a message. Pointer inputs are not handled here but are
// received via the surface; the parent is expected to dispatch messages to
// the surface before calling Update.
func (s *Switch) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if s.focused && !s.disabled && key.Matches(msg, keys.Common.Toggle) {
			s.commit(!s.checked)
		}
	case anim.FrameMsg:
		cmd = s.thumb.Update(msg)
	}
	return tea.Batch(cmd, s.settle())
}

// settle returns the thumb to its resting position unless it is being
// dragged.
func (s *Switch) settle() tea.Cmd {
	if s.live != nil {
		return nil
	}
	if !s.animated {
		s.thumb.Set(s.resting())
		return nil
	}
	return s.thumb.Start(s.resting())
}

func (s *Switch) commit(checked bool) {
	s.checked = checked
	if s.onChange != nil {
		s.onChange(checked)
	}
}

func (s *Switch) resting() float64 {
	if s.checked {
		return 1
	}
	return 0
}

// travel is the distance the thumb moves between resting positions.
func (s *Switch) travel() int {
	return s.width - thumbWidth
}

// position is the thumb's current position as a fraction of its travel.
func (s *Switch) position() float64 {
	if s.live != nil {
		return *s.live
	}
	return s.thumb.Value()
}

func (s *Switch) View() string {
	var (
		trackColor lipgloss.TerminalColor = tui.SwitchOffColor
		thumbColor lipgloss.TerminalColor = tui.SwitchThumbColor
		labelStyle                        = tui.Regular
	)
	if s.checked {
		trackColor = tui.SwitchOnColor
	}
	if s.disabled {
		trackColor, thumbColor = tui.DisabledColor, tui.DisabledColor
		labelStyle = labelStyle.Foreground(tui.DisabledColor)
	}
	if s.focused {
		labelStyle = labelStyle.Bold(true).Underline(true)
	}

	offset := int(s.position()*float64(s.travel()) + 0.5)
	track := tui.Regular.Foreground(trackColor)
	rendered := track.Render(strings.Repeat("━", offset)) +
		tui.Regular.Foreground(thumbColor).Render(strings.Repeat("█", thumbWidth)) +
		track.Render(strings.Repeat("━", s.travel()-offset))
	if s.zones != nil {
		rendered = s.zones.Mark(s.thumb.ID(), rendered)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered, " ", labelStyle.Render(s.label))
}

// thumb implements Thumb for a switch.
type thumb Switch

func (t *thumb) SetTranslate(fraction float64) {
	t.live = &fraction
	t.thumb.Set(fraction)
}

func (t *thumb) ClearTranslate() {
	t.live = nil
}

func (t *thumb) SetAnimated(animated bool) {
	t.animated = animated
}
