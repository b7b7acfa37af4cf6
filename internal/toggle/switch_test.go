package toggle

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/leg100/flick/internal/anim"
	"github.com/leg100/flick/internal/drag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupSwitch(t *testing.T, opts ...Option) (*Switch, *drag.Surface, *[]bool) {
	t.Helper()

	var changes []bool
	surface := drag.NewSurface()
	everywhere := drag.ElementFunc(func(int, int) bool { return true })
	opts = append([]Option{
		WithElement(everywhere),
		WithDuration(0),
		OnChange(func(v bool) { changes = append(changes, v) }),
	}, opts...)
	sw := New(surface, "wifi", opts...)
	t.Cleanup(sw.Close)
	return sw, surface, &changes
}

// send dispatches the message to the surface and then the switch, as a
// parent model would, and runs any resulting commands.
func send(sw *Switch, surface *drag.Surface, msg tea.Msg) {
	surface.Update(msg)
	cmd := sw.Update(msg)
	for cmd != nil {
		next := cmd()
		cmd = nil
		if next == nil {
			return
		}
		if _, ok := next.(anim.EndMsg); ok {
			return
		}
		cmd = sw.Update(next)
	}
}

func mouse(action tea.MouseAction, x int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Action: action, Button: tea.MouseButtonLeft}
}

func TestSwitch_Tap(t *testing.T) {
	sw, surface, changes := setupSwitch(t)

	send(sw, surface, mouse(tea.MouseActionPress, 3))
	send(sw, surface, mouse(tea.MouseActionRelease, 3))

	assert.True(t, sw.Checked())
	assert.Equal(t, []bool{true}, *changes)
	assert.Equal(t, 1.0, sw.position())
}

func TestSwitch_Drag(t *testing.T) {
	sw, surface, changes := setupSwitch(t, WithWidth(22), WithTapThreshold(2))

	send(sw, surface, mouse(tea.MouseActionPress, 0))
	send(sw, surface, mouse(tea.MouseActionMotion, 5))
	assert.True(t, sw.Dragging())
	assert.Equal(t, 0.25, sw.position())

	send(sw, surface, mouse(tea.MouseActionMotion, 15))
	assert.Equal(t, 0.75, sw.position())

	send(sw, surface, mouse(tea.MouseActionRelease, 15))
	assert.False(t, sw.Dragging())
	assert.True(t, sw.Checked())
	assert.Equal(t, []bool{true}, *changes)
	assert.Equal(t, 1.0, sw.position())
}

func TestSwitch_DefaultsShortDragDoesNotFlip(t *testing.T) {
	sw, surface, changes := setupSwitch(t)

	// two cells of a six cell travel
	send(sw, surface, mouse(tea.MouseActionPress, 0))
	send(sw, surface, mouse(tea.MouseActionMotion, 2))
	send(sw, surface, mouse(tea.MouseActionRelease, 2))

	assert.False(t, sw.Checked())
	assert.Empty(t, *changes)
	assert.Equal(t, 0.0, sw.position())
}

func TestSwitch_DefaultsDragPastHalfFlips(t *testing.T) {
	sw, surface, changes := setupSwitch(t)

	send(sw, surface, mouse(tea.MouseActionPress, 0))
	send(sw, surface, mouse(tea.MouseActionMotion, 4))
	send(sw, surface, mouse(tea.MouseActionRelease, 4))

	assert.True(t, sw.Checked())
	assert.Equal(t, []bool{true}, *changes)
}

func TestSwitch_DragBackBelowHalf(t *testing.T) {
	sw, surface, changes := setupSwitch(t, WithWidth(22), WithTapThreshold(2))

	send(sw, surface, mouse(tea.MouseActionPress, 0))
	send(sw, surface, mouse(tea.MouseActionMotion, 15))
	send(sw, surface, mouse(tea.MouseActionMotion, 6))
	send(sw, surface, mouse(tea.MouseActionRelease, 6))

	assert.False(t, sw.Checked())
	assert.Empty(t, *changes)
	assert.Equal(t, 0.0, sw.position())
}

func TestSwitch_BlurCancelsDrag(t *testing.T) {
	sw, surface, _ := setupSwitch(t, WithWidth(22), WithTapThreshold(2))

	send(sw, surface, mouse(tea.MouseActionPress, 0))
	send(sw, surface, mouse(tea.MouseActionMotion, 15))
	send(sw, surface, tea.BlurMsg{})

	assert.False(t, sw.Dragging())
	assert.True(t, sw.Checked())
}

func TestSwitch_Disabled(t *testing.T) {
	sw, surface, changes := setupSwitch(t, Disabled(true))
	sw.Focus()

	send(sw, surface, mouse(tea.MouseActionPress, 3))
	send(sw, surface, mouse(tea.MouseActionRelease, 3))
	send(sw, surface, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})

	assert.False(t, sw.Checked())
	assert.Empty(t, *changes)
}

func TestSwitch_Keyboard(t *testing.T) {
	sw, surface, changes := setupSwitch(t, Checked(true))

	// not focused
	send(sw, surface, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, sw.Checked())

	sw.Focus()
	send(sw, surface, tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, sw.Checked())
	assert.Equal(t, []bool{false}, *changes)
}

func TestSwitch_Close(t *testing.T) {
	sw, surface, changes := setupSwitch(t)
	sw.Close()

	send(sw, surface, mouse(tea.MouseActionPress, 3))
	send(sw, surface, mouse(tea.MouseActionRelease, 3))

	assert.Empty(t, *changes)
	assert.Equal(t, 0, surface.Len())
}

func TestSwitch_View(t *testing.T) {
	sw, _, _ := setupSwitch(t)

	view := sw.View()
	require.Contains(t, view, "wifi")
	assert.Contains(t, view, "██")
}
