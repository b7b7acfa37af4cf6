package tabs

import tea "github.com/charmbracelet/bubbletea"

// Future is the completion of a slide of the tab strip to an expected offset.
// It resolves at most once, and never if it is canceled first.
type Future struct {
	offset   float64
	resolved bool
	canceled bool
	then     []func() tea.Cmd
}

func newFuture(offset float64) *Future {
	return &Future{offset: offset}
}

// resolvedFuture is a future for a slide that had nowhere to go.
func resolvedFuture() *Future {
	return &Future{resolved: true}
}

// Then registers fn to be called once the future resolves. If it has already
// resolved then fn is called immediately and its command returned.
func (f *Future) Then(fn func() tea.Cmd) tea.Cmd {
	switch {
	case f.resolved:
		return fn()
	case f.canceled:
		return nil
	}
	f.then = append(f.then, fn)
	return nil
}

func (f *Future) Resolved() bool { return f.resolved }

func (f *Future) Canceled() bool { return f.canceled }

func (f *Future) resolve() tea.Cmd {
	if f.resolved || f.canceled {
		return nil
	}
	f.resolved = true
	cmds := make([]tea.Cmd, len(f.then))
	for i, fn := range f.then {
		cmds[i] = fn()
	}
	f.then = nil
	return tea.Batch(cmds...)
}

func (f *Future) cancel() {
	if f.resolved {
		return
	}
	f.canceled = true
	f.then = nil
}
