package tabs

import (
	"errors"

	"github.com/google/uuid"
)

var ErrDuplicateTab = errors.New("not allowed to create tabs with duplicate titles")

// Tab is a single tab in a strip.
type Tab struct {
	ID    string
	Title string
}

// Selection is the model of which tab, if any, is selected.
type Selection interface {
	// Selected returns the index of the selected tab, or -1 if no tab is
	// selected.
	Selected() int
	Count() int
	At(index int) (Tab, bool)
	// IndexOf returns the index of the tab with the given ID, or -1.
	IndexOf(id string) int
	Select(index int)
}

// List is an ordered list of uniquely titled tabs, at most one of which is
// selected.
type List struct {
	tabs     []Tab
	selected int
}

// NewList constructs a list with the given titles, selecting the first. An
// error is returned if any title is repeated.
func NewList(titles ...string) (*List, error) {
	l := &List{selected: -1}
	for _, title := range titles {
		if _, err := l.AddTab(title); err != nil {
			return nil, err
		}
	}
	return l, nil
}

// AddTab appends a tab with the given title. The title must be unique. The
// first tab to be added is selected.
func (l *List) AddTab(title string) (Tab, error) {
	for _, tab := range l.tabs {
		if tab.Title == title {
			return Tab{}, ErrDuplicateTab
		}
	}
	tab := Tab{ID: uuid.NewString(), Title: title}
	l.tabs = append(l.tabs, tab)
	if l.selected < 0 {
		l.selected = 0
	}
	return tab, nil
}

// RemoveTab removes the tab at the given index, returning false if there is no
// such tab. If the selected tab is removed then its neighbour is selected,
// preferring the tab to its left.
func (l *List) RemoveTab(index int) (Tab, bool) {
	if index < 0 || index >= len(l.tabs) {
		return Tab{}, false
	}
	removed := l.tabs[index]
	l.tabs = append(l.tabs[:index], l.tabs[index+1:]...)
	switch {
	case len(l.tabs) == 0:
		l.selected = -1
	case index < l.selected:
		l.selected--
	case index == l.selected:
		l.selected = max(0, index-1)
	}
	return removed, true
}

func (l *List) Tabs() []Tab { return l.tabs }

func (l *List) Selected() int { return l.selected }

func (l *List) Count() int { return len(l.tabs) }

func (l *List) At(index int) (Tab, bool) {
	if index < 0 || index >= len(l.tabs) {
		return Tab{}, false
	}
	return l.tabs[index], true
}

func (l *List) IndexOf(id string) int {
	for i, tab := range l.tabs {
		if tab.ID == id {
			return i
		}
	}
	return -1
}

// Select selects the tab at the given index. An index out of range is
// ignored.
func (l *List) Select(index int) {
	if index < 0 || index >= len(l.tabs) {
		return
	}
	l.selected = index
}
