package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/truncate"
)

// Width returns the number of cells occupied by s, ignoring ANSI sequences.
func Width(s string) int {
	return lipgloss.Width(s)
}

// Truncate shortens unstyled text to at most width cells, marking the cut
// with an ellipsis.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	return truncate.StringWithTail(s, uint(width), "…")
}

// Cut returns the cells of unstyled text s between from (inclusive) and to
// (exclusive). Wide runes straddling either edge are replaced with spaces.
func Cut(s string, from, to int) string {
	if from < 0 {
		from = 0
	}
	var (
		b   strings.Builder
		pos int
	)
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		start, end := pos, pos+w
		pos = end
		switch {
		case end <= from:
			continue
		case start >= to:
			return b.String()
		case start < from || end > to:
			// partially visible
			b.WriteString(strings.Repeat(" ", min(end, to)-max(start, from)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
