package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "overview", Truncate("overview", 8))
	assert.Equal(t, "overvi…", Truncate("overview", 7))
	assert.Equal(t, "", Truncate("overview", 0))
}

func TestCut(t *testing.T) {
	tests := []struct {
		name     string
		s        string
		from, to int
		want     string
	}{
		{"all", "abcdef", 0, 6, "abcdef"},
		{"middle", "abcdef", 2, 4, "cd"},
		{"beyond end", "abcdef", 4, 10, "ef"},
		{"before start", "abcdef", -3, 2, "ab"},
		{"empty window", "abcdef", 3, 3, ""},
		{"wide rune straddling left edge", "a世b", 2, 4, " b"},
		{"wide rune straddling right edge", "a世b", 0, 2, "a "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Cut(tt.s, tt.from, tt.to))
		})
	}
}
