package bubbletea

import (
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits unchanged", "short", 10, "short"},
		{"exact width unchanged", "12345", 5, "12345"},
		{"cut with ellipsis", "a long session title", 10, "a long se…"},
		{"zero width", "anything", 0, ""},
		{"width one", "ab", 1, "…"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, truncate(tt.in, tt.width))
		})
	}
}

func TestTruncate_WideRunes(t *testing.T) {
	t.Parallel()
	// CJK runes occupy two cells; the result must never exceed the budget.
	got := truncate("日本語のタイトル", 7)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 7)
	assert.Contains(t, got, "…")
}
