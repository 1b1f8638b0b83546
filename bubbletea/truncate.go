package bubbletea

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// truncate shortens s to at most width display cells, appending an ellipsis
// when anything was cut. Iteration is by grapheme cluster so combining
// sequences and emoji are never split.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}

	var out string
	used := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		cluster := g.Str()
		w := runewidth.StringWidth(cluster)
		if used+w > width-1 { // reserve one cell for the ellipsis
			break
		}
		out += cluster
		used += w
	}
	return out + "…"
}
