// ABOUTME: Lays text out as grid cells, one grapheme cluster per cell or two for wide ones
// ABOUTME: Widths come from go-runewidth; emoji presentation selectors force two cells

package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// emojiPresentation is VARIATION SELECTOR-16.
const emojiPresentation = '\uFE0F'

// Cell is one grapheme cluster placed on the grid.
type Cell struct {
	Text  string
	Width int
}

// Layout splits s into cells. Zero-width clusters (controls, a lone
// combining mark at the start) are dropped.
func Layout(s string) []Cell {
	cells := make([]Cell, 0, len(s))
	state := -1
	for s != "" {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		if w := ClusterWidth(cluster); w > 0 {
			cells = append(cells, Cell{Text: cluster, Width: w})
		}
	}
	return cells
}

// Width returns the number of grid columns s occupies.
func Width(s string) int {
	n := 0
	for _, c := range Layout(s) {
		n += c.Width
	}
	return n
}

// ClusterWidth returns the number of cells a single grapheme cluster
// occupies: 0 for empty or control clusters, 2 for wide East Asian
// characters and emoji.
func ClusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(cluster)
	w := runewidth.RuneWidth(r)
	if w == 1 && strings.ContainsRune(cluster, emojiPresentation) {
		return 2
	}
	return w
}
