// ABOUTME: Grapheme-cluster counting and cell-budget truncation with a single marker glyph
// ABOUTME: Never splits a multi-rune cluster; wide clusters count for two cells

package width

import (
	"strings"

	"github.com/rivo/uniseg"
)

// GraphemeCount returns the number of user-perceived characters in s.
func GraphemeCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// Truncate limits s to limit grid cells. When s is limit cells wide or
// wider, the result keeps whole clusters while they fit in the cells left
// over for marker, then appends marker. Narrower strings are returned as
// is. For single-width text that is the first limit-1 clusters plus the
// marker.
func Truncate(s string, limit int, marker rune) string {
	if limit <= 0 {
		return ""
	}
	if Width(s) < limit {
		return s
	}

	budget := limit - max(ClusterWidth(string(marker)), 1)
	var b strings.Builder
	b.Grow(len(s))
	used := 0
	for _, c := range Layout(s) {
		if used+c.Width > budget {
			break
		}
		b.WriteString(c.Text)
		used += c.Width
	}
	b.WriteRune(marker)
	return b.String()
}
