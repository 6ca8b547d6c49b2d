// ABOUTME: Pane geometry for the two-pane browser, computed from the root window size
// ABOUTME: Pure functions so layout rules are testable without a terminal

package main

import "github.com/mauromedda/winframe/pkg/tui/geom"

const (
	paneDirs    = "dirs"
	panePreview = "preview"

	minPaneCols = 10
	minRows     = 5
)

// layout holds the shapes of both panes in root-local coordinates.
type layout struct {
	dirs    geom.Shape
	preview geom.Shape
}

// computeLayout splits the interior of a root of the given size into a
// directory pane (a third of the width) and a preview pane. It reports
// false when the screen is too small for both.
func computeLayout(root geom.Size) (layout, bool) {
	inner := geom.Shape{Size: root}.Inner()
	if inner.Size.Rows < minRows-2 || inner.Size.Cols < 2*minPaneCols {
		return layout{}, false
	}
	dirCols := min(max(inner.Size.Cols/3, minPaneCols), inner.Size.Cols-minPaneCols)
	return layout{
		dirs:    geom.Shape{Pos: inner.Pos, Size: geom.Sz(inner.Size.Rows, dirCols)},
		preview: geom.Shape{Pos: inner.Pos.Add(geom.Pos(0, dirCols)), Size: geom.Sz(inner.Size.Rows, inner.Size.Cols-dirCols)},
	}, true
}

// scrollTop returns the first visible entry so that cursor stays inside
// a list showing visible rows.
func scrollTop(cursor, visible int) int {
	if visible <= 0 {
		return 0
	}
	return max(0, cursor-visible+1)
}

// plotScale fits n samples spanning [lo, hi] into an interior of the
// given size: the returned scales map the range onto every row and the
// samples onto at most every column.
func plotScale(lo, hi float64, n int, interior geom.Size) (vscale, voffset, hscale float64) {
	vscale, hscale = 1, 1
	if rows := interior.Rows - 1; rows > 0 && hi > lo {
		vscale = (hi - lo) / float64(rows)
	}
	if interior.Cols > 0 && n > interior.Cols {
		hscale = float64(n) / float64(interior.Cols)
	}
	return vscale, lo, hscale
}
