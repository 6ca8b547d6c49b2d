// ABOUTME: Converts an image into a one-bit cell raster sized to a window interior
// ABOUTME: Scales with CatmullRom and marks cells brighter than the mean luminance

package image

import (
	goimage "image"
	"math"

	"golang.org/x/image/draw"

	"github.com/mauromedda/winframe/pkg/tui/geom"
)

// Raster fits img into size cells, preserving aspect ratio with cells
// twice as tall as they are wide. The result is indexed [col][row] with
// row 0 at the bottom. Cells brighter than the mean are 1.
func Raster(img goimage.Image, size geom.Size) [][]uint8 {
	b := img.Bounds()
	cols, rows := fitCells(b.Dx(), b.Dy(), size.Cols, size.Rows)
	if cols == 0 || rows == 0 {
		return nil
	}

	gray := goimage.NewGray(goimage.Rect(0, 0, cols, rows))
	draw.CatmullRom.Scale(gray, gray.Bounds(), img, b, draw.Src, nil)

	var sum int
	for _, v := range gray.Pix {
		sum += int(v)
	}
	mean := float64(sum) / float64(len(gray.Pix))

	grid := make([][]uint8, cols)
	for x := range cols {
		grid[x] = make([]uint8, rows)
		for y := range rows {
			if float64(gray.GrayAt(x, y).Y) > mean {
				grid[x][rows-1-y] = 1
			}
		}
	}
	return grid
}

// fitCells returns the largest cell box for a w x h pixel image that
// fits maxCols x maxRows. One cell covers one pixel across and two down.
func fitCells(w, h, maxCols, maxRows int) (int, int) {
	if w <= 0 || h <= 0 || maxCols <= 0 || maxRows <= 0 {
		return 0, 0
	}
	scale := math.Min(float64(maxCols)/float64(w), float64(maxRows*2)/float64(h))
	cols := int(math.Round(float64(w) * scale))
	rows := int(math.Round(float64(h) * scale / 2))
	return clamp(cols, 1, maxCols), clamp(rows, 1, maxRows)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
