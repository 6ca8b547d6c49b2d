// ABOUTME: ScaledWindow pairs an owned Window with a logical-to-cell affine mapping
// ABOUTME: Projects sampled values onto rows and columns and paints quantized rasters

package window

import (
	"math"

	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

// ScaledWindow owns a Window and four mapping parameters. The setters do
// not validate: a zero scale is accepted and makes Project report false.
// A negative scale inverts the axis.
type ScaledWindow struct {
	w       *Window
	vscale  float64
	voffset float64
	hscale  float64
	hoffset float64
}

// NewScaled creates a top-level window and wraps it with scale 1 and
// offset 0 on both axes.
func NewScaled(b terminal.Backend, shape geom.Shape, style terminal.BorderStyle) (*ScaledWindow, error) {
	w, err := New(b, shape, style)
	if err != nil {
		return nil, err
	}
	return Wrap(w), nil
}

// Wrap takes ownership of w.
func Wrap(w *Window) *ScaledWindow {
	return &ScaledWindow{w: w, vscale: 1, hscale: 1}
}

// Window returns the owned window.
func (s *ScaledWindow) Window() *Window { return s.w }

// Close releases the owned window.
func (s *ScaledWindow) Close() { s.w.Close() }

func (s *ScaledWindow) SetVScale(v float64)  { s.vscale = v }
func (s *ScaledWindow) SetVOffset(v float64) { s.voffset = v }
func (s *ScaledWindow) SetHScale(v float64)  { s.hscale = v }
func (s *ScaledWindow) SetHOffset(v float64) { s.hoffset = v }

func (s *ScaledWindow) VScale() float64  { return s.vscale }
func (s *ScaledWindow) VOffset() float64 { return s.voffset }
func (s *ScaledWindow) HScale() float64  { return s.hscale }
func (s *ScaledWindow) HOffset() float64 { return s.hoffset }

// SetScaleOffset sets all four parameters at once.
func (s *ScaledWindow) SetScaleOffset(vscale, voffset, hscale, hoffset float64) {
	s.SetVScale(vscale)
	s.SetVOffset(voffset)
	s.SetHScale(hscale)
	s.SetHOffset(hoffset)
}

// Project maps a sample value and its index to a logical cell: row counts
// upward from the baseline, col rightward from the first sample. The
// horizontal offset is carried for callers but does not shift col. It
// reports false if either coordinate is not finite.
func (s *ScaledWindow) Project(value float64, index int) (geom.Position, bool) {
	row := math.Floor((value - s.voffset) / s.vscale)
	col := math.Floor(float64(index) / s.hscale)
	if !finite(row) || !finite(col) {
		return geom.Position{}, false
	}
	return geom.Pos(int(row), int(col)), true
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// cell converts a logical position to a window-local one inside the
// border, with row 0 on the bottom interior row.
func (s *ScaledWindow) cell(p geom.Position) (geom.Position, bool) {
	inner := s.w.Shape().Inner()
	local := geom.Pos(inner.Pos.Row+inner.Size.Rows-1-p.Row, inner.Pos.Col+p.Col)
	return local, p.Row >= 0 && p.Col >= 0 && p.Row < inner.Size.Rows && p.Col < inner.Size.Cols
}

// Plot projects each sample and paints g at the resulting cell. Samples
// that do not project or fall outside the interior are skipped.
func (s *ScaledWindow) Plot(values []float64, g terminal.Glyph) error {
	text := string(rune(g))
	for i, v := range values {
		p, ok := s.Project(v, i)
		if !ok {
			continue
		}
		if local, ok := s.cell(p); ok {
			if err := s.w.Print(local, text); err != nil {
				return err
			}
		}
	}
	return nil
}

// PaintRaster paints g in every nonzero cell of grid. The outer index is
// the column and the inner index the row, counted upward from the bottom
// border. Cells outside the interior are clipped.
func (s *ScaledWindow) PaintRaster(grid [][]uint8, g terminal.Glyph) error {
	text := string(rune(g))
	for col, column := range grid {
		for row, v := range column {
			if v == 0 {
				continue
			}
			if local, ok := s.cell(geom.Pos(row, col)); ok {
				if err := s.w.Print(local, text); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
