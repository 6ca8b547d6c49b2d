// ABOUTME: Drawing primitives on Window: each wraps one backend call and returns a typed error
// ABOUTME: Also grapheme-truncating text rows, dividers, and interior cleaning

package window

import (
	"strings"

	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
	"github.com/mauromedda/winframe/pkg/tui/width"
)

// Border paints style around the edge of w.
func (w *Window) Border(style terminal.BorderStyle) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindBorder, w.backend().PaintBorder(n.handle, style))
}

// Print writes text at pos, in window-local coordinates, without
// truncation. The backend clips at the right edge.
func (w *Window) Print(pos geom.Position, text string) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindText, w.backend().PaintText(n.handle, pos, text))
}

// TextAt writes text on row, starting just inside the left border. Text
// wider than the interior is cut by grapheme cluster and ends in the
// truncation marker. The limit is counted in cells, so a wide cluster
// that would cross the right border is dropped whole.
func (w *Window) TextAt(row int, text string) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	s := width.Truncate(text, n.shape.Size.Cols-2, n.marker)
	return check(KindText, w.backend().PaintText(n.handle, geom.Pos(row, 1), s))
}

// TextAtAttr is TextAt with a enabled for the duration of the write.
// a is switched off again even if the write fails; the first error wins.
func (w *Window) TextAtAttr(row int, text string, a terminal.Attr) (err error) {
	if err := w.AttrOn(a); err != nil {
		return err
	}
	defer func() {
		if offErr := w.AttrOff(a); err == nil {
			err = offErr
		}
	}()
	return w.TextAt(row, text)
}

// HLine draws n copies of g rightward from pos. A zero glyph selects the
// device default.
func (w *Window) HLine(pos geom.Position, g terminal.Glyph, n int) error {
	nd, err := w.node()
	if err != nil {
		return err
	}
	return check(KindHLine, w.backend().PaintHLine(nd.handle, pos, g, n))
}

// VLine draws n copies of g downward from pos.
func (w *Window) VLine(pos geom.Position, g terminal.Glyph, n int) error {
	nd, err := w.node()
	if err != nil {
		return err
	}
	return check(KindVLine, w.backend().PaintVLine(nd.handle, pos, g, n))
}

func (w *Window) AttrOn(a terminal.Attr) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindAttrOn, w.backend().SetAttrOn(n.handle, a))
}

func (w *Window) AttrOff(a terminal.Attr) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindAttrOff, w.backend().SetAttrOff(n.handle, a))
}

// Clear blanks the whole surface, border included.
func (w *Window) Clear() error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindClear, w.backend().Clear(n.handle))
}

// Refresh pushes w to the device immediately.
func (w *Window) Refresh() error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindRefresh, w.backend().Refresh(n.handle))
}

// RefreshDeferred marks w changed; Flush applies it.
func (w *Window) RefreshDeferred() error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindDeferredRefresh, w.backend().RefreshDeferred(n.handle))
}

// Touch marks all of w dirty so the next refresh repaints it whole.
func (w *Window) Touch() error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindTouch, w.backend().Touch(n.handle))
}

// Redraw raises w and forces a full repaint of the device.
func (w *Window) Redraw() error {
	n, err := w.node()
	if err != nil {
		return err
	}
	return check(KindRedraw, w.backend().RaiseAndRedraw(n.handle))
}

// Flush applies every deferred refresh to the device.
func (w *Window) Flush() error {
	if _, err := w.node(); err != nil {
		return err
	}
	return check(KindBackend, w.backend().FlushDevice())
}

// SplitV draws a vertical divider at local column col, joined to the top
// and bottom border with tee glyphs.
func (w *Window) SplitV(col int) error {
	size := w.Shape().Size
	if err := w.VLine(geom.Pos(0, col), terminal.GlyphTTee, 1); err != nil {
		return err
	}
	if err := w.VLine(geom.Pos(1, col), terminal.GlyphVLine, size.Rows-2); err != nil {
		return err
	}
	return w.VLine(geom.Pos(size.Rows-1, col), terminal.GlyphBTee, 1)
}

// SplitH draws a horizontal divider at local row row, joined to the left
// and right border with tee glyphs.
func (w *Window) SplitH(row int) error {
	size := w.Shape().Size
	if err := w.HLine(geom.Pos(row, 0), terminal.GlyphLTee, 1); err != nil {
		return err
	}
	if err := w.HLine(geom.Pos(row, 1), terminal.GlyphHLine, size.Cols-2); err != nil {
		return err
	}
	return w.HLine(geom.Pos(row, size.Cols-1), terminal.GlyphRTee, 1)
}

// CleanInterior blanks everything inside the border, leaving the border
// itself intact.
func (w *Window) CleanInterior() error {
	inner := w.Shape().Inner()
	if !inner.Size.Valid() {
		return nil
	}
	blank := strings.Repeat(" ", inner.Size.Cols)
	for r := range inner.Size.Rows {
		if err := w.Print(geom.Pos(inner.Pos.Row+r, inner.Pos.Col), blank); err != nil {
			return err
		}
	}
	return nil
}
