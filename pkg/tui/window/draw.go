// ABOUTME: Scoped drawing: clear a window, run caller painting, refresh on every exit path
// ABOUTME: DrawChild propagates the change up the ancestor chain with touch and refresh

package window

import (
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

// Canvas is the drawing capability handed to painting callbacks.
// *Window is its only implementation.
type Canvas interface {
	Shape() geom.Shape
	Border(style terminal.BorderStyle) error
	Print(pos geom.Position, text string) error
	TextAt(row int, text string) error
	TextAtAttr(row int, text string, a terminal.Attr) error
	HLine(pos geom.Position, g terminal.Glyph, n int) error
	VLine(pos geom.Position, g terminal.Glyph, n int) error
	AttrOn(a terminal.Attr) error
	AttrOff(a terminal.Attr) error
	Resize(size geom.Size) error
	MoveTo(pos geom.Position) error
	Clear() error
	Refresh() error
}

var _ Canvas = (*Window)(nil)

// DrawScope is an open drawing region on one window. End must be called
// on every exit path, normally with defer.
type DrawScope struct {
	w        *Window
	deferred bool
	ended    bool
}

// BeginDraw clears w and opens a scope whose End refreshes it.
func (w *Window) BeginDraw() (*DrawScope, error) {
	return w.begin(false)
}

// BeginDrawDeferred is BeginDraw with a deferred refresh at End; the
// caller flushes the device.
func (w *Window) BeginDrawDeferred() (*DrawScope, error) {
	return w.begin(true)
}

func (w *Window) begin(deferred bool) (*DrawScope, error) {
	if err := w.Clear(); err != nil {
		return nil, err
	}
	return &DrawScope{w: w, deferred: deferred}, nil
}

// Canvas returns the window being drawn.
func (s *DrawScope) Canvas() Canvas {
	return s.w
}

// End refreshes the window once. If *errp already holds an error it is
// kept; otherwise a refresh failure is stored there. errp may be nil.
func (s *DrawScope) End(errp *error) {
	if s == nil || s.ended {
		return
	}
	s.ended = true
	var err error
	if s.deferred {
		err = s.w.RefreshDeferred()
	} else {
		err = s.w.Refresh()
	}
	if errp != nil && *errp == nil {
		*errp = err
	}
}

// DrawWith clears w, runs f against it, and refreshes w. The refresh runs
// even when f fails or panics; f's error takes precedence.
func (w *Window) DrawWith(f func(Canvas) error) (err error) {
	s, err := w.BeginDraw()
	if err != nil {
		return err
	}
	defer s.End(&err)
	return f(s.Canvas())
}

// DrawChild draws the child registered under id with DrawWith, then
// touches and refreshes w and each of its ancestors, nearest first, so
// the change reaches the device. A missing id is a no-op: f is not
// called and the result is nil.
func (w *Window) DrawChild(id string, f func(Canvas) error) error {
	return w.drawChild(id, f, false)
}

// DrawChildDeferred is DrawChild with deferred refreshes throughout.
// Call Flush once the frame is complete.
func (w *Window) DrawChildDeferred(id string, f func(Canvas) error) error {
	return w.drawChild(id, f, true)
}

func (w *Window) drawChild(id string, f func(Canvas) error, deferred bool) error {
	c, ok := w.Child(id)
	if !ok {
		if _, err := w.node(); err != nil {
			return err
		}
		return nil
	}

	s, err := c.begin(deferred)
	if err != nil {
		return err
	}
	err = func() (err error) {
		defer s.End(&err)
		return f(s.Canvas())
	}()
	if err != nil {
		return err
	}
	return w.propagate(deferred)
}

// propagate touches and refreshes w, then each ancestor in turn.
func (w *Window) propagate(deferred bool) error {
	for p := w; p != nil; p = p.Parent() {
		if err := p.Touch(); err != nil {
			return err
		}
		var err error
		if deferred {
			err = p.RefreshDeferred()
		} else {
			err = p.Refresh()
		}
		if err != nil {
			return err
		}
	}
	return nil
}
