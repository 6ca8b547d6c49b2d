// ABOUTME: Window owns one backend surface plus an ordered, id-keyed registry of child windows
// ABOUTME: Creation, lookup, replacement, deletion, resize, move, and recursive release

package window

import (
	"slices"

	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

// DefaultMarker is appended by TextAt when it truncates.
const DefaultMarker = '~'

// Window is a node in the screen hierarchy. It owns its surface and,
// transitively, every descendant window: Close releases all of them.
//
// A Window is not safe for concurrent use; the whole hierarchy is
// driven from one goroutine.
type Window struct {
	a *arena
	r ref
}

// New allocates a top-level surface at shape and paints its border with
// style (the zero style draws device default glyphs). It fails with
// KindResourceExhausted only when the backend cannot allocate.
func New(b terminal.Backend, shape geom.Shape, style terminal.BorderStyle) (*Window, error) {
	h, err := b.CreateSurface(shape)
	if err != nil {
		return nil, &Error{Kind: KindResourceExhausted, Err: err}
	}
	a := newArena(b)
	a.root = a.add(&node{
		handle:   h,
		shape:    shape,
		children: make(map[string]ref),
		marker:   DefaultMarker,
	})
	w := &Window{a: a, r: a.root}
	if err := w.Border(style); err != nil {
		w.Close()
		return nil, err
	}
	return w, nil
}

// NewRoot creates a window covering the whole screen.
func NewRoot(b terminal.Backend, style terminal.BorderStyle) (*Window, error) {
	return New(b, geom.Shape{Size: b.ScreenSize()}, style)
}

func (w *Window) node() (*node, error) {
	if w == nil || w.a == nil {
		return nil, errClosed()
	}
	n, ok := w.a.nodes[w.r]
	if !ok {
		return nil, errClosed()
	}
	return n, nil
}

func (w *Window) backend() terminal.Backend {
	return w.a.backend
}

// ID returns the id this window was registered under, or "" for a root.
func (w *Window) ID() string {
	n, err := w.node()
	if err != nil {
		return ""
	}
	return n.id
}

// Shape returns the stored placement. A child's shape is in its parent's
// local coordinates as of creation and changes only through Resize and
// MoveTo on the child itself.
func (w *Window) Shape() geom.Shape {
	n, err := w.node()
	if err != nil {
		return geom.Shape{}
	}
	return n.shape
}

// Closed reports whether the window's surface has been released.
func (w *Window) Closed() bool {
	_, err := w.node()
	return err != nil
}

// Parent returns the registering window, or nil for a root or a window
// that was replaced in its parent's registry.
func (w *Window) Parent() *Window {
	n, err := w.node()
	if err != nil || n.parent == 0 {
		return nil
	}
	return &Window{a: w.a, r: n.parent}
}

// ScreenSize returns the size of the display device.
func (w *Window) ScreenSize() geom.Size {
	return w.a.backend.ScreenSize()
}

// SetTruncationMarker sets the glyph TextAt appends when it truncates.
// Children created afterwards inherit it.
func (w *Window) SetTruncationMarker(r rune) {
	if n, err := w.node(); err == nil {
		n.marker = r
	}
}

// SubWin allocates a child surface at shape, given in this window's local
// coordinates, and registers it under id. If id was already registered,
// the previous child is unregistered and returned; the caller must Close
// it. Otherwise the returned window is nil. The new child is reachable
// through Child(id).
func (w *Window) SubWin(shape geom.Shape, id string) (*Window, error) {
	n, err := w.node()
	if err != nil {
		return nil, err
	}
	h, err := w.backend().CreateSubSurface(n.handle, shape)
	if err != nil {
		return nil, &Error{Kind: KindResourceExhausted, Err: err}
	}
	r := w.a.add(&node{
		handle:   h,
		shape:    shape,
		id:       id,
		parent:   w.r,
		base:     n.base.Add(n.shape.Pos),
		children: make(map[string]ref),
		marker:   n.marker,
	})

	var prev *Window
	if old, ok := n.children[id]; ok {
		w.a.detach(old)
		prev = &Window{a: w.a, r: old}
	}
	n.order = append(n.order, id)
	n.children[id] = r
	return prev, nil
}

// Child returns the child registered under id.
func (w *Window) Child(id string) (*Window, bool) {
	n, err := w.node()
	if err != nil {
		return nil, false
	}
	r, ok := n.children[id]
	if !ok {
		return nil, false
	}
	return &Window{a: w.a, r: r}, true
}

// Children returns the registered ids in creation order.
func (w *Window) Children() []string {
	n, err := w.node()
	if err != nil {
		return nil
	}
	return slices.Clone(n.order)
}

// DeleteChild unregisters id, releases its surface and all of its
// descendants, repaints this window over the whole device to erase any
// residual glyphs, and flushes the device.
func (w *Window) DeleteChild(id string) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	i := slices.Index(n.order, id)
	if i < 0 {
		return childNotFound(id, n.order)
	}
	r := n.children[id]
	n.order = slices.Delete(n.order, i, i+1)
	delete(n.children, id)
	w.a.release(r)

	if err := check(KindRedraw, w.backend().RaiseAndRedraw(n.handle)); err != nil {
		return err
	}
	return check(KindBackend, w.backend().FlushDevice())
}

// Resize asks the backend to resize the surface and, on success, records
// the new size. Children are not touched.
func (w *Window) Resize(size geom.Size) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	if err := check(KindResize, w.backend().ResizeSurface(n.handle, size)); err != nil {
		return err
	}
	n.shape.Size = size
	return nil
}

// MoveTo moves the window to pos, in the same coordinates as its Shape,
// and on success records it. Children are not touched.
func (w *Window) MoveTo(pos geom.Position) error {
	n, err := w.node()
	if err != nil {
		return err
	}
	if err := check(KindMove, w.backend().MoveSurface(n.handle, n.base.Add(pos))); err != nil {
		return err
	}
	n.shape.Pos = pos
	return nil
}

var blankBorder = terminal.NewBorderStyle(' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ')

// Reshape blanks the current border, resizes and moves the window, then
// paints a default border at the new placement.
func (w *Window) Reshape(shape geom.Shape) error {
	if err := w.Border(blankBorder); err != nil {
		return err
	}
	if err := w.Resize(shape.Size); err != nil {
		return err
	}
	if err := w.MoveTo(shape.Pos); err != nil {
		return err
	}
	return w.Border(terminal.DefaultBorder())
}

// Close releases the surface of w and of every descendant, and removes w
// from its parent's registry. Closing a root also releases any replaced
// windows created under it that were never closed. Close is idempotent.
func (w *Window) Close() {
	if _, err := w.node(); err != nil {
		return
	}
	w.a.detach(w.r)
	w.a.release(w.r)
	if w.r == w.a.root {
		w.a.releaseAll()
	}
}
