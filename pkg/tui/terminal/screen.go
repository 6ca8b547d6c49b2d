// ABOUTME: ScreenBackend implements Backend on a tcell.Screen with per-surface cell buffers
// ABOUTME: Refresh composites a surface and its sub-surfaces onto the screen, then shows it

package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/unicode/norm"

	"github.com/mauromedda/winframe/internal/log"
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/width"
)

// ErrSurfaceLimit is returned by CreateSurface when the configured number
// of live surfaces is reached.
var ErrSurfaceLimit = errors.New("surface limit reached")

// cell is one character position in a surface buffer. A wide cluster
// occupies its first cell with w == 2 and the next with w == 0.
type cell struct {
	mainc rune
	combc []rune
	style tcell.Style
	w     int
}

var blankCell = cell{mainc: ' ', style: tcell.StyleDefault, w: 1}

type surface struct {
	origin   geom.Position // absolute screen position
	size     geom.Size
	cells    []cell
	attr     Attr
	parent   Handle
	children []Handle
	dirty    bool
}

func newSurface(origin geom.Position, size geom.Size) *surface {
	s := &surface{origin: origin, size: size, dirty: true}
	s.cells = make([]cell, size.Rows*size.Cols)
	s.fill()
	return s
}

func (s *surface) fill() {
	for i := range s.cells {
		s.cells[i] = blankCell
	}
}

func (s *surface) inside(p geom.Position) bool {
	return p.Row >= 0 && p.Row < s.size.Rows && p.Col >= 0 && p.Col < s.size.Cols
}

func (s *surface) set(p geom.Position, c cell) {
	s.cells[p.Row*s.size.Cols+p.Col] = c
}

func (s *surface) at(p geom.Position) cell {
	return s.cells[p.Row*s.size.Cols+p.Col]
}

type colorPair struct {
	fg, bg tcell.Color
}

// Option configures a ScreenBackend.
type Option func(*ScreenBackend)

// WithSurfaceLimit caps the number of live surfaces. Zero means no limit.
func WithSurfaceLimit(n int) Option {
	return func(b *ScreenBackend) {
		b.limit = n
	}
}

// ScreenBackend draws onto a tcell.Screen. Every surface keeps its own
// offscreen buffer; nothing reaches the screen until a refresh. It is not
// safe for concurrent use: the window layer drives it from one goroutine.
type ScreenBackend struct {
	screen   tcell.Screen
	surfaces map[Handle]*surface
	roots    []Handle
	next     Handle
	limit    int
	pairs    map[uint16]colorPair
	active   bool
}

// NewScreenBackend wraps screen. The screen is not initialized until
// Activate is called, unless the caller has already done so.
func NewScreenBackend(screen tcell.Screen, opts ...Option) *ScreenBackend {
	b := &ScreenBackend{
		screen:   screen,
		surfaces: make(map[Handle]*surface),
		pairs:    make(map[uint16]colorPair),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Screen returns the underlying tcell screen, for event polling.
func (b *ScreenBackend) Screen() tcell.Screen {
	return b.screen
}

// Activate initializes the screen: raw mode, alternate buffer, hidden cursor.
func (b *ScreenBackend) Activate() error {
	if b.active {
		return nil
	}
	if err := b.screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	b.screen.HideCursor()
	b.active = true
	return nil
}

// Deactivate restores the terminal. Safe to call more than once.
func (b *ScreenBackend) Deactivate() {
	if !b.active {
		return
	}
	b.active = false
	b.screen.Fini()
}

// DefinePair registers color pair n for use with ColorPair(n).
func (b *ScreenBackend) DefinePair(n uint16, fg, bg tcell.Color) {
	b.pairs[n] = colorPair{fg: fg, bg: bg}
}

// Live returns the number of surfaces currently allocated.
func (b *ScreenBackend) Live() int {
	return len(b.surfaces)
}

func (b *ScreenBackend) allocate(origin geom.Position, size geom.Size, parent Handle) (Handle, error) {
	if !size.Valid() {
		return 0, fmt.Errorf("creating surface: invalid size %s", size)
	}
	if origin.Row < 0 || origin.Col < 0 {
		return 0, fmt.Errorf("creating surface: origin %s off screen", origin)
	}
	if b.limit > 0 && len(b.surfaces) >= b.limit {
		return 0, fmt.Errorf("creating surface: %w (%d)", ErrSurfaceLimit, b.limit)
	}
	b.next++
	h := b.next
	s := newSurface(origin, size)
	s.parent = parent
	b.surfaces[h] = s
	if parent == 0 {
		b.roots = append(b.roots, h)
	} else {
		p := b.surfaces[parent]
		p.children = append(p.children, h)
	}
	return h, nil
}

// CreateSurface allocates a top-level surface at an absolute shape.
func (b *ScreenBackend) CreateSurface(shape geom.Shape) (Handle, error) {
	return b.allocate(shape.Pos, shape.Size, 0)
}

// CreateSubSurface allocates a surface inside parent, positioned in the
// parent's local coordinates.
func (b *ScreenBackend) CreateSubSurface(parent Handle, shape geom.Shape) (Handle, error) {
	p, ok := b.surfaces[parent]
	if !ok {
		return 0, fmt.Errorf("creating sub-surface: unknown parent %s", parent)
	}
	return b.allocate(p.origin.Add(shape.Pos), shape.Size, parent)
}

// DestroySurface releases h. Sub-surfaces still alive become top-level.
// Unknown handles are ignored.
func (b *ScreenBackend) DestroySurface(h Handle) {
	s, ok := b.surfaces[h]
	if !ok {
		return
	}
	if s.parent != 0 {
		if p, ok := b.surfaces[s.parent]; ok {
			p.children = removeHandle(p.children, h)
		}
	} else {
		b.roots = removeHandle(b.roots, h)
	}
	for _, c := range s.children {
		if cs, ok := b.surfaces[c]; ok {
			cs.parent = 0
			b.roots = append(b.roots, c)
		}
	}
	delete(b.surfaces, h)
}

func removeHandle(hs []Handle, h Handle) []Handle {
	for i, x := range hs {
		if x == h {
			return append(hs[:i], hs[i+1:]...)
		}
	}
	return hs
}

func (b *ScreenBackend) lookup(op string, h Handle) (*surface, bool) {
	s, ok := b.surfaces[h]
	if !ok {
		log.Debug("terminal: %s on unknown %s", op, h)
	}
	return s, ok
}

func fail(op string, h Handle, format string, args ...any) Status {
	log.Debug("terminal: %s on %s: "+format, append([]any{op, h}, args...)...)
	return StatusErr
}

func (b *ScreenBackend) style(a Attr) tcell.Style {
	st := tcell.StyleDefault.
		Bold(a&AttrBold != 0).
		Dim(a&AttrDim != 0).
		Italic(a&AttrItalic != 0).
		Blink(a&AttrBlink != 0).
		Reverse(a&AttrReverse != 0)
	if a&AttrUnderline != 0 {
		st = st.Underline(true)
	}
	if n := a.Pair(); n != 0 {
		if p, ok := b.pairs[n]; ok {
			st = st.Foreground(p.fg).Background(p.bg)
		}
	}
	return st
}

func glyphOr(g Glyph, def rune) rune {
	if g == 0 {
		return def
	}
	return rune(g)
}

// PaintBorder draws style around the edge of h.
func (b *ScreenBackend) PaintBorder(h Handle, style BorderStyle) Status {
	s, ok := b.lookup("border", h)
	if !ok {
		return StatusErr
	}
	st := b.style(s.attr)
	put := func(row, col int, r rune) {
		s.set(geom.Pos(row, col), cell{mainc: r, style: st, w: 1})
	}
	last, right := s.size.Rows-1, s.size.Cols-1

	for c := 1; c < right; c++ {
		put(0, c, glyphOr(style.Top, tcell.RuneHLine))
		put(last, c, glyphOr(style.Bottom, tcell.RuneHLine))
	}
	for r := 1; r < last; r++ {
		put(r, 0, glyphOr(style.Left, tcell.RuneVLine))
		put(r, right, glyphOr(style.Right, tcell.RuneVLine))
	}
	put(0, 0, glyphOr(style.TopLeft, tcell.RuneULCorner))
	put(0, right, glyphOr(style.TopRight, tcell.RuneURCorner))
	put(last, 0, glyphOr(style.BottomLeft, tcell.RuneLLCorner))
	put(last, right, glyphOr(style.BottomRight, tcell.RuneLRCorner))
	s.dirty = true
	return StatusOK
}

// PaintText writes text starting at pos, one grapheme cluster per cell
// (two for wide clusters). Text running past the right edge is clipped.
func (b *ScreenBackend) PaintText(h Handle, pos geom.Position, text string) Status {
	s, ok := b.lookup("text", h)
	if !ok {
		return StatusErr
	}
	if !s.inside(pos) {
		return fail("text", h, "start %s outside %s", pos, s.size)
	}
	st := b.style(s.attr)
	col := pos.Col
	for _, gc := range width.Layout(norm.NFC.String(text)) {
		w := gc.Width
		if col+w > s.size.Cols {
			break
		}
		runes := []rune(gc.Text)
		c := cell{mainc: runes[0], style: st, w: w}
		if len(runes) > 1 {
			c.combc = runes[1:]
		}
		s.set(geom.Pos(pos.Row, col), c)
		if w == 2 {
			s.set(geom.Pos(pos.Row, col+1), cell{style: st})
		}
		col += w
	}
	s.dirty = true
	return StatusOK
}

// PaintHLine draws up to n copies of g rightward from pos.
func (b *ScreenBackend) PaintHLine(h Handle, pos geom.Position, g Glyph, n int) Status {
	return b.line("hline", h, pos, g, n, geom.Pos(0, 1), tcell.RuneHLine)
}

// PaintVLine draws up to n copies of g downward from pos.
func (b *ScreenBackend) PaintVLine(h Handle, pos geom.Position, g Glyph, n int) Status {
	return b.line("vline", h, pos, g, n, geom.Pos(1, 0), tcell.RuneVLine)
}

func (b *ScreenBackend) line(op string, h Handle, pos geom.Position, g Glyph, n int, step geom.Position, def rune) Status {
	s, ok := b.lookup(op, h)
	if !ok {
		return StatusErr
	}
	if !s.inside(pos) {
		return fail(op, h, "start %s outside %s", pos, s.size)
	}
	if n < 0 {
		return fail(op, h, "negative length %d", n)
	}
	c := cell{mainc: glyphOr(g, def), style: b.style(s.attr), w: 1}
	for p, i := pos, 0; i < n && s.inside(p); p, i = p.Add(step), i+1 {
		s.set(p, c)
	}
	s.dirty = true
	return StatusOK
}

// ResizeSurface changes the size of h, keeping the overlapping content.
func (b *ScreenBackend) ResizeSurface(h Handle, size geom.Size) Status {
	s, ok := b.lookup("resize", h)
	if !ok {
		return StatusErr
	}
	if !size.Valid() {
		return fail("resize", h, "invalid size %s", size)
	}
	next := newSurface(s.origin, size)
	for r := 0; r < min(size.Rows, s.size.Rows); r++ {
		for c := 0; c < min(size.Cols, s.size.Cols); c++ {
			p := geom.Pos(r, c)
			next.set(p, s.at(p))
		}
	}
	s.size, s.cells, s.dirty = size, next.cells, true
	return StatusOK
}

// MoveSurface places the origin of h at an absolute screen position,
// which must lie on the screen.
func (b *ScreenBackend) MoveSurface(h Handle, pos geom.Position) Status {
	s, ok := b.lookup("move", h)
	if !ok {
		return StatusErr
	}
	screen := b.ScreenSize()
	if pos.Row < 0 || pos.Col < 0 || pos.Row >= screen.Rows || pos.Col >= screen.Cols {
		return fail("move", h, "origin %s off screen %s", pos, screen)
	}
	s.origin, s.dirty = pos, true
	return StatusOK
}

// SetAttrOn enables a for subsequent painting on h.
func (b *ScreenBackend) SetAttrOn(h Handle, a Attr) Status {
	s, ok := b.lookup("attron", h)
	if !ok {
		return StatusErr
	}
	if a&AttrPairMask != 0 {
		s.attr &^= AttrPairMask
	}
	s.attr |= a
	return StatusOK
}

// SetAttrOff disables a for subsequent painting on h.
func (b *ScreenBackend) SetAttrOff(h Handle, a Attr) Status {
	s, ok := b.lookup("attroff", h)
	if !ok {
		return StatusErr
	}
	s.attr &^= a
	return StatusOK
}

// Clear blanks every cell of h.
func (b *ScreenBackend) Clear(h Handle) Status {
	s, ok := b.lookup("clear", h)
	if !ok {
		return StatusErr
	}
	s.fill()
	s.dirty = true
	return StatusOK
}

// Refresh copies h to the screen and shows it.
func (b *ScreenBackend) Refresh(h Handle) Status {
	if st := b.RefreshDeferred(h); st.Failed() {
		return st
	}
	b.screen.Show()
	return StatusOK
}

// RefreshDeferred copies h to the screen without showing it.
func (b *ScreenBackend) RefreshDeferred(h Handle) Status {
	s, ok := b.lookup("refresh", h)
	if !ok {
		return StatusErr
	}
	b.blit(s, false)
	return StatusOK
}

// Touch marks all of h as changed.
func (b *ScreenBackend) Touch(h Handle) Status {
	s, ok := b.lookup("touch", h)
	if !ok {
		return StatusErr
	}
	s.dirty = true
	return StatusOK
}

// RaiseAndRedraw repaints h and everything inside it, then forces the
// device to redraw from scratch.
func (b *ScreenBackend) RaiseAndRedraw(h Handle) Status {
	s, ok := b.lookup("redraw", h)
	if !ok {
		return StatusErr
	}
	b.blit(s, true)
	b.screen.Sync()
	return StatusOK
}

// FlushDevice shows every pending change.
func (b *ScreenBackend) FlushDevice() Status {
	b.screen.Show()
	return StatusOK
}

// ScreenSize returns the screen dimensions.
func (b *ScreenBackend) ScreenSize() geom.Size {
	cols, rows := b.screen.Size()
	return geom.Sz(rows, cols)
}

// blit copies s onto the screen if it changed (or force is set), then
// its sub-surfaces in creation order. A repainted parent forces its
// children so they stay on top.
func (b *ScreenBackend) blit(s *surface, force bool) {
	if s.dirty || force {
		force = true
		cols, rows := b.screen.Size()
		for r := 0; r < s.size.Rows; r++ {
			y := s.origin.Row + r
			if y >= rows {
				break
			}
			for c := 0; c < s.size.Cols; c++ {
				x := s.origin.Col + c
				if x >= cols {
					break
				}
				cl := s.at(geom.Pos(r, c))
				if cl.w == 0 {
					continue
				}
				b.screen.SetContent(x, y, cl.mainc, cl.combc, cl.style)
			}
		}
		s.dirty = false
	}
	for _, ch := range s.children {
		if cs, ok := b.surfaces[ch]; ok {
			b.blit(cs, force)
		}
	}
}
