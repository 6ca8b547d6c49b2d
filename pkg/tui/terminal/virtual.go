// ABOUTME: VirtualBackend implements Backend for tests without a real terminal
// ABOUTME: Records every call in order, tracks live surfaces, and injects failures

package terminal

import (
	"errors"
	"fmt"
	"sync"

	"github.com/mauromedda/winframe/pkg/tui/geom"
)

// Op names one Backend operation in a recorded Call.
type Op string

const (
	OpCreate          Op = "create"
	OpCreateSub       Op = "create_sub"
	OpDestroy         Op = "destroy"
	OpBorder          Op = "border"
	OpText            Op = "text"
	OpHLine           Op = "hline"
	OpVLine           Op = "vline"
	OpResize          Op = "resize"
	OpMove            Op = "move"
	OpAttrOn          Op = "attr_on"
	OpAttrOff         Op = "attr_off"
	OpClear           Op = "clear"
	OpRefresh         Op = "refresh"
	OpRefreshDeferred Op = "refresh_deferred"
	OpTouch           Op = "touch"
	OpRedraw          Op = "redraw"
	OpFlush           Op = "flush"
)

// ErrInjected is returned by VirtualBackend for creations set to fail.
var ErrInjected = errors.New("injected backend failure")

// Call is one recorded Backend invocation. Only the fields relevant to
// Op are set.
type Call struct {
	Op     Op
	Handle Handle
	Shape  geom.Shape
	Pos    geom.Position
	Size   geom.Size
	Text   string
	Glyph  Glyph
	N      int
	Attr   Attr
	Style  BorderStyle
}

func (c Call) String() string {
	return fmt.Sprintf("%s(%s)", c.Op, c.Handle)
}

type failKey struct {
	op Op
	h  Handle
}

// VirtualBackend is a fake Backend for unit tests. It keeps no cells,
// only the shape of each live surface and the call log.
type VirtualBackend struct {
	mu     sync.Mutex
	screen geom.Size
	calls  []Call
	live   map[Handle]geom.Shape
	next   Handle
	fails  map[failKey]Status
}

// NewVirtualBackend returns a VirtualBackend with the given screen size.
func NewVirtualBackend(rows, cols int) *VirtualBackend {
	return &VirtualBackend{
		screen: geom.Sz(rows, cols),
		live:   make(map[Handle]geom.Shape),
		fails:  make(map[failKey]Status),
	}
}

// FailOn makes every later op on h return status (creations return
// ErrInjected). A zero handle matches every handle.
func (v *VirtualBackend) FailOn(op Op, h Handle, status Status) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.fails[failKey{op: op, h: h}] = status
}

// ClearFailures removes every injected failure.
func (v *VirtualBackend) ClearFailures() {
	v.mu.Lock()
	defer v.mu.Unlock()

	clear(v.fails)
}

func (v *VirtualBackend) record(c Call) Status {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, c)
	if st, ok := v.fails[failKey{op: c.Op, h: c.Handle}]; ok {
		return st
	}
	if st, ok := v.fails[failKey{op: c.Op}]; ok {
		return st
	}
	if c.Op != OpFlush {
		if _, ok := v.live[c.Handle]; !ok {
			return StatusErr
		}
	}
	return StatusOK
}

// CreateSurface records the call and allocates a handle.
func (v *VirtualBackend) CreateSurface(shape geom.Shape) (Handle, error) {
	return v.create(Call{Op: OpCreate, Shape: shape}, shape)
}

// CreateSubSurface records the call and allocates a handle positioned
// relative to parent.
func (v *VirtualBackend) CreateSubSurface(parent Handle, shape geom.Shape) (Handle, error) {
	v.mu.Lock()
	ps, ok := v.live[parent]
	v.mu.Unlock()
	if !ok {
		v.mu.Lock()
		v.calls = append(v.calls, Call{Op: OpCreateSub, Handle: parent, Shape: shape})
		v.mu.Unlock()
		return 0, fmt.Errorf("creating sub-surface: unknown parent %s", parent)
	}
	abs := geom.Shape{Pos: ps.Pos.Add(shape.Pos), Size: shape.Size}
	return v.create(Call{Op: OpCreateSub, Handle: parent, Shape: shape}, abs)
}

func (v *VirtualBackend) create(c Call, abs geom.Shape) (Handle, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, c)
	if _, ok := v.fails[failKey{op: c.Op}]; ok {
		return 0, ErrInjected
	}
	if !abs.Size.Valid() {
		return 0, fmt.Errorf("creating surface: invalid size %s", abs.Size)
	}
	v.next++
	v.live[v.next] = abs
	return v.next, nil
}

// DestroySurface records the call and forgets h.
func (v *VirtualBackend) DestroySurface(h Handle) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = append(v.calls, Call{Op: OpDestroy, Handle: h})
	delete(v.live, h)
}

func (v *VirtualBackend) PaintBorder(h Handle, style BorderStyle) Status {
	return v.record(Call{Op: OpBorder, Handle: h, Style: style})
}

func (v *VirtualBackend) PaintText(h Handle, pos geom.Position, text string) Status {
	return v.record(Call{Op: OpText, Handle: h, Pos: pos, Text: text})
}

func (v *VirtualBackend) PaintHLine(h Handle, pos geom.Position, g Glyph, n int) Status {
	return v.record(Call{Op: OpHLine, Handle: h, Pos: pos, Glyph: g, N: n})
}

func (v *VirtualBackend) PaintVLine(h Handle, pos geom.Position, g Glyph, n int) Status {
	return v.record(Call{Op: OpVLine, Handle: h, Pos: pos, Glyph: g, N: n})
}

// ResizeSurface records the call and updates the tracked size on success.
func (v *VirtualBackend) ResizeSurface(h Handle, size geom.Size) Status {
	st := v.record(Call{Op: OpResize, Handle: h, Size: size})
	if st.Failed() {
		return st
	}
	if !size.Valid() {
		return StatusErr
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.live[h]
	s.Size = size
	v.live[h] = s
	return st
}

// MoveSurface records the call and updates the tracked origin on success.
func (v *VirtualBackend) MoveSurface(h Handle, pos geom.Position) Status {
	st := v.record(Call{Op: OpMove, Handle: h, Pos: pos})
	if st.Failed() {
		return st
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	s := v.live[h]
	s.Pos = pos
	v.live[h] = s
	return st
}

func (v *VirtualBackend) SetAttrOn(h Handle, a Attr) Status {
	return v.record(Call{Op: OpAttrOn, Handle: h, Attr: a})
}

func (v *VirtualBackend) SetAttrOff(h Handle, a Attr) Status {
	return v.record(Call{Op: OpAttrOff, Handle: h, Attr: a})
}

func (v *VirtualBackend) Clear(h Handle) Status {
	return v.record(Call{Op: OpClear, Handle: h})
}

func (v *VirtualBackend) Refresh(h Handle) Status {
	return v.record(Call{Op: OpRefresh, Handle: h})
}

func (v *VirtualBackend) RefreshDeferred(h Handle) Status {
	return v.record(Call{Op: OpRefreshDeferred, Handle: h})
}

func (v *VirtualBackend) Touch(h Handle) Status {
	return v.record(Call{Op: OpTouch, Handle: h})
}

func (v *VirtualBackend) RaiseAndRedraw(h Handle) Status {
	return v.record(Call{Op: OpRedraw, Handle: h})
}

func (v *VirtualBackend) FlushDevice() Status {
	return v.record(Call{Op: OpFlush})
}

// ScreenSize returns the configured screen size.
func (v *VirtualBackend) ScreenSize() geom.Size {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.screen
}

// --- Test helpers (not part of Backend) ---

// Calls returns a copy of the call log.
func (v *VirtualBackend) Calls() []Call {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make([]Call, len(v.calls))
	copy(out, v.calls)
	return out
}

// Ops returns the call log filtered to the given ops, or the whole log
// if none are given.
func (v *VirtualBackend) Ops(only ...Op) []Call {
	calls := v.Calls()
	if len(only) == 0 {
		return calls
	}
	keep := make(map[Op]bool, len(only))
	for _, op := range only {
		keep[op] = true
	}
	out := calls[:0]
	for _, c := range calls {
		if keep[c.Op] {
			out = append(out, c)
		}
	}
	return out
}

// Reset clears the call log. Live surfaces are kept.
func (v *VirtualBackend) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.calls = nil
}

// Live returns the absolute shape of each live surface.
func (v *VirtualBackend) Live() map[Handle]geom.Shape {
	v.mu.Lock()
	defer v.mu.Unlock()

	out := make(map[Handle]geom.Shape, len(v.live))
	for h, s := range v.live {
		out[h] = s
	}
	return out
}

// SetScreenSize updates the reported screen size.
func (v *VirtualBackend) SetScreenSize(rows, cols int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.screen = geom.Sz(rows, cols)
}
