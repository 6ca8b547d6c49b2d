// ABOUTME: Defines the Backend interface for character-grid drawing surfaces
// ABOUTME: Handles, glyphs, attributes, and signed statuses shared by all backends

package terminal

import (
	"fmt"

	"github.com/mauromedda/winframe/pkg/tui/geom"
)

// Status is a signed backend result. Negative means failure; the backend
// supplies no further detail.
type Status int

const (
	StatusOK  Status = 0
	StatusErr Status = -1
)

// Failed reports whether s signals a failure.
func (s Status) Failed() bool {
	return s < 0
}

// Handle identifies one surface owned by a Backend. Zero is never issued.
type Handle uint64

func (h Handle) String() string {
	return fmt.Sprintf("surface#%d", uint64(h))
}

// Glyph is a single-cell character code. Zero selects the device default
// glyph wherever one exists (borders, lines).
type Glyph rune

// Attr is a text attribute bitmask. The upper 16 bits carry a color-pair
// index, as set by ColorPair.
type Attr uint32

const (
	AttrNone      Attr = 0
	AttrBold      Attr = 1 << 0
	AttrDim       Attr = 1 << 1
	AttrItalic    Attr = 1 << 2
	AttrUnderline Attr = 1 << 3
	AttrBlink     Attr = 1 << 4
	AttrReverse   Attr = 1 << 5
)

const pairShift = 16

// AttrPairMask selects the color-pair bits of an Attr.
const AttrPairMask Attr = 0xFFFF << pairShift

// ColorPair returns the attribute selecting color pair n (see DefinePair).
func ColorPair(n uint16) Attr {
	return Attr(n) << pairShift
}

// Pair returns the color-pair index encoded in a, or 0 for none.
func (a Attr) Pair() uint16 {
	return uint16(a >> pairShift)
}

// Backend is the terminal driver behind every Window. All calls are
// synchronous and are applied to the device in the order issued.
type Backend interface {
	// CreateSurface allocates a top-level surface at an absolute shape.
	CreateSurface(shape geom.Shape) (Handle, error)
	// CreateSubSurface allocates a surface whose position is given in the
	// parent's local coordinates. The position is resolved once; later
	// moves of the parent do not move the sub-surface.
	CreateSubSurface(parent Handle, shape geom.Shape) (Handle, error)
	DestroySurface(h Handle)

	PaintBorder(h Handle, style BorderStyle) Status
	PaintText(h Handle, pos geom.Position, text string) Status
	PaintHLine(h Handle, pos geom.Position, g Glyph, n int) Status
	PaintVLine(h Handle, pos geom.Position, g Glyph, n int) Status

	ResizeSurface(h Handle, size geom.Size) Status
	MoveSurface(h Handle, pos geom.Position) Status

	SetAttrOn(h Handle, a Attr) Status
	SetAttrOff(h Handle, a Attr) Status

	Clear(h Handle) Status
	Refresh(h Handle) Status
	// RefreshDeferred marks h changed without updating the device; a
	// later FlushDevice applies every pending surface at once.
	RefreshDeferred(h Handle) Status
	// Touch marks the whole of h as changed so the next refresh repaints it.
	Touch(h Handle) Status
	RaiseAndRedraw(h Handle) Status
	FlushDevice() Status

	ScreenSize() geom.Size
}

// Device is the process-wide display. It is activated once before any
// surface exists and deactivated once at exit.
type Device interface {
	Activate() error
	Deactivate()
}
