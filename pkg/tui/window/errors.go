// ABOUTME: Typed window errors: one Kind per drawing primitive plus backend and lookup kinds
// ABOUTME: Negative backend statuses convert verbatim; errors.Is matches by Kind

package window

import (
	"fmt"

	"github.com/mauromedda/winframe/pkg/tui/fuzzy"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

// Kind classifies a window error by the operation that failed.
type Kind int

const (
	KindBackend Kind = iota
	KindResourceExhausted
	KindBorder
	KindClear
	KindRefresh
	KindDeferredRefresh
	KindRedraw
	KindHLine
	KindVLine
	KindText
	KindAttrOn
	KindAttrOff
	KindResize
	KindMove
	KindTouch
	KindChildNotFound
	KindClosed
)

var kindNames = [...]string{
	KindBackend:           "backend",
	KindResourceExhausted: "resource exhausted",
	KindBorder:            "border",
	KindClear:             "clear",
	KindRefresh:           "refresh",
	KindDeferredRefresh:   "deferred refresh",
	KindRedraw:            "redraw",
	KindHLine:             "hline",
	KindVLine:             "vline",
	KindText:              "text",
	KindAttrOn:            "attr on",
	KindAttrOff:           "attr off",
	KindResize:            "resize",
	KindMove:              "move",
	KindTouch:             "touch",
	KindChildNotFound:     "child not found",
	KindClosed:            "closed",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Error is returned by every failing window operation.
type Error struct {
	Kind   Kind
	Status terminal.Status // backend status, for primitive kinds
	ID     string          // child id, for KindChildNotFound
	Hint   string          // closest registered id, if any
	Err    error           // backend cause, for KindResourceExhausted
}

func (e *Error) Error() string {
	switch e.Kind {
	case KindChildNotFound:
		if e.Hint != "" {
			return fmt.Sprintf("window: child %q not found (did you mean %q?)", e.ID, e.Hint)
		}
		return fmt.Sprintf("window: child %q not found", e.ID)
	case KindResourceExhausted:
		if e.Err != nil {
			return fmt.Sprintf("window: resource exhausted: %v", e.Err)
		}
		return "window: resource exhausted"
	case KindClosed:
		return "window: use of closed window"
	}
	return fmt.Sprintf("window: %s failed with status %d", e.Kind, e.Status)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, ErrText) matches any text failure.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrBackend           = &Error{Kind: KindBackend}
	ErrResourceExhausted = &Error{Kind: KindResourceExhausted}
	ErrBorder            = &Error{Kind: KindBorder}
	ErrClear             = &Error{Kind: KindClear}
	ErrRefresh           = &Error{Kind: KindRefresh}
	ErrDeferredRefresh   = &Error{Kind: KindDeferredRefresh}
	ErrRedraw            = &Error{Kind: KindRedraw}
	ErrHLine             = &Error{Kind: KindHLine}
	ErrVLine             = &Error{Kind: KindVLine}
	ErrText              = &Error{Kind: KindText}
	ErrAttrOn            = &Error{Kind: KindAttrOn}
	ErrAttrOff           = &Error{Kind: KindAttrOff}
	ErrResize            = &Error{Kind: KindResize}
	ErrMove              = &Error{Kind: KindMove}
	ErrTouch             = &Error{Kind: KindTouch}
	ErrChildNotFound     = &Error{Kind: KindChildNotFound}
	ErrClosed            = &Error{Kind: KindClosed}
)

// check converts a backend status into an error of kind k.
func check(k Kind, st terminal.Status) error {
	if !st.Failed() {
		return nil
	}
	return &Error{Kind: k, Status: st}
}

func errClosed() error {
	return &Error{Kind: KindClosed}
}

// childNotFound builds a KindChildNotFound error, suggesting the best
// fuzzy match among the registered ids.
func childNotFound(id string, registered []string) error {
	e := &Error{Kind: KindChildNotFound, ID: id}
	if hint, ok := fuzzy.Suggest(id, registered); ok {
		e.Hint = hint
	}
	return e
}
