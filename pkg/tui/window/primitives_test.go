// ABOUTME: Tests for the drawing primitives, their typed failures, and text truncation
// ABOUTME: Truncation is checked by cell width, including combining and wide glyphs

package window

import (
	"errors"
	"strings"
	"testing"

	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
	"github.com/mauromedda/winframe/pkg/tui/width"
)

func TestPrimitives_FailureKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		op   terminal.Op
		want error
		call func(w *Window) error
	}{
		{terminal.OpBorder, ErrBorder, func(w *Window) error { return w.Border(terminal.DefaultBorder()) }},
		{terminal.OpText, ErrText, func(w *Window) error { return w.TextAt(1, "x") }},
		{terminal.OpText, ErrText, func(w *Window) error { return w.Print(geom.Pos(1, 1), "x") }},
		{terminal.OpHLine, ErrHLine, func(w *Window) error { return w.HLine(geom.Pos(1, 1), 0, 3) }},
		{terminal.OpVLine, ErrVLine, func(w *Window) error { return w.VLine(geom.Pos(1, 1), 0, 3) }},
		{terminal.OpAttrOn, ErrAttrOn, func(w *Window) error { return w.AttrOn(terminal.AttrBold) }},
		{terminal.OpAttrOff, ErrAttrOff, func(w *Window) error { return w.AttrOff(terminal.AttrBold) }},
		{terminal.OpClear, ErrClear, func(w *Window) error { return w.Clear() }},
		{terminal.OpRefresh, ErrRefresh, func(w *Window) error { return w.Refresh() }},
		{terminal.OpRefreshDeferred, ErrDeferredRefresh, func(w *Window) error { return w.RefreshDeferred() }},
		{terminal.OpTouch, ErrTouch, func(w *Window) error { return w.Touch() }},
		{terminal.OpRedraw, ErrRedraw, func(w *Window) error { return w.Redraw() }},
		{terminal.OpFlush, ErrBackend, func(w *Window) error { return w.Flush() }},
		{terminal.OpResize, ErrResize, func(w *Window) error { return w.Resize(geom.Sz(3, 3)) }},
		{terminal.OpMove, ErrMove, func(w *Window) error { return w.MoveTo(geom.Pos(1, 1)) }},
	}
	for _, tt := range tests {
		t.Run(string(tt.op), func(t *testing.T) {
			t.Parallel()
			vb, root := newRoot(t)
			defer root.Close()

			if err := tt.call(root); err != nil {
				t.Fatalf("healthy call error: %v", err)
			}
			vb.FailOn(tt.op, 0, -7)
			err := tt.call(root)
			if !errors.Is(err, tt.want) {
				t.Fatalf("error = %v, want %v", err, tt.want)
			}
			var werr *Error
			if !errors.As(err, &werr) || werr.Status != -7 {
				t.Errorf("status = %+v, want -7 carried verbatim", werr)
			}
		})
	}
}

func TestTextAt_Truncation(t *testing.T) {
	t.Parallel()

	// A 7-column window leaves 5 columns inside the border.
	tests := []struct {
		name string
		text string
		want string
	}{
		{"short unchanged", "abcd", "abcd"},
		{"empty", "", ""},
		{"exactly interior", "abcde", "abcd~"},
		{"long", "abcdefghij", "abcd~"},
		{"combining kept whole", strings.Repeat("e\u0301", 6), strings.Repeat("e\u0301", 4) + "~"},
		{"emoji clusters", "\U0001F44D\U0001F3FD\U0001F44D\U0001F44D\U0001F44D\U0001F44D\U0001F44D", "\U0001F44D\U0001F3FD\U0001F44D~"},
		{"wide glyphs by cell", "漢字漢字abcdefgh", "漢字~"},
		{"wide glyph then narrow", "a漢字", "a漢~"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			vb := terminal.NewVirtualBackend(24, 80)
			w, err := New(vb, geom.Rect(0, 0, 3, 7), terminal.DefaultBorder())
			if err != nil {
				t.Fatalf("New() error: %v", err)
			}
			defer w.Close()

			if err := w.TextAt(1, tt.text); err != nil {
				t.Fatalf("TextAt() error: %v", err)
			}
			texts := vb.Ops(terminal.OpText)
			if len(texts) != 1 {
				t.Fatalf("text calls = %v", texts)
			}
			if got := texts[0].Text; got != tt.want {
				t.Errorf("painted %q, want %q", got, tt.want)
			}
			if texts[0].Pos != geom.Pos(1, 1) {
				t.Errorf("painted at %v, want (1,1)", texts[0].Pos)
			}
			if n := width.Width(texts[0].Text); n > 5 {
				t.Errorf("painted %d cells, more than the interior", n)
			}
		})
	}
}

func TestTextAt_Marker(t *testing.T) {
	t.Parallel()
	vb, root := newRoot(t)
	defer root.Close()
	root.SetTruncationMarker('…')
	c := mustSub(t, root, geom.Rect(1, 1, 3, 6), "c")

	if err := c.TextAt(1, "overflowing"); err != nil {
		t.Fatalf("TextAt() error: %v", err)
	}
	texts := vb.Ops(terminal.OpText)
	if got := texts[len(texts)-1].Text; got != "ove…" {
		t.Errorf("painted %q, want child to inherit the marker", got)
	}
}

func TestTextAtAttr_SwitchesOffOnFailure(t *testing.T) {
	t.Parallel()
	vb, root := newRoot(t)
	defer root.Close()
	attr := terminal.AttrBold | terminal.ColorPair(2)

	if err := root.TextAtAttr(2, "name", attr); err != nil {
		t.Fatalf("TextAtAttr() error: %v", err)
	}
	assertTrace(t, trace(vb), []string{"attr_on(surface#1)", "text(surface#1)", "attr_off(surface#1)"})
	if on := vb.Ops(terminal.OpAttrOn); on[0].Attr != attr {
		t.Errorf("attr = %v, want %v", on[0].Attr, attr)
	}

	vb.Reset()
	vb.FailOn(terminal.OpText, 0, terminal.StatusErr)
	vb.FailOn(terminal.OpAttrOff, 0, terminal.StatusErr)
	if err := root.TextAtAttr(2, "name", attr); !errors.Is(err, ErrText) {
		t.Errorf("TextAtAttr() = %v, want the text failure first", err)
	}
	if len(vb.Ops(terminal.OpAttrOff)) != 1 {
		t.Error("attribute must be switched off after a failed write")
	}
}

func TestTextAtAttr_AttrOnFailure(t *testing.T) {
	t.Parallel()
	vb, root := newRoot(t)
	defer root.Close()
	vb.FailOn(terminal.OpAttrOn, 0, terminal.StatusErr)

	if err := root.TextAtAttr(1, "x", terminal.AttrReverse); !errors.Is(err, ErrAttrOn) {
		t.Errorf("TextAtAttr() = %v, want ErrAttrOn", err)
	}
	assertTrace(t, trace(vb), []string{"attr_on(surface#1)"})
}

func TestSplitV(t *testing.T) {
	t.Parallel()
	vb, root := newRoot(t)
	defer root.Close()

	if err := root.SplitV(30); err != nil {
		t.Fatalf("SplitV() error: %v", err)
	}
	calls := vb.Ops(terminal.OpVLine)
	want := []terminal.Call{
		{Op: terminal.OpVLine, Handle: 1, Pos: geom.Pos(0, 30), Glyph: terminal.GlyphTTee, N: 1},
		{Op: terminal.OpVLine, Handle: 1, Pos: geom.Pos(1, 30), Glyph: terminal.GlyphVLine, N: 22},
		{Op: terminal.OpVLine, Handle: 1, Pos: geom.Pos(23, 30), Glyph: terminal.GlyphBTee, N: 1},
	}
	if len(calls) != len(want) {
		t.Fatalf("vline calls = %+v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %+v, want %+v", i, calls[i], want[i])
		}
	}
}

func TestSplitH(t *testing.T) {
	t.Parallel()
	vb, root := newRoot(t)
	defer root.Close()

	if err := root.SplitH(5); err != nil {
		t.Fatalf("SplitH() error: %v", err)
	}
	calls := vb.Ops(terminal.OpHLine)
	if len(calls) != 3 {
		t.Fatalf("hline calls = %+v", calls)
	}
	if calls[0].Glyph != terminal.GlyphLTee || calls[1].Glyph != terminal.GlyphHLine || calls[1].N != 78 || calls[2].Pos != geom.Pos(5, 79) || calls[2].Glyph != terminal.GlyphRTee {
		t.Errorf("hline calls = %+v", calls)
	}
}

func TestCleanInterior(t *testing.T) {
	t.Parallel()
	vb := terminal.NewVirtualBackend(24, 80)
	w, err := New(vb, geom.Rect(0, 0, 4, 6), terminal.DefaultBorder())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	defer w.Close()
	vb.Reset()

	if err := w.CleanInterior(); err != nil {
		t.Fatalf("CleanInterior() error: %v", err)
	}
	texts := vb.Ops(terminal.OpText)
	if len(texts) != 2 {
		t.Fatalf("text calls = %+v, want one per interior row", texts)
	}
	for i, c := range texts {
		if c.Pos != geom.Pos(i+1, 1) || c.Text != strings.Repeat(" ", 4) {
			t.Errorf("row %d = %+v", i, c)
		}
	}
	if len(vb.Ops(terminal.OpClear, terminal.OpBorder)) != 0 {
		t.Error("CleanInterior must leave the border alone")
	}
}
