// ABOUTME: Tests for the demo browser against a tcell simulation screen
// ABOUTME: Drives actions directly and inspects composited screen cells

package main

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/winframe/internal/config"
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
)

func newTestBrowser(t *testing.T, s *config.Settings) (*browser, tcell.SimulationScreen, string) {
	t.Helper()
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "a"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a", "inner.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("hello\tworld\nsecond\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "nums.txt"), []byte("1\n2\n3\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	backend := terminal.NewScreenBackend(screen)
	if err := backend.Activate(); err != nil {
		t.Fatalf("Activate() error: %v", err)
	}
	t.Cleanup(backend.Deactivate)
	screen.SetSize(80, 24)

	if s == nil {
		s = config.Defaults()
	}
	br, err := newBrowser(backend, s, dir)
	if err != nil {
		t.Fatalf("newBrowser() error: %v", err)
	}
	t.Cleanup(br.close)
	if err := br.render(); err != nil {
		t.Fatalf("render() error: %v", err)
	}
	return br, screen, dir
}

func screenText(screen tcell.Screen, y, x, n int) string {
	var sb strings.Builder
	for i := range n {
		mainc, _, _, _ := screen.GetContent(x+i, y)
		sb.WriteRune(mainc)
	}
	return sb.String()
}

func mustHandle(t *testing.T, br *browser, a config.Action) {
	t.Helper()
	quit, err := br.handle(a)
	if err != nil {
		t.Fatalf("handle(%s) error: %v", a, err)
	}
	if quit {
		t.Fatalf("handle(%s) asked to quit", a)
	}
}

func TestBrowser_InitialFrame(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	if got := br.root.Children(); !slices.Equal(got, []string{paneDirs, panePreview}) {
		t.Errorf("panes = %v", got)
	}
	if got := screenText(screen, 0, 1, 10); got != " winframe:" {
		t.Errorf("title = %q", got)
	}
	if got := screenText(screen, 2, 2, 2); got != "a/" {
		t.Errorf("first entry = %q, want a/", got)
	}
	_, _, style, _ := screen.GetContent(2, 2)
	if _, _, attrs := style.Decompose(); attrs&tcell.AttrReverse == 0 {
		t.Error("cursor row should be reversed")
	}
	// The preview of a directory lists its contents.
	if got := screenText(screen, 2, 28, 9); got != "inner.txt" {
		t.Errorf("preview = %q, want inner.txt", got)
	}
}

func TestBrowser_CursorAndTextPreview(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	mustHandle(t, br, config.ActionDown)
	if br.cursor != 1 {
		t.Fatalf("cursor = %d, want 1", br.cursor)
	}
	if got := screenText(screen, 2, 28, 14); got != "hello    world" {
		t.Errorf("preview line = %q", got)
	}
	if got := screenText(screen, 3, 28, 6); got != "second" {
		t.Errorf("preview line 2 = %q", got)
	}

	mustHandle(t, br, config.ActionUp)
	mustHandle(t, br, config.ActionUp)
	if br.cursor != 0 {
		t.Errorf("cursor = %d, want clamped at 0", br.cursor)
	}
}

func TestBrowser_OpenAndBack(t *testing.T) {
	br, _, dir := newTestBrowser(t, nil)
	abs, _ := filepath.Abs(dir)

	mustHandle(t, br, config.ActionOpen)
	if br.dir != filepath.Join(abs, "a") {
		t.Fatalf("dir = %q, want a", br.dir)
	}
	if len(br.entries) != 1 || br.entries[0].Name() != "inner.txt" {
		t.Errorf("entries = %v", br.entries)
	}

	mustHandle(t, br, config.ActionBack)
	if br.dir != abs {
		t.Errorf("dir = %q, want %q", br.dir, abs)
	}
}

func TestBrowser_TogglePreviewDeletesPane(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	mustHandle(t, br, config.ActionPreview)
	if got := br.root.Children(); !slices.Equal(got, []string{paneDirs}) {
		t.Fatalf("panes = %v", got)
	}
	if got := screenText(screen, 2, 28, 9); got != strings.Repeat(" ", 9) {
		t.Errorf("preview area = %q, want erased", got)
	}

	mustHandle(t, br, config.ActionPreview)
	if got := br.root.Children(); !slices.Equal(got, []string{paneDirs, panePreview}) {
		t.Errorf("panes = %v", got)
	}
	if got := screenText(screen, 2, 28, 9); got != "inner.txt" {
		t.Errorf("preview = %q after restoring", got)
	}
}

func TestBrowser_PlotMode(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)
	mustHandle(t, br, config.ActionDown)
	mustHandle(t, br, config.ActionDown)

	mustHandle(t, br, config.ActionPlot)
	if br.mode != modePlot {
		t.Fatalf("mode = %v, want modePlot", br.mode)
	}
	if br.plot == nil {
		t.Fatal("plot mode should wrap the preview pane")
	}
	if c, ok := br.root.Child(panePreview); !ok || br.plot.Window().Shape() != c.Shape() {
		t.Error("plot must draw into the registered preview pane")
	}
	if got := screenText(screen, 1, 28, 10); got != " nums.txt " {
		t.Errorf("plot label = %q", got)
	}
	// The minimum sample sits on the bottom interior row, first column.
	if mainc, _, _, _ := screen.GetContent(28, 21); mainc != rune(plotGlyph) {
		t.Errorf("baseline cell = %q, want %q", mainc, rune(plotGlyph))
	}
	_, _, style, _ := screen.GetContent(28, 21)
	if fg, _, _ := style.Decompose(); fg != tcell.ColorGreen {
		t.Errorf("plot color = %v, want green", fg)
	}

	mustHandle(t, br, config.ActionPlot)
	if br.mode != modeText {
		t.Errorf("mode = %v, want modeText", br.mode)
	}
	if br.plot != nil {
		t.Error("leaving plot mode should drop the scaled window")
	}
}

func TestBrowser_Theme(t *testing.T) {
	s := config.Defaults()
	s.Theme = "dark"
	s.Colors = map[string]string{"directory": "#ff0000"}
	_, screen, _ := newTestBrowser(t, s)

	_, _, style, _ := screen.GetContent(2, 0)
	if fg, _, attrs := style.Decompose(); fg != tcell.Color214 || attrs&tcell.AttrBold == 0 {
		t.Errorf("title style = %v/%v, want Color214 bold", fg, attrs)
	}
	_, _, style, _ = screen.GetContent(2, 2)
	if fg, _, _ := style.Decompose(); fg != tcell.NewHexColor(0xff0000) {
		t.Errorf("directory color = %v, want #ff0000", fg)
	}
}

func TestBrowser_Resize(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	screen.SetSize(100, 30)
	if err := br.resize(geom.Sz(30, 100)); err != nil {
		t.Fatalf("resize() error: %v", err)
	}
	if got := br.root.Shape().Size; got != geom.Sz(30, 100) {
		t.Errorf("root size = %v", got)
	}
	want, _ := computeLayout(geom.Sz(30, 100))
	if c, _ := br.root.Child(panePreview); c.Shape() != want.preview {
		t.Errorf("preview = %v, want %v", c.Shape(), want.preview)
	}
	if got := len(br.root.Children()); got != 2 {
		t.Errorf("%d panes after resize, want 2", got)
	}
}

func TestBrowser_ResizeTooSmall(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	screen.SetSize(15, 24)
	if err := br.resize(geom.Sz(24, 15)); err != nil {
		t.Fatalf("resize() error: %v", err)
	}
	if got := br.root.Children(); len(got) != 0 {
		t.Errorf("panes = %v, want none", got)
	}
	if got := screenText(screen, 1, 1, 8); got != "terminal" {
		t.Errorf("message = %q", got)
	}
}

func TestBrowser_DeferredRender(t *testing.T) {
	s := config.Defaults()
	d := true
	s.Deferred = &d
	br, screen, _ := newTestBrowser(t, s)

	mustHandle(t, br, config.ActionDown)
	if got := screenText(screen, 2, 28, 5); got != "hello" {
		t.Errorf("preview = %q after deferred frame", got)
	}
}

func TestBrowser_Reload(t *testing.T) {
	br, screen, _ := newTestBrowser(t, nil)

	s := config.Defaults()
	s.Border = "double"
	if err := br.reload(s); err != nil {
		t.Fatalf("reload() error: %v", err)
	}
	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != '╔' {
		t.Errorf("corner = %q, want double border", mainc)
	}

	s = config.Defaults()
	s.Border = "bogus"
	if err := br.reload(s); err == nil {
		t.Error("reload with an unknown border should fail")
	}
}

func TestBrowser_Quit(t *testing.T) {
	br, _, _ := newTestBrowser(t, nil)

	quit, err := br.handle(config.ActionQuit)
	if err != nil || !quit {
		t.Errorf("handle(quit) = (%v, %v), want (true, nil)", quit, err)
	}
}
