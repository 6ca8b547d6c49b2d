// ABOUTME: Two-pane directory browser built on the window hierarchy
// ABOUTME: Directory list on the left; text preview or numeric plot of the selection on the right

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/mauromedda/winframe/internal/config"
	"github.com/mauromedda/winframe/internal/log"
	"github.com/mauromedda/winframe/pkg/tui/geom"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
	"github.com/mauromedda/winframe/pkg/tui/theme"
	"github.com/mauromedda/winframe/pkg/tui/width"
	"github.com/mauromedda/winframe/pkg/tui/window"
)

const (
	previewLimit = 64 << 10
	pairTitle    = 1
	pairDir      = 2
	pairPlot     = 3
	plotGlyph    = terminal.Glyph('•')
)

type previewMode int

const (
	modeText previewMode = iota
	modePlot
)

// browser is the demo application state. All methods run on the goroutine
// that owns the screen.
type browser struct {
	backend  terminal.Backend
	root     *window.Window
	settings *config.Settings
	keys     *config.Keymap
	style    terminal.BorderStyle

	project string // directory whose .winframe/ config applies
	dir     string
	entries []os.DirEntry
	cursor  int

	mode        previewMode
	showPreview bool
	plot        *window.ScaledWindow
}

func newBrowser(b terminal.Backend, s *config.Settings, dir string) (*browser, error) {
	br := &browser{backend: b, showPreview: true}
	if err := br.configure(s); err != nil {
		return nil, err
	}
	root, err := window.NewRoot(b, br.style)
	if err != nil {
		return nil, fmt.Errorf("creating root window: %w", err)
	}
	root.SetTruncationMarker(s.MarkerRune())
	br.root = root

	if err := br.chdir(dir); err != nil {
		root.Close()
		return nil, err
	}
	br.project = br.dir
	if err := br.relayout(); err != nil {
		root.Close()
		return nil, err
	}
	return br, nil
}

// configure applies settings that do not need new surfaces.
func (br *browser) configure(s *config.Settings) error {
	style, err := terminal.BorderPreset(s.Border)
	if err != nil {
		return err
	}
	th, err := theme.Resolve(s.Theme, s.Colors)
	if err != nil {
		return err
	}
	br.settings = s
	br.keys = s.Keymap()
	br.style = style
	if br.root != nil {
		br.root.SetTruncationMarker(s.MarkerRune())
	}
	if sb, ok := br.backend.(*terminal.ScreenBackend); ok {
		sb.DefinePair(pairTitle, th.Palette.Title, tcell.ColorReset)
		sb.DefinePair(pairDir, th.Palette.Directory, tcell.ColorReset)
		sb.DefinePair(pairPlot, th.Palette.Plot, tcell.ColorReset)
	}
	return nil
}

func (br *browser) close() {
	br.root.Close()
}

func (br *browser) chdir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", dir, err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		return fmt.Errorf("reading %s: %w", abs, err)
	}
	slices.SortStableFunc(entries, func(a, b os.DirEntry) int {
		if a.IsDir() != b.IsDir() {
			if a.IsDir() {
				return -1
			}
			return 1
		}
		return strings.Compare(a.Name(), b.Name())
	})
	br.dir, br.entries, br.cursor = abs, entries, 0
	log.Debug("browser: %s has %d entries", abs, len(entries))
	return nil
}

func (br *browser) selected() (os.DirEntry, bool) {
	if br.cursor < 0 || br.cursor >= len(br.entries) {
		return nil, false
	}
	return br.entries[br.cursor], true
}

// relayout creates or replaces both panes for the current root size.
// Replaced panes are closed.
func (br *browser) relayout() error {
	l, ok := computeLayout(br.root.Shape().Size)
	if !ok {
		for _, id := range br.root.Children() {
			if c, ok := br.root.Child(id); ok {
				c.Close()
			}
		}
		br.plot = nil
		return nil
	}
	if err := br.replacePane(l.dirs, paneDirs); err != nil {
		return err
	}
	if !br.showPreview {
		return nil
	}
	if err := br.replacePane(l.preview, panePreview); err != nil {
		return err
	}
	br.plot = nil
	if br.mode == modePlot {
		c, _ := br.root.Child(panePreview)
		br.plot = window.Wrap(c)
	}
	return nil
}

func (br *browser) replacePane(shape geom.Shape, id string) error {
	prev, err := br.root.SubWin(shape, id)
	if err != nil {
		return fmt.Errorf("creating %s pane: %w", id, err)
	}
	if prev != nil {
		prev.Close()
	}
	return nil
}

// render draws the whole frame.
func (br *browser) render() error {
	if br.settings.IsDeferred() {
		return br.renderDeferred()
	}
	if err := br.root.DrawWith(br.drawRoot); err != nil {
		return err
	}
	if err := br.root.DrawChild(paneDirs, br.drawDirs); err != nil {
		return err
	}
	return br.root.DrawChild(panePreview, br.drawPreview)
}

// renderDeferred draws every window with deferred refreshes and updates
// the device once.
func (br *browser) renderDeferred() (err error) {
	s, err := br.root.BeginDrawDeferred()
	if err != nil {
		return err
	}
	err = func() (err error) {
		defer s.End(&err)
		return br.drawRoot(s.Canvas())
	}()
	if err != nil {
		return err
	}
	if err := br.root.DrawChildDeferred(paneDirs, br.drawDirs); err != nil {
		return err
	}
	if err := br.root.DrawChildDeferred(panePreview, br.drawPreview); err != nil {
		return err
	}
	return br.root.Flush()
}

func (br *browser) drawRoot(c window.Canvas) error {
	if err := c.Border(br.style); err != nil {
		return err
	}
	size := c.Shape().Size
	if _, ok := computeLayout(size); !ok {
		return c.TextAt(1, "terminal too small")
	}
	title := fmt.Sprintf(" winframe: %s ", br.dir)
	if err := c.TextAtAttr(0, title, terminal.ColorPair(pairTitle)|terminal.AttrBold); err != nil {
		return err
	}
	hint := fmt.Sprintf(" %s quit  %s preview  %s plot ",
		firstKey(br.keys, config.ActionQuit), firstKey(br.keys, config.ActionPreview), firstKey(br.keys, config.ActionPlot))
	return c.TextAt(size.Rows-1, hint)
}

func firstKey(km *config.Keymap, a config.Action) string {
	if keys := km.Keys(a); len(keys) > 0 {
		return keys[0]
	}
	return "?"
}

func (br *browser) drawDirs(c window.Canvas) error {
	if err := c.Border(br.style); err != nil {
		return err
	}
	visible := c.Shape().Size.Rows - 2
	top := scrollTop(br.cursor, visible)
	for i := 0; i < visible && top+i < len(br.entries); i++ {
		e := br.entries[top+i]
		name := e.Name()
		var attr terminal.Attr
		if e.IsDir() {
			name += "/"
			attr = terminal.ColorPair(pairDir)
		}
		if top+i == br.cursor {
			attr |= terminal.AttrReverse
		}
		if err := c.TextAtAttr(i+1, name, attr); err != nil {
			return err
		}
	}
	return nil
}

func (br *browser) drawPreview(c window.Canvas) error {
	if err := c.Border(br.style); err != nil {
		return err
	}
	if br.mode == modePlot && br.plot != nil {
		return br.drawPlot(c)
	}
	if img, ok := br.selectedImage(); ok {
		return br.drawImage(img)
	}
	lines, err := br.previewLines(c.Shape().Inner().Size.Cols)
	if err != nil {
		lines = []string{err.Error()}
	}
	rows := c.Shape().Size.Rows - 2
	for i := 0; i < rows && i < len(lines); i++ {
		if err := c.TextAt(i+1, lines[i]); err != nil {
			return err
		}
	}
	return nil
}

func (br *browser) drawPlot(c window.Canvas) error {
	values, label := br.plotValues()
	if err := c.TextAt(0, label); err != nil {
		return err
	}
	if len(values) == 0 {
		return nil
	}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = math.Min(lo, v), math.Max(hi, v)
	}
	vs, vo, hs := plotScale(lo, hi, len(values), c.Shape().Inner().Size)
	br.plot.SetScaleOffset(vs, vo, hs, 0)
	return withAttr(c, terminal.ColorPair(pairPlot), func() error {
		return br.plot.Plot(values, plotGlyph)
	})
}

// withAttr runs f with a switched on for c. The first error wins.
func withAttr(c window.Canvas, a terminal.Attr, f func() error) (err error) {
	if err := c.AttrOn(a); err != nil {
		return err
	}
	defer func() {
		if offErr := c.AttrOff(a); err == nil {
			err = offErr
		}
	}()
	return f()
}

// previewLines returns what the preview pane shows for the selection,
// wrapping markdown to cols.
func (br *browser) previewLines(cols int) ([]string, error) {
	e, ok := br.selected()
	if !ok {
		return []string{"(empty directory)"}, nil
	}
	path := filepath.Join(br.dir, e.Name())
	if e.IsDir() {
		sub, err := os.ReadDir(path)
		if err != nil {
			return nil, err
		}
		lines := make([]string, len(sub))
		for i, s := range sub {
			lines[i] = s.Name()
		}
		return lines, nil
	}

	data, err := readHead(path, previewLimit)
	if err != nil {
		return nil, err
	}
	if bytes.IndexByte(data, 0) >= 0 {
		return []string{"(binary file)"}, nil
	}
	switch {
	case isMarkdown(e.Name()):
		if lines, err := renderMarkdown(string(data), cols); err == nil {
			return lines, nil
		}
	case isHTML(e.Name()):
		if lines, err := renderMarkdown(htmlToMarkdown(string(data)), cols); err == nil {
			return lines, nil
		}
	}
	text := width.StripControls(width.StripANSI(strings.ReplaceAll(string(data), "\t", "    ")))
	return strings.Split(strings.TrimRight(text, "\n"), "\n"), nil
}

// plotValues returns the numbers in the selected file, one per line, or
// the sizes of the directory entries when the file is not numeric.
func (br *browser) plotValues() ([]float64, string) {
	if e, ok := br.selected(); ok && !e.IsDir() {
		if data, err := readHead(filepath.Join(br.dir, e.Name()), previewLimit); err == nil {
			if values, ok := parseNumbers(data); ok {
				return values, " " + e.Name() + " "
			}
		}
	}
	values := make([]float64, 0, len(br.entries))
	for _, e := range br.entries {
		if info, err := e.Info(); err == nil {
			values = append(values, float64(info.Size()))
		}
	}
	return values, " entry sizes "
}

func parseNumbers(data []byte) ([]float64, bool) {
	var values []float64
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		v, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err != nil {
			return nil, false
		}
		values = append(values, v)
	}
	return values, len(values) > 0
}

func readHead(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(io.LimitReader(f, limit))
}

// handle applies one action. It reports true when the program should exit.
func (br *browser) handle(a config.Action) (bool, error) {
	switch a {
	case config.ActionQuit:
		return true, nil
	case config.ActionUp:
		if br.cursor > 0 {
			br.cursor--
		}
	case config.ActionDown:
		if br.cursor < len(br.entries)-1 {
			br.cursor++
		}
	case config.ActionOpen:
		e, ok := br.selected()
		if !ok || !e.IsDir() {
			return false, nil
		}
		if err := br.chdir(filepath.Join(br.dir, e.Name())); err != nil {
			log.Warn("browser: %v", err)
			return false, nil
		}
	case config.ActionBack:
		if err := br.chdir(filepath.Dir(br.dir)); err != nil {
			log.Warn("browser: %v", err)
			return false, nil
		}
	case config.ActionPreview:
		return false, br.togglePreview()
	case config.ActionPlot:
		if !br.showPreview {
			return false, nil
		}
		if br.mode == modePlot {
			br.mode = modeText
		} else {
			br.mode = modePlot
		}
		if err := br.relayout(); err != nil {
			return false, err
		}
	case config.ActionRedraw:
		return false, br.root.Redraw()
	case config.ActionReload:
		return false, nil
	}
	return false, br.render()
}

func (br *browser) togglePreview() error {
	br.showPreview = !br.showPreview
	if !br.showPreview {
		br.plot = nil
		err := br.root.DeleteChild(panePreview)
		if errors.Is(err, window.ErrChildNotFound) {
			return nil
		}
		return err
	}
	if err := br.relayout(); err != nil {
		return err
	}
	return br.render()
}

// resize follows a change in screen size.
func (br *browser) resize(size geom.Size) error {
	if err := br.root.Resize(size); err != nil {
		return err
	}
	if err := br.relayout(); err != nil {
		return err
	}
	return br.render()
}

// reload applies new settings and repaints everything.
func (br *browser) reload(s *config.Settings) error {
	if err := br.configure(s); err != nil {
		return err
	}
	return br.render()
}
