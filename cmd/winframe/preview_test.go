// ABOUTME: Tests for markdown and image previews in the right pane
// ABOUTME: Adds files to the browser fixture and inspects the composited screen

package main

import (
	"bytes"
	goimage "image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestIsMarkdown(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]bool{
		"README.md":      true,
		"notes.MARKDOWN": true,
		"doc.txt":        false,
		"md":             false,
	} {
		if got := isMarkdown(name); got != want {
			t.Errorf("isMarkdown(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	t.Parallel()

	lines, err := renderMarkdown("# Heading\n\nsome body text\n", 40)
	if err != nil {
		t.Fatalf("renderMarkdown() error: %v", err)
	}
	joined := strings.Join(lines, "\n")
	for _, want := range []string{"Heading", "some body text"} {
		if !strings.Contains(joined, want) {
			t.Errorf("output missing %q:\n%s", want, joined)
		}
	}
	if strings.Contains(joined, "\x1b[") {
		t.Errorf("output still has escapes: %q", joined)
	}
	for _, l := range lines {
		if strings.HasSuffix(l, " ") {
			t.Errorf("line %q has trailing spaces", l)
		}
	}
}

// selectEntry moves the cursor to name and renders.
func selectEntry(t *testing.T, br *browser, dir, name string) {
	t.Helper()
	if err := br.chdir(dir); err != nil {
		t.Fatal(err)
	}
	for i, e := range br.entries {
		if e.Name() == name {
			br.cursor = i
		}
	}
	if err := br.render(); err != nil {
		t.Fatalf("render() error: %v", err)
	}
}

func findRune(screen tcell.Screen, r rune, x0, x1, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if mainc, _, _, _ := screen.GetContent(x, y); mainc == r {
				return true
			}
		}
	}
	return false
}

func TestBrowser_MarkdownPreview(t *testing.T) {
	br, screen, dir := newTestBrowser(t, nil)
	if err := os.WriteFile(filepath.Join(dir, "doc.md"), []byte("# Heading\n\nbody words\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	selectEntry(t, br, dir, "doc.md")

	var preview strings.Builder
	for y := 1; y < 23; y++ {
		preview.WriteString(screenText(screen, y, 28, 50))
	}
	if !strings.Contains(preview.String(), "body words") {
		t.Errorf("markdown body not shown:\n%s", preview.String())
	}
}

func TestBrowser_ImagePreview(t *testing.T) {
	br, screen, dir := newTestBrowser(t, nil)

	img := goimage.NewRGBA(goimage.Rect(0, 0, 8, 8))
	for y := range 8 {
		for x := range 4 {
			img.Set(x, y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pic.png"), buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	selectEntry(t, br, dir, "pic.png")

	// Preview interior spans x 28..77, y 2..21.
	if !findRune(screen, rune(imageGlyph), 28, 78, 2, 22) {
		t.Error("image raster not painted in preview pane")
	}
	if findRune(screen, rune(imageGlyph), 0, 27, 0, 24) {
		t.Error("image raster leaked outside preview pane")
	}
}

func TestHTMLToMarkdown(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{"heading", "<h2>Title</h2>", "## Title"},
		{"paragraphs", "<p>one   two</p><p>three</p>", "one two\n\nthree"},
		{"list", "<ul><li>a</li><li>b</li></ul>", "- a\n- b"},
		{"script dropped", "<p>keep</p><script>var x = 1;</script>", "keep"},
		{"pre kept", "<pre>a  b\nc</pre>", "```\na  b\nc\n```"},
		{"head dropped", "<html><head><title>t</title></head><body>x</body></html>", "x"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := htmlToMarkdown(tt.src); got != tt.want {
				t.Errorf("htmlToMarkdown(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestIsHTML(t *testing.T) {
	t.Parallel()

	if !isHTML("index.HTML") || !isHTML("a.htm") || isHTML("a.md") {
		t.Error("isHTML misclassifies extensions")
	}
}
