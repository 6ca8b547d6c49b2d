// ABOUTME: Preview renderers for the right pane: markdown and HTML through glamour, images as rasters
// ABOUTME: Both produce plain cells; styling escapes are stripped before painting

package main

import (
	goimage "image"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/glamour"
	"golang.org/x/net/html"

	"github.com/mauromedda/winframe/pkg/tui/image"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
	"github.com/mauromedda/winframe/pkg/tui/width"
	"github.com/mauromedda/winframe/pkg/tui/window"
)

const (
	imageLimit = 8 << 20
	imageGlyph = terminal.Glyph('█')
)

func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

func isHTML(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}

// htmlToMarkdown reduces an HTML document to markdown that renderMarkdown
// can lay out. Unparseable input is returned as is.
func htmlToMarkdown(src string) string {
	doc, err := html.Parse(strings.NewReader(src))
	if err != nil {
		return src
	}
	var b strings.Builder
	writeMarkdown(&b, doc, false)
	return strings.TrimSpace(b.String())
}

func writeMarkdown(b *strings.Builder, n *html.Node, pre bool) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "script", "style", "head", "noscript", "iframe":
			return
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n" + strings.Repeat("#", int(n.Data[1]-'0')) + " ")
		case "p", "div", "section", "article", "table", "tr":
			b.WriteString("\n\n")
		case "br":
			b.WriteString("\n")
		case "li":
			b.WriteString("\n- ")
		case "pre":
			b.WriteString("\n```\n")
			pre = true
		}
	}
	if n.Type == html.TextNode {
		text := n.Data
		if !pre {
			text = strings.Join(strings.Fields(text), " ")
		}
		b.WriteString(text)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeMarkdown(b, c, pre)
	}
	if n.Type == html.ElementNode {
		switch n.Data {
		case "pre":
			b.WriteString("\n```\n")
		case "h1", "h2", "h3", "h4", "h5", "h6":
			b.WriteString("\n")
		case "td", "th":
			b.WriteString(" ")
		}
	}
}

// renderMarkdown lays out markdown source wrapped to cols.
func renderMarkdown(src string, cols int) ([]string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("notty"),
		glamour.WithWordWrap(max(cols, 1)),
	)
	if err != nil {
		return nil, err
	}
	out, err := r.Render(src)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(strings.Trim(width.StripANSI(out), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines, nil
}

// selectedImage decodes the selection when it is an image file.
func (br *browser) selectedImage() (goimage.Image, bool) {
	e, ok := br.selected()
	if !ok || e.IsDir() {
		return nil, false
	}
	data, err := readHead(filepath.Join(br.dir, e.Name()), imageLimit)
	if err != nil {
		return nil, false
	}
	if _, ok := image.Sniff(data); !ok {
		return nil, false
	}
	img, err := image.Decode(data)
	if err != nil {
		return nil, false
	}
	return img, true
}

// drawImage paints img into the preview pane interior.
func (br *browser) drawImage(img goimage.Image) error {
	w, ok := br.root.Child(panePreview)
	if !ok {
		return nil
	}
	grid := image.Raster(img, w.Shape().Inner().Size)
	return withAttr(w, terminal.ColorPair(pairPlot), func() error {
		return window.Wrap(w).PaintRaster(grid, imageGlyph)
	})
}
