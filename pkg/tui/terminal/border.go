// ABOUTME: BorderStyle holds the eight glyphs of a rectangle border
// ABOUTME: Built from runes, raw glyph codes, lipgloss presets, or preset names

package terminal

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// BorderStyle is an immutable set of border glyphs: four edges and four
// corners. The zero value draws the device default glyphs.
type BorderStyle struct {
	Left, Right, Top, Bottom                   Glyph
	TopLeft, TopRight, BottomLeft, BottomRight Glyph
}

// DefaultBorder returns the all-zero style.
func DefaultBorder() BorderStyle {
	return BorderStyle{}
}

// NewBorderStyle builds a style from individual characters, in the order
// left, right, top, bottom, top-left, top-right, bottom-left, bottom-right.
func NewBorderStyle(ls, rs, ts, bs, tl, tr, bl, br rune) BorderStyle {
	return BorderStyle{
		Left: Glyph(ls), Right: Glyph(rs), Top: Glyph(ts), Bottom: Glyph(bs),
		TopLeft: Glyph(tl), TopRight: Glyph(tr), BottomLeft: Glyph(bl), BottomRight: Glyph(br),
	}
}

// BorderFromGlyphs builds a style from raw backend glyph codes, for
// device-specific box-drawing characters. Same order as NewBorderStyle.
func BorderFromGlyphs(ls, rs, ts, bs, tl, tr, bl, br Glyph) BorderStyle {
	return BorderStyle{
		Left: ls, Right: rs, Top: ts, Bottom: bs,
		TopLeft: tl, TopRight: tr, BottomLeft: bl, BottomRight: br,
	}
}

// BorderFromLipgloss converts a lipgloss border into a BorderStyle. Only
// the first rune of each lipgloss part is used; empty parts stay default.
func BorderFromLipgloss(b lipgloss.Border) BorderStyle {
	return BorderStyle{
		Left:        firstGlyph(b.Left),
		Right:       firstGlyph(b.Right),
		Top:         firstGlyph(b.Top),
		Bottom:      firstGlyph(b.Bottom),
		TopLeft:     firstGlyph(b.TopLeft),
		TopRight:    firstGlyph(b.TopRight),
		BottomLeft:  firstGlyph(b.BottomLeft),
		BottomRight: firstGlyph(b.BottomRight),
	}
}

func firstGlyph(s string) Glyph {
	if s == "" {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(s)
	return Glyph(r)
}

var borderPresets = map[string]func() BorderStyle{
	"default": DefaultBorder,
	"normal":  func() BorderStyle { return BorderFromLipgloss(lipgloss.NormalBorder()) },
	"rounded": func() BorderStyle { return BorderFromLipgloss(lipgloss.RoundedBorder()) },
	"thick":   func() BorderStyle { return BorderFromLipgloss(lipgloss.ThickBorder()) },
	"double":  func() BorderStyle { return BorderFromLipgloss(lipgloss.DoubleBorder()) },
	"block":   func() BorderStyle { return BorderFromLipgloss(lipgloss.BlockBorder()) },
	"hidden":  func() BorderStyle { return BorderFromLipgloss(lipgloss.HiddenBorder()) },
}

// BorderPreset resolves a preset name (case-insensitive) to a style.
func BorderPreset(name string) (BorderStyle, error) {
	fn, ok := borderPresets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return BorderStyle{}, fmt.Errorf("unknown border preset %q (known: %s)", name, strings.Join(BorderPresetNames(), ", "))
	}
	return fn(), nil
}

// BorderPresetNames lists the known preset names, sorted.
func BorderPresetNames() []string {
	names := make([]string, 0, len(borderPresets))
	for n := range borderPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Box-drawing glyphs for dividers inside a bordered surface.
const (
	GlyphHLine Glyph = '─'
	GlyphVLine Glyph = '│'
	GlyphTTee  Glyph = '┬'
	GlyphBTee  Glyph = '┴'
	GlyphLTee  Glyph = '├'
	GlyphRTee  Glyph = '┤'
)
