// ABOUTME: Built-in themes: default, dark, light, monochrome
// ABOUTME: Provides Builtin(name) lookup and BuiltinNames() enumeration

package theme

import (
	"sort"

	"github.com/gdamore/tcell/v2"
)

var builtins = map[string]Palette{
	"default": DefaultPalette(),
	"dark": {
		Title:     tcell.Color214,
		Directory: tcell.Color117,
		Plot:      tcell.Color114,
	},
	"light": {
		Title:     tcell.Color94,
		Directory: tcell.Color25,
		Plot:      tcell.Color28,
	},
	"monochrome": {
		Title:     tcell.ColorReset,
		Directory: tcell.ColorReset,
		Plot:      tcell.ColorReset,
	},
}

// Builtin returns the named built-in theme, or nil if none matches.
func Builtin(name string) *Theme {
	p, ok := builtins[name]
	if !ok {
		return nil
	}
	return &Theme{Name: name, Palette: p}
}

// BuiltinNames lists the built-in theme names, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for n := range builtins {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
