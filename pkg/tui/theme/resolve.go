// ABOUTME: Resolves a theme name plus per-role color overrides into a Theme
// ABOUTME: Colors accept tcell names ("navy") or hex ("#ff8800")

package theme

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Resolve starts from the named built-in ("" means default) and applies
// overrides keyed by role.
func Resolve(name string, overrides map[string]string) (*Theme, error) {
	if name == "" {
		name = "default"
	}
	th := Builtin(name)
	if th == nil {
		return nil, fmt.Errorf("unknown theme %q (known: %s)", name, strings.Join(BuiltinNames(), ", "))
	}
	for role, value := range overrides {
		f := th.Palette.field(role)
		if f == nil {
			return nil, fmt.Errorf("unknown color role %q (known: %s)", role, strings.Join(Roles(), ", "))
		}
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("color for %s: %w", role, err)
		}
		*f = c
	}
	return th, nil
}

// ParseColor parses a color name or #rrggbb value. "default" and
// "reset" select the terminal's own color.
func ParseColor(s string) (tcell.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "default", "reset":
		return tcell.ColorReset, nil
	}
	c := tcell.GetColor(s)
	if c == tcell.ColorDefault {
		return tcell.ColorDefault, fmt.Errorf("unknown color %q", s)
	}
	return c, nil
}
