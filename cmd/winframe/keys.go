// ABOUTME: Maps tcell key events to the key names used in config key bindings
// ABOUTME: Runes map to themselves; special keys to lower-case names like "enter"

package main

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var specialKeys = map[tcell.Key]string{
	tcell.KeyEnter:      "enter",
	tcell.KeyBackspace:  "backspace",
	tcell.KeyBackspace2: "backspace",
	tcell.KeyEscape:     "esc",
	tcell.KeyUp:         "up",
	tcell.KeyDown:       "down",
	tcell.KeyLeft:       "left",
	tcell.KeyRight:      "right",
	tcell.KeyTab:        "tab",
	tcell.KeyCtrlC:      "ctrl+c",
	tcell.KeyCtrlL:      "ctrl+l",
	tcell.KeyCtrlR:      "ctrl+r",
}

// keyName returns the binding name of ev.
func keyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		return string(ev.Rune())
	}
	if name, ok := specialKeys[ev.Key()]; ok {
		return name
	}
	return strings.ToLower(ev.Name())
}
