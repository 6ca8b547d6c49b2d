// ABOUTME: Key bindings for the demo browser: named actions mapped to key names
// ABOUTME: Defaults are overridden per action by the keys section of the config

package config

import "slices"

// Action is something a key can trigger.
type Action string

const (
	ActionQuit    Action = "quit"
	ActionUp      Action = "up"
	ActionDown    Action = "down"
	ActionOpen    Action = "open"
	ActionBack    Action = "back"
	ActionPreview Action = "preview"
	ActionPlot    Action = "plot"
	ActionRedraw  Action = "redraw"
	ActionReload  Action = "reload"
)

var defaultKeys = map[Action][]string{
	ActionQuit:    {"q", "ctrl+c"},
	ActionUp:      {"up", "k"},
	ActionDown:    {"down", "j"},
	ActionOpen:    {"enter", "l", "right"},
	ActionBack:    {"backspace", "h", "left"},
	ActionPreview: {"p"},
	ActionPlot:    {"g"},
	ActionRedraw:  {"ctrl+l"},
	ActionReload:  {"ctrl+r"},
}

func knownAction(a Action) bool {
	_, ok := defaultKeys[a]
	return ok
}

// Keymap resolves key names to actions.
type Keymap struct {
	byKey map[string]Action
}

// Keymap builds the key lookup from the defaults and s.Keys. An action
// listed in s.Keys loses its default keys.
func (s *Settings) Keymap() *Keymap {
	km := &Keymap{byKey: make(map[string]Action)}
	actions := make([]Action, 0, len(defaultKeys))
	for a := range defaultKeys {
		actions = append(actions, a)
	}
	slices.Sort(actions)
	for _, a := range actions {
		keys := defaultKeys[a]
		if s != nil {
			if custom, ok := s.Keys[string(a)]; ok {
				keys = custom
			}
		}
		for _, k := range keys {
			km.byKey[k] = a
		}
	}
	return km
}

// Lookup returns the action bound to key.
func (km *Keymap) Lookup(key string) (Action, bool) {
	a, ok := km.byKey[key]
	return a, ok
}

// Keys returns the keys bound to a, sorted.
func (km *Keymap) Keys(a Action) []string {
	var out []string
	for k, ba := range km.byKey {
		if ba == a {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}
