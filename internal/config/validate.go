// ABOUTME: Validation of merged settings before they reach the terminal layer
// ABOUTME: Checks border and theme names, marker width, log level, and limits

package config

import (
	"fmt"

	"github.com/mauromedda/winframe/internal/log"
	"github.com/mauromedda/winframe/pkg/tui/terminal"
	"github.com/mauromedda/winframe/pkg/tui/theme"
	"github.com/mauromedda/winframe/pkg/tui/width"
)

// Validate reports the first invalid field.
func (s *Settings) Validate() error {
	if _, err := terminal.BorderPreset(s.Border); err != nil {
		return fmt.Errorf("config border: %w", err)
	}
	if _, err := theme.Resolve(s.Theme, s.Colors); err != nil {
		return fmt.Errorf("config theme: %w", err)
	}
	if n := width.GraphemeCount(s.Marker); n != 1 || len([]rune(s.Marker)) != 1 || width.Width(s.Marker) != 1 {
		return fmt.Errorf("config marker %q: must be a single one-cell character", s.Marker)
	}
	if _, err := log.ParseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("config log_level: %w", err)
	}
	if s.SurfaceLimit < 0 {
		return fmt.Errorf("config surface_limit %d: must not be negative", s.SurfaceLimit)
	}
	for action := range s.Keys {
		if !knownAction(Action(action)) {
			return fmt.Errorf("config keys: unknown action %q", action)
		}
	}
	return nil
}

// MarkerRune returns the truncation marker as a rune.
func (s *Settings) MarkerRune() rune {
	r := []rune(s.Marker)
	if len(r) == 0 {
		return '~'
	}
	return r[0]
}
