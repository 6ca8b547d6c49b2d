// ABOUTME: Human-readable rendering of effective configuration
// ABOUTME: Used by the -explain flag to show merged settings and key bindings

package config

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Explain renders a human-readable summary of the effective settings.
func Explain(s *Settings) string {
	if s == nil {
		s = &Settings{}
	}

	var b strings.Builder

	b.WriteString("=== Display ===\n")
	if s.Border != "" {
		fmt.Fprintf(&b, "  Border:       %s\n", s.Border)
	}
	if s.Theme != "" {
		fmt.Fprintf(&b, "  Theme:        %s\n", s.Theme)
	}
	for _, role := range slices.Sorted(maps.Keys(s.Colors)) {
		fmt.Fprintf(&b, "  Color:        %s = %s\n", role, s.Colors[role])
	}
	fmt.Fprintf(&b, "  Deferred:     %v\n", s.IsDeferred())
	if s.Marker != "" {
		fmt.Fprintf(&b, "  Marker:       %s\n", s.Marker)
	}
	if s.SurfaceLimit != 0 {
		fmt.Fprintf(&b, "  SurfaceLimit: %d\n", s.SurfaceLimit)
	}
	b.WriteString("\n")

	b.WriteString("=== Logging ===\n")
	if s.LogLevel != "" {
		fmt.Fprintf(&b, "  Level: %s\n", s.LogLevel)
	}
	if s.LogFile != "" {
		fmt.Fprintf(&b, "  File:  %s\n", s.LogFile)
	}
	b.WriteString("\n")

	b.WriteString("=== Keys ===\n")
	km := s.Keymap()
	for _, a := range []Action{
		ActionQuit, ActionUp, ActionDown, ActionOpen, ActionBack,
		ActionPreview, ActionPlot, ActionRedraw, ActionReload,
	} {
		fmt.Fprintf(&b, "  %-8s %s\n", a, strings.Join(km.Keys(a), ", "))
	}

	return b.String()
}
