// ABOUTME: Semantic color theme types for the browser panes
// ABOUTME: Palette maps roles (title, directory, plot) to tcell colors

package theme

import "github.com/gdamore/tcell/v2"

// Palette holds the foreground color for each themed role. Backgrounds
// stay at the terminal default.
type Palette struct {
	Title     tcell.Color
	Directory tcell.Color
	Plot      tcell.Color
}

// Theme holds a named palette.
type Theme struct {
	Name    string
	Palette Palette
}

// Role names accepted in color overrides.
const (
	RoleTitle     = "title"
	RoleDirectory = "directory"
	RolePlot      = "plot"
)

// Roles lists every override role, in display order.
func Roles() []string {
	return []string{RoleTitle, RoleDirectory, RolePlot}
}

// field returns the palette slot for role, or nil for an unknown role.
func (p *Palette) field(role string) *tcell.Color {
	switch role {
	case RoleTitle:
		return &p.Title
	case RoleDirectory:
		return &p.Directory
	case RolePlot:
		return &p.Plot
	}
	return nil
}

// Color returns the color assigned to role.
func (p Palette) Color(role string) (tcell.Color, bool) {
	f := p.field(role)
	if f == nil {
		return tcell.ColorDefault, false
	}
	return *f, true
}

// DefaultPalette returns the palette used when no theme is configured.
func DefaultPalette() Palette {
	return Palette{
		Title:     tcell.ColorYellow,
		Directory: tcell.ColorBlue,
		Plot:      tcell.ColorGreen,
	}
}
