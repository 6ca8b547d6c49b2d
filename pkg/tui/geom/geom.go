// ABOUTME: Position, Size, and Shape value types for character-grid placement
// ABOUTME: Rows grow downward; a Shape is the exclusive placement of one surface

package geom

import "fmt"

// Position is a cell coordinate. Row grows downward.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the component-wise sum of p and o.
func (p Position) Add(o Position) Position {
	return Position{Row: p.Row + o.Row, Col: p.Col + o.Col}
}

// Sub returns the component-wise difference p - o.
func (p Position) Sub(o Position) Position {
	return Position{Row: p.Row - o.Row, Col: p.Col - o.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Size is a rectangle extent in cells.
type Size struct {
	Rows int
	Cols int
}

// Sz is shorthand for Size{Rows: rows, Cols: cols}.
func Sz(rows, cols int) Size {
	return Size{Rows: rows, Cols: cols}
}

// Valid reports whether both dimensions are at least one cell.
func (s Size) Valid() bool {
	return s.Rows >= 1 && s.Cols >= 1
}

// Shrink returns s reduced by rows and cols, clamped at zero.
func (s Size) Shrink(rows, cols int) Size {
	return Size{Rows: max(s.Rows-rows, 0), Cols: max(s.Cols-cols, 0)}
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Rows, s.Cols)
}

// Shape is a Position plus a Size.
type Shape struct {
	Pos  Position
	Size Size
}

// Rect builds a Shape from its four components.
func Rect(row, col, rows, cols int) Shape {
	return Shape{Pos: Pos(row, col), Size: Sz(rows, cols)}
}

// Contains reports whether p lies inside s. p is in the same coordinate
// space as s.Pos.
func (s Shape) Contains(p Position) bool {
	return p.Row >= s.Pos.Row && p.Row < s.Pos.Row+s.Size.Rows &&
		p.Col >= s.Pos.Col && p.Col < s.Pos.Col+s.Size.Cols
}

// Inner returns the local shape of the interior of a one-cell border
// drawn around s: origin (1,1), size reduced by two in each dimension.
func (s Shape) Inner() Shape {
	return Shape{Pos: Pos(1, 1), Size: s.Size.Shrink(2, 2)}
}

// End returns the position one past the bottom-right corner.
func (s Shape) End() Position {
	return s.Pos.Add(Position{Row: s.Size.Rows, Col: s.Size.Cols})
}

func (s Shape) String() string {
	return fmt.Sprintf("{pos:%s size:%s}", s.Pos, s.Size)
}
