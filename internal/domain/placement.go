package domain

import "fmt"

// Orientation is the direction a word runs on the grid
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns the crossword name of the orientation
func (o Orientation) String() string {
	if o == Vertical {
		return "down"
	}
	return "across"
}

// Placement records where a word sits on the grid
type Placement struct {
	Word        string
	Row         int
	Col         int
	Orientation Orientation
}

// Horizontal reports whether the placement runs across
func (p Placement) Horizontal() bool {
	return p.Orientation == Horizontal
}

// Cell returns the grid coordinates of the i-th letter
func (p Placement) Cell(i int) (row, col int) {
	if p.Horizontal() {
		return p.Row, p.Col + i
	}
	return p.Row + i, p.Col
}

// String returns e.g. "CAT at (0,0) across"
func (p Placement) String() string {
	return fmt.Sprintf("%s at (%d,%d) %s", p.Word, p.Row, p.Col, p.Orientation)
}
