// Package grid holds the fixed-size crossword matrix and the first-fit
// word placement search.
package grid

import (
	"io"
	"sort"
	"strings"

	"crossword/internal/domain"
)

const (
	// Size is the number of rows and columns
	Size = 10
	// Empty marks a cell with no letter
	Empty byte = '-'
)

// Grid is a Size x Size letter matrix with an index of placed words.
// Each cell counts the placed words covering it, so removing one of two
// overlapping words keeps the shared letters.
// It is not safe for concurrent use.
type Grid struct {
	cells      [Size][Size]byte
	coverage   [Size][Size]int
	placements map[string]domain.Placement
}

// New creates an empty grid
func New() *Grid {
	g := &Grid{placements: make(map[string]domain.Placement)}
	for r := range g.cells {
		for c := range g.cells[r] {
			g.cells[r][c] = Empty
		}
	}
	return g
}

// IsValidPlacement reports whether word fits at (row, col) in the given
// orientation: it stays inside the grid and every covered cell is empty or
// already holds the same letter.
func (g *Grid) IsValidPlacement(row, col int, word string, o domain.Orientation) bool {
	if word == "" || row < 0 || col < 0 || row >= Size || col >= Size {
		return false
	}
	p := domain.Placement{Word: word, Row: row, Col: col, Orientation: o}
	if o == domain.Horizontal {
		if col+len(word) > Size {
			return false
		}
	} else if row+len(word) > Size {
		return false
	}

	for i := 0; i < len(word); i++ {
		r, c := p.Cell(i)
		if cell := g.cells[r][c]; cell != Empty && cell != word[i] {
			return false
		}
	}
	return true
}

// PlaceWord writes word at (row, col) and indexes it. The caller must have
// checked IsValidPlacement. Placing an already indexed word moves it.
func (g *Grid) PlaceWord(row, col int, word string, o domain.Orientation) {
	if _, ok := g.placements[word]; ok {
		g.RemoveWord(word)
	}

	p := domain.Placement{Word: word, Row: row, Col: col, Orientation: o}
	for i := 0; i < len(word); i++ {
		r, c := p.Cell(i)
		g.cells[r][c] = word[i]
		g.coverage[r][c]++
	}
	g.placements[word] = p
}

// TryPlaceWord scans cells in row-major order, trying across before down at
// each cell, and commits the first placement that fits. A word already on
// the grid may land on its own cells again. It returns false when nothing
// fits or when the word is not spelled with A-Z.
func (g *Grid) TryPlaceWord(word string) (domain.Placement, bool) {
	word = domain.NormalizeWord(word)
	if domain.ValidateWord(word) != nil {
		return domain.Placement{}, false
	}
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			for _, o := range [...]domain.Orientation{domain.Horizontal, domain.Vertical} {
				if g.IsValidPlacement(row, col, word, o) {
					g.PlaceWord(row, col, word, o)
					return g.placements[word], true
				}
			}
		}
	}
	return domain.Placement{}, false
}

// RemoveWord takes word off the grid. Cells still covered by another word
// keep their letter. Returns false if the word was not placed.
func (g *Grid) RemoveWord(word string) bool {
	p, ok := g.placements[word]
	if !ok {
		return false
	}

	for i := 0; i < len(p.Word); i++ {
		r, c := p.Cell(i)
		g.coverage[r][c]--
		if g.coverage[r][c] <= 0 {
			g.coverage[r][c] = 0
			g.cells[r][c] = Empty
		}
	}
	delete(g.placements, word)
	return true
}

// Placement returns where word was placed
func (g *Grid) Placement(word string) (domain.Placement, bool) {
	p, ok := g.placements[word]
	return p, ok
}

// Placements returns all placed words sorted by word
func (g *Grid) Placements() []domain.Placement {
	list := make([]domain.Placement, 0, len(g.placements))
	for _, p := range g.placements {
		list = append(list, p)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].Word < list[j].Word })
	return list
}

// Cell returns the letter at (row, col), or Empty outside the grid
func (g *Grid) Cell(row, col int) byte {
	if row < 0 || col < 0 || row >= Size || col >= Size {
		return Empty
	}
	return g.cells[row][col]
}

// Render writes the grid one row per line, cells separated by spaces
func (g *Grid) Render(w io.Writer) error {
	_, err := io.WriteString(w, g.String())
	return err
}

func (g *Grid) String() string {
	var b strings.Builder
	for r := range g.cells {
		for c, cell := range g.cells[r] {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
