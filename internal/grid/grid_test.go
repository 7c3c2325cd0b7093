package grid

import (
	"strings"
	"testing"

	"crossword/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Empty(t *testing.T) {
	g := New()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			require.Equal(t, Empty, g.Cell(r, c))
		}
	}
	assert.Empty(t, g.Placements())
}

func TestGrid_IsValidPlacement(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "CAT", domain.Horizontal)

	tests := []struct {
		name     string
		row, col int
		word     string
		o        domain.Orientation
		expected bool
	}{
		{name: "fits on empty cells", row: 5, col: 0, word: "DOG", o: domain.Horizontal, expected: true},
		{name: "touches right edge", row: 5, col: 7, word: "DOG", o: domain.Horizontal, expected: true},
		{name: "past right edge", row: 5, col: 8, word: "DOG", o: domain.Horizontal, expected: false},
		{name: "touches bottom edge", row: 7, col: 5, word: "DOG", o: domain.Vertical, expected: true},
		{name: "past bottom edge", row: 8, col: 5, word: "DOG", o: domain.Vertical, expected: false},
		{name: "longer than grid", row: 0, col: 0, word: "ABCDEFGHIJK", o: domain.Vertical, expected: false},
		{name: "exactly grid length", row: 9, col: 0, word: "ABCDEFGHIJ", o: domain.Horizontal, expected: true},
		{name: "matching overlap", row: 0, col: 0, word: "CAT", o: domain.Horizontal, expected: true},
		{name: "shared first letter down", row: 0, col: 0, word: "COW", o: domain.Vertical, expected: true},
		{name: "conflicting letter", row: 0, col: 0, word: "CAR", o: domain.Horizontal, expected: false},
		{name: "conflict down", row: 0, col: 1, word: "OX", o: domain.Vertical, expected: false},
		{name: "negative row", row: -1, col: 0, word: "DOG", o: domain.Horizontal, expected: false},
		{name: "origin outside grid", row: 0, col: Size, word: "A", o: domain.Vertical, expected: false},
		{name: "empty word", row: 3, col: 3, word: "", o: domain.Horizontal, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, g.IsValidPlacement(tt.row, tt.col, tt.word, tt.o))
		})
	}
}

func TestGrid_PlaceWord(t *testing.T) {
	g := New()
	g.PlaceWord(2, 3, "CAT", domain.Horizontal)

	assert.Equal(t, byte('C'), g.Cell(2, 3))
	assert.Equal(t, byte('A'), g.Cell(2, 4))
	assert.Equal(t, byte('T'), g.Cell(2, 5))

	p, ok := g.Placement("CAT")
	require.True(t, ok)
	assert.Equal(t, domain.Placement{Word: "CAT", Row: 2, Col: 3, Orientation: domain.Horizontal}, p)
}

func TestGrid_PlaceWord_MovesExisting(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "CAT", domain.Horizontal)
	g.PlaceWord(5, 5, "CAT", domain.Vertical)

	assert.Equal(t, Empty, g.Cell(0, 0))
	assert.Equal(t, byte('C'), g.Cell(5, 5))
	assert.Equal(t, byte('T'), g.Cell(7, 5))
	assert.Len(t, g.Placements(), 1)
}

func TestGrid_RemoveWord(t *testing.T) {
	g := New()
	g.PlaceWord(4, 1, "CAT", domain.Horizontal)

	assert.True(t, g.RemoveWord("CAT"))

	for c := 1; c <= 3; c++ {
		assert.Equal(t, Empty, g.Cell(4, c))
	}
	_, ok := g.Placement("CAT")
	assert.False(t, ok)
}

func TestGrid_RemoveWord_NotPlaced(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "CAT", domain.Horizontal)
	before := g.String()

	assert.False(t, g.RemoveWord("DOG"))
	assert.Equal(t, before, g.String())
}

func TestGrid_RemoveWord_KeepsSharedCells(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "CAT", domain.Horizontal)
	g.PlaceWord(0, 0, "COW", domain.Vertical)

	require.True(t, g.RemoveWord("CAT"))

	assert.Equal(t, byte('C'), g.Cell(0, 0), "COW still covers the shared C")
	assert.Equal(t, Empty, g.Cell(0, 1))
	assert.Equal(t, Empty, g.Cell(0, 2))
	assert.Equal(t, byte('O'), g.Cell(1, 0))
	assert.Equal(t, byte('W'), g.Cell(2, 0))
}

func TestGrid_TryPlaceWord_EmptyGrid(t *testing.T) {
	for _, word := range []string{"A", "CAT", "ABCDEFGHIJ"} {
		t.Run(word, func(t *testing.T) {
			g := New()
			p, ok := g.TryPlaceWord(word)
			require.True(t, ok)
			assert.Equal(t, domain.Placement{Word: word, Row: 0, Col: 0, Orientation: domain.Horizontal}, p)
		})
	}
}

func TestGrid_TryPlaceWord_SkipsConflicts(t *testing.T) {
	g := New()
	_, ok := g.TryPlaceWord("CAT")
	require.True(t, ok)

	p, ok := g.TryPlaceWord("DOG")
	require.True(t, ok)
	assert.Equal(t, domain.Placement{Word: "DOG", Row: 0, Col: 3, Orientation: domain.Horizontal}, p)
}

func TestGrid_TryPlaceWord_FallsBackToVertical(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "ABCDEFGHIJ", domain.Horizontal)

	p, ok := g.TryPlaceWord("AXE")
	require.True(t, ok)
	assert.Equal(t, domain.Placement{Word: "AXE", Row: 0, Col: 0, Orientation: domain.Vertical}, p)
	assert.Equal(t, byte('X'), g.Cell(1, 0))
	assert.Equal(t, byte('E'), g.Cell(2, 0))
}

func TestGrid_TryPlaceWord_SunThenSunday(t *testing.T) {
	g := New()

	sun, ok := g.TryPlaceWord("SUN")
	require.True(t, ok)
	assert.Equal(t, domain.Placement{Word: "SUN", Row: 0, Col: 0, Orientation: domain.Horizontal}, sun)

	sunday, ok := g.TryPlaceWord("SUNDAY")
	require.True(t, ok)
	assert.Equal(t, domain.Placement{Word: "SUNDAY", Row: 0, Col: 0, Orientation: domain.Horizontal}, sunday)
	assert.Equal(t, "S U N D A Y - - - -", strings.Split(g.String(), "\n")[0])

	require.True(t, g.RemoveWord("SUN"))
	assert.Equal(t, "S U N D A Y - - - -", strings.Split(g.String(), "\n")[0])

	require.True(t, g.RemoveWord("SUNDAY"))
	assert.Equal(t, "- - - - - - - - - -", strings.Split(g.String(), "\n")[0])
}

func TestGrid_TryPlaceWord_Refused(t *testing.T) {
	tests := []struct {
		name string
		word string
	}{
		{name: "too long", word: "ABCDEFGHIJK"},
		{name: "invalid characters", word: "R2D2"},
		{name: "empty", word: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New()
			_, ok := g.TryPlaceWord(tt.word)
			assert.False(t, ok)
			assert.Empty(t, g.Placements())
		})
	}
}

func TestGrid_TryPlaceWord_AlreadyPlaced(t *testing.T) {
	g := New()
	first, ok := g.TryPlaceWord("SUN")
	require.True(t, ok)

	second, ok := g.TryPlaceWord("sun")
	require.True(t, ok)
	assert.Equal(t, first, second)
	assert.Len(t, g.Placements(), 1)
	assert.Equal(t, "S U N - - - - - - -", strings.Split(g.String(), "\n")[0])

	// Shared cells keep a single coverage, so one removal clears the word
	require.True(t, g.RemoveWord("SUN"))
	assert.Equal(t, Empty, g.Cell(0, 0))
}

func TestGrid_TryPlaceWord_FullGrid(t *testing.T) {
	g := New()
	for r := 0; r < Size; r++ {
		g.PlaceWord(r, 0, strings.Repeat(string(rune('A'+r)), Size), domain.Horizontal)
	}

	_, ok := g.TryPlaceWord("ZZ")
	assert.False(t, ok)
}

func TestGrid_TryPlaceWord_Deterministic(t *testing.T) {
	words := []string{"CAT", "DOG", "COW", "TIGER", "ZEBRA", "OCEAN"}

	first, second := New(), New()
	for _, w := range words {
		p1, ok1 := first.TryPlaceWord(w)
		p2, ok2 := second.TryPlaceWord(w)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, p1, p2)
	}
	assert.Equal(t, first.String(), second.String())
}

func TestGrid_Render(t *testing.T) {
	g := New()
	g.PlaceWord(0, 0, "HI", domain.Horizontal)

	var b strings.Builder
	require.NoError(t, g.Render(&b))

	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	require.Len(t, lines, Size)
	assert.Equal(t, "H I - - - - - - - -", lines[0])
	assert.Equal(t, "- - - - - - - - - -", lines[Size-1])
}

func TestGrid_Placements_Sorted(t *testing.T) {
	g := New()
	g.TryPlaceWord("ZEBRA")
	g.TryPlaceWord("APPLE")

	list := g.Placements()
	require.Len(t, list, 2)
	assert.Equal(t, "APPLE", list[0].Word)
	assert.Equal(t, "ZEBRA", list[1].Word)
}
