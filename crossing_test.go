package xwlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded(t *testing.T, size int, word string, row, col int) (*Grid, []PlacedWord) {
	t.Helper()
	g := NewGrid(size)
	require.True(t, CanPlace(g, word, row, col, DirectionHorizontal))
	Place(g, word, row, col, DirectionHorizontal)
	return g, []PlacedWord{{Entry: WordEntry{Word: word}, Row: row, Col: col, Direction: DirectionHorizontal}}
}

func TestTryPlace_CrossesSharedLetter(t *testing.T) {
	g, placed := seeded(t, 13, "PYTHON", 6, 3)

	pw, ok := TryPlace(g, WordEntry{Word: "RUST", Clue: "Iron oxide"}, placed)

	require.True(t, ok)
	assert.Equal(t, PlacedWord{
		Entry:     WordEntry{Word: "RUST", Clue: "Iron oxide"},
		Row:       3,
		Col:       5,
		Direction: DirectionVertical,
	}, pw)
	assert.Equal(t, 'T', g.Get(6, 5))
	for i, c := range pw.Cells() {
		assert.Equal(t, rune("RUST"[i]), g.Get(c.Row, c.Col))
	}
}

func TestTryPlace_FirstFit(t *testing.T) {
	// OPT can cross PYTHON at P or at T; P comes first in PYTHON.
	g, placed := seeded(t, 13, "PYTHON", 6, 3)

	pw, ok := TryPlace(g, WordEntry{Word: "OPT"}, placed)

	require.True(t, ok)
	assert.Equal(t, Coord{Row: 5, Col: 3}, pw.Anchor())
	assert.Equal(t, DirectionVertical, pw.Direction)
}

func TestTryPlace_OldestPlacedWordFirst(t *testing.T) {
	g, placed := seeded(t, 13, "PYTHON", 6, 3)
	rust, ok := TryPlace(g, WordEntry{Word: "RUST"}, placed)
	require.True(t, ok)
	placed = append(placed, rust)

	// TOP could cross RUST's T or PYTHON's T/O/P; PYTHON was placed first,
	// and its first shared letter is P, matched by TOP's last letter.
	pw, ok := TryPlace(g, WordEntry{Word: "TOP"}, placed)
	require.True(t, ok)
	assert.Equal(t, PlacedWord{Entry: WordEntry{Word: "TOP"}, Row: 4, Col: 3, Direction: DirectionVertical}, pw)
}

func TestTryPlace_CrossesVerticalWord(t *testing.T) {
	g, placed := seeded(t, 13, "PYTHON", 6, 3)
	rust, ok := TryPlace(g, WordEntry{Word: "RUST"}, placed)
	require.True(t, ok)

	// Only RUST offers a U.
	pw, ok := TryPlace(g, WordEntry{Word: "BUG"}, []PlacedWord{rust})
	require.True(t, ok)
	assert.Equal(t, PlacedWord{Entry: WordEntry{Word: "BUG"}, Row: 4, Col: 4, Direction: DirectionHorizontal}, pw)
}

func TestTryPlace_NoSharedLetter(t *testing.T) {
	g, placed := seeded(t, 13, "PYTHON", 6, 3)
	before := g.Repr()

	_, ok := TryPlace(g, WordEntry{Word: "JAVA"}, placed)

	assert.False(t, ok)
	assert.Equal(t, before, g.Repr())
}

func TestTryPlace_TooLongNeverPlaces(t *testing.T) {
	g, placed := seeded(t, 5, "ABC", 2, 1)
	before := g.Repr()

	_, ok := TryPlace(g, WordEntry{Word: "ABCDEFGH"}, placed)

	assert.False(t, ok)
	assert.Equal(t, before, g.Repr())
}

func TestTryPlace_NothingPlaced(t *testing.T) {
	g := NewGrid(5)
	_, ok := TryPlace(g, WordEntry{Word: "ABC"}, nil)
	assert.False(t, ok)
}
