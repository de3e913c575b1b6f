package xwlayout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid_Empty(t *testing.T) {
	g := NewGrid(4)
	require.Equal(t, 4, g.Size())
	for r := range 4 {
		for c := range 4 {
			assert.True(t, g.IsEmpty(r, c))
			assert.Equal(t, rune(0), g.Get(r, c))
		}
	}
}

func TestGrid_SetGet(t *testing.T) {
	g := NewGrid(3)
	g.Set(1, 2, 'Q')

	assert.Equal(t, 'Q', g.Get(1, 2))
	assert.False(t, g.IsEmpty(1, 2))
	assert.True(t, g.Filled(1, 2))
}

func TestGrid_FilledOffGrid(t *testing.T) {
	g := NewGrid(2)
	g.Set(0, 0, 'A')

	for _, tc := range []struct {
		name     string
		row, col int
	}{
		{"above", -1, 0},
		{"left", 0, -1},
		{"below", 2, 0},
		{"right", 0, 2},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, g.Filled(tc.row, tc.col))
		})
	}
}

func TestGrid_GetOutOfRangePanics(t *testing.T) {
	g := NewGrid(2)
	assert.Panics(t, func() { g.Get(2, 0) })
}

func TestGrid_Repr(t *testing.T) {
	g := NewGrid(3)
	Place(g, "CAT", 1, 0, DirectionHorizontal)

	assert.Equal(t, "...\nCAT\n...", g.Repr())
	assert.Equal(t, []string{"...", "CAT", "..."}, g.Rows())
}

func TestGrid_CloneIsIndependent(t *testing.T) {
	g := NewGrid(3)
	g.Set(0, 0, 'A')

	c := g.Clone()
	c.Set(0, 0, 'B')
	c.Set(2, 2, 'C')

	assert.Equal(t, 'A', g.Get(0, 0))
	assert.True(t, g.IsEmpty(2, 2))
}
