package xwlayout

import (
	"fmt"
	"strings"
)

// Grid is a square 2D grid of runes.
//
// A zero rune marks an empty cell; every other cell holds exactly one
// upper-case letter.
type Grid struct {
	grid [][]rune
}

func NewGrid(size int) *Grid {
	g := make([][]rune, size)
	for i := range g {
		g[i] = make([]rune, size)
	}
	return &Grid{grid: g}
}

func (g *Grid) Size() int {
	return len(g.grid)
}

// Get returns the letter at (row, col), or 0 if the cell is empty.
func (g *Grid) Get(row, col int) rune {
	return g.grid[row][col]
}

func (g *Grid) Set(row, col int, r rune) {
	g.grid[row][col] = r
}

func (g *Grid) IsEmpty(row, col int) bool {
	return g.grid[row][col] == 0
}

// Filled reports whether (row, col) is on the grid and holds a letter.
// Off-grid coordinates count as empty.
func (g *Grid) Filled(row, col int) bool {
	if row < 0 || row >= len(g.grid) || col < 0 || col >= len(g.grid) {
		return false
	}
	return g.grid[row][col] != 0
}

func (g *Grid) Clone() *Grid {
	c := make([][]rune, len(g.grid))
	for i, row := range g.grid {
		c[i] = make([]rune, len(row))
		copy(c[i], row)
	}
	return &Grid{grid: c}
}

// Rows returns one string per row, with '.' for empty cells.
func (g *Grid) Rows() []string {
	lines := make([]string, g.Size())
	for r, row := range g.grid {
		var sb strings.Builder
		for _, ch := range row {
			if ch == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteRune(ch)
			}
		}
		lines[r] = sb.String()
	}
	return lines
}

func (g *Grid) Repr() string {
	return strings.Join(g.Rows(), "\n")
}

func (g *Grid) DebugString() string {
	return fmt.Sprintf("Grid{size: %d, grid: %v}", g.Size(), g.Rows())
}
