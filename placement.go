package xwlayout

import (
	"fmt"
	"iter"
)

// Direction is an enum representing the direction of a word in a grid, either 'Horizontal' or 'Vertical'.
type Direction int

const (
	DirectionHorizontal Direction = iota
	DirectionVertical
)

func (d Direction) String() string {
	if d == DirectionVertical {
		return "down"
	}
	return "across"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	switch string(text) {
	case "across":
		*d = DirectionHorizontal
	case "down":
		*d = DirectionVertical
	default:
		return fmt.Errorf("unknown direction %q", text)
	}
	return nil
}

// Opposite returns the perpendicular direction.
func (d Direction) Opposite() Direction {
	if d == DirectionHorizontal {
		return DirectionVertical
	}
	return DirectionHorizontal
}

// step returns the row and column increments for moving one letter along d.
func (d Direction) step() (int, int) {
	if d == DirectionVertical {
		return 1, 0
	}
	return 0, 1
}

// Coord is a (row, column) position in a grid.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PlacedWord is an entry committed to the grid, anchored at the cell of its
// first letter.
type PlacedWord struct {
	Entry     WordEntry
	Row       int
	Col       int
	Direction Direction
}

func (p PlacedWord) Anchor() Coord {
	return Coord{Row: p.Row, Col: p.Col}
}

// Cells yields the index and grid position of every letter of the word.
func (p PlacedWord) Cells() iter.Seq2[int, Coord] {
	return cells(p.Row, p.Col, len(p.Entry.Word), p.Direction)
}

func cells(row, col, length int, dir Direction) iter.Seq2[int, Coord] {
	dr, dc := dir.step()
	return func(yield func(int, Coord) bool) {
		for i := range length {
			if !yield(i, Coord{Row: row + dr*i, Col: col + dc*i}) {
				return
			}
		}
	}
}

// CanPlace reports whether word can be written starting at (row, col) in dir
// without conflicting with the letters already on g. It never mutates g.
//
// A placement is rejected when any letter falls off the grid, when a filled
// cell holds a different letter, when a cell the word would newly fill has a
// letter on either perpendicular side, or when the cells just before the
// start or just after the end are filled. Diagonal contact is not checked.
func CanPlace(g *Grid, word string, row, col int, dir Direction) bool {
	if word == "" {
		return false
	}
	size := g.Size()
	dr, dc := dir.step()
	for i, ch := range []rune(word) {
		r, c := row+dr*i, col+dc*i
		if r < 0 || r >= size || c < 0 || c >= size {
			return false
		}
		existing := g.Get(r, c)
		if existing != 0 {
			if existing != ch {
				return false
			}
			continue
		}
		// Newly filled cells must not touch a parallel neighbour.
		if g.Filled(r+dc, c+dr) || g.Filled(r-dc, c-dr) {
			return false
		}
	}
	n := len([]rune(word))
	if g.Filled(row-dr, col-dc) || g.Filled(row+dr*n, col+dc*n) {
		return false
	}
	return true
}

// Place writes word onto g. Callers must have checked CanPlace with the same
// arguments first.
func Place(g *Grid, word string, row, col int, dir Direction) {
	dr, dc := dir.step()
	for i, ch := range []rune(word) {
		g.Set(row+dr*i, col+dc*i, ch)
	}
}
