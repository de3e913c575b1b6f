package xwlayout

import (
	"slices"

	"github.com/samber/lo"
)

// Numbering binds clue numbers to the cells that start answers.
type Numbering struct {
	// Starts maps a clue number to the cell it is printed in.
	Starts map[int]Coord
	Across map[int]string
	Down   map[int]string

	answers map[clueKey]string
}

type clueKey struct {
	number int
	dir    Direction
}

// NumberedClue is one line of a clue listing.
type NumberedClue struct {
	Number    int       `json:"number"`
	Direction Direction `json:"direction"`
	Clue      string    `json:"clue"`
	Answer    string    `json:"answer"`
	Row       int       `json:"row"`
	Col       int       `json:"col"`
}

// Number scans g in row-major order and numbers every cell that starts an
// across or down answer of two or more letters. A cell starting both gets a
// single number. Each number is bound to the clue of the placed word anchored
// at that cell in the matching direction.
func Number(g *Grid, placed []PlacedWord) Numbering {
	n := Numbering{
		Starts:  make(map[int]Coord),
		Across:  make(map[int]string),
		Down:    make(map[int]string),
		answers: make(map[clueKey]string),
	}

	next := 1
	size := g.Size()
	for r := range size {
		for c := range size {
			if !g.Filled(r, c) {
				continue
			}
			startAcross := !g.Filled(r, c-1) && g.Filled(r, c+1)
			startDown := !g.Filled(r-1, c) && g.Filled(r+1, c)
			if !startAcross && !startDown {
				continue
			}

			at := Coord{Row: r, Col: c}
			n.Starts[next] = at
			if startAcross {
				n.bind(next, at, DirectionHorizontal, placed)
			}
			if startDown {
				n.bind(next, at, DirectionVertical, placed)
			}
			next++
		}
	}
	return n
}

func (n *Numbering) bind(number int, at Coord, dir Direction, placed []PlacedWord) {
	pw, ok := lo.Find(placed, func(p PlacedWord) bool {
		return p.Direction == dir && p.Anchor() == at
	})
	if !ok {
		return
	}
	if dir == DirectionHorizontal {
		n.Across[number] = pw.Entry.Clue
	} else {
		n.Down[number] = pw.Entry.Clue
	}
	n.answers[clueKey{number: number, dir: dir}] = pw.Entry.Word
}

// Entries lists the across clues then the down clues, each sorted by number.
func (n Numbering) Entries() []NumberedClue {
	var out []NumberedClue
	for _, dir := range []Direction{DirectionHorizontal, DirectionVertical} {
		clues := n.Across
		if dir == DirectionVertical {
			clues = n.Down
		}
		numbers := lo.Keys(clues)
		slices.Sort(numbers)
		for _, num := range numbers {
			at := n.Starts[num]
			out = append(out, NumberedClue{
				Number:    num,
				Direction: dir,
				Clue:      clues[num],
				Answer:    n.answers[clueKey{number: num, dir: dir}],
				Row:       at.Row,
				Col:       at.Col,
			})
		}
	}
	return out
}
