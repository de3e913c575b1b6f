// Package render prints a finished crossword for the console.
package render

import (
	"fmt"
	"io"
	"strings"

	"crosswarped.com/xwlayout"
)

type Options struct {
	// Reveal prints the letters of unnumbered cells and the answers in the
	// clue listings.
	Reveal bool
}

// Text writes the grid followed by the across and down clue listings.
//
// Empty cells print as " . ", numbered cells as their number in brackets,
// and other letter cells as either the letter or a blank.
func Text(w io.Writer, g *xwlayout.Grid, n xwlayout.Numbering, opts Options) error {
	numberAt := make(map[xwlayout.Coord]int, len(n.Starts))
	for num, at := range n.Starts {
		numberAt[at] = num
	}

	var sb strings.Builder
	sb.WriteString("\nCrossword Grid:\n\n")
	for r := range g.Size() {
		for c := range g.Size() {
			ch := g.Get(r, c)
			switch num, numbered := numberAt[xwlayout.Coord{Row: r, Col: c}]; {
			case ch == 0:
				sb.WriteString(" . ")
			case numbered:
				fmt.Fprintf(&sb, "[%2d]", num)
			case opts.Reveal:
				fmt.Fprintf(&sb, " %c ", ch)
			default:
				sb.WriteString("   ")
			}
		}
		sb.WriteByte('\n')
	}

	clues := n.Entries()
	for _, dir := range []xwlayout.Direction{xwlayout.DirectionHorizontal, xwlayout.DirectionVertical} {
		if dir == xwlayout.DirectionHorizontal {
			sb.WriteString("\nAcross:\n")
		} else {
			sb.WriteString("\nDown:\n")
		}
		for _, c := range clues {
			if c.Direction != dir {
				continue
			}
			fmt.Fprintf(&sb, "%d. %s", c.Number, c.Clue)
			if opts.Reveal {
				fmt.Fprintf(&sb, " (%s)", c.Answer)
			}
			sb.WriteByte('\n')
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
