package xwlayout

import "crosswarped.com/xwlayout/pkg/primitives"

// TryPlace looks for the first letter shared between candidate and an
// already-placed word that lets candidate cross it, commits that placement to
// g and returns it.
//
// Placed words are tried oldest first, then by letter index within the placed
// word, then by letter index within the candidate. The first valid crossing
// wins. If none exists g is left untouched and ok is false.
func TryPlace(g *Grid, candidate WordEntry, placed []PlacedWord) (pw PlacedWord, ok bool) {
	word := candidate.Word
	letters := primitives.LettersOf(word)

	for _, existing := range placed {
		ew := existing.Entry.Word
		if !letters.Intersects(primitives.LettersOf(ew)) {
			continue
		}
		for i := range len(ew) {
			if !letters.Contains(rune(ew[i])) {
				continue
			}
			for j := range len(word) {
				if ew[i] != word[j] {
					continue
				}

				var row, col int
				if existing.Direction == DirectionHorizontal {
					row = existing.Row - j
					col = existing.Col + i
				} else {
					row = existing.Row + i
					col = existing.Col - j
				}
				dir := existing.Direction.Opposite()

				if CanPlace(g, word, row, col, dir) {
					Place(g, word, row, col, dir)
					return PlacedWord{Entry: candidate, Row: row, Col: col, Direction: dir}, true
				}
			}
		}
	}
	return PlacedWord{}, false
}
