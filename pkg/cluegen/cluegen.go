// Package cluegen fills in clues for database entries that have none.
package cluegen

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog/log"

	"crosswarped.com/xwlayout"
)

// Writer produces a crossword clue for a single answer.
type Writer interface {
	Clue(ctx context.Context, word string) (string, error)
}

// FillMissing returns a copy of entries where every empty clue has been
// replaced by one from w. Entries that already have a clue are untouched.
func FillMissing(ctx context.Context, w Writer, entries []xwlayout.WordEntry) ([]xwlayout.WordEntry, error) {
	out := slices.Clone(entries)
	filled := 0
	for i, e := range out {
		if e.Clue != "" {
			continue
		}
		clue, err := w.Clue(ctx, e.Word)
		if err != nil {
			return nil, fmt.Errorf("clue for %s: %w", e.Word, err)
		}
		out[i].Clue = clue
		filled++
	}
	if filled > 0 {
		log.Debug().Int("filled", filled).Msg("generated-missing-clues")
	}
	return out, nil
}

// FillPlaced is FillMissing for words already on a grid. Only placed words
// are sent to w, so dropped candidates never cost a request.
func FillPlaced(ctx context.Context, w Writer, placed []xwlayout.PlacedWord) ([]xwlayout.PlacedWord, error) {
	entries := make([]xwlayout.WordEntry, len(placed))
	for i, p := range placed {
		entries[i] = p.Entry
	}
	filled, err := FillMissing(ctx, w, entries)
	if err != nil {
		return nil, err
	}
	out := slices.Clone(placed)
	for i := range out {
		out[i].Entry = filled[i]
	}
	return out, nil
}
