package xwlayout

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"

	"crosswarped.com/xwlayout/internal/selection"
)

// ErrNoEntries is returned when generation is asked to run without any
// candidate words.
var ErrNoEntries = errors.New("no word entries to place")

const (
	DefaultGridSize = 13
	DefaultMaxWords = 13
)

type Generator struct {
	Size          int
	MaxWords      int
	ExcludedWords []string
	MinWordLength *int
	MaxWordLength *int

	rand *rand.Rand
}

type GeneratorParams struct {
	MaxWords      int
	MinWordLength int
	MaxWordLength int
	ExcludedWords []string
}

func CreateGenerator(size int, rand *rand.Rand, params GeneratorParams) *Generator {
	var minWordLength, maxWordLength *int
	if params.MinWordLength > 0 {
		minWordLength = &params.MinWordLength
	}
	if params.MaxWordLength > 0 {
		maxWordLength = &params.MaxWordLength
	}
	excluded := make([]string, len(params.ExcludedWords))
	for i, w := range params.ExcludedWords {
		excluded[i] = strings.ToUpper(strings.TrimSpace(w))
	}
	return &Generator{
		Size:          size,
		MaxWords:      params.MaxWords,
		ExcludedWords: excluded,
		MinWordLength: minWordLength,
		MaxWordLength: maxWordLength,
		rand:          rand,
	}
}

// Layout is the frozen result of one generation pass.
type Layout struct {
	Grid *Grid
	// Placed is in placement order; the seed word comes first.
	Placed []PlacedWord
	// Dropped holds the candidates that could not be placed, in the order
	// they were tried.
	Dropped []WordEntry
}

// Generate selects candidates from entries and lays them out.
func (g *Generator) Generate(ctx context.Context, entries []WordEntry) (Layout, error) {
	if len(entries) == 0 {
		return Layout{}, ErrNoEntries
	}
	if err := ctx.Err(); err != nil {
		return Layout{}, err
	}

	candidates := selection.Select(entries, func(e WordEntry) string { return e.Word }, selection.Params{
		MaxWords:      g.MaxWords,
		MinWordLength: g.MinWordLength,
		MaxWordLength: g.MaxWordLength,
		ExcludedWords: g.ExcludedWords,
	}, g.rand)

	log.Debug().Int("entries", len(entries)).Int("candidates", len(candidates)).Msg("selected-candidates")
	return g.Layout(candidates), nil
}

// Layout places candidates on a fresh grid, longest word first.
//
// The first candidate is seeded horizontally on the middle row, centred by
// its length. Every other candidate must cross a word already on the grid;
// those that cannot are dropped.
func (g *Generator) Layout(candidates []WordEntry) Layout {
	grid := NewGrid(g.Size)
	layout := Layout{Grid: grid}

	ordered := slices.Clone(candidates)
	slices.SortStableFunc(ordered, func(a, b WordEntry) int {
		return len(b.Word) - len(a.Word)
	})

	if len(ordered) == 0 {
		return layout
	}

	seed := ordered[0]
	row := g.Size / 2
	col := max(0, (g.Size-len(seed.Word))/2)
	if CanPlace(grid, seed.Word, row, col, DirectionHorizontal) {
		Place(grid, seed.Word, row, col, DirectionHorizontal)
		layout.Placed = append(layout.Placed, PlacedWord{Entry: seed, Row: row, Col: col, Direction: DirectionHorizontal})
		log.Debug().Str("word", seed.Word).Int("row", row).Int("col", col).Msg("seeded")
	} else {
		layout.Dropped = append(layout.Dropped, seed)
		log.Debug().Str("word", seed.Word).Int("size", g.Size).Msg("seed-does-not-fit")
	}

	for _, candidate := range ordered[1:] {
		pw, ok := TryPlace(grid, candidate, layout.Placed)
		if !ok {
			layout.Dropped = append(layout.Dropped, candidate)
			log.Debug().Str("word", candidate.Word).Msg("dropped")
			continue
		}
		layout.Placed = append(layout.Placed, pw)
		log.Debug().Str("word", pw.Entry.Word).Int("row", pw.Row).Int("col", pw.Col).
			Stringer("direction", pw.Direction).Msg("crossed")
	}

	return layout
}
