// Package selection picks the candidate words for one generation pass.
package selection

import (
	"math/rand/v2"

	"github.com/samber/lo"
)

type Params struct {
	// MaxWords caps the number of candidates returned. Zero or less means no cap.
	MaxWords      int
	MinWordLength *int
	MaxWordLength *int
	ExcludedWords []string
}

type params struct {
	maxWords      int
	minWordLength int
	maxWordLength int
	excludedWords map[string]bool
}

func asParams(p Params) params {
	pp := params{
		maxWords:      p.MaxWords,
		excludedWords: make(map[string]bool, len(p.ExcludedWords)),
	}

	if p.MinWordLength == nil {
		pp.minWordLength = 1
	} else {
		pp.minWordLength = *p.MinWordLength
	}

	// No upper bound by default: words too long for the grid are still
	// candidates and simply fail to place.
	if p.MaxWordLength == nil {
		pp.maxWordLength = -1
	} else {
		pp.maxWordLength = *p.MaxWordLength
	}

	for _, w := range p.ExcludedWords {
		pp.excludedWords[w] = true
	}
	return pp
}

func (p params) eligible(word string) bool {
	if len(word) < p.minWordLength {
		return false
	}
	if p.maxWordLength >= 0 && len(word) > p.maxWordLength {
		return false
	}
	return !p.excludedWords[word]
}

// Select returns up to MaxWords items drawn at random from items, after
// dropping those whose word is excluded or outside the length bounds. The
// input slice is not modified. The same rng state always yields the same
// selection.
func Select[T any](items []T, word func(T) string, p Params, rng *rand.Rand) []T {
	pp := asParams(p)

	pool := lo.Filter(items, func(item T, _ int) bool {
		return pp.eligible(word(item))
	})

	rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	if pp.maxWords > 0 && len(pool) > pp.maxWords {
		pool = pool[:pp.maxWords]
	}
	return pool
}
