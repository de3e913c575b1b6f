package xwlayout

import (
	"strings"

	"crosswarped.com/xwlayout/pkg/primitives"
)

// WordEntry is a single answer and its clue.
//
// Word is always upper-case and made only of the letters A to Z.
type WordEntry struct {
	Word string `json:"word" yaml:"word"`
	Clue string `json:"clue" yaml:"clue"`
}

// NewWordEntry normalises word and reports whether it is usable. Empty words
// and words containing anything other than letters are rejected.
func NewWordEntry(word, clue string) (WordEntry, bool) {
	word = strings.ToUpper(strings.TrimSpace(word))
	if word == "" {
		return WordEntry{}, false
	}
	letters := primitives.Letters()
	for _, r := range word {
		if err := letters.Add(r); err != nil {
			return WordEntry{}, false
		}
	}
	return WordEntry{Word: word, Clue: strings.TrimSpace(clue)}, true
}
