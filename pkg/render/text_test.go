package render

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/xwlayout"
)

func smallPuzzle(t *testing.T) (*xwlayout.Grid, xwlayout.Numbering) {
	t.Helper()
	gen := xwlayout.CreateGenerator(5, rand.New(rand.NewPCG(1, 1)), xwlayout.GeneratorParams{})
	l := gen.Layout([]xwlayout.WordEntry{
		{Word: "CAT", Clue: "Feline"},
		{Word: "COW", Clue: "Dairy animal"},
	})
	require.Len(t, l.Placed, 2)
	return l.Grid, xwlayout.Number(l.Grid, l.Placed)
}

func TestText_Hidden(t *testing.T) {
	g, n := smallPuzzle(t)

	var sb strings.Builder
	require.NoError(t, Text(&sb, g, n, Options{}))

	want := strings.Join([]string{
		"",
		"Crossword Grid:",
		"",
		" .  .  .  .  . ",
		" .  .  .  .  . ",
		" . [ 1]       . ",
		" .     .  .  . ",
		" .     .  .  . ",
		"",
		"Across:",
		"1. Feline",
		"",
		"Down:",
		"1. Dairy animal",
		"",
	}, "\n")
	assert.Equal(t, want, sb.String())
}

func TestText_Reveal(t *testing.T) {
	g, n := smallPuzzle(t)

	var sb strings.Builder
	require.NoError(t, Text(&sb, g, n, Options{Reveal: true}))

	out := sb.String()
	assert.Contains(t, out, " . [ 1] A  T  . \n")
	assert.Contains(t, out, " .  O  .  .  . \n")
	assert.Contains(t, out, "1. Feline (CAT)\n")
	assert.Contains(t, out, "1. Dairy animal (COW)\n")
}

func TestText_EmptyGrid(t *testing.T) {
	g := xwlayout.NewGrid(2)

	var sb strings.Builder
	require.NoError(t, Text(&sb, g, xwlayout.Number(g, nil), Options{}))

	assert.Equal(t, "\nCrossword Grid:\n\n .  . \n .  . \n\nAcross:\n\nDown:\n", sb.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	g, n := smallPuzzle(t)
	assert.Error(t, Text(failingWriter{}, g, n, Options{}))
}
