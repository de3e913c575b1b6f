package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"crosswarped.com/xwlayout/internal/config"
	"crosswarped.com/xwlayout/pkg/wordlist"
)

func writeDatabase(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "database.json")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(config.New())
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(t.Context())
	return out.String(), err
}

func TestRootCmd_Reveal(t *testing.T) {
	db := writeDatabase(t, `[
		{"word": "python", "clue": "Snake"},
		{"word": "java", "clue": "Island"},
		{"word": "rust", "clue": "Oxide"}
	]`)

	out, err := execute(t, "--database", db, "--seed", "7", "--reveal", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "Crossword Grid:")
	assert.Contains(t, out, " .  .  . [ 2] Y  T  H  O  N  .  .  .  . \n")
	assert.Contains(t, out, "Across:\n2. Snake (PYTHON)\n")
	assert.Contains(t, out, "Down:\n1. Oxide (RUST)\n")
}

func TestRootCmd_GridSize(t *testing.T) {
	db := writeDatabase(t, `[{"word": "go", "clue": "Gopher's language"}]`)

	out, err := execute(t, "--database", db, "--grid-size", "3", "--seed", "1", "--log-level", "error")
	require.NoError(t, err)

	assert.Contains(t, out, "\n[ 1]    . \n")
	assert.Contains(t, out, "1. Gopher's language\n")
}

func TestRootCmd_EmptyDatabase(t *testing.T) {
	db := writeDatabase(t, `[{"word": "not valid"}]`)

	_, err := execute(t, "--database", db, "--log-level", "error")

	assert.ErrorIs(t, err, wordlist.ErrEmpty)
}

func TestRootCmd_MissingDatabase(t *testing.T) {
	_, err := execute(t, "--database", filepath.Join(t.TempDir(), "database.json"), "--log-level", "error")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCmd_InvalidConfig(t *testing.T) {
	_, err := execute(t, "--grid-size", "0")
	assert.ErrorIs(t, err, config.ErrInvalid)
}
