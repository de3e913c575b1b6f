package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	c, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 13, c.GridSize)
	assert.Equal(t, 13, c.MaxWords)
	assert.Equal(t, uint64(0), c.Seed)
	assert.Equal(t, "database.json", c.Database)
	assert.False(t, c.Reveal)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "europe-west1", c.GeminiRegion)
	assert.Empty(t, c.ExcludedWords)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("XWLAYOUT_GRID_SIZE", "15")
	t.Setenv("XWLAYOUT_MAX_WORDS", "20")
	t.Setenv("XWLAYOUT_REVEAL", "true")

	c, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, 15, c.GridSize)
	assert.Equal(t, 20, c.MaxWords)
	assert.True(t, c.Reveal)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwlayout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
grid-size: 9
seed: 1234
database: words.yaml
exclude:
  - java
  - rust
`), 0o644))

	v := New()
	v.Set(KeyConfigFile, path)
	c, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, 9, c.GridSize)
	assert.Equal(t, uint64(1234), c.Seed)
	assert.Equal(t, "words.yaml", c.Database)
	assert.Equal(t, []string{"java", "rust"}, c.ExcludedWords)
}

func TestLoad_MissingConfigFile(t *testing.T) {
	v := New()
	v.Set(KeyConfigFile, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load(v)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{GridSize: 13, MaxWords: 10, Database: "database.json"}
	require.NoError(t, valid.Validate())

	for _, tc := range []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero grid", func(c *Config) { c.GridSize = 0 }},
		{"negative max words", func(c *Config) { c.MaxWords = -1 }},
		{"negative min length", func(c *Config) { c.MinWordLength = -2 }},
		{"min over max", func(c *Config) { c.MinWordLength = 8; c.MaxWordLength = 4 }},
		{"table without project", func(c *Config) { c.BigQueryTable = "ds.words" }},
		{"no source", func(c *Config) { c.Database = "" }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			c := valid
			tc.mutate(&c)
			assert.ErrorIs(t, c.Validate(), ErrInvalid)
		})
	}
}
