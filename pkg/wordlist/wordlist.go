// Package wordlist loads word/clue databases and normalises them into
// placeable entries.
package wordlist

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	"crosswarped.com/xwlayout"
)

// ErrEmpty is returned when a source holds no usable entries.
var ErrEmpty = errors.New("word source has no valid entries")

// Record is a raw database row before normalisation.
type Record struct {
	Word string `json:"word" yaml:"word"`
	Clue string `json:"clue" yaml:"clue"`
}

// Normalize upper-cases every word and drops records whose word is empty or
// not purely alphabetic. Order is preserved.
func Normalize(records []Record) []xwlayout.WordEntry {
	entries := lo.FilterMap(records, func(r Record, _ int) (xwlayout.WordEntry, bool) {
		return xwlayout.NewWordEntry(r.Word, r.Clue)
	})
	if skipped := len(records) - len(entries); skipped > 0 {
		log.Debug().Int("skipped", skipped).Int("kept", len(entries)).Msg("normalized-records")
	}
	return entries
}

func finish(records []Record) ([]xwlayout.WordEntry, error) {
	entries := Normalize(records)
	if len(entries) == 0 {
		return nil, ErrEmpty
	}
	return entries, nil
}

// LoadJSON reads an array of {"word": ..., "clue": ...} objects.
func LoadJSON(r io.Reader) ([]xwlayout.WordEntry, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return finish(records)
}

// LoadYAML reads a sequence of word/clue mappings.
func LoadYAML(r io.Reader) ([]xwlayout.WordEntry, error) {
	var records []Record
	if err := yaml.NewDecoder(r).Decode(&records); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return finish(records)
}

// LoadFile loads a database, choosing the format from the file extension:
// .json, .yaml/.yml, or .db/.sqlite/.sqlite3.
func LoadFile(ctx context.Context, path string) ([]xwlayout.WordEntry, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".db", ".sqlite", ".sqlite3":
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		return LoadSQLite(ctx, path)
	case ".json", ".yaml", ".yml":
	default:
		return nil, fmt.Errorf("unsupported word database format %q", ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	var entries []xwlayout.WordEntry
	if ext == ".json" {
		entries, err = LoadJSON(f)
	} else {
		entries, err = LoadYAML(f)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("entries", len(entries)).Msg("loaded-word-database")
	return entries, nil
}
