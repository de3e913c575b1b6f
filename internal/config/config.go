// Package config loads generator settings from defaults, an optional config
// file, XWLAYOUT_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

var ErrInvalid = errors.New("invalid configuration")

const (
	KeyConfigFile      = "config"
	KeyGridSize        = "grid-size"
	KeyMaxWords        = "max-words"
	KeySeed            = "seed"
	KeyDatabase        = "database"
	KeyReveal          = "reveal"
	KeyMinWordLength   = "min-length"
	KeyMaxWordLength   = "max-length"
	KeyExcluded        = "exclude"
	KeyLogLevel        = "log-level"
	KeyGeminiProject   = "gemini-project"
	KeyGeminiRegion    = "gemini-region"
	KeyBigQueryProject = "bigquery-project"
	KeyBigQueryTable   = "bigquery-table"
	KeyWordScope       = "word-scope"
)

type Config struct {
	GridSize int
	MaxWords int
	// Seed for candidate selection; 0 picks a random seed.
	Seed     uint64
	Database string
	Reveal   bool

	MinWordLength int
	MaxWordLength int
	ExcludedWords []string

	LogLevel string

	GeminiProject string
	GeminiRegion  string

	BigQueryProject string
	BigQueryTable   string
	WordScope       string
}

// New returns a viper instance with defaults and environment binding set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyGridSize, 13)
	v.SetDefault(KeyMaxWords, 13)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyDatabase, "database.json")
	v.SetDefault(KeyReveal, false)
	v.SetDefault(KeyMinWordLength, 0)
	v.SetDefault(KeyMaxWordLength, 0)
	v.SetDefault(KeyExcluded, []string{})
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyGeminiRegion, "europe-west1")

	v.SetEnvPrefix("xwlayout")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads the optional config file named by the "config" key and returns
// the validated settings.
func Load(v *viper.Viper) (Config, error) {
	if path := v.GetString(KeyConfigFile); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	c := Config{
		GridSize:        v.GetInt(KeyGridSize),
		MaxWords:        v.GetInt(KeyMaxWords),
		Seed:            v.GetUint64(KeySeed),
		Database:        v.GetString(KeyDatabase),
		Reveal:          v.GetBool(KeyReveal),
		MinWordLength:   v.GetInt(KeyMinWordLength),
		MaxWordLength:   v.GetInt(KeyMaxWordLength),
		ExcludedWords:   v.GetStringSlice(KeyExcluded),
		LogLevel:        v.GetString(KeyLogLevel),
		GeminiProject:   v.GetString(KeyGeminiProject),
		GeminiRegion:    v.GetString(KeyGeminiRegion),
		BigQueryProject: v.GetString(KeyBigQueryProject),
		BigQueryTable:   v.GetString(KeyBigQueryTable),
		WordScope:       v.GetString(KeyWordScope),
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.GridSize < 1 {
		return fmt.Errorf("%w: grid size must be positive, got %d", ErrInvalid, c.GridSize)
	}
	if c.MaxWords < 1 {
		return fmt.Errorf("%w: max words must be positive, got %d", ErrInvalid, c.MaxWords)
	}
	if c.MinWordLength < 0 || c.MaxWordLength < 0 {
		return fmt.Errorf("%w: word length bounds must not be negative", ErrInvalid)
	}
	if c.MaxWordLength > 0 && c.MinWordLength > c.MaxWordLength {
		return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalid, c.MinWordLength, c.MaxWordLength)
	}
	if c.BigQueryTable != "" && c.BigQueryProject == "" {
		return fmt.Errorf("%w: bigquery table requires a bigquery project", ErrInvalid)
	}
	if c.Database == "" && c.BigQueryTable == "" {
		return fmt.Errorf("%w: no word database configured", ErrInvalid)
	}
	return nil
}
