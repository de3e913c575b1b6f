package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"runtime/pprof"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"lukechampine.com/frand"

	"crosswarped.com/xwlayout"
	"crosswarped.com/xwlayout/internal/config"
	"crosswarped.com/xwlayout/pkg/cluegen"
	"crosswarped.com/xwlayout/pkg/render"
	"crosswarped.com/xwlayout/pkg/wordlist"
)

func main() {
	if err := newRootCmd(config.New()).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(v *viper.Viper) *cobra.Command {
	var profileFile, memoryProfileFile string

	cmd := &cobra.Command{
		Use:           "xwcli",
		Short:         "Generate a crossword from a word/clue database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				log.Error().Err(err).Msg("config")
				return err
			}
			setupLogging(cmd.ErrOrStderr(), cfg.LogLevel)

			if profileFile != "" {
				f, err := os.Create(profileFile)
				if err != nil {
					return fmt.Errorf("create profile file: %w", err)
				}
				defer f.Close()
				if err := pprof.StartCPUProfile(f); err != nil {
					return fmt.Errorf("start cpu profile: %w", err)
				}
				defer pprof.StopCPUProfile()
			}

			if err := run(cmd.Context(), cfg, cmd.OutOrStdout()); err != nil {
				log.Error().Err(err).Msg("generate")
				return err
			}

			if memoryProfileFile != "" {
				mf, err := os.Create(memoryProfileFile)
				if err != nil {
					return fmt.Errorf("create memory profile file: %w", err)
				}
				defer mf.Close()
				return pprof.WriteHeapProfile(mf)
			}
			return nil
		},
	}

	fs := cmd.Flags()
	fs.String(config.KeyConfigFile, "", "Config file (yaml, json or toml)")
	fs.Int(config.KeyGridSize, xwlayout.DefaultGridSize, "The width and height of the grid")
	fs.Int(config.KeyMaxWords, xwlayout.DefaultMaxWords, "The maximum number of words to try to place")
	fs.Uint64(config.KeySeed, 0, "Seed for word selection; 0 picks one at random")
	fs.String(config.KeyDatabase, "database.json", "The word database (.json, .yaml or .db)")
	fs.Bool(config.KeyReveal, false, "Print the answers")
	fs.Int(config.KeyMinWordLength, 0, "The minimum word length")
	fs.Int(config.KeyMaxWordLength, 0, "The maximum word length; 0 means no limit")
	fs.StringSlice(config.KeyExcluded, nil, "Words never to use")
	fs.String(config.KeyLogLevel, "info", "Log level (debug, info, warn, error)")
	fs.String(config.KeyGeminiProject, "", "GCP project used to write missing clues with Gemini")
	fs.String(config.KeyGeminiRegion, "europe-west1", "Vertex AI region for Gemini")
	fs.String(config.KeyBigQueryProject, "", "GCP project of the BigQuery word table")
	fs.String(config.KeyBigQueryTable, "", "BigQuery table to load words from instead of --database")
	fs.String(config.KeyWordScope, "", "Only load BigQuery words with this scope")
	fs.StringVar(&profileFile, "profile-file", "", "Write a CPU profile to this file")
	fs.StringVar(&memoryProfileFile, "memory-profile-file", "", "Write a heap profile to this file")

	if err := v.BindPFlags(fs); err != nil {
		panic(err)
	}
	return cmd
}

func setupLogging(w io.Writer, level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: w}).With().Timestamp().Logger()
}

func loadEntries(ctx context.Context, cfg config.Config) ([]xwlayout.WordEntry, error) {
	if cfg.BigQueryTable == "" {
		return wordlist.LoadFile(ctx, cfg.Database)
	}
	src, err := wordlist.NewBigQuerySource(ctx, cfg.BigQueryProject, cfg.BigQueryTable, cfg.WordScope)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return src.Load(ctx)
}

func run(ctx context.Context, cfg config.Config, out io.Writer) error {
	entries, err := loadEntries(ctx, cfg)
	if err != nil {
		if errors.Is(err, wordlist.ErrEmpty) {
			return fmt.Errorf("no valid words found, please populate the database: %w", err)
		}
		return err
	}
	log.Info().Int("entries", len(entries)).Msg("loaded-words")

	seed := cfg.Seed
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}
	log.Debug().Uint64("seed", seed).Msg("seed")

	gen := xwlayout.CreateGenerator(cfg.GridSize, rand.New(rand.NewPCG(seed, seed>>1)), xwlayout.GeneratorParams{
		MaxWords:      cfg.MaxWords,
		MinWordLength: cfg.MinWordLength,
		MaxWordLength: cfg.MaxWordLength,
		ExcludedWords: cfg.ExcludedWords,
	})
	layout, err := gen.Generate(ctx, entries)
	if err != nil {
		return err
	}

	placed := layout.Placed
	if cfg.GeminiProject != "" {
		if placed, err = fillClues(ctx, cfg, placed); err != nil {
			return err
		}
	}

	log.Info().Int("placed", len(placed)).Int("dropped", len(layout.Dropped)).Msg("generated")
	for _, e := range layout.Dropped {
		log.Debug().Str("word", e.Word).Msg("not-placed")
	}

	numbering := xwlayout.Number(layout.Grid, placed)
	return render.Text(out, layout.Grid, numbering, render.Options{Reveal: cfg.Reveal})
}

func fillClues(ctx context.Context, cfg config.Config, placed []xwlayout.PlacedWord) ([]xwlayout.PlacedWord, error) {
	w, err := cluegen.NewGeminiWriter(ctx, cfg.GeminiProject, cfg.GeminiRegion)
	if err != nil {
		return nil, err
	}
	return cluegen.FillPlaced(ctx, w, placed)
}
