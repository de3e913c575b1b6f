package main

import (
	"context"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/funcframework"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"crosswarped.com/xwlayout"
	"crosswarped.com/xwlayout/internal/config"
	"crosswarped.com/xwlayout/internal/function"
	"crosswarped.com/xwlayout/pkg/cluegen"
	"crosswarped.com/xwlayout/pkg/wordlist"
)

func scopeLoader(project, table string) function.ScopeLoader {
	return func(ctx context.Context, scope string) ([]xwlayout.WordEntry, error) {
		src, err := wordlist.NewBigQuerySource(ctx, project, table, scope)
		if err != nil {
			return nil, err
		}
		defer src.Close()
		return src.Load(ctx)
	}
}

func main() {
	cfg, err := config.Load(config.New())
	if err != nil {
		log.Fatal().Err(err).Msg("config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	fn := &function.Function{}
	if cfg.BigQueryTable != "" {
		fn.LoadScope = scopeLoader(cfg.BigQueryProject, cfg.BigQueryTable)
		log.Info().Str("table", cfg.BigQueryTable).Msg("word scopes enabled")
	}
	if cfg.GeminiProject != "" {
		w, err := cluegen.NewGeminiWriter(context.Background(), cfg.GeminiProject, cfg.GeminiRegion)
		if err != nil {
			log.Fatal().Err(err).Msg("gemini")
		}
		fn.Clues = w
		log.Info().Str("project", cfg.GeminiProject).Msg("clue generation enabled")
	}

	funcframework.RegisterHTTPFunction("/generate-crossword", fn.ServeHTTP)

	port := "8080"
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}
	hostname := ""
	if localOnly := os.Getenv("LOCAL_ONLY"); localOnly == "true" {
		hostname = "127.0.0.1"
	}
	if err := funcframework.StartHostPort(hostname, port); err != nil {
		log.Fatal().Err(err).Msg("funcframework.StartHostPort")
	}
}
