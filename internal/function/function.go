// Package function serves crossword generation over HTTP.
package function

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand/v2"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"lukechampine.com/frand"

	"crosswarped.com/xwlayout"
	"crosswarped.com/xwlayout/pkg/cluegen"
	"crosswarped.com/xwlayout/pkg/render"
	"crosswarped.com/xwlayout/pkg/wordlist"
)

const (
	maxGridSize = 50
	maxMaxWords = 100
)

var errBadRequest = errors.New("bad request")

type GenerateCrosswordRequest struct {
	GridSize  int               `json:"gridSize"`
	MaxWords  int               `json:"maxWords"`
	Seed      uint64            `json:"seed"`
	Entries   []wordlist.Record `json:"entries"`
	WordScope string            `json:"wordScope"`
	Reveal    bool              `json:"reveal"`
}

type GenerateCrosswordResponse struct {
	Success  bool                    `json:"success"`
	Seed     uint64                  `json:"seed,omitempty"`
	Grid     []string                `json:"grid,omitempty"`
	Numbers  map[int]xwlayout.Coord  `json:"numbers,omitempty"`
	Across   map[int]string          `json:"across,omitempty"`
	Down     map[int]string          `json:"down,omitempty"`
	Clues    []xwlayout.NumberedClue `json:"clues,omitempty"`
	Dropped  []string                `json:"dropped,omitempty"`
	Rendered string                  `json:"rendered,omitempty"`
	Error    string                  `json:"error,omitempty"`
}

// ScopeLoader loads the database entries for a named word scope.
type ScopeLoader func(ctx context.Context, scope string) ([]xwlayout.WordEntry, error)

// Function generates one crossword per POST request. A fresh generator and
// grid are built for every request.
type Function struct {
	// LoadScope resolves wordScope requests. Nil disables them.
	LoadScope ScopeLoader
	// Clues fills in empty clues. Nil leaves them empty.
	Clues cluegen.Writer
}

func (f *Function) execute(ctx context.Context, req GenerateCrosswordRequest) (GenerateCrosswordResponse, error) {
	if req.GridSize == 0 {
		req.GridSize = xwlayout.DefaultGridSize
	}
	if req.MaxWords == 0 {
		req.MaxWords = xwlayout.DefaultMaxWords
	}
	if req.GridSize < 1 || req.GridSize > maxGridSize {
		return GenerateCrosswordResponse{}, fmt.Errorf("%w: gridSize must be between 1 and %d", errBadRequest, maxGridSize)
	}
	if req.MaxWords < 1 || req.MaxWords > maxMaxWords {
		return GenerateCrosswordResponse{}, fmt.Errorf("%w: maxWords must be between 1 and %d", errBadRequest, maxMaxWords)
	}

	entries := wordlist.Normalize(req.Entries)
	if req.WordScope != "" {
		if f.LoadScope == nil {
			return GenerateCrosswordResponse{}, fmt.Errorf("%w: wordScope is not supported by this deployment", errBadRequest)
		}
		scoped, err := f.LoadScope(ctx, req.WordScope)
		if err != nil {
			return GenerateCrosswordResponse{}, fmt.Errorf("load scope %q: %w", req.WordScope, err)
		}
		log.Info().Str("scope", req.WordScope).Int("entries", len(scoped)).Msg("loaded-scope")
		entries = append(entries, scoped...)
	}

	seed := req.Seed
	if seed == 0 {
		seed = frand.Uint64n(1<<63) + 1
	}
	gen := xwlayout.CreateGenerator(req.GridSize, rand.New(rand.NewPCG(seed, seed>>1)), xwlayout.GeneratorParams{
		MaxWords: req.MaxWords,
	})
	layout, err := gen.Generate(ctx, entries)
	if err != nil {
		return GenerateCrosswordResponse{}, err
	}

	placed := layout.Placed
	if f.Clues != nil {
		if placed, err = cluegen.FillPlaced(ctx, f.Clues, placed); err != nil {
			return GenerateCrosswordResponse{}, err
		}
	}

	numbering := xwlayout.Number(layout.Grid, placed)
	var sb strings.Builder
	if err := render.Text(&sb, layout.Grid, numbering, render.Options{Reveal: req.Reveal}); err != nil {
		return GenerateCrosswordResponse{}, fmt.Errorf("render: %w", err)
	}

	resp := GenerateCrosswordResponse{
		Success:  true,
		Seed:     seed,
		Numbers:  numbering.Starts,
		Across:   numbering.Across,
		Down:     numbering.Down,
		Clues:    numbering.Entries(),
		Rendered: sb.String(),
		Dropped:  lo.Map(layout.Dropped, func(e xwlayout.WordEntry, _ int) string { return e.Word }),
	}
	if req.Reveal {
		resp.Grid = layout.Grid.Rows()
	} else {
		for i := range resp.Clues {
			resp.Clues[i].Answer = ""
		}
	}
	return resp, nil
}

func setCORSHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Content-Type", "application/json")
}

func writeJSON(w http.ResponseWriter, status int, resp GenerateCrosswordResponse) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Error().Err(err).Msg("encode-response")
	}
}

func (f *Function) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	setCORSHeaders(w)

	// Handle OPTIONS request for CORS preflight
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}

	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, GenerateCrosswordResponse{
			Error: fmt.Sprintf("Method %s not allowed", r.Method),
		})
		return
	}

	var req GenerateCrosswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Debug().Err(err).Msg("invalid-request-body")
		writeJSON(w, http.StatusBadRequest, GenerateCrosswordResponse{
			Error: fmt.Sprintf("Invalid JSON: %v", err),
		})
		return
	}

	resp, err := f.execute(r.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, errBadRequest) || errors.Is(err, xwlayout.ErrNoEntries) {
			status = http.StatusBadRequest
		}
		log.Error().Err(err).Int("status", status).Msg("generate-crossword")
		writeJSON(w, status, GenerateCrosswordResponse{Error: err.Error()})
		return
	}

	log.Info().Int("placed", len(resp.Across)+len(resp.Down)).Int("dropped", len(resp.Dropped)).Msg("generated-crossword")
	writeJSON(w, http.StatusOK, resp)
}
