package cluegen

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const (
	defaultRegion = "europe-west1"
	defaultModel  = "gemini-2.5-flash"
)

const cluePrompt = `Write one short crossword clue for the answer %q.

Rules:
- Do not use the answer or any part of it in the clue.
- At most 12 words.
- Reply with the clue only, no quotes, no answer length, no commentary.`

// GeminiWriter writes clues with Gemini on Vertex AI.
type GeminiWriter struct {
	client    *genai.Client
	modelName string
}

// NewGeminiWriter creates a writer using Application Default Credentials.
func NewGeminiWriter(ctx context.Context, projectID, region string) (*GeminiWriter, error) {
	if region == "" {
		region = defaultRegion
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: region,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GeminiWriter{
		client:    client,
		modelName: defaultModel,
	}, nil
}

func (g *GeminiWriter) Clue(ctx context.Context, word string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.modelName,
		genai.Text(fmt.Sprintf(cluePrompt, word)),
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.7)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return cleanClue(resp.Text(), word)
}

var errUnusableClue = errors.New("unusable clue")

// cleanClue trims model output down to a single line and rejects clues that
// give the answer away.
func cleanClue(text, word string) (string, error) {
	clue, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	clue = strings.Trim(strings.TrimSpace(clue), `"`)
	if clue == "" {
		return "", fmt.Errorf("%w: empty gemini response", errUnusableClue)
	}
	if strings.Contains(strings.ToUpper(clue), word) {
		return "", fmt.Errorf("%w: %q contains the answer", errUnusableClue, clue)
	}
	return clue, nil
}
