package services

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"

	"google.golang.org/genai"
)

// Embedder turns text into a fixed-dimensional vector. The implementation is
// treated as a pure function: identical input yields identical output for the
// lifetime of the process.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingDimension is the output size of text-embedding-004.
const EmbeddingDimension = 768

// maxEmbedInputBytes bounds the text sent to the embedding model
// (~10000 tokens).
const maxEmbedInputBytes = 40000

type geminiEmbedder struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

func NewGeminiEmbedder(apiKey string, timeout time.Duration) (Embedder, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	return &geminiEmbedder{
		client:  client,
		model:   "text-embedding-004",
		timeout: timeout,
	}, nil
}

// truncateUTF8 shortens text to at most max bytes without splitting a rune,
// so the truncated input stays valid UTF-8.
func truncateUTF8(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut]
}

func (g *geminiEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	text = truncateUTF8(text, maxEmbedInputBytes)

	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	result, err := g.client.Models.EmbedContent(ctx, g.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to generate embedding: %w", err)
	}

	if result == nil || len(result.Embeddings) == 0 {
		return nil, fmt.Errorf("empty embedding result")
	}

	return result.Embeddings[0].Values, nil
}
