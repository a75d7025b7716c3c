package services

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"prepvault/resume-analyzer/internal/catalog"
)

// RoleScore is one role's similarity to a resume, as a percentage. Scores are
// cos_sim * 100 rounded to two decimals and are not clamped: a vector pair
// with negative cosine similarity yields a negative percentage, both in API
// responses and in persisted rows.
type RoleScore struct {
	Role  string  `json:"role"`
	Score float64 `json:"score"`
}

// RoleMatcher scores resume text against role descriptions by embedding both
// and comparing with cosine similarity.
type RoleMatcher interface {
	Score(ctx context.Context, text, description string) (float64, error)
	RankAll(ctx context.Context, text string) ([]RoleScore, error)
}

type roleMatcher struct {
	embedder    Embedder
	profiles    []catalog.RoleProfile
	roleVectors [][]float32
}

// NewRoleMatcher embeds every catalogue role description once up front; the
// vectors are shared read-only across all analysis runs.
func NewRoleMatcher(ctx context.Context, embedder Embedder) (RoleMatcher, error) {
	profiles := catalog.Roles()
	vectors := make([][]float32, len(profiles))

	for i, profile := range profiles {
		vec, err := embedder.Embed(ctx, profile.Description)
		if err != nil {
			return nil, fmt.Errorf("failed to embed description for role %q: %w", profile.Name, err)
		}
		vectors[i] = vec
	}

	return &roleMatcher{
		embedder:    embedder,
		profiles:    profiles,
		roleVectors: vectors,
	}, nil
}

// Score returns the similarity percentage between text and description.
func (m *roleMatcher) Score(ctx context.Context, text, description string) (float64, error) {
	textVec, err := m.embedText(ctx, text)
	if err != nil {
		return 0, err
	}

	descVec, err := m.embedder.Embed(ctx, description)
	if err != nil {
		return 0, newEmbeddingError("description", err.Error())
	}

	return toPercentage(cosineSimilarity(textVec, descVec)), nil
}

// RankAll scores text against every catalogue role. The result has exactly
// one entry per role, sorted by score descending; equal scores keep catalogue
// insertion order.
func (m *roleMatcher) RankAll(ctx context.Context, text string) ([]RoleScore, error) {
	textVec, err := m.embedText(ctx, text)
	if err != nil {
		return nil, err
	}

	ranked := make([]RoleScore, len(m.profiles))
	for i, profile := range m.profiles {
		ranked[i] = RoleScore{
			Role:  profile.Name,
			Score: toPercentage(cosineSimilarity(textVec, m.roleVectors[i])),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	return ranked, nil
}

func (m *roleMatcher) embedText(ctx context.Context, text string) ([]float32, error) {
	if strings.TrimSpace(text) == "" {
		return nil, newEmbeddingError("resume", "input text is empty")
	}

	vec, err := m.embedder.Embed(ctx, text)
	if err != nil {
		return nil, newEmbeddingError("resume", err.Error())
	}
	return vec, nil
}

// cosineSimilarity returns a value in [-1, 1]. Mismatched or zero-magnitude
// vectors yield 0.
func cosineSimilarity(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

func toPercentage(cosSim float64) float64 {
	return math.Round(cosSim*100*100) / 100
}
