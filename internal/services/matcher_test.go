package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prepvault/resume-analyzer/internal/catalog"
)

// fakeEmbedder returns canned vectors keyed by input text.
type fakeEmbedder struct {
	vectors map[string][]float32
	err     error
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	vec, ok := f.vectors[text]
	if !ok {
		return nil, errors.New("no vector for input")
	}
	return vec, nil
}

// unitVec builds a 2D unit vector whose cosine similarity with (1, 0) is x.
func unitVec(x float64) []float32 {
	return []float32{float32(x), float32(math.Sqrt(1 - x*x))}
}

const resumeText = "experienced analyst with sql and python"

// matcherEmbedder wires a fixed similarity per catalogue role, in catalogue
// order, against a resume vector of (1, 0).
func matcherEmbedder(t *testing.T, similarities []float64) *fakeEmbedder {
	t.Helper()
	profiles := catalog.Roles()
	require.Len(t, similarities, len(profiles))

	vectors := map[string][]float32{resumeText: {1, 0}}
	for i, profile := range profiles {
		vectors[profile.Description] = unitVec(similarities[i])
	}
	return &fakeEmbedder{vectors: vectors}
}

func TestRankAllOrdersByScoreDescending(t *testing.T) {
	// Data Analyst, Customer Support, HR, Python Developer, Power BI
	// Analyst, Admin.
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.45, 0.5, 0.2, 0.05})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	ranked, err := matcher.RankAll(context.Background(), resumeText)
	require.NoError(t, err)
	require.Len(t, ranked, len(catalog.Roles()))

	assert.Equal(t, "Data Analyst", ranked[0].Role)
	assert.InDelta(t, 90.0, ranked[0].Score, 1e-9)
	assert.Equal(t, "Python Developer", ranked[1].Role)
	assert.InDelta(t, 50.0, ranked[1].Score, 1e-9)
	assert.Equal(t, "HR", ranked[2].Role)
	assert.InDelta(t, 45.0, ranked[2].Score, 1e-9)

	for i := 1; i < len(ranked); i++ {
		assert.GreaterOrEqual(t, ranked[i-1].Score, ranked[i].Score)
	}
}

func TestRankAllBreaksTiesByCatalogOrder(t *testing.T) {
	// Customer Support and HR score identically; Customer Support comes
	// first in the catalogue and must stay first.
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.3, 0.5, 0.2, 0.05})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	ranked, err := matcher.RankAll(context.Background(), resumeText)
	require.NoError(t, err)

	assert.Equal(t, "Customer Support", ranked[2].Role)
	assert.Equal(t, "HR", ranked[3].Role)
	assert.Equal(t, ranked[2].Score, ranked[3].Score)
}

func TestRankAllDoesNotClampNegativeScores(t *testing.T) {
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.45, 0.5, 0.2, -0.1})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	ranked, err := matcher.RankAll(context.Background(), resumeText)
	require.NoError(t, err)

	last := ranked[len(ranked)-1]
	assert.Equal(t, "Admin", last.Role)
	assert.InDelta(t, -10.0, last.Score, 1e-9)
}

func TestRankAllIsDeterministic(t *testing.T) {
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.45, 0.5, 0.2, 0.05})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	first, err := matcher.RankAll(context.Background(), resumeText)
	require.NoError(t, err)
	second, err := matcher.RankAll(context.Background(), resumeText)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestRankAllRejectsEmptyText(t *testing.T) {
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.45, 0.5, 0.2, 0.05})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	_, err = matcher.RankAll(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmbeddingFailed)
}

func TestScoreMatchesSinglePair(t *testing.T) {
	embedder := matcherEmbedder(t, []float64{0.9, 0.3, 0.45, 0.5, 0.2, 0.05})

	matcher, err := NewRoleMatcher(context.Background(), embedder)
	require.NoError(t, err)

	profile, ok := catalog.FindRole("Data Analyst")
	require.True(t, ok)

	score, err := matcher.Score(context.Background(), resumeText, profile.Description)
	require.NoError(t, err)
	assert.InDelta(t, 90.0, score, 1e-9)
}

func TestNewRoleMatcherFailsWhenEmbedderFails(t *testing.T) {
	embedder := &fakeEmbedder{err: errors.New("quota exceeded")}

	_, err := NewRoleMatcher(context.Background(), embedder)
	assert.Error(t, err)
}

func TestCosineSimilarityEdgeCases(t *testing.T) {
	assert.Equal(t, 0.0, cosineSimilarity([]float32{1, 0}, []float32{1}))
	assert.Equal(t, 0.0, cosineSimilarity(nil, nil))
	assert.Equal(t, 0.0, cosineSimilarity([]float32{0, 0}, []float32{1, 0}))
	assert.InDelta(t, 1.0, cosineSimilarity([]float32{2, 0}, []float32{5, 0}), 1e-9)
	assert.InDelta(t, -1.0, cosineSimilarity([]float32{1, 0}, []float32{-3, 0}), 1e-9)
}

func TestToPercentageRoundsToTwoDecimals(t *testing.T) {
	assert.InDelta(t, 12.35, toPercentage(0.123456), 1e-9)
	assert.InDelta(t, -12.35, toPercentage(-0.123456), 1e-9)
	assert.InDelta(t, 100.0, toPercentage(1.0), 1e-9)
}
