package services

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/qdrant/go-client/qdrant"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/logger"
)

// RoleIndexService mirrors the role catalogue into a Qdrant collection so
// free-text job descriptions can be matched to the closest catalogue roles.
// The core ranking does not go through this index; it exists for the
// /roles/match lookup.
type RoleIndexService interface {
	InitCollection(ctx context.Context) error
	IngestCatalog(ctx context.Context, embedder Embedder) error
	MatchDescription(ctx context.Context, embedder Embedder, description string, limit int) ([]RoleScore, error)
}

type roleIndexService struct {
	client         *qdrant.Client
	collectionName string
	vectorSize     uint64
}

func NewRoleIndexService(urlStr, apiKey, collectionName string) (RoleIndexService, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsed.Hostname()
	useTLS := parsed.Scheme == "https"

	// gRPC port, not the REST one.
	port := 6334
	if p := parsed.Port(); p != "" {
		if v, err := strconv.Atoi(p); err == nil {
			port = v
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: useTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}

	return &roleIndexService{
		client:         client,
		collectionName: collectionName,
		vectorSize:     EmbeddingDimension,
	}, nil
}

func (s *roleIndexService) InitCollection(ctx context.Context) error {
	exists, err := s.client.CollectionExists(ctx, s.collectionName)
	if err != nil {
		return fmt.Errorf("failed to check collection: %w", err)
	}

	if exists {
		return nil
	}

	err = s.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: s.collectionName,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     s.vectorSize,
			Distance: qdrant.Distance_Cosine,
		}),
	})
	if err != nil {
		return fmt.Errorf("failed to create collection: %w", err)
	}

	logger.Info().Str("collection", s.collectionName).Msg("qdrant collection created")
	return nil
}

// IngestCatalog embeds every role description and upserts it keyed by its
// catalogue position, so repeated startups overwrite instead of duplicating.
func (s *roleIndexService) IngestCatalog(ctx context.Context, embedder Embedder) error {
	points := make([]*qdrant.PointStruct, 0, len(catalog.Roles()))

	for i, profile := range catalog.Roles() {
		vec, err := embedder.Embed(ctx, profile.Description)
		if err != nil {
			return fmt.Errorf("failed to embed role %q: %w", profile.Name, err)
		}

		points = append(points, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(uint64(i)),
			Vectors: qdrant.NewVectors(vec...),
			Payload: qdrant.NewValueMap(map[string]interface{}{
				"role":     profile.Name,
				"position": i,
			}),
		})
	}

	_, err := s.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: s.collectionName,
		Points:         points,
	})
	if err != nil {
		return fmt.Errorf("failed to upsert role catalogue: %w", err)
	}

	logger.Info().Int("roles", len(points)).Msg("role catalogue ingested into qdrant")
	return nil
}

// MatchDescription embeds a free-text job description and returns the closest
// catalogue roles with similarity percentages.
func (s *roleIndexService) MatchDescription(ctx context.Context, embedder Embedder, description string, limit int) ([]RoleScore, error) {
	vec, err := embedder.Embed(ctx, description)
	if err != nil {
		return nil, newEmbeddingError("job description", err.Error())
	}

	searchResult, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: s.collectionName,
		Query:          qdrant.NewQuery(vec...),
		Limit:          qdrant.PtrOf(uint64(limit)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to search role index: %w", err)
	}

	results := make([]RoleScore, 0, len(searchResult))
	for _, point := range searchResult {
		entry := RoleScore{Score: toPercentage(float64(point.Score))}
		if role, ok := point.Payload["role"]; ok {
			if val, ok := role.GetKind().(*qdrant.Value_StringValue); ok {
				entry.Role = val.StringValue
			}
		}
		results = append(results, entry)
	}

	return results, nil
}
