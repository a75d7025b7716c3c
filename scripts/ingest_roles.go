// Reindexes the role catalogue into Qdrant without starting the API server.
// Useful after changing the catalogue or wiping the collection:
//
//	go run ./scripts
package main

import (
	"context"
	"log"

	"prepvault/resume-analyzer/internal/catalog"
	"prepvault/resume-analyzer/internal/config"
	"prepvault/resume-analyzer/internal/services"
)

func main() {
	log.Println("Starting role catalogue ingestion...")

	cfg := config.Load()

	embedder, err := services.NewGeminiEmbedder(cfg.Gemini.APIKey, cfg.Gemini.Timeout)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}

	roleIndex, err := services.NewRoleIndexService(
		cfg.Qdrant.URL,
		cfg.Qdrant.APIKey,
		cfg.Qdrant.Collection,
	)
	if err != nil {
		log.Fatalf("Failed to initialize Qdrant: %v", err)
	}

	ctx := context.Background()

	if err := roleIndex.InitCollection(ctx); err != nil {
		log.Fatalf("Failed to initialize collection: %v", err)
	}

	if err := roleIndex.IngestCatalog(ctx, embedder); err != nil {
		log.Fatalf("Failed to ingest catalogue: %v", err)
	}

	log.Printf("Ingestion complete: %d roles indexed into %q", len(catalog.Roles()), cfg.Qdrant.Collection)
}
