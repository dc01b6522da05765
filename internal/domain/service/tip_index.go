package service

import (
	"context"

	"resumecoach/internal/domain/entity"
)

// TipMatch is one nearest-neighbour hit, in the order reported by the index.
type TipMatch struct {
	ID    string
	Text  string
	Score float32
}

// TipIndex is the vector index of curated tips.
type TipIndex interface {
	// Query returns up to topK matches with their text metadata, most relevant first.
	Query(ctx context.Context, vector []float32, topK int) ([]TipMatch, error)

	// Upsert stores tips with their embeddings. vectors[i] belongs to tips[i].
	Upsert(ctx context.Context, tips []entity.Tip, vectors [][]float32) error

	// Count reports how many tips are indexed.
	Count(ctx context.Context) (int, error)

	Close() error
}

// TipSource loads the curated tip corpus.
type TipSource interface {
	Load(ctx context.Context) ([]entity.Tip, error)
}
