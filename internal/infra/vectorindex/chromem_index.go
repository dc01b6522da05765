package vectorindex

import (
	"context"
	"runtime"

	"resumecoach/config"
	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/service"

	"github.com/philippgille/chromem-go"
	"github.com/pkg/errors"
)

// chromemIndex keeps tips in an embedded chromem-go collection, optionally persisted to disk.
type chromemIndex struct {
	collection *chromem.Collection
}

// NewChromemIndex opens (or creates) the collection named in cfg.
func NewChromemIndex(cfg *config.VectorConfig) (service.TipIndex, error) {
	var db *chromem.DB
	if cfg.Chromem.Path == "" {
		db = chromem.NewDB()
	} else {
		var err error
		db, err = chromem.NewPersistentDB(cfg.Chromem.Path, cfg.Chromem.Compress)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to open chromem db at %s", cfg.Chromem.Path)
		}
	}

	collection, err := db.GetOrCreateCollection(cfg.Collection, nil, precomputedOnly)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open collection %s", cfg.Collection)
	}

	return &chromemIndex{collection: collection}, nil
}

// precomputedOnly guards against chromem embedding on its own; vectors always come from
// the inference provider.
func precomputedOnly(context.Context, string) ([]float32, error) {
	return nil, errors.New("chromem index only accepts precomputed embeddings")
}

// Query returns the nearest tips, most similar first.
func (idx *chromemIndex) Query(ctx context.Context, vector []float32, topK int) ([]service.TipMatch, error) {
	// chromem refuses nResults larger than the collection.
	n := min(topK, idx.collection.Count())
	if n <= 0 {
		return []service.TipMatch{}, nil
	}

	results, err := idx.collection.QueryEmbedding(ctx, vector, n, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "chromem query")
	}

	matches := make([]service.TipMatch, 0, len(results))
	for _, result := range results {
		text := result.Metadata[metadataText]
		if text == "" {
			text = result.Content
		}
		matches = append(matches, service.TipMatch{
			ID:    result.ID,
			Text:  text,
			Score: result.Similarity,
		})
	}

	return matches, nil
}

// Upsert adds or replaces tips by id.
func (idx *chromemIndex) Upsert(ctx context.Context, tips []entity.Tip, vectors [][]float32) error {
	if len(tips) != len(vectors) {
		return errors.Errorf("got %d tips but %d vectors", len(tips), len(vectors))
	}
	if len(tips) == 0 {
		return nil
	}

	docs := make([]chromem.Document, len(tips))
	for i, tip := range tips {
		docs[i] = chromem.Document{
			ID:        tip.ID,
			Content:   tip.Text,
			Metadata:  map[string]string{metadataText: tip.Text},
			Embedding: vectors[i],
		}
	}

	if err := idx.collection.AddDocuments(ctx, docs, runtime.NumCPU()); err != nil {
		return errors.Wrap(err, "chromem upsert")
	}

	return nil
}

// Count reports the number of indexed tips.
func (idx *chromemIndex) Count(context.Context) (int, error) {
	return idx.collection.Count(), nil
}

// Close is a no-op; persistent chromem writes each document on insert.
func (idx *chromemIndex) Close() error {
	return nil
}
