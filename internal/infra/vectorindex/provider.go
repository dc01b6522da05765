// Package vectorindex stores curated tips with their embeddings and answers
// nearest-neighbour queries for the retrieval augmenter.
package vectorindex

import (
	"context"
	"log/slog"
	"strings"

	"resumecoach/config"
	"resumecoach/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderChromem = "chromem"
	ProviderQdrant  = "qdrant"

	// metadataText is the metadata key holding the tip body.
	metadataText = "text"
	// metadataTipID keeps the tip's own id where the store needs a different point id.
	metadataTipID = "tip_id"
)

// IndexParams holds dependencies for TipIndex, injected by Fx
type IndexParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewTipIndex opens the configured index and closes it when the application stops.
func NewTipIndex(params IndexParams) (service.TipIndex, error) {
	index, err := Open(params.Config, params.Logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing tip index")

			return index.Close()
		},
	})

	return index, nil
}

// Open creates a TipIndex based on configuration. The caller closes it.
func Open(cfg *config.Config, logger *slog.Logger) (service.TipIndex, error) {
	vectorCfg := cfg.Vector
	if vectorCfg == nil {
		return nil, errors.New("vector configuration is missing")
	}

	switch strings.ToLower(vectorCfg.Provider) {
	case ProviderChromem, "":
		logger.Info("Using embedded chromem tip index",
			slog.String("collection", vectorCfg.Collection),
			slog.String("path", vectorCfg.Chromem.Path),
		)

		return NewChromemIndex(vectorCfg)

	case ProviderQdrant:
		logger.Info("Using Qdrant tip index",
			slog.String("collection", vectorCfg.Collection),
			slog.String("host", vectorCfg.Qdrant.Host),
			slog.Int("port", vectorCfg.Qdrant.Port),
		)

		dimensions := 0
		if cfg.AI != nil {
			dimensions = cfg.AI.EmbeddingDimensions
		}

		return NewQdrantIndex(vectorCfg, dimensions)

	default:
		return nil, errors.Errorf("unknown vector provider: %s", vectorCfg.Provider)
	}
}
