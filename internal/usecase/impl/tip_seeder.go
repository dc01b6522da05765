package impl

import (
	"context"
	"log/slog"

	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// seedBatchSize bounds how many tips are upserted per index call.
const seedBatchSize = 32

type tipSeeder struct {
	source   service.TipSource
	provider service.InferenceProvider
	index    service.TipIndex
	logger   *slog.Logger
}

// TipSeederParams holds dependencies for TipSeeder, injected by Fx.
type TipSeederParams struct {
	fx.In

	Source   service.TipSource
	Provider service.InferenceProvider
	Index    service.TipIndex
	Logger   *slog.Logger
}

// NewTipSeeder creates the seeder that fills the tip index from the curated corpus.
func NewTipSeeder(params TipSeederParams) usecase.TipSeeder {
	return &tipSeeder{
		source:   params.Source,
		provider: params.Provider,
		index:    params.Index,
		logger:   params.Logger,
	}
}

// Seed embeds every tip with the same capability used for resumes and upserts them
// in batches. Tip ids are stable, so seeding twice leaves the index unchanged.
func (s *tipSeeder) Seed(ctx context.Context) (int, error) {
	tips, err := s.source.Load(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to load tips")
	}
	if len(tips) == 0 {
		s.logger.Warn("Tip corpus is empty, nothing to seed")

		return 0, nil
	}

	seeded := 0
	for start := 0; start < len(tips); start += seedBatchSize {
		batch := tips[start:min(start+seedBatchSize, len(tips))]

		if err := s.seedBatch(ctx, batch); err != nil {
			return seeded, err
		}
		seeded += len(batch)

		s.logger.Debug("Seeded tip batch", slog.Int("seeded", seeded), slog.Int("total", len(tips)))
	}

	s.logger.Info("Tip index seeded", slog.Int("count", seeded))

	return seeded, nil
}

func (s *tipSeeder) seedBatch(ctx context.Context, batch []entity.Tip) error {
	vectors := make([][]float32, len(batch))
	for i, tip := range batch {
		vector, err := s.provider.Embed(ctx, tip.Text)
		if err != nil {
			return errors.Wrapf(err, "failed to embed tip %s", tip.ID)
		}
		vectors[i] = vector
	}

	return errors.Wrap(s.index.Upsert(ctx, batch, vectors), "failed to upsert tips")
}
