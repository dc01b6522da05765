package impl

import (
	"context"
	"log/slog"
	"time"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	stageRetrieval = "retrieval"
	callEmbedding  = "embedding"
	callQuery      = "query"

	defaultEmbeddingTimeout = 10 * time.Second
	defaultQueryTimeout     = 5 * time.Second
)

type retrievalAugmenter struct {
	provider         service.InferenceProvider
	index            service.TipIndex
	metrics          *metrics.Metrics
	logger           *slog.Logger
	topK             int
	embeddingTimeout time.Duration
	queryTimeout     time.Duration
}

// RetrievalAugmenterParams holds dependencies for RetrievalAugmenter, injected by Fx.
type RetrievalAugmenterParams struct {
	fx.In

	Provider service.InferenceProvider
	Index    service.TipIndex
	Config   *config.Config
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewRetrievalAugmenter creates the augmenter that grounds feedback on curated tips.
func NewRetrievalAugmenter(params RetrievalAugmenterParams) usecase.RetrievalAugmenter {
	augmenter := &retrievalAugmenter{
		provider:         params.Provider,
		index:            params.Index,
		metrics:          params.Metrics,
		logger:           params.Logger,
		topK:             config.DefaultTopK,
		embeddingTimeout: defaultEmbeddingTimeout,
		queryTimeout:     defaultQueryTimeout,
	}
	if v := params.Config.Vector; v != nil && v.TopK > 0 {
		augmenter.topK = v.TopK
	}
	if ai := params.Config.AI; ai != nil {
		if ai.Timeouts.Embedding > 0 {
			augmenter.embeddingTimeout = ai.Timeouts.Embedding
		}
		if ai.Timeouts.Query > 0 {
			augmenter.queryTimeout = ai.Timeouts.Query
		}
	}

	return augmenter
}

func (a *retrievalAugmenter) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, a.logger)
}

// Augment embeds the resume and returns the text of the nearest tips in index order.
func (a *retrievalAugmenter) Augment(ctx context.Context, resume string) ([]string, error) {
	vector, err := a.embed(ctx, resume)
	if err != nil {
		a.metrics.RecordStage(stageRetrieval, metrics.OutcomeError)
		a.log(ctx).Error("Failed to embed resume", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(err.Error())
	}

	matches, err := a.query(ctx, vector)
	if err != nil {
		a.metrics.RecordStage(stageRetrieval, metrics.OutcomeError)
		a.log(ctx).Error("Failed to query tip index", slog.Any("error", err))

		return nil, domainerrors.ErrUpstreamFailed.WrapMessage(err.Error())
	}

	tips := make([]string, 0, len(matches))
	for _, match := range matches {
		tips = append(tips, match.Text)
	}

	a.metrics.RecordStage(stageRetrieval, metrics.OutcomeOK)
	a.log(ctx).Debug("Retrieved context tips", slog.Int("count", len(tips)))

	return tips, nil
}

func (a *retrievalAugmenter) embed(ctx context.Context, resume string) ([]float32, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.embeddingTimeout)
	defer cancel()

	started := time.Now()
	vector, err := a.provider.Embed(callCtx, resume)
	a.metrics.ObserveCall(callEmbedding, started)
	if err != nil {
		return nil, errors.Wrap(err, "embedding call failed")
	}
	if len(vector) == 0 {
		return nil, errors.New("embedding call returned an empty vector")
	}

	return vector, nil
}

func (a *retrievalAugmenter) query(ctx context.Context, vector []float32) ([]service.TipMatch, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.queryTimeout)
	defer cancel()

	started := time.Now()
	matches, err := a.index.Query(callCtx, vector, a.topK)
	a.metrics.ObserveCall(callQuery, started)
	if err != nil {
		return nil, errors.Wrap(err, "tip index query failed")
	}
	if len(matches) > a.topK {
		matches = matches[:a.topK]
	}

	return matches, nil
}
