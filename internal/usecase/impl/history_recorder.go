package impl

import (
	"context"
	"log/slog"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/repository"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type historyRecorder struct {
	analysisRepo repository.AnalysisRepository
	metrics      *metrics.Metrics
	logger       *slog.Logger
	limit        int
}

// HistoryRecorderParams holds dependencies for HistoryRecorder, injected by Fx.
type HistoryRecorderParams struct {
	fx.In

	AnalysisRepo repository.AnalysisRepository
	Config       *config.Config
	Metrics      *metrics.Metrics `optional:"true"`
	Logger       *slog.Logger
}

// NewHistoryRecorder creates the recorder for the append-only analysis history.
func NewHistoryRecorder(params HistoryRecorderParams) usecase.HistoryRecorder {
	limit := config.DefaultHistoryLimit
	if h := params.Config.History; h != nil && h.Limit > 0 && h.Limit < limit {
		limit = h.Limit
	}

	return &historyRecorder{
		analysisRepo: params.AnalysisRepo,
		metrics:      params.Metrics,
		logger:       params.Logger,
		limit:        limit,
	}
}

func (r *historyRecorder) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, r.logger)
}

// Record stores the analysis. The write is attempted even if the request has been
// cancelled, and a failure is logged rather than returned.
func (r *historyRecorder) Record(ctx context.Context, record *entity.AnalysisRecord) bool {
	if err := r.analysisRepo.Create(context.WithoutCancel(ctx), record); err != nil {
		r.metrics.RecordHistoryWriteFailure()
		r.log(ctx).Error("Failed to save analysis history",
			slog.String("user_id", record.UserID.String()),
			slog.Any("error", err),
		)

		return false
	}

	return true
}

// List returns the user's most recent records.
func (r *historyRecorder) List(ctx context.Context, userID uuid.UUID) ([]*entity.AnalysisRecord, error) {
	records, err := r.analysisRepo.FindByUser(ctx, userID, r.limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list analysis history")
	}
	if records == nil {
		records = []*entity.AnalysisRecord{}
	}

	return records, nil
}
