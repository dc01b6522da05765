package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const publishTimeout = 5 * time.Second

// analysisService runs the analysis pipeline. Stages run strictly in order and a
// failing stage stops everything after it.
type analysisService struct {
	gate      usecase.ModerationGate
	augmenter usecase.RetrievalAugmenter
	generator usecase.FeedbackGenerator
	recorder  usecase.HistoryRecorder
	publisher service.EventPublisher
	logger    *slog.Logger

	publishing sync.WaitGroup
}

// AnalysisServiceParams holds dependencies for AnalysisService, injected by Fx.
type AnalysisServiceParams struct {
	fx.In

	Lc        fx.Lifecycle `optional:"true"`
	Gate      usecase.ModerationGate
	Augmenter usecase.RetrievalAugmenter
	Generator usecase.FeedbackGenerator
	Recorder  usecase.HistoryRecorder
	Publisher service.EventPublisher `optional:"true"`
	Logger    *slog.Logger
}

// NewAnalysisService wires the pipeline stages together.
func NewAnalysisService(params AnalysisServiceParams) usecase.AnalysisUsecase {
	srv := &analysisService{
		gate:      params.Gate,
		augmenter: params.Augmenter,
		generator: params.Generator,
		recorder:  params.Recorder,
		publisher: params.Publisher,
		logger:    params.Logger,
	}

	if params.Lc != nil {
		params.Lc.Append(fx.Hook{
			OnStop: func(context.Context) error {
				srv.publishing.Wait()

				return nil
			},
		})
	}

	return srv
}

func (srv *analysisService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Analyze moderates, augments, generates and records one analysis.
func (srv *analysisService) Analyze(ctx context.Context, input usecase.AnalyzeInput) (*usecase.AnalyzeOutput, error) {
	if input.ResumeText == "" {
		return nil, errors.WithStack(domainerrors.ErrResumeRequired)
	}

	if err := srv.gate.Check(ctx, input.ResumeText, input.JobDescription); err != nil {
		return nil, errors.Wrap(err, "moderation")
	}

	tips, err := srv.augmenter.Augment(ctx, input.ResumeText)
	if err != nil {
		return nil, errors.Wrap(err, "retrieval")
	}

	feedback, err := srv.generator.Generate(ctx, input.ResumeText, input.JobDescription, tips)
	if err != nil {
		return nil, errors.Wrap(err, "generation")
	}

	record := &entity.AnalysisRecord{
		UserID:     input.UserID,
		ResumeText: input.ResumeText,
		AIFeedback: feedback,
	}
	if jd := jobDescriptionText(input.JobDescription); jd != "" {
		record.JobDescription = &jd
	}

	recorded := srv.recorder.Record(ctx, record)
	srv.publish(ctx, record, recorded, len(tips))

	srv.log(ctx).Info("Analysis completed",
		slog.String("user_id", input.UserID.String()),
		slog.Int("tips", len(tips)),
		slog.Bool("recorded", recorded),
	)

	return &usecase.AnalyzeOutput{
		Feedback:    feedback,
		ContextTips: tips,
	}, nil
}

// publish emits the completion event in the background; delivery failures are only logged.
func (srv *analysisService) publish(ctx context.Context, record *entity.AnalysisRecord, recorded bool, tipCount int) {
	if srv.publisher == nil {
		return
	}

	event := &service.AnalysisEvent{
		RequestID:         deliverycontext.GetRequestIDFromContext(ctx),
		UserID:            record.UserID.String(),
		HasJobDescription: record.JobDescription != nil,
		TipCount:          tipCount,
		FeedbackLength:    len(record.AIFeedback),
		CompletedAt:       time.Now().UTC().Format(time.RFC3339),
	}
	if recorded && record.ID != uuid.Nil {
		event.RecordID = record.ID.String()
	}

	logger := srv.log(ctx)
	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)

	srv.publishing.Add(1)
	go func() {
		defer srv.publishing.Done()
		defer cancel()

		if err := srv.publisher.PublishAnalysisEvent(publishCtx, event); err != nil {
			logger.Warn("Failed to publish analysis event", slog.Any("error", err))
		}
	}()
}

// History returns the caller's own records, newest first.
func (srv *analysisService) History(ctx context.Context, userID uuid.UUID) ([]*entity.AnalysisRecord, error) {
	records, err := srv.recorder.List(ctx, userID)
	if err != nil {
		srv.log(ctx).Error("Failed to list history", slog.String("user_id", userID.String()), slog.Any("error", err))

		return nil, err
	}

	return records, nil
}
