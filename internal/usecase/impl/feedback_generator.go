package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/usecase"

	"go.uber.org/fx"
)

const (
	stageGeneration = "generation"

	defaultGenerationTimeout = 90 * time.Second
)

type feedbackGenerator struct {
	provider  service.InferenceProvider
	metrics   *metrics.Metrics
	logger    *slog.Logger
	maxTokens int
	timeout   time.Duration
}

// FeedbackGeneratorParams holds dependencies for FeedbackGenerator, injected by Fx.
type FeedbackGeneratorParams struct {
	fx.In

	Provider service.InferenceProvider
	Config   *config.Config
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewFeedbackGenerator creates the generator producing Markdown feedback.
func NewFeedbackGenerator(params FeedbackGeneratorParams) usecase.FeedbackGenerator {
	generator := &feedbackGenerator{
		provider:  params.Provider,
		metrics:   params.Metrics,
		logger:    params.Logger,
		maxTokens: config.DefaultMaxFeedbackTokens,
		timeout:   defaultGenerationTimeout,
	}
	if ai := params.Config.AI; ai != nil {
		if ai.MaxFeedbackTokens > 0 {
			generator.maxTokens = ai.MaxFeedbackTokens
		}
		if ai.Timeouts.Generation > 0 {
			generator.timeout = ai.Timeouts.Generation
		}
	}

	return generator
}

func (g *feedbackGenerator) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Generate renders the prompt and runs the generation capability. The job description
// section is only included when a description is present.
func (g *feedbackGenerator) Generate(ctx context.Context, resume string, jobDescription *string, tips []string) (string, error) {
	prompt, err := buildFeedbackPrompt(resume, jobDescriptionText(jobDescription), tips)
	if err != nil {
		return "", domainerrors.ErrUpstreamFailed.WrapMessage(err.Error())
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	feedback, err := g.provider.Generate(callCtx, prompt, g.maxTokens)
	g.metrics.ObserveCall(stageGeneration, started)
	if err != nil {
		g.metrics.RecordStage(stageGeneration, metrics.OutcomeError)
		g.log(ctx).Error("Feedback generation failed", slog.Any("error", err))

		return "", domainerrors.ErrUpstreamFailed.WrapMessage(err.Error())
	}
	// Blocked or truncated candidates come back as an empty text.
	if strings.TrimSpace(feedback) == "" {
		g.metrics.RecordStage(stageGeneration, metrics.OutcomeError)
		g.log(ctx).Error("Feedback generation returned no text")

		return "", domainerrors.ErrUpstreamFailed.WrapMessage("empty generation output")
	}

	g.metrics.RecordStage(stageGeneration, metrics.OutcomeOK)
	g.log(ctx).Debug("Feedback generated", slog.Int("length", len(feedback)), slog.Int("tips", len(tips)))

	return feedback, nil
}
