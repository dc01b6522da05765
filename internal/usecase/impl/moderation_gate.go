package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"resumecoach/config"
	deliverycontext "resumecoach/internal/delivery/context"
	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/metrics"
	"resumecoach/internal/usecase"

	"github.com/pkg/errors"
	"github.com/sethvargo/go-retry"
	"go.uber.org/fx"
)

const (
	stageModeration = "moderation"

	defaultModerationTimeout = 15 * time.Second
	moderationRetryBackoff   = 250 * time.Millisecond
)

// errUnparsableVerdict marks classifier output that is not a usable verdict.
var errUnparsableVerdict = errors.New("moderation verdict is not valid JSON with both flags")

type moderationGate struct {
	provider service.InferenceProvider
	metrics  *metrics.Metrics
	logger   *slog.Logger
	retries  uint64
	timeout  time.Duration
	backoff  time.Duration
}

// ModerationGateParams holds dependencies for ModerationGate, injected by Fx.
type ModerationGateParams struct {
	fx.In

	Provider service.InferenceProvider
	Config   *config.Config
	Metrics  *metrics.Metrics `optional:"true"`
	Logger   *slog.Logger
}

// NewModerationGate creates the gate in front of the analysis pipeline.
func NewModerationGate(params ModerationGateParams) usecase.ModerationGate {
	gate := &moderationGate{
		provider: params.Provider,
		metrics:  params.Metrics,
		logger:   params.Logger,
		timeout:  defaultModerationTimeout,
		backoff:  moderationRetryBackoff,
	}
	if ai := params.Config.AI; ai != nil {
		if ai.ModerationRetries > 0 {
			gate.retries = uint64(ai.ModerationRetries)
		}
		if ai.Timeouts.Moderation > 0 {
			gate.timeout = ai.Timeouts.Moderation
		}
	}

	return gate
}

func (g *moderationGate) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, g.logger)
}

// Classify asks the classifier for a verdict. Output that cannot be parsed is retried
// up to the configured number of times; classifier errors are not retried.
func (g *moderationGate) Classify(ctx context.Context, resume string, jobDescription *string) (*entity.ModerationVerdict, error) {
	prompt, err := buildModerationPrompt(resume, jobDescriptionText(jobDescription))
	if err != nil {
		return nil, domainerrors.ErrModerationFailed.WrapMessage(err.Error())
	}

	var verdict *entity.ModerationVerdict
	backoff := retry.WithMaxRetries(g.retries, retry.NewConstant(g.backoff))

	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		raw, err := g.classifyOnce(ctx, prompt)
		if err != nil {
			return err
		}

		parsed, err := parseVerdict(raw)
		if err != nil {
			g.log(ctx).Warn("Moderation verdict could not be parsed", slog.Int("length", len(raw)))

			return retry.RetryableError(err)
		}
		verdict = parsed

		return nil
	})
	if err != nil {
		return nil, domainerrors.ErrModerationFailed.WrapMessage(err.Error())
	}

	return verdict, nil
}

func (g *moderationGate) classifyOnce(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	started := time.Now()
	raw, err := g.provider.Classify(callCtx, prompt)
	g.metrics.ObserveCall(stageModeration, started)

	return raw, errors.Wrap(err, "moderation classifier call failed")
}

// Check applies the policy to the verdict: a non-resume is rejected before an
// inappropriate request, and the classifier's reason wins over the fallback message.
func (g *moderationGate) Check(ctx context.Context, resume string, jobDescription *string) error {
	verdict, err := g.Classify(ctx, resume, jobDescription)
	if err != nil {
		g.metrics.RecordStage(stageModeration, metrics.OutcomeError)
		g.log(ctx).Error("Moderation failed", slog.Any("error", err))

		return err
	}

	var rejection error
	switch {
	case !verdict.IsResume:
		rejection = domainerrors.NewModerationRejection(verdict.Reason, domainerrors.NotResumeMessage)
	case !verdict.IsAppropriateRequest:
		rejection = domainerrors.NewModerationRejection(verdict.Reason, domainerrors.InappropriateRequestMessage)
	}

	if rejection != nil {
		g.metrics.RecordStage(stageModeration, metrics.OutcomeRejected)
		g.log(ctx).Info("Request rejected by moderation",
			slog.Bool("is_resume", verdict.IsResume),
			slog.Bool("is_appropriate_request", verdict.IsAppropriateRequest),
		)

		return rejection
	}

	g.metrics.RecordStage(stageModeration, metrics.OutcomeOK)

	return nil
}

type rawVerdict struct {
	IsResume             *bool  `json:"is_resume"`
	IsAppropriateRequest *bool  `json:"is_appropriate_request"`
	Reason               string `json:"reason"`
}

// parseVerdict accepts a JSON object, optionally wrapped in a Markdown code fence.
// Both flags must be present; a missing flag is not read as false.
func parseVerdict(raw string) (*entity.ModerationVerdict, error) {
	var parsed rawVerdict
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &parsed); err != nil {
		return nil, errors.Wrap(errUnparsableVerdict, err.Error())
	}
	if parsed.IsResume == nil || parsed.IsAppropriateRequest == nil {
		return nil, errors.WithStack(errUnparsableVerdict)
	}

	return &entity.ModerationVerdict{
		IsResume:             *parsed.IsResume,
		IsAppropriateRequest: *parsed.IsAppropriateRequest,
		Reason:               strings.TrimSpace(parsed.Reason),
	}, nil
}

func stripCodeFence(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	return strings.TrimSpace(clean)
}
