// Package inference adapts hosted model APIs to the domain InferenceProvider port.
package inference

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
	ProviderGenAI  = "genai"
	ProviderOpenAI = "openai"
)

// ProviderParams holds dependencies for InferenceProvider, injected by Fx
type ProviderParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewInferenceProvider creates an InferenceProvider based on configuration
func NewInferenceProvider(params ProviderParams) (service.InferenceProvider, error) {
	cfg := params.Config.AI
	if cfg == nil {
		return nil, errors.New("ai configuration is missing")
	}

	switch strings.ToLower(cfg.Provider) {
	case ProviderGenAI, "":
		params.Logger.Info("Using Gemini inference provider",
			slog.String("moderation_model", cfg.ModerationModel),
			slog.String("generation_model", cfg.GenerationModel),
			slog.String("embedding_model", cfg.EmbeddingModel),
		)

		return NewGenAIProvider(params.Ctx, cfg)

	case ProviderOpenAI:
		params.Logger.Info("Using OpenAI compatible inference provider",
			slog.String("base_url", cfg.BaseURL),
			slog.String("generation_model", cfg.GenerationModel),
		)

		return NewOpenAIProvider(cfg)

	default:
		return nil, errors.Errorf("unknown inference provider: %s", cfg.Provider)
	}
}
