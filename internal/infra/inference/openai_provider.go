package inference

import (
	"context"

	"resumecoach/config"
	"resumecoach/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

// openAIProvider implements InferenceProvider for any OpenAI compatible endpoint
// (OpenAI, vLLM, TEI, Ollama, Workers AI) through langchaingo.
type openAIProvider struct {
	moderation llms.Model
	generation llms.Model
	embedder   embeddings.Embedder
}

// NewOpenAIProvider creates an OpenAI compatible provider. Each capability gets its own
// client because langchaingo binds the model name at construction.
func NewOpenAIProvider(cfg *config.AIConfig) (service.InferenceProvider, error) {
	newLLM := func(model string) (*openai.LLM, error) {
		opts := []openai.Option{
			openai.WithModel(model),
			openai.WithToken(cfg.APIKey),
		}
		if cfg.BaseURL != "" {
			opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
		}
		if cfg.EmbeddingModel != "" {
			opts = append(opts, openai.WithEmbeddingModel(cfg.EmbeddingModel))
		}

		llm, err := openai.New(opts...)

		return llm, errors.Wrapf(err, "failed to create openai client for %s", model)
	}

	moderation, err := newLLM(cfg.ModerationModel)
	if err != nil {
		return nil, err
	}
	generation, err := newLLM(cfg.GenerationModel)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(generation)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create embedder")
	}

	return &openAIProvider{
		moderation: moderation,
		generation: generation,
		embedder:   embedder,
	}, nil
}

// Classify asks the moderation model for a JSON object.
func (p *openAIProvider) Classify(ctx context.Context, prompt string) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, p.moderation, prompt,
		llms.WithJSONMode(),
		llms.WithTemperature(0),
	)
	if err != nil {
		return "", errors.Wrap(err, "openai classify")
	}

	return text, nil
}

// Embed returns the embedding of text.
func (p *openAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	vector, err := p.embedder.EmbedQuery(ctx, text)
	if err != nil {
		return nil, errors.Wrap(err, "openai embed")
	}
	if len(vector) == 0 {
		return nil, errors.New("openai embed returned no vector")
	}

	return vector, nil
}

// Generate runs the generation model with an output token ceiling.
func (p *openAIProvider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	text, err := llms.GenerateFromSinglePrompt(ctx, p.generation, prompt, llms.WithMaxTokens(maxTokens))
	if err != nil {
		return "", errors.Wrap(err, "openai generate")
	}

	return text, nil
}
