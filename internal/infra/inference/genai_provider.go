package inference

import (
	"context"

	"resumecoach/config"
	"resumecoach/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/genai"
)

// genAIProvider implements InferenceProvider on the Gemini API.
type genAIProvider struct {
	models          *genai.Models
	moderationModel string
	generationModel string
	embeddingModel  string
	dimensions      int32
}

// NewGenAIProvider creates a Gemini backed provider.
func NewGenAIProvider(ctx context.Context, cfg *config.AIConfig) (service.InferenceProvider, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("ai.apiKey is required for the genai provider")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create genai client")
	}

	return &genAIProvider{
		models:          client.Models,
		moderationModel: cfg.ModerationModel,
		generationModel: cfg.GenerationModel,
		embeddingModel:  cfg.EmbeddingModel,
		dimensions:      int32(cfg.EmbeddingDimensions),
	}, nil
}

// Classify asks the moderation model for a JSON object.
func (p *genAIProvider) Classify(ctx context.Context, prompt string) (string, error) {
	resp, err := p.models.GenerateContent(ctx, p.moderationModel, genai.Text(prompt), &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		Temperature:      genai.Ptr[float32](0),
	})
	if err != nil {
		return "", errors.Wrap(err, "genai classify")
	}

	return resp.Text(), nil
}

// Embed returns the embedding of text.
func (p *genAIProvider) Embed(ctx context.Context, text string) ([]float32, error) {
	embedConfig := &genai.EmbedContentConfig{}
	if p.dimensions > 0 {
		embedConfig.OutputDimensionality = genai.Ptr(p.dimensions)
	}

	resp, err := p.models.EmbedContent(ctx, p.embeddingModel, genai.Text(text), embedConfig)
	if err != nil {
		return nil, errors.Wrap(err, "genai embed")
	}
	if len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, errors.New("genai embed returned no vector")
	}

	return resp.Embeddings[0].Values, nil
}

// Generate runs the generation model with an output token ceiling.
func (p *genAIProvider) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	resp, err := p.models.GenerateContent(ctx, p.generationModel, genai.Text(prompt), &genai.GenerateContentConfig{
		MaxOutputTokens: int32(maxTokens),
	})
	if err != nil {
		return "", errors.Wrap(err, "genai generate")
	}

	return resp.Text(), nil
}
