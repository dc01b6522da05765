package service

import "context"

// InferenceProvider is the port to the external model capabilities.
// Implementations must be safe for concurrent use.
type InferenceProvider interface {
	// Classify runs a short completion that is asked to answer with a single JSON object.
	// The raw text is returned; callers own the parsing.
	Classify(ctx context.Context, prompt string) (string, error)

	// Embed maps text to a fixed-dimension vector.
	Embed(ctx context.Context, text string) ([]float32, error)

	// Generate runs a completion capped at maxTokens generated tokens.
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
}
