package inference

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"resumecoach/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeOpenAI serves the two endpoints langchaingo calls and records request bodies.
type fakeOpenAI struct {
	mu       sync.Mutex
	bodies   map[string][]string
	chatText string
}

func (f *fakeOpenAI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.bodies[r.URL.Path] = append(f.bodies[r.URL.Path], string(body))
	f.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/chat/completions"):
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-1",
			"object":  "chat.completion",
			"created": 1,
			"model":   "test-model",
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": f.chatText},
				"finish_reason": "stop",
			}},
			"usage": map[string]any{"prompt_tokens": 1, "completion_tokens": 1, "total_tokens": 2},
		})
	case strings.HasSuffix(r.URL.Path, "/embeddings"):
		_ = json.NewEncoder(w).Encode(map[string]any{
			"object": "list",
			"model":  "test-embed",
			"data":   []map[string]any{{"object": "embedding", "index": 0, "embedding": []float64{0.25, 0.5, 0.75}}},
			"usage":  map[string]any{"prompt_tokens": 1, "total_tokens": 1},
		})
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeOpenAI) requests(suffix string) []string {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []string
	for path, bodies := range f.bodies {
		if strings.HasSuffix(path, suffix) {
			out = append(out, bodies...)
		}
	}

	return out
}

func newFakeOpenAIProvider(t *testing.T, chatText string) (*fakeOpenAI, *openAIProvider) {
	t.Helper()

	fake := &fakeOpenAI{bodies: map[string][]string{}, chatText: chatText}
	server := httptest.NewServer(fake)
	t.Cleanup(server.Close)

	provider, err := NewOpenAIProvider(&config.AIConfig{
		APIKey:          "placeholder",
		BaseURL:         server.URL + "/v1",
		ModerationModel: "small-model",
		GenerationModel: "large-model",
		EmbeddingModel:  "embed-model",
	})
	require.NoError(t, err)

	return fake, provider.(*openAIProvider)
}

func TestOpenAIProvider_Classify(t *testing.T) {
	fake, provider := newFakeOpenAIProvider(t, `{"is_resume":true,"is_appropriate_request":true,"reason":""}`)

	text, err := provider.Classify(context.Background(), "classify this")
	require.NoError(t, err)
	assert.JSONEq(t, `{"is_resume":true,"is_appropriate_request":true,"reason":""}`, text)

	bodies := fake.requests("/chat/completions")
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "small-model")
	assert.Contains(t, bodies[0], "json_object")
}

func TestOpenAIProvider_Generate(t *testing.T) {
	fake, provider := newFakeOpenAIProvider(t, "## Feedback")

	text, err := provider.Generate(context.Background(), "review this", 1500)
	require.NoError(t, err)
	assert.Equal(t, "## Feedback", text)

	bodies := fake.requests("/chat/completions")
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "large-model")
	assert.Contains(t, bodies[0], "1500")
}

func TestOpenAIProvider_Embed(t *testing.T) {
	fake, provider := newFakeOpenAIProvider(t, "")

	vector, err := provider.Embed(context.Background(), "resume text")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.25, 0.5, 0.75}, vector)

	bodies := fake.requests("/embeddings")
	require.Len(t, bodies, 1)
	assert.Contains(t, bodies[0], "embed-model")
}

func TestNewInferenceProvider_UnknownProvider(t *testing.T) {
	cfg := &config.Config{AI: &config.AIConfig{Provider: "carrier-pigeon"}}

	_, err := NewInferenceProvider(ProviderParams{Ctx: context.Background(), Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}

func TestNewInferenceProvider_GenAIRequiresKey(t *testing.T) {
	cfg := &config.Config{AI: &config.AIConfig{Provider: ProviderGenAI}}

	_, err := NewInferenceProvider(ProviderParams{Ctx: context.Background(), Config: cfg, Logger: discardLogger()})
	assert.Error(t, err)
}
