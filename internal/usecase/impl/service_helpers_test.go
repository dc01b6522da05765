package impl

import (
	"io"
	"log/slog"
	"time"

	"resumecoach/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func pipelineTestConfig() *config.Config {
	cfg := &config.Config{
		AI:      &config.AIConfig{MaxFeedbackTokens: 1500, ModerationRetries: 1},
		Vector:  &config.VectorConfig{TopK: 3},
		History: &config.HistoryConfig{Limit: 20},
	}
	cfg.AI.Timeouts.Moderation = time.Second
	cfg.AI.Timeouts.Embedding = time.Second
	cfg.AI.Timeouts.Query = time.Second
	cfg.AI.Timeouts.Generation = time.Second

	return cfg
}

func strPtr(s string) *string {
	return &s
}
