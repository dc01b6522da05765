package vectorindex

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"resumecoach/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func TestOpen(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("chromem is the default", func(t *testing.T) {
		index, err := Open(&config.Config{Vector: &config.VectorConfig{Collection: "tips"}}, logger)
		require.NoError(t, err)
		defer index.Close()

		assert.IsType(t, &chromemIndex{}, index)
	})

	t.Run("unknown provider", func(t *testing.T) {
		_, err := Open(&config.Config{Vector: &config.VectorConfig{Provider: "faiss"}}, logger)
		assert.ErrorContains(t, err, "unknown vector provider")
	})

	t.Run("missing configuration", func(t *testing.T) {
		_, err := Open(&config.Config{}, logger)
		assert.Error(t, err)
	})
}

func TestNewTipIndex_ClosesOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)

	index, err := NewTipIndex(IndexParams{
		Lc:     lc,
		Config: &config.Config{Vector: &config.VectorConfig{Provider: ProviderChromem, Collection: "tips"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()
	count, err := index.Count(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
	lc.RequireStop()
}
