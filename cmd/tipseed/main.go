// Package main implements tipseed, the CLI that fills and inspects the curated tip index.
package main

import (
	"context"
	"log/slog"
	"os"

	"resumecoach/config"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/inference"
	logs "resumecoach/internal/infra/log"
	"resumecoach/internal/infra/vectorindex"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// version information
var version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tipseed",
	Short: "Seed and query the resume tip index",
	Long: `tipseed loads the curated resume advice corpus into the vector index used by the
analysis pipeline, and lets you check which tips a given text retrieves.

Configuration is read the same way as the server: config/config.yaml overridden by
environment variables (e.g. VECTOR_PROVIDER=qdrant, TIPS_BUCKETURL=file:///srv/tips).`,
	Version:      version,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(queryCmd)
}

// runtimeDeps are the pieces both commands need.
type runtimeDeps struct {
	cfg      *config.Config
	logger   *slog.Logger
	provider service.InferenceProvider
	index    service.TipIndex
}

func openRuntime(ctx context.Context) (*runtimeDeps, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, err
	}

	provider, err := inference.NewInferenceProvider(inference.ProviderParams{
		Ctx:    ctx,
		Config: cfg,
		Logger: logger,
	})
	if err != nil {
		return nil, err
	}

	index, err := vectorindex.Open(cfg, logger)
	if err != nil {
		return nil, err
	}

	return &runtimeDeps{
		cfg:      cfg,
		logger:   logger,
		provider: provider,
		index:    index,
	}, nil
}
