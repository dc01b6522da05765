package main

import (
	"context"
	"fmt"
	"time"

	"resumecoach/config"
	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/infra/tips"
	"resumecoach/internal/usecase/impl"
	"resumecoach/internal/util"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	seedBucketURL string
	seedKey       string
	seedTimeout   time.Duration
)

func init() {
	seedCmd.Flags().StringVar(&seedBucketURL, "bucket", "", "blob bucket URL holding the corpus (defaults to tips.bucketUrl)")
	seedCmd.Flags().StringVar(&seedKey, "key", "", "object key of the corpus (defaults to tips.key)")
	seedCmd.Flags().DurationVar(&seedTimeout, "timeout", 30*time.Minute, "overall deadline for the seed run")
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Embed the tip corpus and upsert it into the index",
	Long: `Load the corpus object (JSON lines {"id","text"} or one tip per line), embed
every tip and upsert it into the configured index. Tip ids are content checksums,
so running seed twice leaves the index unchanged.

Examples:
  # Seed from the configured bucket
  tipseed seed

  # Seed from a local directory
  tipseed seed --bucket file:///srv/resumecoach/tips --key tips.jsonl`,
	RunE: runSeed,
}

func runSeed(cmd *cobra.Command, _ []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), seedTimeout)
	defer cancel()

	deps, err := openRuntime(ctx)
	if err != nil {
		return err
	}
	defer deps.index.Close()

	if deps.cfg.Tips == nil {
		deps.cfg.Tips = &config.TipsConfig{}
	}
	if seedBucketURL != "" {
		deps.cfg.Tips.BucketURL = seedBucketURL
	}
	if seedKey != "" {
		deps.cfg.Tips.Key = seedKey
	}

	source, err := tips.NewBlobSource(deps.cfg)
	if err != nil {
		return err
	}
	measured := &measuredSource{source: source}

	seeder := impl.NewTipSeeder(impl.TipSeederParams{
		Source:   measured,
		Provider: deps.provider,
		Index:    deps.index,
		Logger:   deps.logger,
	})

	started := time.Now()
	seeded, err := seeder.Seed(ctx)
	if err != nil {
		return errors.Wrap(err, "seed failed")
	}

	total, err := deps.index.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "count failed")
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d tips (%s of text) in %s, index now holds %d tips\n",
		seeded, util.FormatBytes(measured.bytes), util.FormatDuration(time.Since(started)), total)

	return nil
}

// measuredSource records how much tip text the seeder loaded.
type measuredSource struct {
	source service.TipSource
	bytes  int64
}

func (m *measuredSource) Load(ctx context.Context) ([]entity.Tip, error) {
	loaded, err := m.source.Load(ctx)
	if err != nil {
		return nil, err
	}

	for _, tip := range loaded {
		m.bytes += int64(len(tip.Text))
	}

	return loaded, nil
}
