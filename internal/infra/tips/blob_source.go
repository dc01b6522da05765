// Package tips loads the curated resume advice corpus from a blob bucket.
package tips

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"

	"resumecoach/config"
	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/service"
	"resumecoach/internal/util"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
)

// DefaultKey is the object read when no key is configured.
const DefaultKey = "tips.jsonl"

type blobSource struct {
	url    string
	bucket *blob.Bucket
	key    string
}

// NewBlobSource reads tips from the bucket URL in the tips configuration.
func NewBlobSource(cfg *config.Config) (service.TipSource, error) {
	if cfg.Tips == nil || cfg.Tips.BucketURL == "" {
		return nil, errors.New("tips bucket URL is not configured")
	}

	return &blobSource{
		url: cfg.Tips.BucketURL,
		key: keyOrDefault(cfg.Tips.Key),
	}, nil
}

// NewBucketSource reads tips from an already opened bucket. The caller keeps ownership.
func NewBucketSource(bucket *blob.Bucket, key string) service.TipSource {
	return &blobSource{
		bucket: bucket,
		key:    keyOrDefault(key),
	}
}

func keyOrDefault(key string) string {
	if key == "" {
		return DefaultKey
	}

	return key
}

// Load reads the corpus object. Each non-empty line is either a JSON object
// {"id","text"} or the tip text itself; lines starting with # are comments.
func (s *blobSource) Load(ctx context.Context) ([]entity.Tip, error) {
	bucket := s.bucket
	if bucket == nil {
		var err error
		bucket, err = blob.OpenBucket(ctx, s.url)
		if err != nil {
			return nil, errors.Wrap(err, "failed to open tips bucket")
		}
		defer bucket.Close()
	}

	data, err := bucket.ReadAll(ctx, s.key)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read tips object %s", s.key)
	}

	return Parse(data)
}

type tipLine struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Parse decodes a tip corpus. Tips without an id get a content checksum; duplicates by
// id keep the first occurrence.
func Parse(data []byte) ([]entity.Tip, error) {
	tips := make([]entity.Tip, 0)
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tip := tipLine{Text: line}
		if strings.HasPrefix(line, "{") {
			tip = tipLine{}
			if err := json.Unmarshal([]byte(line), &tip); err != nil {
				return nil, errors.Wrapf(err, "invalid tip on line %d", lineNo)
			}
			tip.Text = strings.TrimSpace(tip.Text)
			if tip.Text == "" {
				return nil, errors.Errorf("tip on line %d has no text", lineNo)
			}
		}

		if tip.ID == "" {
			tip.ID = util.ContentChecksum(tip.Text)
		}
		if _, ok := seen[tip.ID]; ok {
			continue
		}
		seen[tip.ID] = struct{}{}

		tips = append(tips, entity.Tip{ID: tip.ID, Text: tip.Text})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to scan tips")
	}

	return tips, nil
}
