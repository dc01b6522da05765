package vectorindex

import (
	"context"
	"time"

	"resumecoach/config"
	"resumecoach/internal/domain/entity"
	"resumecoach/internal/domain/lifecycle"
	"resumecoach/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"
)

// Idle connections between analyses are kept warm rather than re-dialed.
const (
	qdrantKeepaliveTime    = 30 * time.Second
	qdrantKeepaliveTimeout = 10 * time.Second
)

// tipNamespace derives stable Qdrant point ids from tip ids.
var tipNamespace = uuid.MustParse("6f1c9a52-3d1e-4d55-9a7b-2f0c5f4e8b11")

// qdrantIndex keeps tips in a Qdrant collection over gRPC.
type qdrantIndex struct {
	client     *qdrant.Client
	collection string
	dimensions int
}

// NewQdrantIndex connects to Qdrant and creates the collection when missing.
func NewQdrantIndex(cfg *config.VectorConfig, dimensions int) (service.TipIndex, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Qdrant.Host,
		Port:   cfg.Qdrant.Port,
		APIKey: cfg.Qdrant.APIKey,
		UseTLS: cfg.Qdrant.UseTLS,
		GrpcOptions: []grpc.DialOption{
			grpc.WithKeepaliveParams(keepalive.ClientParameters{
				Time:                qdrantKeepaliveTime,
				Timeout:             qdrantKeepaliveTimeout,
				PermitWithoutStream: true,
			}),
		},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create qdrant client")
	}

	idx := &qdrantIndex{
		client:     client,
		collection: cfg.Collection,
		dimensions: dimensions,
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	if err := idx.ensureCollection(ctx); err != nil {
		_ = client.Close()

		return nil, err
	}

	return idx, nil
}

func (idx *qdrantIndex) ensureCollection(ctx context.Context) error {
	exists, err := idx.client.CollectionExists(ctx, idx.collection)
	if err != nil {
		return errors.Wrapf(err, "failed to check qdrant collection %s", idx.collection)
	}
	if exists {
		return nil
	}

	if idx.dimensions <= 0 {
		return errors.New("embedding dimensions are required to create the qdrant collection")
	}

	err = idx.client.CreateCollection(ctx, &qdrant.CreateCollection{
		CollectionName: idx.collection,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     uint64(idx.dimensions),
			Distance: qdrant.Distance_Cosine,
		}),
	})

	return errors.Wrapf(err, "failed to create qdrant collection %s", idx.collection)
}

// Query returns the nearest tips in the order Qdrant reports them.
func (idx *qdrantIndex) Query(ctx context.Context, vector []float32, topK int) ([]service.TipMatch, error) {
	if topK <= 0 {
		return []service.TipMatch{}, nil
	}

	points, err := idx.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: idx.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          qdrant.PtrOf(uint64(topK)),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, errors.Wrap(err, "qdrant query")
	}

	matches := make([]service.TipMatch, 0, len(points))
	for _, point := range points {
		payload := point.GetPayload()
		id := payload[metadataTipID].GetStringValue()
		if id == "" {
			id = point.GetId().GetUuid()
		}
		matches = append(matches, service.TipMatch{
			ID:    id,
			Text:  payload[metadataText].GetStringValue(),
			Score: point.GetScore(),
		})
	}

	return matches, nil
}

// Upsert adds or replaces tips. Point ids are derived from tip ids so reseeding is idempotent.
func (idx *qdrantIndex) Upsert(ctx context.Context, tips []entity.Tip, vectors [][]float32) error {
	if len(tips) != len(vectors) {
		return errors.Errorf("got %d tips but %d vectors", len(tips), len(vectors))
	}
	if len(tips) == 0 {
		return nil
	}

	points := make([]*qdrant.PointStruct, len(tips))
	for i, tip := range tips {
		points[i] = &qdrant.PointStruct{
			Id:      qdrant.NewIDUUID(pointID(tip.ID)),
			Vectors: qdrant.NewVectors(vectors[i]...),
			Payload: qdrant.NewValueMap(map[string]any{
				metadataText:  tip.Text,
				metadataTipID: tip.ID,
			}),
		}
	}

	_, err := idx.client.Upsert(ctx, &qdrant.UpsertPoints{
		CollectionName: idx.collection,
		Wait:           qdrant.PtrOf(true),
		Points:         points,
	})

	return errors.Wrap(err, "qdrant upsert")
}

// Count reports the exact number of points in the collection.
func (idx *qdrantIndex) Count(ctx context.Context) (int, error) {
	count, err := idx.client.Count(ctx, &qdrant.CountPoints{
		CollectionName: idx.collection,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, errors.Wrap(err, "qdrant count")
	}

	return int(count), nil
}

// Close releases the gRPC connection.
func (idx *qdrantIndex) Close() error {
	return errors.WithStack(idx.client.Close())
}

func pointID(tipID string) string {
	return uuid.NewSHA1(tipNamespace, []byte(tipID)).String()
}
