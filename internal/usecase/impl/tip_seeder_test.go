package impl

import (
	"context"
	"fmt"
	"testing"

	"resumecoach/internal/domain/entity"
	mockSvc "resumecoach/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type tipSeederFixtures struct {
	seeder   *tipSeeder
	source   *mockSvc.MockTipSource
	provider *mockSvc.MockInferenceProvider
	index    *mockSvc.MockTipIndex
}

func createTestTipSeeder(t *testing.T) tipSeederFixtures {
	source := mockSvc.NewMockTipSource(t)
	provider := mockSvc.NewMockInferenceProvider(t)
	index := mockSvc.NewMockTipIndex(t)

	return tipSeederFixtures{
		seeder: NewTipSeeder(TipSeederParams{
			Source:   source,
			Provider: provider,
			Index:    index,
			Logger:   discardLogger(),
		}).(*tipSeeder),
		source:   source,
		provider: provider,
		index:    index,
	}
}

func TestTipSeeder_Seed_Batches(t *testing.T) {
	fx := createTestTipSeeder(t)
	ctx := context.Background()

	tips := make([]entity.Tip, seedBatchSize+5)
	for i := range tips {
		tips[i] = entity.Tip{ID: fmt.Sprintf("tip-%d", i), Text: fmt.Sprintf("Tip number %d.", i)}
	}

	fx.source.EXPECT().Load(ctx).Return(tips, nil)
	fx.provider.EXPECT().Embed(ctx, mock.AnythingOfType("string")).Return([]float32{1, 0}, nil).Times(len(tips))
	fx.index.EXPECT().
		Upsert(ctx, tips[:seedBatchSize], mock.MatchedBy(func(v [][]float32) bool { return len(v) == seedBatchSize })).
		Return(nil).Once()
	fx.index.EXPECT().
		Upsert(ctx, tips[seedBatchSize:], mock.MatchedBy(func(v [][]float32) bool { return len(v) == 5 })).
		Return(nil).Once()

	count, err := fx.seeder.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(tips), count)
}

func TestTipSeeder_Seed_EmptyCorpus(t *testing.T) {
	fx := createTestTipSeeder(t)

	fx.source.EXPECT().Load(mock.Anything).Return([]entity.Tip{}, nil)

	count, err := fx.seeder.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestTipSeeder_Seed_EmbeddingFailure(t *testing.T) {
	fx := createTestTipSeeder(t)

	fx.source.EXPECT().Load(mock.Anything).Return([]entity.Tip{{ID: "a", Text: "A."}}, nil)
	fx.provider.EXPECT().Embed(mock.Anything, "A.").Return(nil, errors.New("quota"))

	count, err := fx.seeder.Seed(context.Background())
	require.Error(t, err)
	assert.Zero(t, count)
	assert.Contains(t, err.Error(), "tip a")
}

func TestTipSeeder_Seed_SourceFailure(t *testing.T) {
	fx := createTestTipSeeder(t)

	fx.source.EXPECT().Load(mock.Anything).Return(nil, errors.New("bucket missing"))

	_, err := fx.seeder.Seed(context.Background())
	assert.Error(t, err)
}
