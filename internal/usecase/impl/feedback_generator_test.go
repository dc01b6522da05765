package impl

import (
	"context"
	"testing"

	domainerrors "resumecoach/internal/domain/errors"
	mockSvc "resumecoach/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(t *testing.T) (*feedbackGenerator, *mockSvc.MockInferenceProvider) {
	provider := mockSvc.NewMockInferenceProvider(t)

	return NewFeedbackGenerator(FeedbackGeneratorParams{
		Provider: provider,
		Config:   pipelineTestConfig(),
		Logger:   discardLogger(),
	}).(*feedbackGenerator), provider
}

func TestFeedbackGenerator_WithoutJobDescription(t *testing.T) {
	generator, provider := newTestGenerator(t)

	var prompt string
	provider.EXPECT().
		Generate(mock.Anything, mock.AnythingOfType("string"), 1500).
		Run(func(_ context.Context, p string, _ int) { prompt = p }).
		Return("## Feedback", nil)

	feedback, err := generator.Generate(context.Background(), "Jane Doe", nil, []string{"Tip one.", "Tip two."})
	require.NoError(t, err)
	assert.Equal(t, "## Feedback", feedback)

	assert.Contains(t, prompt, "Contextual Tips:\n- Tip one.\n- Tip two.")
	assert.Contains(t, prompt, "---\nResume:\nJane Doe")
	assert.NotContains(t, prompt, "Job Description:")
	assert.NotContains(t, prompt, "ATS score")
}

func TestFeedbackGenerator_WithJobDescription(t *testing.T) {
	generator, provider := newTestGenerator(t)

	var prompt string
	provider.EXPECT().
		Generate(mock.Anything, mock.Anything, 1500).
		Run(func(_ context.Context, p string, _ int) { prompt = p }).
		Return("## Feedback", nil)

	_, err := generator.Generate(context.Background(), "Jane Doe", strPtr("Senior Go engineer"), []string{"Tip."})
	require.NoError(t, err)

	assert.Contains(t, prompt, "---\nJob Description:\nSenior Go engineer")
	assert.Contains(t, prompt, "Provide the predicted ATS score")
}

func TestFeedbackGenerator_BlankJobDescriptionIsAbsent(t *testing.T) {
	generator, provider := newTestGenerator(t)

	var prompt string
	provider.EXPECT().
		Generate(mock.Anything, mock.Anything, 1500).
		Run(func(_ context.Context, p string, _ int) { prompt = p }).
		Return("ok", nil)

	_, err := generator.Generate(context.Background(), "Jane Doe", strPtr("   "), nil)
	require.NoError(t, err)
	assert.NotContains(t, prompt, "Job Description:")
}

func TestFeedbackGenerator_EmptyContextStillGenerates(t *testing.T) {
	generator, provider := newTestGenerator(t)

	provider.EXPECT().Generate(mock.Anything, mock.Anything, 1500).Return("feedback", nil)

	feedback, err := generator.Generate(context.Background(), "Jane Doe", nil, []string{})
	require.NoError(t, err)
	assert.Equal(t, "feedback", feedback)
}

func TestFeedbackGenerator_ProviderFailure(t *testing.T) {
	generator, provider := newTestGenerator(t)

	provider.EXPECT().Generate(mock.Anything, mock.Anything, 1500).Return("", errors.New("model overloaded"))

	_, err := generator.Generate(context.Background(), "Jane Doe", nil, nil)
	assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
}

func TestFeedbackGenerator_EmptyOutputIsUpstreamFailure(t *testing.T) {
	for _, output := range []string{"", "  \n"} {
		generator, provider := newTestGenerator(t)
		provider.EXPECT().Generate(mock.Anything, mock.Anything, 1500).Return(output, nil)

		feedback, err := generator.Generate(context.Background(), "Jane Doe", nil, []string{"Tip."})

		assert.Empty(t, feedback)
		assert.ErrorIs(t, err, domainerrors.ErrUpstreamFailed)
	}
}
