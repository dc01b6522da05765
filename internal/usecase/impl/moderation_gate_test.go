package impl

import (
	"context"
	"testing"
	"time"

	domainerrors "resumecoach/internal/domain/errors"
	mockSvc "resumecoach/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestModerationGate(t *testing.T) (*moderationGate, *mockSvc.MockInferenceProvider) {
	provider := mockSvc.NewMockInferenceProvider(t)
	gate := NewModerationGate(ModerationGateParams{
		Provider: provider,
		Config:   pipelineTestConfig(),
		Logger:   discardLogger(),
	}).(*moderationGate)
	gate.backoff = time.Millisecond

	return gate, provider
}

func TestModerationGate_Check(t *testing.T) {
	tests := []struct {
		name        string
		verdict     string
		wantErr     bool
		wantMessage string
	}{
		{
			name:    "resume and appropriate request pass",
			verdict: `{"is_resume": true, "is_appropriate_request": true, "reason": ""}`,
		},
		{
			name:        "not a resume uses classifier reason",
			verdict:     `{"is_resume": false, "is_appropriate_request": true, "reason": "This looks like a recipe."}`,
			wantErr:     true,
			wantMessage: "This looks like a recipe.",
		},
		{
			name:        "not a resume falls back to default message",
			verdict:     `{"is_resume": false, "is_appropriate_request": true, "reason": ""}`,
			wantErr:     true,
			wantMessage: domainerrors.NotResumeMessage,
		},
		{
			name:        "inappropriate request falls back to default message",
			verdict:     `{"is_resume": true, "is_appropriate_request": false}`,
			wantErr:     true,
			wantMessage: domainerrors.InappropriateRequestMessage,
		},
		{
			name:        "not a resume is checked before the request",
			verdict:     `{"is_resume": false, "is_appropriate_request": false}`,
			wantErr:     true,
			wantMessage: domainerrors.NotResumeMessage,
		},
		{
			name:    "fenced verdict is accepted",
			verdict: "```json\n{\"is_resume\": true, \"is_appropriate_request\": true}\n```",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, provider := newTestModerationGate(t)
			provider.EXPECT().Classify(mock.Anything, mock.AnythingOfType("string")).Return(tt.verdict, nil).Once()

			err := gate.Check(context.Background(), "Jane Doe\nExperience\nEducation", nil)

			if !tt.wantErr {
				require.NoError(t, err)

				return
			}

			var appErr domainerrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.HTTPCode())
			assert.Equal(t, "MODERATION_REJECTED", appErr.ErrorCode())
			assert.Equal(t, tt.wantMessage, appErr.Message())
		})
	}
}

func TestModerationGate_Classify_PromptCarriesInputs(t *testing.T) {
	gate, provider := newTestModerationGate(t)

	provider.EXPECT().
		Classify(mock.Anything, mock.MatchedBy(func(prompt string) bool {
			return assert.Contains(t, prompt, `Text to check: """Jane Doe resume"""`) &&
				assert.Contains(t, prompt, `User request: """Review for a backend role"""`)
		})).
		Return(`{"is_resume": true, "is_appropriate_request": true}`, nil)

	verdict, err := gate.Classify(context.Background(), "Jane Doe resume", strPtr("Review for a backend role"))
	require.NoError(t, err)
	assert.True(t, verdict.IsResume)
	assert.True(t, verdict.IsAppropriateRequest)
}

func TestModerationGate_Classify_RetriesUnparsableOnce(t *testing.T) {
	gate, provider := newTestModerationGate(t)

	provider.EXPECT().Classify(mock.Anything, mock.Anything).Return("Sure! Here is my answer:", nil).Once()
	provider.EXPECT().Classify(mock.Anything, mock.Anything).Return(`{"is_resume": true, "is_appropriate_request": true}`, nil).Once()

	verdict, err := gate.Classify(context.Background(), "resume", nil)
	require.NoError(t, err)
	assert.True(t, verdict.IsResume)
}

func TestModerationGate_Classify_GivesUpAfterRetry(t *testing.T) {
	gate, provider := newTestModerationGate(t)

	provider.EXPECT().Classify(mock.Anything, mock.Anything).Return("not json", nil).Times(2)

	_, err := gate.Classify(context.Background(), "resume", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrModerationFailed)
}

func TestModerationGate_Classify_MissingFlagIsFailure(t *testing.T) {
	gate, provider := newTestModerationGate(t)

	provider.EXPECT().Classify(mock.Anything, mock.Anything).Return(`{}`, nil).Times(2)

	err := gate.Check(context.Background(), "resume", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrModerationFailed)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Moderation check failed. Please try again.", appErr.Message())
}

func TestModerationGate_Classify_ProviderErrorIsNotRetried(t *testing.T) {
	gate, provider := newTestModerationGate(t)

	provider.EXPECT().Classify(mock.Anything, mock.Anything).Return("", errors.New("upstream 503")).Once()

	_, err := gate.Classify(context.Background(), "resume", nil)
	assert.ErrorIs(t, err, domainerrors.ErrModerationFailed)
}

func TestModerationGate_Classify_AppliesCallTimeout(t *testing.T) {
	gate, provider := newTestModerationGate(t)
	gate.timeout = 20 * time.Millisecond

	provider.EXPECT().
		Classify(mock.Anything, mock.Anything).
		RunAndReturn(func(ctx context.Context, _ string) (string, error) {
			<-ctx.Done()

			return "", ctx.Err()
		}).
		Once()

	_, err := gate.Classify(context.Background(), "resume", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrModerationFailed)
	assert.Contains(t, err.Error(), context.DeadlineExceeded.Error())
}

func TestParseVerdict(t *testing.T) {
	verdict, err := parseVerdict("  ```\n{\"is_resume\": false, \"is_appropriate_request\": true, \"reason\": \"  Not a CV. \"}\n```  ")
	require.NoError(t, err)
	assert.False(t, verdict.IsResume)
	assert.Equal(t, "Not a CV.", verdict.Reason)

	_, err = parseVerdict(`{"is_resume": true}`)
	assert.ErrorIs(t, err, errUnparsableVerdict)

	_, err = parseVerdict(`{"is_resume": "yes", "is_appropriate_request": true}`)
	assert.ErrorIs(t, err, errUnparsableVerdict)
}
