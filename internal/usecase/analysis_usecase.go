package usecase

import (
	"context"

	"resumecoach/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalyzeInput is one authenticated analysis request.
type AnalyzeInput struct {
	UserID         uuid.UUID
	ResumeText     string
	JobDescription *string // nil or blank means the analysis is not tailored to a role
}

// AnalyzeOutput is the generated feedback together with the tips that grounded it.
type AnalyzeOutput struct {
	Feedback    string
	ContextTips []string
}

// AnalysisUsecase runs the analysis pipeline and exposes the caller's history.
type AnalysisUsecase interface {
	// Analyze runs moderate -> augment -> generate -> record. A failing stage stops the pipeline.
	Analyze(ctx context.Context, input AnalyzeInput) (*AnalyzeOutput, error)

	// History returns the caller's records, newest first.
	History(ctx context.Context, userID uuid.UUID) ([]*entity.AnalysisRecord, error)
}

// ModerationGate decides whether a request may reach generation.
type ModerationGate interface {
	// Classify asks the classifier for a verdict. An unusable verdict fails with ErrModerationFailed.
	Classify(ctx context.Context, resume string, jobDescription *string) (*entity.ModerationVerdict, error)

	// Check classifies and applies the policy: not a resume, then inappropriate request.
	// A rejection is returned as a ModerationRejection carrying the reason.
	Check(ctx context.Context, resume string, jobDescription *string) error
}

// RetrievalAugmenter finds the curated tips most relevant to a resume.
type RetrievalAugmenter interface {
	// Augment returns tip texts in index order; no matches is an empty, non-nil slice.
	Augment(ctx context.Context, resume string) ([]string, error)
}

// FeedbackGenerator produces the Markdown feedback.
type FeedbackGenerator interface {
	Generate(ctx context.Context, resume string, jobDescription *string, tips []string) (string, error)
}

// HistoryRecorder persists and lists completed analyses.
type HistoryRecorder interface {
	// Record stores the analysis. Failures are logged and reported as false; they never
	// fail the request that produced the analysis.
	Record(ctx context.Context, record *entity.AnalysisRecord) bool

	// List returns the user's records, newest first, capped at the configured limit.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.AnalysisRecord, error)
}

// TipSeeder loads the curated tip corpus into the vector index.
type TipSeeder interface {
	// Seed embeds and upserts every tip from the source and returns how many were indexed.
	Seed(ctx context.Context) (int, error)
}
