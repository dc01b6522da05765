package repository

import (
	"context"

	"resumecoach/internal/domain/entity"

	"github.com/google/uuid"
)

// AnalysisRepository stores the append-only analysis history.
type AnalysisRepository interface {
	// Create appends a record. ID and Timestamp are assigned when empty.
	Create(ctx context.Context, record *entity.AnalysisRecord) error

	// FindByUser returns the user's own records, newest first, at most limit entries.
	FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error)
}
