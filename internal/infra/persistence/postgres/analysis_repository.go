package postgres

import (
	"context"
	"time"

	"resumecoach/internal/domain/entity"
	domainerrors "resumecoach/internal/domain/errors"
	"resumecoach/internal/domain/repository"
	"resumecoach/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// analysisRepository implements the domain AnalysisRepository interface using GORM.
type analysisRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewAnalysisRepository is the constructor for analysisRepository.
func NewAnalysisRepository(db *gorm.DB) repository.AnalysisRepository {
	return &analysisRepository{db: db, now: time.Now}
}

// Create appends a history record. Server time is authoritative for the timestamp.
func (repo *analysisRepository) Create(ctx context.Context, record *entity.AnalysisRecord) error {
	recordM := fromAnalysisDomain(record)
	if recordM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate record id")
		}
		recordM.ID = id
	}
	if recordM.Timestamp.IsZero() {
		recordM.Timestamp = repo.now().UTC()
	}

	if err := repo.db.WithContext(ctx).Create(recordM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "analysis owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "create analysis record")
	}

	record.ID = recordM.ID
	record.Timestamp = recordM.Timestamp

	return nil
}

// FindByUser lists the user's records newest first. Ties on timestamp fall back to the
// time-ordered id so pages are stable.
func (repo *analysisRepository) FindByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.AnalysisRecord, error) {
	var recordsM []*model.AnalysisRecordModel
	err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order(`"timestamp" DESC`).
		Order("id DESC").
		Limit(limit).
		Find(&recordsM).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "list analysis records")
	}

	records := make([]*entity.AnalysisRecord, 0, len(recordsM))
	for _, recordM := range recordsM {
		records = append(records, toAnalysisDomain(recordM))
	}

	return records, nil
}

func toAnalysisDomain(data *model.AnalysisRecordModel) *entity.AnalysisRecord {
	return &entity.AnalysisRecord{
		ID:             data.ID,
		UserID:         data.UserID,
		Timestamp:      data.Timestamp,
		ResumeText:     data.ResumeText,
		JobDescription: data.JobDescription,
		AIFeedback:     data.AIFeedback,
	}
}

func fromAnalysisDomain(data *entity.AnalysisRecord) *model.AnalysisRecordModel {
	return &model.AnalysisRecordModel{
		ID:             data.ID,
		UserID:         data.UserID,
		Timestamp:      data.Timestamp,
		ResumeText:     data.ResumeText,
		JobDescription: data.JobDescription,
		AIFeedback:     data.AIFeedback,
	}
}
