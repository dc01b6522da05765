package model

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecordModel mirrors the 'analysis_history' table. Rows are never updated.
type AnalysisRecordModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID         uuid.UUID `gorm:"type:uuid;not null;index:analysis_history_user_time_idx,priority:1"`
	Timestamp      time.Time `gorm:"not null;index:analysis_history_user_time_idx,priority:2,sort:desc"`
	ResumeText     string    `gorm:"type:text;not null"`
	JobDescription *string   `gorm:"type:text"`
	AIFeedback     string    `gorm:"column:ai_feedback;type:text;not null"`
}

// TableName explicitly sets the table name for GORM.
func (AnalysisRecordModel) TableName() string {
	return "analysis_history"
}
