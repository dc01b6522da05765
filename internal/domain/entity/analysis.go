package entity

import (
	"time"

	"github.com/google/uuid"
)

// AnalysisRecord is an append-only history entry of one completed analysis.
type AnalysisRecord struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"-"`
	Timestamp      time.Time `json:"timestamp"`
	ResumeText     string    `json:"resume_text"`
	JobDescription *string   `json:"job_description"`
	AIFeedback     string    `json:"ai_feedback"`
}

// ModerationVerdict is the gate's classification of one request. It is never persisted.
type ModerationVerdict struct {
	IsResume             bool   `json:"is_resume"`
	IsAppropriateRequest bool   `json:"is_appropriate_request"`
	Reason               string `json:"reason"`
}

// Tip is a curated resume advice snippet stored in the vector index.
type Tip struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
