package service

import (
	"context"
)

// AnalysisEvent is emitted after an analysis has been returned to the user
type AnalysisEvent struct {
	RequestID         string `json:"request_id,omitempty"` // For distributed tracing
	RecordID          string `json:"record_id,omitempty"`  // Empty when the history write failed
	UserID            string `json:"user_id"`
	HasJobDescription bool   `json:"has_job_description"`
	TipCount          int    `json:"tip_count"`
	FeedbackLength    int    `json:"feedback_length"`
	CompletedAt       string `json:"completed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishAnalysisEvent publishes a completed analysis event
	PublishAnalysisEvent(ctx context.Context, event *AnalysisEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
