package service

import (
	"context"
)

// Application event types
const (
	EventApplicationSubmitted     = "application.submitted"
	EventApplicationStatusChanged = "application.status_changed"
)

// ApplicationEvent represents an application lifecycle change processed by the worker
type ApplicationEvent struct {
	RequestID       string `json:"request_id,omitempty"` // For distributed tracing
	EventID         string `json:"event_id"`
	EventType       string `json:"event_type"`
	ApplicationType string `json:"application_type"`
	UserID          string `json:"user_id"`
	ApplicantName   string `json:"applicant_name"`
	ApplicantEmail  string `json:"applicant_email"`
	Status          string `json:"status"`
	ReviewerID      string `json:"reviewer_id,omitempty"`
	AdminNotes      string `json:"admin_notes,omitempty"`
	OccurredAt      string `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishApplicationEvent publishes an application event for async processing
	PublishApplicationEvent(ctx context.Context, event *ApplicationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
