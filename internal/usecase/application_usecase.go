package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

// SetStatusInput is an admin review decision.
type SetStatusInput struct {
	Status     entity.ApplicationStatus `json:"status" validate:"required,oneof=pending approved rejected"`
	ReviewerID string                   `json:"-"`
	Notes      string                   `json:"admin_notes"`
}

// ReconcileReport summarizes one run of the profile repair job.
type ReconcileReport struct {
	Scanned  int `json:"scanned"`
	Repaired int `json:"repaired"`
	Failed   int `json:"failed"`
}

// ApplicationUsecase defines the partner application workflow.
type ApplicationUsecase interface {
	// Submit writes the caller's application and promotes their profile.
	// When the application is stored but the promotion fails, the stored
	// application is returned together with ErrProfilePromotionFailed.
	Submit(ctx context.Context, appType entity.ApplicationType, userID string, submission *entity.ApplicationSubmission) (*entity.Application, error)

	// Get returns the caller's application, or nil when none exists.
	Get(ctx context.Context, appType entity.ApplicationType, userID string) (*entity.Application, error)

	// Watch streams the caller's application; the handler receives nil while none exists.
	Watch(ctx context.Context, appType entity.ApplicationType, userID string, handler func(*entity.Application)) (repository.Subscription, error)

	// SetStatus applies an admin decision following the review state machine.
	SetStatus(ctx context.Context, appType entity.ApplicationType, userID string, input *SetStatusInput) (*entity.Application, error)

	// ListByStatus lists applications in a status, most recently submitted first.
	ListByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus) ([]*entity.Application, error)

	// ListPending lists the applications awaiting review.
	ListPending(ctx context.Context, appType entity.ApplicationType) ([]*entity.Application, error)

	// WatchPending streams the applications awaiting review.
	WatchPending(ctx context.Context, appType entity.ApplicationType, handler func([]*entity.Application)) (repository.Subscription, error)

	// ReconcileProfiles retries the profile promotion of applications left unsynced.
	ReconcileProfiles(ctx context.Context, limit int) (*ReconcileReport, error)
}
