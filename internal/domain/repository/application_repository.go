package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrApplicationNotFound is returned when no application exists for the user and type.
var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository persists applications at {type}Applications/{userId}.
type ApplicationRepository interface {
	// Find returns the application or ErrApplicationNotFound.
	Find(ctx context.Context, appType entity.ApplicationType, userID string) (*entity.Application, error)

	// Put overwrites the application document; nothing of a previous document survives.
	Put(ctx context.Context, app *entity.Application) error

	// UpdateStatus records a review decision.
	UpdateStatus(ctx context.Context, appType entity.ApplicationType, userID string, change *entity.StatusChange) error

	// UpdateProfileSync records the progress of the profile promotion step.
	UpdateProfileSync(ctx context.Context, appType entity.ApplicationType, userID string, state entity.ProfileSyncState, syncErr string) error

	// FindByStatus lists applications in a status, most recently submitted first.
	FindByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus) ([]*entity.Application, error)

	// FindUnsynced lists applications whose profile promotion has not completed.
	FindUnsynced(ctx context.Context, appType entity.ApplicationType, limit int) ([]*entity.Application, error)

	// Watch delivers the application now and after every change, nil when absent.
	Watch(ctx context.Context, appType entity.ApplicationType, userID string, handler func(*entity.Application)) (Subscription, error)

	// WatchByStatus delivers the applications in a status, most recently submitted first,
	// now and after every change to that set.
	WatchByStatus(ctx context.Context, appType entity.ApplicationType, status entity.ApplicationStatus, handler func([]*entity.Application)) (Subscription, error)
}
