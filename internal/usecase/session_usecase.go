package usecase

import "context"

// AdminSessionUsecase owns the live notification fan-out of signed-in admins.
type AdminSessionUsecase interface {
	// Open starts watching pending applications for the admin. Opening an
	// already open session returns the existing center.
	Open(ctx context.Context, adminID string) (NotificationCenter, error)

	// Get returns the admin's center or ErrAdminSessionNotFound.
	Get(adminID string) (NotificationCenter, error)

	// Close stops the admin's subscriptions and discards the center.
	Close(adminID string)

	// CloseAll closes every open session.
	CloseAll()
}
