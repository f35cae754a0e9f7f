// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrUserNotFound is a domain-specific error returned when a user profile is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the operations on users/{id} profiles.
type UserRepository interface {
	// FindByID retrieves a single profile by the identity provider's user ID.
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)

	// FindByRole lists profiles holding the role. An empty role lists all profiles.
	FindByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error)

	// Create writes a new profile at users/{profile.ID}.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// ApplyChanges merges self-service edits into the profile.
	ApplyChanges(ctx context.Context, id string, changes *entity.ProfileChanges) error

	// PromoteRole sets the role granted by an application and marks hasApplied.
	PromoteRole(ctx context.Context, id string, role entity.Role) error

	// SetRole overwrites the role.
	SetRole(ctx context.Context, id string, role entity.Role) error

	// SetStatus overwrites the account status.
	SetStatus(ctx context.Context, id string, status entity.UserStatus) error

	// Delete removes the profile.
	Delete(ctx context.Context, id string) error

	// Watch delivers the profile now and after every change, nil when absent.
	Watch(ctx context.Context, id string, handler func(*entity.UserProfile)) (Subscription, error)
}
