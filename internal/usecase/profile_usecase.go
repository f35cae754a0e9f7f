// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

// --- Input DTOs ---

// UpdateProfileInput defines the self-service fields of a profile.
type UpdateProfileInput struct {
	DisplayName    *string `json:"display_name,omitempty" validate:"omitempty,min=1"`
	Phone          *string `json:"phone,omitempty"`
	Address        *string `json:"address,omitempty"`
	RestaurantName *string `json:"restaurant_name,omitempty"`
	VehicleType    *string `json:"vehicle_type,omitempty"`
}

// ProfileUsecase defines the interface for profile-related business operations.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)
	WatchProfile(ctx context.Context, userID string, handler func(*entity.UserProfile)) (repository.Subscription, error)
	UpdateProfile(ctx context.Context, userID string, input *UpdateProfileInput) (*entity.UserProfile, error)

	// Admin operations
	ListUsers(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error)
	SetRole(ctx context.Context, actorID, userID string, role entity.Role) error
	SetStatus(ctx context.Context, actorID, userID string, status entity.UserStatus) error
	DeleteUser(ctx context.Context, actorID, userID string) error
}
