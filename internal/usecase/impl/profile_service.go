// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo repository.UserRepository
	identity service.IdentityProvider
	logger   *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Identity service.IdentityProvider
	Logger   *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo: params.UserRepo,
		identity: params.Identity,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error) {
	srv.log(ctx).Debug("Getting user profile", slog.String("userID", userID))

	profile, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, userError(err, "failed to find user")
	}

	return profile, nil
}

// WatchProfile streams the caller's profile.
func (srv *profileService) WatchProfile(ctx context.Context, userID string, handler func(*entity.UserProfile)) (repository.Subscription, error) {
	sub, err := srv.userRepo.Watch(ctx, userID, handler)
	if err != nil {
		return nil, errors.Wrap(err, "failed to watch profile")
	}

	return sub, nil
}

// UpdateProfile applies self-service edits and returns the updated profile.
func (srv *profileService) UpdateProfile(ctx context.Context, userID string, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	changes := &entity.ProfileChanges{
		DisplayName:    input.DisplayName,
		Phone:          input.Phone,
		Address:        input.Address,
		RestaurantName: input.RestaurantName,
		VehicleType:    input.VehicleType,
	}
	if changes.IsEmpty() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "no profile field to update")
	}

	if err := srv.userRepo.ApplyChanges(ctx, userID, changes); err != nil {
		return nil, userError(err, "failed to update profile")
	}

	srv.log(ctx).Info("Profile updated", slog.String("userID", userID))

	return srv.GetProfile(ctx, userID)
}

// ListUsers lists profiles holding role, or every profile when role is empty.
func (srv *profileService) ListUsers(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error) {
	if role != "" && !role.IsValid() {
		return nil, errors.Wrap(domainerrors.ErrInvalidRole, string(role))
	}

	profiles, err := srv.userRepo.FindByRole(ctx, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return profiles, nil
}

// SetRole overwrites a user's role. Admins cannot demote themselves.
func (srv *profileService) SetRole(ctx context.Context, actorID, userID string, role entity.Role) error {
	if !role.IsValid() {
		return errors.Wrap(domainerrors.ErrInvalidRole, string(role))
	}
	if actorID == userID && role != entity.RoleAdmin {
		return domainerrors.ErrForbidden.WithDetails("admins cannot change their own role")
	}

	if err := srv.userRepo.SetRole(ctx, userID, role); err != nil {
		return userError(err, "failed to set role")
	}

	srv.log(ctx).Info("User role changed",
		slog.String("actorID", actorID),
		slog.String("userID", userID),
		slog.String("role", role.String()),
	)

	return nil
}

// SetStatus suspends or reactivates a user. Suspension also disables
// sign-in and revokes the sessions of the identity.
func (srv *profileService) SetStatus(ctx context.Context, actorID, userID string, status entity.UserStatus) error {
	if !status.IsValid() {
		return errors.Wrapf(domainerrors.ErrValidationFailed, "unknown user status %q", status)
	}
	if actorID == userID {
		return domainerrors.ErrForbidden.WithDetails("admins cannot change their own status")
	}

	if err := srv.userRepo.SetStatus(ctx, userID, status); err != nil {
		return userError(err, "failed to set status")
	}

	suspended := status == entity.UserStatusSuspended
	if err := srv.identity.SetDisabled(ctx, userID, suspended); err != nil {
		return translateIdentityError(err, "failed to update identity")
	}
	if suspended {
		if err := srv.identity.RevokeSessions(ctx, userID); err != nil {
			return translateIdentityError(err, "failed to revoke sessions")
		}
	}

	srv.log(ctx).Info("User status changed",
		slog.String("actorID", actorID),
		slog.String("userID", userID),
		slog.String("status", string(status)),
	)

	return nil
}

// DeleteUser removes the profile and the identity behind it.
func (srv *profileService) DeleteUser(ctx context.Context, actorID, userID string) error {
	if actorID == userID {
		return domainerrors.ErrForbidden.WithDetails("admins cannot delete themselves")
	}

	if _, err := srv.userRepo.FindByID(ctx, userID); err != nil {
		return userError(err, "failed to find user")
	}

	if err := srv.userRepo.Delete(ctx, userID); err != nil {
		return errors.Wrap(err, "failed to delete profile")
	}

	if err := srv.identity.DeleteIdentity(ctx, userID); err != nil && !errors.Is(err, service.ErrIdentityNotFound) {
		return translateIdentityError(err, "failed to delete identity")
	}

	srv.log(ctx).Info("User deleted",
		slog.String("actorID", actorID),
		slog.String("userID", userID),
	)

	return nil
}

// userError maps a missing profile onto ErrUserNotFound.
func userError(err error, action string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, action)
	}

	return errors.Wrap(err, action)
}
