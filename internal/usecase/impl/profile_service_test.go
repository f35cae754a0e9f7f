package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service  usecase.ProfileUsecase
	userRepo *mockRepo.MockUserRepository
	identity *mockService.MockIdentityProvider
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	identity := mockService.NewMockIdentityProvider(t)

	return profileServiceFixtures{
		service: NewProfileService(ProfileServiceParams{
			UserRepo: userRepo,
			Identity: identity,
			Logger:   newDiscardLogger(),
		}),
		userRepo: userRepo,
		identity: identity,
	}
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetProfile(ctx, "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

func TestProfileService_UpdateProfile(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	name := "Amy Chen"
	phone := "0911"
	fx.userRepo.EXPECT().
		ApplyChanges(ctx, "u1", &entity.ProfileChanges{DisplayName: &name, Phone: &phone}).
		Return(nil)
	fx.userRepo.EXPECT().
		FindByID(ctx, "u1").
		Return(&entity.UserProfile{ID: "u1", DisplayName: name, Phone: phone}, nil)

	profile, err := fx.service.UpdateProfile(ctx, "u1", &usecase.UpdateProfileInput{DisplayName: &name, Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, name, profile.DisplayName)
}

func TestProfileService_UpdateProfile_Empty(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.UpdateProfile(context.Background(), "u1", &usecase.UpdateProfileInput{})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestProfileService_ListUsers_InvalidRole(t *testing.T) {
	fx := createTestProfileService(t)

	_, err := fx.service.ListUsers(context.Background(), entity.Role("chef"))
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidRole))
}

func TestProfileService_SetRole(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().SetRole(ctx, "u1", entity.RoleDeliveryRider).Return(nil)

	require.NoError(t, fx.service.SetRole(ctx, "admin-1", "u1", entity.RoleDeliveryRider))
}

func TestProfileService_SetRole_SelfDemotion(t *testing.T) {
	fx := createTestProfileService(t)

	err := fx.service.SetRole(context.Background(), "admin-1", "admin-1", entity.RoleCustomer)
	assert.Equal(t, "FORBIDDEN", errorCode(err))
}

func TestProfileService_SetStatus_SuspendDisablesIdentity(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().SetStatus(ctx, "u1", entity.UserStatusSuspended).Return(nil)
	fx.identity.EXPECT().SetDisabled(ctx, "u1", true).Return(nil)
	fx.identity.EXPECT().RevokeSessions(ctx, "u1").Return(nil)

	require.NoError(t, fx.service.SetStatus(ctx, "admin-1", "u1", entity.UserStatusSuspended))
}

func TestProfileService_SetStatus_ReactivateEnablesIdentity(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().SetStatus(ctx, "u1", entity.UserStatusActive).Return(nil)
	fx.identity.EXPECT().SetDisabled(ctx, "u1", false).Return(nil)

	require.NoError(t, fx.service.SetStatus(ctx, "admin-1", "u1", entity.UserStatusActive))
}

func TestProfileService_DeleteUser(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "u1").Return(&entity.UserProfile{ID: "u1"}, nil)
	fx.userRepo.EXPECT().Delete(ctx, "u1").Return(nil)
	fx.identity.EXPECT().DeleteIdentity(ctx, "u1").Return(service.ErrIdentityNotFound)

	require.NoError(t, fx.service.DeleteUser(ctx, "admin-1", "u1"))
}

func TestProfileService_DeleteUser_Missing(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	err := fx.service.DeleteUser(ctx, "admin-1", "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}
