package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// applicationServiceFixtures holds all test dependencies for application service tests.
type applicationServiceFixtures struct {
	service     usecase.ApplicationUsecase
	appRepo     *mockRepo.MockApplicationRepository
	userRepo    *mockRepo.MockUserRepository
	partnerRepo *mockRepo.MockPartnerRepository
	publisher   *mockService.MockEventPublisher
	now         time.Time
}

func createTestApplicationService(t *testing.T) applicationServiceFixtures {
	appRepo := mockRepo.NewMockApplicationRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	partnerRepo := mockRepo.NewMockPartnerRepository(t)
	publisher := mockService.NewMockEventPublisher(t)

	svc := NewApplicationService(ApplicationServiceParams{
		AppRepo:     appRepo,
		UserRepo:    userRepo,
		PartnerRepo: partnerRepo,
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})
	now := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	svc.(*applicationService).now = fixedClock(now)

	return applicationServiceFixtures{
		service:     svc,
		appRepo:     appRepo,
		userRepo:    userRepo,
		partnerRepo: partnerRepo,
		publisher:   publisher,
		now:         now,
	}
}

func restaurantSubmission() *entity.ApplicationSubmission {
	return &entity.ApplicationSubmission{
		Applicant: entity.Applicant{Name: "Mei", Email: "mei@example.com", Phone: "0912345678"},
		Restaurant: &entity.RestaurantDetails{
			RestaurantName: "Mei's Noodles",
			Cuisine:        "taiwanese",
			Address:        "No. 1, Section 1, Zhongshan Rd",
		},
	}
}

func TestApplicationService_Submit_Success(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().
		Find(ctx, entity.ApplicationTypeRestaurant, "u1").
		Return(nil, repository.ErrApplicationNotFound)
	fx.appRepo.EXPECT().
		Put(ctx, mock.MatchedBy(func(app *entity.Application) bool {
			return app.UserID == "u1" &&
				app.Status == entity.ApplicationStatusPending &&
				app.ProfileSync == entity.ProfileSyncPending &&
				app.SubmittedAt.Equal(fx.now) &&
				app.Restaurant != nil && app.Delivery == nil
		})).
		Return(nil)
	fx.userRepo.EXPECT().
		PromoteRole(ctx, "u1", entity.RoleRestaurantOwner).
		Return(nil)
	fx.appRepo.EXPECT().
		UpdateProfileSync(ctx, entity.ApplicationTypeRestaurant, "u1", entity.ProfileSyncDone, "").
		Return(nil)
	fx.publisher.EXPECT().
		PublishApplicationEvent(ctx, mock.MatchedBy(func(e *service.ApplicationEvent) bool {
			return e.EventType == service.EventApplicationSubmitted &&
				e.UserID == "u1" && e.ApplicationType == "restaurant" && e.EventID != ""
		})).
		Return(nil)

	app, err := fx.service.Submit(ctx, entity.ApplicationTypeRestaurant, "u1", restaurantSubmission())
	require.NoError(t, err)
	assert.Equal(t, entity.ProfileSyncDone, app.ProfileSync)
	assert.Equal(t, "Mei", app.Applicant.Name)
}

func TestApplicationService_Submit_ResubmitWhilePending(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	existing := &entity.Application{UserID: "u1", Type: entity.ApplicationTypeRestaurant, Status: entity.ApplicationStatusPending}
	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(existing, nil)
	fx.appRepo.EXPECT().Put(ctx, mock.AnythingOfType("*entity.Application")).Return(nil)
	fx.userRepo.EXPECT().PromoteRole(ctx, "u1", entity.RoleRestaurantOwner).Return(nil)
	fx.appRepo.EXPECT().UpdateProfileSync(ctx, entity.ApplicationTypeRestaurant, "u1", entity.ProfileSyncDone, "").Return(nil)
	fx.publisher.EXPECT().PublishApplicationEvent(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Submit(ctx, entity.ApplicationTypeRestaurant, "u1", restaurantSubmission())
	require.NoError(t, err)
}

func TestApplicationService_Submit_AlreadyProcessed(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	existing := &entity.Application{UserID: "u1", Type: entity.ApplicationTypeRestaurant, Status: entity.ApplicationStatusApproved}
	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(existing, nil)

	app, err := fx.service.Submit(ctx, entity.ApplicationTypeRestaurant, "u1", restaurantSubmission())
	require.Error(t, err)
	assert.Nil(t, app)
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationAlreadyProcessed))
}

func TestApplicationService_Submit_MissingDetails(t *testing.T) {
	fx := createTestApplicationService(t)

	submission := restaurantSubmission()
	submission.Restaurant = nil

	_, err := fx.service.Submit(context.Background(), entity.ApplicationTypeRestaurant, "u1", submission)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	_, err = fx.service.Submit(context.Background(), entity.ApplicationType("catering"), "u1", submission)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestApplicationService_Submit_PromotionFailureLeavesApplicationPending(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()
	promoteErr := errors.New("profile write rejected")

	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeDelivery, "u2").Return(nil, repository.ErrApplicationNotFound)
	fx.appRepo.EXPECT().Put(ctx, mock.AnythingOfType("*entity.Application")).Return(nil)
	fx.userRepo.EXPECT().PromoteRole(ctx, "u2", entity.RoleDeliveryRider).Return(promoteErr)
	fx.appRepo.EXPECT().
		UpdateProfileSync(ctx, entity.ApplicationTypeDelivery, "u2", entity.ProfileSyncPending, promoteErr.Error()).
		Return(nil)
	fx.publisher.EXPECT().PublishApplicationEvent(ctx, mock.Anything).Return(nil)

	submission := &entity.ApplicationSubmission{
		Applicant: entity.Applicant{Name: "Kai", Email: "kai@example.com", Phone: "0987654321"},
		Delivery:  &entity.DeliveryDetails{LicenseNumber: "L-1", VehicleType: "scooter"},
	}

	app, err := fx.service.Submit(ctx, entity.ApplicationTypeDelivery, "u2", submission)
	require.Error(t, err)
	assert.Equal(t, "PROFILE_PROMOTION_FAILED", errorCode(err))
	require.NotNil(t, app)
	assert.Equal(t, entity.ProfileSyncPending, app.ProfileSync)
	assert.Equal(t, promoteErr.Error(), app.SyncError)
}

func TestApplicationService_Submit_PublishFailureIsNotReturned(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(nil, repository.ErrApplicationNotFound)
	fx.appRepo.EXPECT().Put(ctx, mock.Anything).Return(nil)
	fx.userRepo.EXPECT().PromoteRole(ctx, "u1", entity.RoleRestaurantOwner).Return(nil)
	fx.appRepo.EXPECT().UpdateProfileSync(ctx, entity.ApplicationTypeRestaurant, "u1", entity.ProfileSyncDone, "").Return(nil)
	fx.publisher.EXPECT().PublishApplicationEvent(ctx, mock.Anything).Return(errors.New("topic not found"))

	_, err := fx.service.Submit(ctx, entity.ApplicationTypeRestaurant, "u1", restaurantSubmission())
	require.NoError(t, err)
}

func TestApplicationService_Get_Absent(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(nil, repository.ErrApplicationNotFound)

	app, err := fx.service.Get(ctx, entity.ApplicationTypeRestaurant, "u1")
	require.NoError(t, err)
	assert.Nil(t, app)
}

func TestApplicationService_SetStatus_ApproveProvisionsRestaurant(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	pending := &entity.Application{
		UserID:     "u1",
		Type:       entity.ApplicationTypeRestaurant,
		Status:     entity.ApplicationStatusPending,
		Applicant:  restaurantSubmission().Applicant,
		Restaurant: restaurantSubmission().Restaurant,
	}

	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(pending, nil)
	fx.partnerRepo.EXPECT().
		PutRestaurant(ctx, mock.MatchedBy(func(r *entity.Restaurant) bool {
			return r.ID == "u1" && r.OwnerID == "u1" && r.Name == "Mei's Noodles" && r.Status == entity.RestaurantStatusActive
		})).
		Return(nil)
	fx.appRepo.EXPECT().
		UpdateStatus(ctx, entity.ApplicationTypeRestaurant, "u1", &entity.StatusChange{
			Status:     entity.ApplicationStatusApproved,
			ReviewerID: "admin-1",
			Notes:      "looks good",
			At:         fx.now,
		}).
		Return(nil)
	fx.publisher.EXPECT().
		PublishApplicationEvent(ctx, mock.MatchedBy(func(e *service.ApplicationEvent) bool {
			return e.EventType == service.EventApplicationStatusChanged && e.Status == "approved" && e.ReviewerID == "admin-1"
		})).
		Return(nil)

	app, err := fx.service.SetStatus(ctx, entity.ApplicationTypeRestaurant, "u1", &usecase.SetStatusInput{
		Status:     entity.ApplicationStatusApproved,
		ReviewerID: "admin-1",
		Notes:      "looks good",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApproved, app.Status)
	assert.Equal(t, "admin-1", app.ProcessedBy)
	require.NotNil(t, app.ProcessedAt)
	assert.True(t, app.ProcessedAt.Equal(fx.now))
}

func TestApplicationService_SetStatus_RejectDoesNotProvision(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	pending := &entity.Application{UserID: "u2", Type: entity.ApplicationTypeDelivery, Status: entity.ApplicationStatusPending}
	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeDelivery, "u2").Return(pending, nil)
	fx.appRepo.EXPECT().UpdateStatus(ctx, entity.ApplicationTypeDelivery, "u2", mock.Anything).Return(nil)
	fx.publisher.EXPECT().PublishApplicationEvent(ctx, mock.Anything).Return(nil)

	app, err := fx.service.SetStatus(ctx, entity.ApplicationTypeDelivery, "u2", &usecase.SetStatusInput{
		Status: entity.ApplicationStatusRejected,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusRejected, app.Status)
}

func TestApplicationService_SetStatus_InvalidTransitions(t *testing.T) {
	cases := []struct {
		name string
		from entity.ApplicationStatus
		to   entity.ApplicationStatus
	}{
		{name: "approved back to pending", from: entity.ApplicationStatusApproved, to: entity.ApplicationStatusPending},
		{name: "rejected to approved", from: entity.ApplicationStatusRejected, to: entity.ApplicationStatusApproved},
		{name: "pending to pending", from: entity.ApplicationStatusPending, to: entity.ApplicationStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestApplicationService(t)
			ctx := context.Background()

			current := &entity.Application{UserID: "u1", Type: entity.ApplicationTypeRestaurant, Status: tc.from}
			fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "u1").Return(current, nil)

			_, err := fx.service.SetStatus(ctx, entity.ApplicationTypeRestaurant, "u1", &usecase.SetStatusInput{Status: tc.to})
			require.Error(t, err)
			assert.Equal(t, "INVALID_STATUS_TRANSITION", errorCode(err))
		})
	}
}

func TestApplicationService_SetStatus_NotFound(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeRestaurant, "ghost").Return(nil, repository.ErrApplicationNotFound)

	_, err := fx.service.SetStatus(ctx, entity.ApplicationTypeRestaurant, "ghost", &usecase.SetStatusInput{
		Status: entity.ApplicationStatusApproved,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrApplicationNotFound))
}

func TestApplicationService_SetStatus_ProvisionFailureKeepsPending(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	pending := &entity.Application{UserID: "u2", Type: entity.ApplicationTypeDelivery, Status: entity.ApplicationStatusPending}
	fx.appRepo.EXPECT().Find(ctx, entity.ApplicationTypeDelivery, "u2").Return(pending, nil)
	fx.partnerRepo.EXPECT().PutDriver(ctx, mock.AnythingOfType("*entity.Driver")).Return(errors.New("write failed"))

	_, err := fx.service.SetStatus(ctx, entity.ApplicationTypeDelivery, "u2", &usecase.SetStatusInput{
		Status: entity.ApplicationStatusApproved,
	})
	require.Error(t, err)
	fx.appRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestApplicationService_ReconcileProfiles(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	stuck := &entity.Application{UserID: "u1", Type: entity.ApplicationTypeRestaurant, ProfileSync: entity.ProfileSyncPending}
	broken := &entity.Application{UserID: "u2", Type: entity.ApplicationTypeDelivery, ProfileSync: entity.ProfileSyncPending}

	fx.appRepo.EXPECT().FindUnsynced(ctx, entity.ApplicationTypeRestaurant, 10).Return([]*entity.Application{stuck}, nil)
	fx.appRepo.EXPECT().FindUnsynced(ctx, entity.ApplicationTypeDelivery, 10).Return([]*entity.Application{broken}, nil)

	fx.userRepo.EXPECT().PromoteRole(ctx, "u1", entity.RoleRestaurantOwner).Return(nil)
	fx.appRepo.EXPECT().UpdateProfileSync(ctx, entity.ApplicationTypeRestaurant, "u1", entity.ProfileSyncDone, "").Return(nil)

	fx.userRepo.EXPECT().PromoteRole(ctx, "u2", entity.RoleDeliveryRider).Return(repository.ErrUserNotFound)
	fx.appRepo.EXPECT().
		UpdateProfileSync(ctx, entity.ApplicationTypeDelivery, "u2", entity.ProfileSyncPending, repository.ErrUserNotFound.Error()).
		Return(nil)

	report, err := fx.service.ReconcileProfiles(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, &usecase.ReconcileReport{Scanned: 2, Repaired: 1, Failed: 1}, report)
	assert.Equal(t, entity.ProfileSyncDone, stuck.ProfileSync)
}

func TestApplicationService_ListPending(t *testing.T) {
	fx := createTestApplicationService(t)
	ctx := context.Background()

	apps := []*entity.Application{{UserID: "u1"}, {UserID: "u2"}}
	fx.appRepo.EXPECT().
		FindByStatus(ctx, entity.ApplicationTypeRestaurant, entity.ApplicationStatusPending).
		Return(apps, nil)

	got, err := fx.service.ListPending(ctx, entity.ApplicationTypeRestaurant)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestApplicationService_DeliveryReviewReachesApplicantAndAdmin(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	center, err := env.sessions.Open(ctx, "admin1")
	require.NoError(t, err)

	require.NoError(t, env.userRepo.Create(ctx, &entity.UserProfile{
		ID:     "u1",
		Email:  "alice@example.com",
		Role:   entity.RoleCustomer,
		Status: entity.UserStatusActive,
	}))
	_, err = env.apps.Submit(ctx, entity.ApplicationTypeDelivery, "u1", &entity.ApplicationSubmission{
		Applicant: entity.Applicant{Name: "Alice", Email: "alice@example.com", Phone: "555-0100"},
		Delivery:  &entity.DeliveryDetails{LicenseNumber: "D123", VehicleType: "bike"},
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return center.UnreadCount() == 1 }, 3*time.Second, 20*time.Millisecond)
	notifications := center.List()
	require.Len(t, notifications, 1)
	assert.Equal(t, entity.NotificationTypeDeliveryApplication, notifications[0].Type)
	assert.Equal(t, "u1", notifications[0].DocumentID)

	var (
		mu     sync.Mutex
		latest *entity.Application
	)
	sub, err := env.apps.Watch(ctx, entity.ApplicationTypeDelivery, "u1", func(app *entity.Application) {
		mu.Lock()
		defer mu.Unlock()
		latest = app
	})
	require.NoError(t, err)
	t.Cleanup(sub.Unsubscribe)

	statusSeen := func(want entity.ApplicationStatus) func() bool {
		return func() bool {
			mu.Lock()
			defer mu.Unlock()

			return latest != nil && latest.Status == want
		}
	}
	require.Eventually(t, statusSeen(entity.ApplicationStatusPending), 3*time.Second, 20*time.Millisecond)

	_, err = env.apps.SetStatus(ctx, entity.ApplicationTypeDelivery, "u1", &usecase.SetStatusInput{
		Status:     entity.ApplicationStatusRejected,
		ReviewerID: "admin1",
	})
	require.NoError(t, err)

	require.Eventually(t, statusSeen(entity.ApplicationStatusRejected), 3*time.Second, 20*time.Millisecond)

	mu.Lock()
	assert.Equal(t, "D123", latest.Delivery.LicenseNumber)
	assert.Equal(t, "555-0100", latest.Applicant.Phone)
	assert.Equal(t, "admin1", latest.ProcessedBy)
	mu.Unlock()

	assert.Len(t, center.List(), 1, "a review raises no admin notification")
}
