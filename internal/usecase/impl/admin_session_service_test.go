package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/docstore"
	"marketplace/internal/infra/persistence/document"
	mockRepo "marketplace/internal/mocks/repository"
	mockService "marketplace/internal/mocks/service"
	mockUsecase "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/alicebob/miniredis/v2"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// adminSessionFixtures wires the session service to the Redis document store
// so that submissions flow through real subscriptions.
type adminSessionFixtures struct {
	sessions usecase.AdminSessionUsecase
	apps     usecase.ApplicationUsecase
	userRepo repository.UserRepository
}

func createTestAdminSessionService(t *testing.T) adminSessionFixtures {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	store := docstore.NewRedisStore(client, "test", newDiscardLogger())
	userRepo := document.NewUserRepository(store)

	publisher := mockService.NewMockEventPublisher(t)
	publisher.EXPECT().PublishApplicationEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	apps := NewApplicationService(ApplicationServiceParams{
		AppRepo:     document.NewApplicationRepository(store),
		UserRepo:    userRepo,
		PartnerRepo: document.NewPartnerRepository(store),
		Publisher:   publisher,
		Logger:      newDiscardLogger(),
	})

	sessions := NewAdminSessionService(AdminSessionServiceParams{
		Config:       newTestConfig(),
		Applications: apps,
		Logger:       newDiscardLogger(),
	})
	t.Cleanup(sessions.CloseAll)

	return adminSessionFixtures{sessions: sessions, apps: apps, userRepo: userRepo}
}

func (env adminSessionFixtures) submitRestaurant(t *testing.T, userID, name string) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, env.userRepo.Create(ctx, &entity.UserProfile{
		ID:     userID,
		Email:  userID + "@example.com",
		Role:   entity.RoleCustomer,
		Status: entity.UserStatusActive,
	}))

	_, err := env.apps.Submit(ctx, entity.ApplicationTypeRestaurant, userID, &entity.ApplicationSubmission{
		Applicant:  entity.Applicant{Name: name, Email: userID + "@example.com", Phone: "0912"},
		Restaurant: &entity.RestaurantDetails{RestaurantName: name + " Kitchen", Cuisine: "thai", Address: "1 Main St"},
	})
	require.NoError(t, err)
}

func TestAdminSessionService_NotifiesNewSubmissionsOnly(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	env.submitRestaurant(t, "existing", "Old")

	center, err := env.sessions.Open(ctx, "admin-1")
	require.NoError(t, err)
	assert.Empty(t, center.List(), "applications pending before the session are the baseline")

	env.submitRestaurant(t, "new-1", "Mei")
	env.submitRestaurant(t, "new-2", "Kai")

	require.Eventually(t, func() bool { return center.UnreadCount() == 2 }, 3*time.Second, 20*time.Millisecond)

	list := center.List()
	ids := []string{list[0].DocumentID, list[1].DocumentID}
	assert.ElementsMatch(t, []string{"new-1", "new-2"}, ids)
	assert.Equal(t, entity.NotificationTypeRestaurantApplication, list[0].Type)

	// Idempotent open returns the same center.
	again, err := env.sessions.Open(ctx, "admin-1")
	require.NoError(t, err)
	assert.Same(t, center, again)
}

func TestAdminSessionService_ReviewDoesNotNotify(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	env.submitRestaurant(t, "u1", "Mei")

	center, err := env.sessions.Open(ctx, "admin-1")
	require.NoError(t, err)

	_, err = env.apps.SetStatus(ctx, entity.ApplicationTypeRestaurant, "u1", &usecase.SetStatusInput{
		Status:     entity.ApplicationStatusApproved,
		ReviewerID: "admin-1",
	})
	require.NoError(t, err)

	env.submitRestaurant(t, "u2", "Kai")

	// 1 -> 0 -> 1 pending: the shrink raises nothing and the regrowth raises one.
	require.Eventually(t, func() bool { return center.UnreadCount() == 1 }, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, "u2", center.List()[0].DocumentID)
}

func TestAdminSessionService_CloseDiscardsCenter(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	_, err := env.sessions.Open(ctx, "admin-1")
	require.NoError(t, err)

	_, err = env.sessions.Get("admin-1")
	require.NoError(t, err)

	env.sessions.Close("admin-1")
	env.sessions.Close("admin-1")

	_, err = env.sessions.Get("admin-1")
	assert.True(t, errors.Is(err, domainerrors.ErrAdminSessionNotFound))
}

func TestAdminSessionService_SessionsAreIndependent(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	first, err := env.sessions.Open(ctx, "admin-1")
	require.NoError(t, err)
	second, err := env.sessions.Open(ctx, "admin-2")
	require.NoError(t, err)

	env.submitRestaurant(t, "u1", "Mei")

	require.Eventually(t, func() bool {
		return first.UnreadCount() == 1 && second.UnreadCount() == 1
	}, 3*time.Second, 20*time.Millisecond)

	first.MarkAllAsRead()
	assert.Equal(t, 0, first.UnreadCount())
	assert.Equal(t, 1, second.UnreadCount())
}

func TestAdminSessionService_OpenDoesNotBlockOtherAdmins(t *testing.T) {
	apps := mockUsecase.NewMockApplicationUsecase(t)
	sub := mockRepo.NewMockSubscription(t)
	sub.EXPECT().Done().Return(make(chan struct{})).Maybe()
	sub.EXPECT().Unsubscribe().Return().Maybe()

	watching := make(chan struct{})
	var once sync.Once
	apps.EXPECT().WatchPending(mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, entity.ApplicationType, func([]*entity.Application)) (repository.Subscription, error) {
			once.Do(func() { close(watching) })

			return sub, nil
		})

	sessions := NewAdminSessionService(AdminSessionServiceParams{
		Config:       newTestConfig(),
		Applications: apps,
		Logger:       newDiscardLogger(),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	opened := make(chan error, 1)
	go func() {
		_, err := sessions.Open(ctx, "admin-1")
		opened <- err
	}()
	<-watching

	start := time.Now()
	sessions.Close("admin-2")
	_, err := sessions.Get("admin-2")
	assert.ErrorIs(t, err, domainerrors.ErrAdminSessionNotFound)
	_, err = sessions.Get("admin-1")
	assert.ErrorIs(t, err, domainerrors.ErrAdminSessionNotFound, "a session is visible only once its baseline arrived")
	assert.Less(t, time.Since(start), 500*time.Millisecond)

	cancel()
	assert.ErrorIs(t, <-opened, context.Canceled)
}

func TestAdminSessionService_ConcurrentOpenSharesOneCenter(t *testing.T) {
	env := createTestAdminSessionService(t)
	ctx := context.Background()

	centers := make([]usecase.NotificationCenter, 4)
	var wg sync.WaitGroup
	for i := range centers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			center, err := env.sessions.Open(ctx, "admin-1")
			assert.NoError(t, err)
			centers[i] = center
		}()
	}
	wg.Wait()

	for _, center := range centers[1:] {
		assert.Same(t, centers[0], center)
	}

	env.submitRestaurant(t, "u1", "Mei")
	require.Eventually(t, func() bool { return centers[0].UnreadCount() == 1 }, 3*time.Second, 20*time.Millisecond)
}
