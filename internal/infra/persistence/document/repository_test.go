package document

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/infra/docstore"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (repository.DocumentStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return docstore.NewRedisStore(client, "test", slog.New(slog.NewTextHandler(io.Discard, nil))), mr
}

func newRestaurantApplication(userID string, submittedAt time.Time) *entity.Application {
	return &entity.Application{
		UserID: userID,
		Type:   entity.ApplicationTypeRestaurant,
		Status: entity.ApplicationStatusPending,
		Applicant: entity.Applicant{
			Name:  "Amy Chen",
			Email: "amy@example.com",
			Phone: "0912345678",
		},
		Restaurant: &entity.RestaurantDetails{
			RestaurantName: "Amy's Dumplings",
			Cuisine:        "taiwanese",
			Address:        "1 Main St",
			Phone:          "02-1234-5678",
		},
		SubmittedAt: submittedAt,
		ProfileSync: entity.ProfileSyncPending,
	}
}

func TestUserRepository_CreatePromoteAndRead(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.UserProfile{
		ID:          "u1",
		Email:       "amy@example.com",
		DisplayName: "Amy",
		Role:        entity.RoleCustomer,
		Status:      entity.UserStatusActive,
	}))
	require.NoError(t, repo.PromoteRole(ctx, "u1", entity.RoleRestaurantOwner))

	name := "Amy C."
	require.NoError(t, repo.ApplyChanges(ctx, "u1", &entity.ProfileChanges{DisplayName: &name}))

	profile, err := repo.FindByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleRestaurantOwner, profile.Role)
	assert.True(t, profile.HasApplied)
	assert.Equal(t, "Amy C.", profile.DisplayName)
	assert.Equal(t, "amy@example.com", profile.Email)
	assert.False(t, profile.CreatedAt.IsZero())

	owners, err := repo.FindByRole(ctx, entity.RoleRestaurantOwner)
	require.NoError(t, err)
	assert.Len(t, owners, 1)
}

func TestUserRepository_MissingProfile(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewUserRepository(store)

	_, err := repo.FindByID(context.Background(), "ghost")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.PromoteRole(context.Background(), "ghost", entity.RoleDeliveryRider)
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_UnavailableStore(t *testing.T) {
	store, mr := newTestStore(t)
	repo := NewUserRepository(store)
	mr.Close()

	_, err := repo.FindByID(context.Background(), "u1")

	assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
}

func TestApplicationRepository_RoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewApplicationRepository(store)
	ctx := context.Background()
	submittedAt := time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, newRestaurantApplication("u1", submittedAt)))

	app, err := repo.Find(ctx, entity.ApplicationTypeRestaurant, "u1")
	require.NoError(t, err)
	assert.Equal(t, "u1", app.UserID)
	assert.Equal(t, entity.ApplicationStatusPending, app.Status)
	assert.True(t, submittedAt.Equal(app.SubmittedAt))
	assert.Equal(t, "Amy's Dumplings", app.Restaurant.RestaurantName)
	assert.Equal(t, "02-1234-5678", app.Restaurant.Phone)
	assert.Equal(t, "0912345678", app.Applicant.Phone)
	assert.Nil(t, app.ProcessedAt)
	assert.Nil(t, app.Delivery)

	processedAt := submittedAt.Add(time.Hour)
	require.NoError(t, repo.UpdateStatus(ctx, entity.ApplicationTypeRestaurant, "u1", &entity.StatusChange{
		Status:     entity.ApplicationStatusApproved,
		ReviewerID: "admin-1",
		Notes:      "welcome",
		At:         processedAt,
	}))

	app, err = repo.Find(ctx, entity.ApplicationTypeRestaurant, "u1")
	require.NoError(t, err)
	assert.Equal(t, entity.ApplicationStatusApproved, app.Status)
	require.NotNil(t, app.ProcessedAt)
	assert.True(t, processedAt.Equal(*app.ProcessedAt))
	assert.Equal(t, "admin-1", app.ProcessedBy)
	assert.Equal(t, "welcome", app.AdminNotes)
}

func TestApplicationRepository_FindByStatusNewestFirst(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewApplicationRepository(store)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, newRestaurantApplication("old", base)))
	require.NoError(t, repo.Put(ctx, newRestaurantApplication("new", base.Add(time.Hour))))
	approved := newRestaurantApplication("done", base.Add(2*time.Hour))
	approved.Status = entity.ApplicationStatusApproved
	require.NoError(t, repo.Put(ctx, approved))

	apps, err := repo.FindByStatus(ctx, entity.ApplicationTypeRestaurant, entity.ApplicationStatusPending)
	require.NoError(t, err)
	require.Len(t, apps, 2)
	assert.Equal(t, "new", apps[0].UserID)
	assert.Equal(t, "old", apps[1].UserID)
}

func TestApplicationRepository_FindUnsynced(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewApplicationRepository(store)
	ctx := context.Background()
	base := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Put(ctx, newRestaurantApplication("a", base)))
	require.NoError(t, repo.Put(ctx, newRestaurantApplication("b", base.Add(time.Minute))))
	require.NoError(t, repo.UpdateProfileSync(ctx, entity.ApplicationTypeRestaurant, "a", entity.ProfileSyncDone, ""))

	apps, err := repo.FindUnsynced(ctx, entity.ApplicationTypeRestaurant, 10)
	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, "b", apps[0].UserID)

	err = repo.UpdateProfileSync(ctx, entity.ApplicationTypeDelivery, "b", entity.ProfileSyncDone, "")
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func TestApplicationRepository_WatchByStatus(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewApplicationRepository(store)
	ctx := context.Background()

	var (
		mu     sync.Mutex
		counts []int
	)
	sub, err := repo.WatchByStatus(ctx, entity.ApplicationTypeDelivery, entity.ApplicationStatusPending, func(apps []*entity.Application) {
		mu.Lock()
		defer mu.Unlock()
		counts = append(counts, len(apps))
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	lastCount := func() int {
		mu.Lock()
		defer mu.Unlock()
		if len(counts) == 0 {
			return -1
		}

		return counts[len(counts)-1]
	}
	require.Eventually(t, func() bool { return lastCount() == 0 }, time.Second, 10*time.Millisecond)

	app := &entity.Application{
		UserID:      "rider",
		Type:        entity.ApplicationTypeDelivery,
		Status:      entity.ApplicationStatusPending,
		Applicant:   entity.Applicant{Name: "Bo", Email: "bo@example.com", Phone: "0900"},
		Delivery:    &entity.DeliveryDetails{LicenseNumber: "L-1", VehicleType: "scooter"},
		SubmittedAt: time.Now().UTC(),
		ProfileSync: entity.ProfileSyncPending,
	}
	require.NoError(t, repo.Put(ctx, app))

	require.Eventually(t, func() bool { return lastCount() == 1 }, time.Second, 10*time.Millisecond)
}

func TestDeviceRepository_Lifecycle(t *testing.T) {
	store, _ := newTestStore(t)
	repo := NewDeviceRepository(store)
	ctx := context.Background()

	device := &entity.UserDevice{UserID: "u1", FCMToken: "token-1", DeviceID: "phone", Platform: "ios", IsActive: true}
	require.NoError(t, repo.CreateDevice(ctx, device))
	require.NotEmpty(t, device.ID)

	require.NoError(t, repo.DeactivateDevice(ctx, device.ID))
	active, err := repo.FindActiveDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, active)

	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-2"))
	active, err = repo.FindActiveDevicesByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-2", active[0].FCMToken)

	require.NoError(t, repo.DeleteDevice(ctx, device.ID))
	_, err = repo.FindDeviceByID(ctx, device.ID)
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestTimeFieldAcceptsNativeAndStringTimestamps(t *testing.T) {
	at := time.Date(2026, 2, 3, 4, 5, 6, 7, time.UTC)

	assert.True(t, at.Equal(timeField(map[string]any{"t": at}, "t")))
	assert.True(t, at.Equal(timeField(map[string]any{"t": at.Format(time.RFC3339Nano)}, "t")))
	assert.True(t, timeField(map[string]any{"t": 42}, "t").IsZero())
	assert.Nil(t, optionalTimeField(map[string]any{}, "t"))
}
