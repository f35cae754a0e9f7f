package docstore

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRedisStore(t *testing.T) (repository.DocumentStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, "test", newDiscardLogger()), mr
}

// snapshotRecorder collects subscription deliveries for assertions.
type snapshotRecorder struct {
	mu        sync.Mutex
	snapshots [][]*entity.Document
}

func (r *snapshotRecorder) handle(docs []*entity.Document) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshots = append(r.snapshots, docs)
}

func (r *snapshotRecorder) latest() []*entity.Document {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return nil
	}

	return r.snapshots[len(r.snapshots)-1]
}

func (r *snapshotRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.snapshots)
}

func TestRedisStore_CreateThenRead(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	payload := map[string]any{
		"name":    "Noodle Bar",
		"rating":  4.5,
		"orders":  12,
		"active":  true,
		"tags":    []any{"asian", "noodles"},
		"address": map[string]any{"city": "Taipei"},
	}

	created, err := store.Create(ctx, constants.CollectionRestaurants, payload)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	read, err := store.Read(ctx, constants.CollectionRestaurants, created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, read.ID)
	for key, want := range map[string]any{
		"name":    "Noodle Bar",
		"rating":  4.5,
		"orders":  int64(12),
		"active":  true,
		"tags":    []any{"asian", "noodles"},
		"address": map[string]any{"city": "Taipei"},
	} {
		assert.Equal(t, want, read.Data[key], key)
	}
	assert.Contains(t, read.Data, constants.FieldCreatedAt)
	assert.Contains(t, read.Data, constants.FieldUpdatedAt)

	_, hasCreated := payload[constants.FieldCreatedAt]
	assert.False(t, hasCreated, "caller payload must not be mutated")
}

func TestRedisStore_ReadMissing(t *testing.T) {
	store, _ := newTestRedisStore(t)

	doc, err := store.Read(context.Background(), constants.CollectionOrders, "missing")

	assert.Nil(t, doc)
	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestRedisStore_UpdateMergesAndStamps(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, constants.CollectionUsers, "u1", map[string]any{
		"displayName": "Amy",
		"role":        "customer",
	}))
	before, err := store.Read(ctx, constants.CollectionUsers, "u1")
	require.NoError(t, err)

	require.NoError(t, store.Update(ctx, constants.CollectionUsers, "u1", map[string]any{
		"role": "restaurant_owner",
	}))

	after, err := store.Read(ctx, constants.CollectionUsers, "u1")
	require.NoError(t, err)
	assert.Equal(t, "Amy", after.Data["displayName"])
	assert.Equal(t, "restaurant_owner", after.Data["role"])
	assert.Equal(t, before.Data[constants.FieldCreatedAt], after.Data[constants.FieldCreatedAt])
}

func TestRedisStore_UpdateMissingDocument(t *testing.T) {
	store, _ := newTestRedisStore(t)

	err := store.Update(context.Background(), constants.CollectionUsers, "ghost", map[string]any{"role": "admin"})

	assert.ErrorIs(t, err, repository.ErrDocumentNotFound)
}

func TestRedisStore_ConcurrentUpdatesKeepBothFields(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	for round := range 50 {
		require.NoError(t, store.Set(ctx, constants.CollectionRestaurantApplications, "u1", map[string]any{
			"status":      "pending",
			"profileSync": "pending",
		}))

		var wg sync.WaitGroup
		errs := make([]error, 2)
		for i, partial := range []map[string]any{
			{"status": "approved"},
			{"profileSync": "done"},
		} {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs[i] = store.Update(ctx, constants.CollectionRestaurantApplications, "u1", partial)
			}()
		}
		wg.Wait()
		require.NoError(t, errs[0], "round %d", round)
		require.NoError(t, errs[1], "round %d", round)

		doc, err := store.Read(ctx, constants.CollectionRestaurantApplications, "u1")
		require.NoError(t, err)
		assert.Equal(t, "approved", doc.Data["status"], "round %d", round)
		assert.Equal(t, "done", doc.Data["profileSync"], "round %d", round)
	}
}

func TestRedisStore_UpdateRacingDeleteDoesNotRecreate(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	for round := range 50 {
		require.NoError(t, store.Set(ctx, constants.CollectionUsers, "u1", map[string]any{"role": "customer"}))

		var (
			wg        sync.WaitGroup
			updateErr error
			deleteErr error
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			updateErr = store.Update(ctx, constants.CollectionUsers, "u1", map[string]any{"role": "admin"})
		}()
		go func() {
			defer wg.Done()
			deleteErr = store.Delete(ctx, constants.CollectionUsers, "u1")
		}()
		wg.Wait()

		require.NoError(t, deleteErr)
		if updateErr != nil {
			require.ErrorIs(t, updateErr, repository.ErrDocumentNotFound, "round %d", round)
		}

		_, err := store.Read(ctx, constants.CollectionUsers, "u1")
		assert.ErrorIs(t, err, repository.ErrDocumentNotFound, "round %d", round)
	}
}

func TestRedisStore_SetOverwrites(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, constants.CollectionDeliveryApplications, "u1", map[string]any{
		"status":     "pending",
		"adminNotes": "call back",
	}))
	require.NoError(t, store.Set(ctx, constants.CollectionDeliveryApplications, "u1", map[string]any{
		"status": "pending",
	}))

	doc, err := store.Read(ctx, constants.CollectionDeliveryApplications, "u1")
	require.NoError(t, err)
	assert.NotContains(t, doc.Data, "adminNotes")
}

func TestRedisStore_DeleteAndReadAll(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	first, err := store.Create(ctx, constants.CollectionMenuItems, map[string]any{"name": "Soup"})
	require.NoError(t, err)
	_, err = store.Create(ctx, constants.CollectionMenuItems, map[string]any{"name": "Rice"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, constants.CollectionMenuItems, first.ID))
	require.NoError(t, store.Delete(ctx, constants.CollectionMenuItems, "never-existed"))

	docs, err := store.ReadAll(ctx, constants.CollectionMenuItems)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Rice", docs[0].Data["name"])
}

func TestRedisStore_QueryFiltersOrdersAndLimits(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	for id, fields := range map[string]map[string]any{
		"a": {"status": "pending", "submittedAt": base},
		"b": {"status": "pending", "submittedAt": base.Add(2 * time.Hour)},
		"c": {"status": "approved", "submittedAt": base.Add(3 * time.Hour)},
		"d": {"status": "pending", "submittedAt": base.Add(time.Hour)},
	} {
		require.NoError(t, store.Set(ctx, constants.CollectionRestaurantApplications, id, fields))
	}

	q := entity.Query{}.
		Where("status", "pending").
		Ordered("submittedAt", entity.SortDescending).
		Limited(2)

	docs, err := store.Query(ctx, constants.CollectionRestaurantApplications, q)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "b", docs[0].ID)
	assert.Equal(t, "d", docs[1].ID)
}

func TestRedisStore_SubscribeDeliversInitialAndChanges(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, constants.CollectionDeliveryApplications, "u1", map[string]any{"status": "pending"}))

	recorder := &snapshotRecorder{}
	sub, err := store.Subscribe(ctx, constants.CollectionDeliveryApplications,
		entity.Query{}.Where("status", "pending"), recorder.handle)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool { return len(recorder.latest()) == 1 }, time.Second, 10*time.Millisecond)

	require.NoError(t, store.Set(ctx, constants.CollectionDeliveryApplications, "u2", map[string]any{"status": "pending"}))
	require.Eventually(t, func() bool { return len(recorder.latest()) == 2 }, time.Second, 10*time.Millisecond)

	require.NoError(t, store.Update(ctx, constants.CollectionDeliveryApplications, "u1", map[string]any{"status": "approved"}))
	require.Eventually(t, func() bool { return len(recorder.latest()) == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, "u2", recorder.latest()[0].ID)
}

func TestRedisStore_UnsubscribeStopsDelivery(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	recorder := &snapshotRecorder{}
	sub, err := store.Subscribe(ctx, constants.CollectionOrders, entity.Query{}, recorder.handle)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return recorder.count() == 1 }, time.Second, 10*time.Millisecond)

	sub.Unsubscribe()
	sub.Unsubscribe()

	select {
	case <-sub.Done():
	default:
		t.Fatal("Done must be closed after Unsubscribe")
	}
	assert.ErrorIs(t, sub.Err(), repository.ErrSubscriptionClosed)

	_, err = store.Create(ctx, constants.CollectionOrders, map[string]any{"total": 10})
	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, recorder.count())
}

func TestRedisStore_SubscriptionOutlivesCallerContext(t *testing.T) {
	store, _ := newTestRedisStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	recorder := &snapshotRecorder{}
	sub, err := store.Subscribe(ctx, constants.CollectionOrders, entity.Query{}, recorder.handle)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	cancel()

	_, err = store.Create(context.Background(), constants.CollectionOrders, map[string]any{"total": 10})
	require.NoError(t, err)
	require.Eventually(t, func() bool { return len(recorder.latest()) == 1 }, time.Second, 10*time.Millisecond)
}

func TestRedisStore_SubscribeDocument(t *testing.T) {
	store, _ := newTestRedisStore(t)
	ctx := context.Background()

	var (
		mu   sync.Mutex
		seen []*entity.Document
	)
	sub, err := store.SubscribeDocument(ctx, constants.CollectionUsers, "u1", func(doc *entity.Document) {
		mu.Lock()
		defer mu.Unlock()
		seen = append(seen, doc)
	})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	last := func() (*entity.Document, int) {
		mu.Lock()
		defer mu.Unlock()
		if len(seen) == 0 {
			return nil, 0
		}

		return seen[len(seen)-1], len(seen)
	}

	require.Eventually(t, func() bool { _, n := last(); return n == 1 }, time.Second, 10*time.Millisecond)
	first, _ := last()
	assert.Nil(t, first)

	// Changes to other documents of the collection are ignored.
	require.NoError(t, store.Set(ctx, constants.CollectionUsers, "u2", map[string]any{"role": "customer"}))
	require.NoError(t, store.Set(ctx, constants.CollectionUsers, "u1", map[string]any{"role": "admin"}))

	require.Eventually(t, func() bool {
		doc, _ := last()

		return doc != nil && doc.Data["role"] == "admin"
	}, time.Second, 10*time.Millisecond)
	_, n := last()
	assert.Equal(t, 2, n)
}

func TestRedisStore_UnavailableBackend(t *testing.T) {
	store, mr := newTestRedisStore(t)
	mr.Close()

	_, err := store.Read(context.Background(), constants.CollectionUsers, "u1")

	assert.ErrorIs(t, err, repository.ErrUnavailable)
}
