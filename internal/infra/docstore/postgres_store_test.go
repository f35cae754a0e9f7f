package docstore

import (
	"context"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedFetch returns its results in order, repeating the last one.
type scriptedFetch struct {
	mu      sync.Mutex
	results []any
	errs    []error
	calls   int
}

func (f *scriptedFetch) fetch(context.Context) (any, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	i := min(f.calls, len(f.results)-1)
	f.calls++

	return f.results[i], f.errs[i]
}

func (f *scriptedFetch) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.calls
}

func pendingDocs(ids ...string) []*entity.Document {
	docs := make([]*entity.Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, &entity.Document{ID: id, Data: map[string]any{"status": "pending"}})
	}

	return docs
}

func newPollingStore() *postgresStore {
	return &postgresStore{pollInterval: 5 * time.Millisecond, logger: newDiscardLogger()}
}

func TestPostgresStore_PollDeliversOnlyChanges(t *testing.T) {
	store := newPollingStore()
	fetch := &scriptedFetch{
		results: []any{pendingDocs("a"), nil, pendingDocs("a", "b"), pendingDocs("a", "b")},
		errs:    []error{nil, errors.New("connection reset"), nil, nil},
	}

	recorder := &snapshotRecorder{}
	sub := store.poll(context.Background(), "restaurantApplications", pendingDocs("a"), fetch.fetch, func(value any) {
		docs, _ := value.([]*entity.Document)
		recorder.handle(docs)
	})

	require.Eventually(t, func() bool { return recorder.count() == 2 }, 2*time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return fetch.callCount() > 6 }, 2*time.Second, 5*time.Millisecond)

	sub.Unsubscribe()

	assert.Equal(t, 2, recorder.count(), "unchanged results and failed polls are not delivered")
	assert.Len(t, recorder.latest(), 2)
	assert.ErrorIs(t, sub.Err(), repository.ErrSubscriptionClosed)
}

func TestPostgresStore_PollDocumentDisappears(t *testing.T) {
	store := newPollingStore()
	doc := &entity.Document{ID: "u1", Data: map[string]any{"role": "customer"}}
	fetch := &scriptedFetch{
		results: []any{(*entity.Document)(nil)},
		errs:    []error{nil},
	}

	var (
		mu        sync.Mutex
		delivered []*entity.Document
	)
	sub := store.poll(context.Background(), "users", doc, fetch.fetch, func(value any) {
		got, _ := value.(*entity.Document)
		mu.Lock()
		delivered = append(delivered, got)
		mu.Unlock()
	})
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()

		return len(delivered) == 2
	}, 2*time.Second, 5*time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, doc, delivered[0])
	assert.Nil(t, delivered[1])
}

func TestPostgresStore_PollOutlivesCallerContext(t *testing.T) {
	store := newPollingStore()
	fetch := &scriptedFetch{results: []any{pendingDocs("a")}, errs: []error{nil}}

	ctx, cancel := context.WithCancel(context.Background())
	sub := store.poll(ctx, "deliveryApplications", pendingDocs("a"), fetch.fetch, func(any) {})
	cancel()

	calls := fetch.callCount()
	require.Eventually(t, func() bool { return fetch.callCount() > calls+2 }, 2*time.Second, 5*time.Millisecond)

	select {
	case <-sub.Done():
		t.Fatal("subscription ended with the caller context")
	default:
	}

	sub.Unsubscribe()
	<-sub.Done()
}

func TestFingerprintIsOrderSensitive(t *testing.T) {
	assert.NotEqual(t, fingerprint(pendingDocs("a", "b")), fingerprint(pendingDocs("b", "a")))
	assert.NotEqual(t, fingerprint(pendingDocs()), fingerprint(pendingDocs("a")))
}
