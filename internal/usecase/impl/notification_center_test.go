package impl

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationCenter_AddAssignsIDAndTimestamp(t *testing.T) {
	center := newNotificationCenter(10)
	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	center.now = fixedClock(at)

	added := center.Add(entity.AdminNotification{Title: "新的餐廳申請"})
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, at, added.Timestamp)
	assert.Equal(t, entity.PriorityMedium, added.Priority)
	assert.False(t, added.Read)
}

func TestNotificationCenter_ListNewestFirstAndBounded(t *testing.T) {
	center := newNotificationCenter(3)

	for i := range 5 {
		center.Add(entity.AdminNotification{ID: fmt.Sprintf("n%d", i)})
	}

	list := center.List()
	require.Len(t, list, 3)
	assert.Equal(t, "n4", list[0].ID)
	assert.Equal(t, "n2", list[2].ID)
}

func TestNotificationCenter_ReadAndRemove(t *testing.T) {
	center := newNotificationCenter(10)
	center.Add(entity.AdminNotification{ID: "a"})
	center.Add(entity.AdminNotification{ID: "b"})
	center.Add(entity.AdminNotification{ID: "c"})
	assert.Equal(t, 3, center.UnreadCount())

	assert.True(t, center.MarkAsRead("b"))
	assert.False(t, center.MarkAsRead("missing"))
	assert.Equal(t, 2, center.UnreadCount())

	assert.True(t, center.Remove("a"))
	assert.False(t, center.Remove("a"))
	assert.Len(t, center.List(), 2)

	center.MarkAllAsRead()
	assert.Equal(t, 0, center.UnreadCount())

	center.ClearAll()
	assert.Empty(t, center.List())
}

func TestNotificationCenter_ListIsACopy(t *testing.T) {
	center := newNotificationCenter(10)
	center.Add(entity.AdminNotification{ID: "a"})

	list := center.List()
	list[0].Read = true

	assert.Equal(t, 1, center.UnreadCount())
}

func TestNotificationCenter_ChangesAreCoalesced(t *testing.T) {
	center := newNotificationCenter(10)
	changes, release := center.Changes()
	defer release()

	center.Add(entity.AdminNotification{ID: "a"})
	center.Add(entity.AdminNotification{ID: "b"})
	center.MarkAllAsRead()

	select {
	case <-changes:
	default:
		t.Fatal("expected a change signal")
	}

	select {
	case <-changes:
		t.Fatal("signals should have been coalesced")
	default:
	}

	// No-op mutations do not signal.
	center.MarkAllAsRead()
	select {
	case <-changes:
		t.Fatal("unexpected signal")
	default:
	}
}

func TestNotificationCenter_ReleaseStopsSignals(t *testing.T) {
	center := newNotificationCenter(10)
	changes, release := center.Changes()
	release()
	release()

	center.Add(entity.AdminNotification{ID: "a"})

	select {
	case <-changes:
		t.Fatal("released listener must not be signalled")
	default:
	}
}

func TestNotificationCenter_ConcurrentUse(t *testing.T) {
	center := newNotificationCenter(50)

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := range 100 {
				n := center.Add(entity.AdminNotification{ID: fmt.Sprintf("%d-%d", worker, j)})
				center.MarkAsRead(n.ID)
				_ = center.List()
				_ = center.UnreadCount()
			}
		}(i)
	}
	wg.Wait()

	assert.Len(t, center.List(), 50)
}
