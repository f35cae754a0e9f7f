package impl

import (
	"fmt"
	"testing"
	"time"

	"marketplace/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingApps(n int, base time.Time) []*entity.Application {
	apps := make([]*entity.Application, n)
	for i := range n {
		apps[i] = &entity.Application{
			UserID:      fmt.Sprintf("u%d", i),
			Type:        entity.ApplicationTypeRestaurant,
			Status:      entity.ApplicationStatusPending,
			Applicant:   entity.Applicant{Name: fmt.Sprintf("applicant %d", i)},
			SubmittedAt: base.Add(time.Duration(i) * time.Minute),
		}
	}

	return apps
}

func TestPendingDeltaDetector_EmitsOnlyGrowth(t *testing.T) {
	detector := newPendingDeltaDetector(entity.ApplicationTypeRestaurant)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var emitted []int
	for _, count := range []int{0, 1, 3, 3, 5} {
		emitted = append(emitted, len(detector.Observe(pendingApps(count, base))))
	}

	assert.Equal(t, []int{0, 1, 2, 0, 2}, emitted)
}

func TestPendingDeltaDetector_FirstSnapshotIsBaseline(t *testing.T) {
	detector := newPendingDeltaDetector(entity.ApplicationTypeDelivery)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	var emitted []int
	for _, count := range []int{1, 3, 3, 5} {
		emitted = append(emitted, len(detector.Observe(pendingApps(count, base))))
	}

	assert.Equal(t, []int{0, 2, 0, 2}, emitted)
}

func TestPendingDeltaDetector_ShrinkThenGrow(t *testing.T) {
	detector := newPendingDeltaDetector(entity.ApplicationTypeRestaurant)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	detector.Observe(pendingApps(4, base))
	assert.Empty(t, detector.Observe(pendingApps(2, base)))
	assert.Len(t, detector.Observe(pendingApps(3, base)), 1)
}

func TestPendingDeltaDetector_NotifiesMostRecentlySubmitted(t *testing.T) {
	detector := newPendingDeltaDetector(entity.ApplicationTypeRestaurant)
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	detector.Observe(pendingApps(1, base))

	apps := pendingApps(3, base)
	apps[2].Restaurant = &entity.RestaurantDetails{RestaurantName: "Dumpling House"}
	// Out of order on purpose: the detector sorts by submission time.
	shuffled := []*entity.Application{apps[1], apps[0], apps[2]}

	notifications := detector.Observe(shuffled)
	require.Len(t, notifications, 2)
	assert.Equal(t, "u2", notifications[0].DocumentID)
	assert.Equal(t, "u1", notifications[1].DocumentID)

	first := notifications[0]
	assert.Equal(t, entity.NotificationTypeRestaurantApplication, first.Type)
	assert.Equal(t, entity.PriorityHigh, first.Priority)
	assert.Contains(t, first.Message, "Dumpling House")
	assert.Equal(t, "/admin/applications/restaurant", first.ActionURL)
}
