package impl

import (
	"slices"
	"sync"

	"marketplace/internal/domain/entity"
)

// pendingDeltaDetector turns successive snapshots of the pending applications
// of one type into "new application" notifications.
//
// Only the size of the set is compared. The first snapshot sets the baseline;
// afterwards a growth of d raises one notification for each of the d most
// recently submitted applications. A shrink or an equal count raises nothing,
// so an approval racing a submission in the same snapshot goes unnoticed.
type pendingDeltaDetector struct {
	mu          sync.Mutex
	appType     entity.ApplicationType
	initialized bool
	previous    int
}

func newPendingDeltaDetector(appType entity.ApplicationType) *pendingDeltaDetector {
	return &pendingDeltaDetector{appType: appType}
}

// Observe consumes a snapshot and returns the notifications it raises.
func (d *pendingDeltaDetector) Observe(apps []*entity.Application) []entity.AdminNotification {
	d.mu.Lock()
	defer d.mu.Unlock()

	count := len(apps)
	if !d.initialized {
		d.initialized = true
		d.previous = count

		return nil
	}

	delta := count - d.previous
	d.previous = count
	if delta <= 0 {
		return nil
	}

	newest := slices.Clone(apps)
	slices.SortStableFunc(newest, func(a, b *entity.Application) int {
		return b.SubmittedAt.Compare(a.SubmittedAt)
	})

	notifications := make([]entity.AdminNotification, 0, delta)
	for _, app := range newest[:delta] {
		notifications = append(notifications, d.notificationFor(app))
	}

	return notifications
}

func (d *pendingDeltaDetector) notificationFor(app *entity.Application) entity.AdminNotification {
	title := "新的外送員申請"
	message := app.Applicant.Name + " 提交了外送員申請"
	if d.appType == entity.ApplicationTypeRestaurant {
		title = "新的餐廳申請"
		name := app.Applicant.Name
		if app.Restaurant != nil && app.Restaurant.RestaurantName != "" {
			name = app.Restaurant.RestaurantName
		}
		message = name + " 提交了餐廳合作申請"
	}

	return entity.AdminNotification{
		Type:       entity.NotificationTypeFor(d.appType),
		Title:      title,
		Message:    message,
		Priority:   entity.PriorityHigh,
		ActionURL:  "/admin/applications/" + string(d.appType),
		DocumentID: app.UserID,
	}
}
