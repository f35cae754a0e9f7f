package impl

import (
	"slices"
	"sync"
	"time"

	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
)

// notificationCenter keeps the notifications of one admin session in memory,
// newest first, bounded by maxItems.
type notificationCenter struct {
	mu        sync.Mutex
	items     []entity.AdminNotification
	maxItems  int
	listeners map[int]chan struct{}
	nextID    int
	now       func() time.Time
}

// NewNotificationCenter creates an empty center holding at most maxItems notifications.
func NewNotificationCenter(maxItems int) usecase.NotificationCenter {
	return newNotificationCenter(maxItems)
}

func newNotificationCenter(maxItems int) *notificationCenter {
	if maxItems <= 0 {
		maxItems = 100
	}

	return &notificationCenter{
		maxItems:  maxItems,
		listeners: make(map[int]chan struct{}),
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (c *notificationCenter) Add(notification entity.AdminNotification) entity.AdminNotification {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	if notification.Timestamp.IsZero() {
		notification.Timestamp = c.now()
	}
	if notification.Priority == "" {
		notification.Priority = entity.PriorityMedium
	}

	c.mu.Lock()
	c.items = slices.Insert(c.items, 0, notification)
	if len(c.items) > c.maxItems {
		c.items = c.items[:c.maxItems]
	}
	c.notifyLocked()
	c.mu.Unlock()

	return notification
}

func (c *notificationCenter) List() []entity.AdminNotification {
	c.mu.Lock()
	defer c.mu.Unlock()

	return slices.Clone(c.items)
}

func (c *notificationCenter) UnreadCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	count := 0
	for _, n := range c.items {
		if !n.Read {
			count++
		}
	}

	return count
}

func (c *notificationCenter) MarkAsRead(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	if !c.items[i].Read {
		c.items[i].Read = true
		c.notifyLocked()
	}

	return true
}

func (c *notificationCenter) MarkAllAsRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	changed := false
	for i := range c.items {
		if !c.items[i].Read {
			c.items[i].Read = true
			changed = true
		}
	}
	if changed {
		c.notifyLocked()
	}
}

func (c *notificationCenter) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(c.items, i, i+1)
	c.notifyLocked()

	return true
}

func (c *notificationCenter) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return
	}
	c.items = nil
	c.notifyLocked()
}

// Changes registers a listener. The returned channel has a buffer of one and
// never blocks a writer, so bursts collapse into a single signal.
func (c *notificationCenter) Changes() (<-chan struct{}, func()) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	ch := make(chan struct{}, 1)
	c.listeners[id] = ch

	var once sync.Once
	release := func() {
		once.Do(func() {
			c.mu.Lock()
			delete(c.listeners, id)
			c.mu.Unlock()
		})
	}

	return ch, release
}

func (c *notificationCenter) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(n entity.AdminNotification) bool {
		return n.ID == id
	})
}

func (c *notificationCenter) notifyLocked() {
	for _, ch := range c.listeners {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
