package usecase

import (
	"marketplace/internal/domain/entity"
)

// NotificationCenter is the in-memory notification list of one admin session.
// Implementations are safe for concurrent use.
type NotificationCenter interface {
	// Add stores a notification, assigning ID and Timestamp when empty, and
	// evicts the oldest entries beyond the capacity.
	Add(notification entity.AdminNotification) entity.AdminNotification

	// List returns the notifications, newest first.
	List() []entity.AdminNotification

	UnreadCount() int
	MarkAsRead(id string) bool
	MarkAllAsRead()
	Remove(id string) bool
	ClearAll()

	// Changes returns a channel signalled after every mutation and a function
	// releasing it. Signals are coalesced: a slow reader sees the latest state.
	Changes() (<-chan struct{}, func())
}
