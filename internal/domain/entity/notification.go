// Package entity contains the core business objects of the project.
package entity

import "time"

// NotificationPriority orders admin notifications by urgency.
type NotificationPriority string

const (
	PriorityLow    NotificationPriority = "low"
	PriorityMedium NotificationPriority = "medium"
	PriorityHigh   NotificationPriority = "high"
)

// Notification type tags
const (
	NotificationTypeRestaurantApplication = "restaurant_application"
	NotificationTypeDeliveryApplication   = "delivery_application"
)

// AdminNotification is an in-memory alert shown to an admin during a session.
// It is never written to the document store.
type AdminNotification struct {
	ID         string               `json:"id"`                    // Unique within the owning session.
	Type       string               `json:"type"`                  // Type tag, e.g. restaurant_application.
	Title      string               `json:"title"`                 // Short headline.
	Message    string               `json:"message"`               // Human readable body.
	Timestamp  time.Time            `json:"timestamp"`             // When the alert was raised.
	Read       bool                 `json:"read"`                  // Whether the admin has seen it.
	Priority   NotificationPriority `json:"priority"`              // Display urgency.
	ActionURL  string               `json:"action_url,omitempty"`  // Optional link to the related screen.
	DocumentID string               `json:"document_id,omitempty"` // Key of the document that triggered it.
}

// NotificationTypeFor returns the notification type tag of an application type.
func NotificationTypeFor(t ApplicationType) string {
	if t == ApplicationTypeDelivery {
		return NotificationTypeDeliveryApplication
	}

	return NotificationTypeRestaurantApplication
}
