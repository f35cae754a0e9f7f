package service

import (
	"context"
)

// MaxMulticastTokens is the most device tokens a single multicast may target.
const MaxMulticastTokens = 500

// PushMessage is the notification shown on a device, with data for the app to route on.
type PushMessage struct {
	Title string
	Body  string
	Data  map[string]string
}

// MulticastResult reports the per-token outcome of a multicast.
type MulticastResult struct {
	SuccessCount int
	FailureCount int

	// InvalidTokens were rejected as unregistered or malformed and should be deactivated
	InvalidTokens []string
}

// NotificationService sends push notifications to user devices
type NotificationService interface {
	// SendMulticast sends msg to at most MaxMulticastTokens tokens. A returned
	// error means the whole request failed; per-token failures are in the result.
	SendMulticast(ctx context.Context, tokens []string, msg *PushMessage) (*MulticastResult, error)
}
