// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when a device is not found.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceRepository defines the operations on registered push devices.
type DeviceRepository interface {
	// CreateDevice persists a new device for a user and assigns its ID.
	CreateDevice(ctx context.Context, device *entity.UserDevice) error

	// FindDeviceByID retrieves a device by its unique ID.
	FindDeviceByID(ctx context.Context, id string) (*entity.UserDevice, error)

	// FindDevicesByUser retrieves all devices for a specific user (including inactive).
	FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// FindActiveDevicesByUser retrieves all active devices for a specific user.
	FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error)

	// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
	UpdateFCMToken(ctx context.Context, deviceID string, fcmToken string) error

	// DeactivateDevice marks a device inactive.
	DeactivateDevice(ctx context.Context, id string) error

	// DeleteDevice removes a device by its ID.
	DeleteDevice(ctx context.Context, id string) error
}
