package document

import (
	"context"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

const (
	fieldFCMToken = "fcmToken"
	fieldDeviceID = "deviceId"
	fieldPlatform = "platform"
	fieldIsActive = "isActive"
)

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	store repository.DocumentStore
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(store repository.DocumentStore) repository.DeviceRepository {
	return &deviceRepository{
		store: store,
	}
}

// CreateDevice persists a new device for a user.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.UserDevice) error {
	doc, err := repo.store.Create(ctx, constants.CollectionDevices, fromDeviceDomain(device))
	if err != nil {
		return storeError(err, repository.ErrDeviceNotFound, "failed to create device")
	}

	// Update the entity with generated values
	created := toDeviceDomain(doc)
	device.ID = created.ID
	device.CreatedAt = created.CreatedAt
	device.UpdatedAt = created.UpdatedAt

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id string) (*entity.UserDevice, error) {
	doc, err := repo.store.Read(ctx, constants.CollectionDevices, id)
	if err != nil {
		return nil, storeError(err, repository.ErrDeviceNotFound, "failed to find device by ID")
	}

	return toDeviceDomain(doc), nil
}

// FindDevicesByUser retrieves all devices for a specific user (including inactive).
func (repo *deviceRepository) FindDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	return repo.find(ctx, entity.Query{}.Where(fieldUserID, userID), "failed to find devices by user")
}

// FindActiveDevicesByUser retrieves all active devices for a specific user.
func (repo *deviceRepository) FindActiveDevicesByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	q := entity.Query{}.Where(fieldUserID, userID).Where(fieldIsActive, true)

	return repo.find(ctx, q, "failed to find active devices by user")
}

func (repo *deviceRepository) find(ctx context.Context, q entity.Query, action string) ([]*entity.UserDevice, error) {
	docs, err := repo.store.Query(ctx, constants.CollectionDevices, q.Ordered(constants.FieldCreatedAt, entity.SortDescending))
	if err != nil {
		return nil, storeError(err, repository.ErrDeviceNotFound, action)
	}

	devices := make([]*entity.UserDevice, 0, len(docs))
	for _, doc := range docs {
		devices = append(devices, toDeviceDomain(doc))
	}

	return devices, nil
}

// UpdateFCMToken updates the FCM token for a specific device and reactivates it.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, deviceID string, fcmToken string) error {
	partial := map[string]any{
		fieldFCMToken: fcmToken,
		fieldIsActive: true,
	}
	if err := repo.store.Update(ctx, constants.CollectionDevices, deviceID, partial); err != nil {
		return storeError(err, repository.ErrDeviceNotFound, "failed to update FCM token")
	}

	return nil
}

// DeactivateDevice marks a device inactive.
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id string) error {
	if err := repo.store.Update(ctx, constants.CollectionDevices, id, map[string]any{fieldIsActive: false}); err != nil {
		return storeError(err, repository.ErrDeviceNotFound, "failed to deactivate device")
	}

	return nil
}

// DeleteDevice removes a device by its ID.
func (repo *deviceRepository) DeleteDevice(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, constants.CollectionDevices, id); err != nil {
		return storeError(err, repository.ErrDeviceNotFound, "failed to delete device")
	}

	return nil
}

// --- Mapper Functions ---

// toDeviceDomain converts a stored document to a domain UserDevice entity.
func toDeviceDomain(doc *entity.Document) *entity.UserDevice {
	if doc == nil {
		return nil
	}

	return &entity.UserDevice{
		ID:        doc.ID,
		UserID:    stringField(doc.Data, fieldUserID),
		FCMToken:  stringField(doc.Data, fieldFCMToken),
		DeviceID:  stringField(doc.Data, fieldDeviceID),
		Platform:  stringField(doc.Data, fieldPlatform),
		IsActive:  boolField(doc.Data, fieldIsActive),
		CreatedAt: timeField(doc.Data, constants.FieldCreatedAt),
		UpdatedAt: timeField(doc.Data, constants.FieldUpdatedAt),
	}
}

// fromDeviceDomain converts a domain UserDevice entity to a document payload.
func fromDeviceDomain(device *entity.UserDevice) map[string]any {
	return map[string]any{
		fieldUserID:   device.UserID,
		fieldFCMToken: device.FCMToken,
		fieldDeviceID: device.DeviceID,
		fieldPlatform: device.Platform,
		fieldIsActive: device.IsActive,
	}
}
