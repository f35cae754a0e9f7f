package document

import (
	"context"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

const (
	fieldEmail          = "email"
	fieldDisplayName    = "displayName"
	fieldPhone          = "phone"
	fieldRole           = "role"
	fieldAddress        = "address"
	fieldRestaurantName = "restaurantName"
	fieldVehicleType    = "vehicleType"
	fieldStatus         = "status"
	fieldHasApplied     = "hasApplied"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	store repository.DocumentStore
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(store repository.DocumentStore) repository.UserRepository {
	return &userRepository{
		store: store,
	}
}

// FindByID retrieves a single profile by the identity provider's user ID.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	doc, err := repo.store.Read(ctx, constants.CollectionUsers, id)
	if err != nil {
		return nil, storeError(err, repository.ErrUserNotFound, "failed to read user profile")
	}

	return toUserDomain(doc), nil
}

// FindByRole lists profiles holding the role, or every profile for an empty role.
func (repo *userRepository) FindByRole(ctx context.Context, role entity.Role) ([]*entity.UserProfile, error) {
	q := entity.Query{}.Ordered(constants.FieldCreatedAt, entity.SortDescending)
	if role != "" {
		q = q.Where(fieldRole, string(role))
	}

	docs, err := repo.store.Query(ctx, constants.CollectionUsers, q)
	if err != nil {
		return nil, storeError(err, repository.ErrUserNotFound, "failed to list user profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(docs))
	for _, doc := range docs {
		profiles = append(profiles, toUserDomain(doc))
	}

	return profiles, nil
}

// Create writes a new profile at users/{profile.ID}.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if err := repo.store.Set(ctx, constants.CollectionUsers, profile.ID, fromUserDomain(profile)); err != nil {
		return storeError(err, repository.ErrUserNotFound, "failed to create user profile")
	}

	return nil
}

// ApplyChanges merges self-service edits into the profile.
func (repo *userRepository) ApplyChanges(ctx context.Context, id string, changes *entity.ProfileChanges) error {
	if changes.IsEmpty() {
		return nil
	}

	partial := make(map[string]any, 5)
	setIfPresent(partial, fieldDisplayName, changes.DisplayName)
	setIfPresent(partial, fieldPhone, changes.Phone)
	setIfPresent(partial, fieldAddress, changes.Address)
	setIfPresent(partial, fieldRestaurantName, changes.RestaurantName)
	setIfPresent(partial, fieldVehicleType, changes.VehicleType)

	return repo.update(ctx, id, partial, "failed to update user profile")
}

// PromoteRole sets the role granted by an application and marks hasApplied.
func (repo *userRepository) PromoteRole(ctx context.Context, id string, role entity.Role) error {
	return repo.update(ctx, id, map[string]any{
		fieldRole:       string(role),
		fieldHasApplied: true,
	}, "failed to promote user role")
}

// SetRole overwrites the role.
func (repo *userRepository) SetRole(ctx context.Context, id string, role entity.Role) error {
	return repo.update(ctx, id, map[string]any{fieldRole: string(role)}, "failed to set user role")
}

// SetStatus overwrites the account status.
func (repo *userRepository) SetStatus(ctx context.Context, id string, status entity.UserStatus) error {
	return repo.update(ctx, id, map[string]any{fieldStatus: string(status)}, "failed to set user status")
}

// Delete removes the profile.
func (repo *userRepository) Delete(ctx context.Context, id string) error {
	if err := repo.store.Delete(ctx, constants.CollectionUsers, id); err != nil {
		return storeError(err, repository.ErrUserNotFound, "failed to delete user profile")
	}

	return nil
}

// Watch delivers the profile now and after every change, nil when absent.
func (repo *userRepository) Watch(ctx context.Context, id string, handler func(*entity.UserProfile)) (repository.Subscription, error) {
	sub, err := repo.store.SubscribeDocument(ctx, constants.CollectionUsers, id, func(doc *entity.Document) {
		handler(toUserDomain(doc))
	})
	if err != nil {
		return nil, storeError(err, repository.ErrUserNotFound, "failed to watch user profile")
	}

	return sub, nil
}

func (repo *userRepository) update(ctx context.Context, id string, partial map[string]any, action string) error {
	if err := repo.store.Update(ctx, constants.CollectionUsers, id, partial); err != nil {
		return storeError(err, repository.ErrUserNotFound, action)
	}

	return nil
}

func setIfPresent(partial map[string]any, key string, value *string) {
	if value != nil {
		partial[key] = *value
	}
}

// --- Mapper Functions ---

// toUserDomain converts a stored document to a domain UserProfile entity.
func toUserDomain(doc *entity.Document) *entity.UserProfile {
	if doc == nil {
		return nil
	}

	status := entity.UserStatus(stringField(doc.Data, fieldStatus))
	if !status.IsValid() {
		status = entity.UserStatusActive
	}

	return &entity.UserProfile{
		ID:             doc.ID,
		Email:          stringField(doc.Data, fieldEmail),
		DisplayName:    stringField(doc.Data, fieldDisplayName),
		Phone:          stringField(doc.Data, fieldPhone),
		Role:           entity.Role(stringField(doc.Data, fieldRole)),
		Address:        stringField(doc.Data, fieldAddress),
		RestaurantName: stringField(doc.Data, fieldRestaurantName),
		VehicleType:    stringField(doc.Data, fieldVehicleType),
		Status:         status,
		HasApplied:     boolField(doc.Data, fieldHasApplied),
		CreatedAt:      timeField(doc.Data, constants.FieldCreatedAt),
		UpdatedAt:      timeField(doc.Data, constants.FieldUpdatedAt),
	}
}

// fromUserDomain converts a domain UserProfile entity to a document payload.
func fromUserDomain(profile *entity.UserProfile) map[string]any {
	data := map[string]any{
		fieldEmail:       profile.Email,
		fieldDisplayName: profile.DisplayName,
		fieldRole:        string(profile.Role),
		fieldStatus:      string(profile.Status),
		fieldHasApplied:  profile.HasApplied,
	}
	if profile.Phone != "" {
		data[fieldPhone] = profile.Phone
	}
	if profile.Address != "" {
		data[fieldAddress] = profile.Address
	}
	if profile.RestaurantName != "" {
		data[fieldRestaurantName] = profile.RestaurantName
	}
	if profile.VehicleType != "" {
		data[fieldVehicleType] = profile.VehicleType
	}

	return data
}
