package document

import (
	"context"

	"marketplace/internal/domain/constants"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/repository"
)

// partnerRepository implements the repository.PartnerRepository interface.
type partnerRepository struct {
	store repository.DocumentStore
}

// NewPartnerRepository is the constructor for partnerRepository.
func NewPartnerRepository(store repository.DocumentStore) repository.PartnerRepository {
	return &partnerRepository{
		store: store,
	}
}

// PutRestaurant overwrites restaurants/{restaurant.ID}.
func (repo *partnerRepository) PutRestaurant(ctx context.Context, restaurant *entity.Restaurant) error {
	data := map[string]any{
		"ownerId":        restaurant.OwnerID,
		fieldName:        restaurant.Name,
		fieldCuisine:     restaurant.Cuisine,
		fieldCategory:    restaurant.Category,
		fieldDescription: restaurant.Description,
		fieldAddress:     restaurant.Address,
		fieldPhone:       restaurant.Phone,
		fieldWebsite:     restaurant.Website,
		fieldStatus:      string(restaurant.Status),
		"rating":         restaurant.Rating,
		"totalOrders":    restaurant.TotalOrders,
		"totalReviews":   restaurant.TotalReviews,
	}

	if err := repo.store.Set(ctx, constants.CollectionRestaurants, restaurant.ID, data); err != nil {
		return storeError(err, repository.ErrDocumentNotFound, "failed to write restaurant")
	}

	return nil
}

// PutDriver overwrites drivers/{driver.ID}.
func (repo *partnerRepository) PutDriver(ctx context.Context, driver *entity.Driver) error {
	data := map[string]any{
		fieldUserID:        driver.UserID,
		fieldName:          driver.Name,
		fieldPhone:         driver.Phone,
		fieldLicenseNumber: driver.LicenseNumber,
		fieldVehicleType:   driver.VehicleType,
		fieldVehiclePlate:  driver.VehiclePlate,
		fieldAvailability:  driver.Availability,
		"isAvailable":      driver.IsAvailable,
	}

	if err := repo.store.Set(ctx, constants.CollectionDrivers, driver.ID, data); err != nil {
		return storeError(err, repository.ErrDocumentNotFound, "failed to write driver")
	}

	return nil
}
