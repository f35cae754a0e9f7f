package repository

import (
	"context"

	"marketplace/internal/domain/entity"
)

// PartnerRepository persists the records provisioned for approved applicants.
type PartnerRepository interface {
	// PutRestaurant overwrites restaurants/{restaurant.ID}.
	PutRestaurant(ctx context.Context, restaurant *entity.Restaurant) error

	// PutDriver overwrites drivers/{driver.ID}.
	PutDriver(ctx context.Context, driver *entity.Driver) error
}
