package entity

import "time"

// RestaurantStatus is the publication state of a restaurant.
type RestaurantStatus string

const (
	RestaurantStatusActive     RestaurantStatus = "active"
	RestaurantStatusRestricted RestaurantStatus = "restricted"
	RestaurantStatusSuspended  RestaurantStatus = "suspended"
)

// IsValid checks if the RestaurantStatus is a valid value.
func (s RestaurantStatus) IsValid() bool {
	switch s {
	case RestaurantStatusActive, RestaurantStatusRestricted, RestaurantStatusSuspended:
		return true
	default:
		return false
	}
}

// Restaurant is the published record created once a restaurant application is approved.
type Restaurant struct {
	ID           string           `json:"id"`
	OwnerID      string           `json:"owner_id"`
	Name         string           `json:"name"`
	Cuisine      string           `json:"cuisine"`
	Category     string           `json:"category,omitempty"`
	Description  string           `json:"description,omitempty"`
	Address      string           `json:"address"`
	Phone        string           `json:"phone,omitempty"`
	Website      string           `json:"website,omitempty"`
	Status       RestaurantStatus `json:"status"`
	Rating       float64          `json:"rating"`
	TotalOrders  int              `json:"total_orders"`
	TotalReviews int              `json:"total_reviews"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// Driver is the record created once a delivery application is approved.
type Driver struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	LicenseNumber string    `json:"license_number"`
	VehicleType   string    `json:"vehicle_type"`
	VehiclePlate  string    `json:"vehicle_plate,omitempty"`
	Availability  string    `json:"availability,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewRestaurantFromApplication builds the restaurant published for an approved application.
func NewRestaurantFromApplication(app *Application, now time.Time) *Restaurant {
	restaurant := &Restaurant{
		ID:        app.UserID,
		OwnerID:   app.UserID,
		Phone:     app.Applicant.Phone,
		Status:    RestaurantStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if details := app.Restaurant; details != nil {
		restaurant.Name = details.RestaurantName
		restaurant.Cuisine = details.Cuisine
		restaurant.Category = details.Category
		restaurant.Description = details.Description
		restaurant.Address = details.Address
		restaurant.Website = details.Website
		if details.Phone != "" {
			restaurant.Phone = details.Phone
		}
	}

	return restaurant
}

// NewDriverFromApplication builds the driver record for an approved application.
func NewDriverFromApplication(app *Application, now time.Time) *Driver {
	driver := &Driver{
		ID:        app.UserID,
		UserID:    app.UserID,
		Name:      app.Applicant.Name,
		Phone:     app.Applicant.Phone,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if details := app.Delivery; details != nil {
		driver.LicenseNumber = details.LicenseNumber
		driver.VehicleType = details.VehicleType
		driver.VehiclePlate = details.VehiclePlate
		driver.Availability = details.Availability
	}

	return driver
}
