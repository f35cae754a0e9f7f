package entity

import (
	"time"

	"marketplace/internal/domain/constants"
)

// ApplicationType names the partner program a user applies to.
type ApplicationType string

const (
	ApplicationTypeRestaurant ApplicationType = "restaurant"
	ApplicationTypeDelivery   ApplicationType = "delivery"
)

// ApplicationTypes lists every supported application type.
//
//nolint:gochecknoglobals
var ApplicationTypes = []ApplicationType{ApplicationTypeRestaurant, ApplicationTypeDelivery}

// IsValid checks if the ApplicationType is a valid value.
func (t ApplicationType) IsValid() bool {
	return t == ApplicationTypeRestaurant || t == ApplicationTypeDelivery
}

// Collection returns the collection holding applications of this type.
func (t ApplicationType) Collection() string {
	if t == ApplicationTypeDelivery {
		return constants.CollectionDeliveryApplications
	}

	return constants.CollectionRestaurantApplications
}

// TargetRole returns the role granted to applicants of this type.
func (t ApplicationType) TargetRole() Role {
	if t == ApplicationTypeDelivery {
		return RoleDeliveryRider
	}

	return RoleRestaurantOwner
}

// ProfileSyncState records the progress of the profile promotion step
// that follows an application write.
type ProfileSyncState string

const (
	ProfileSyncPending ProfileSyncState = "pending"
	ProfileSyncDone    ProfileSyncState = "done"
)

// Application is a user's request to join a partner program.
// The applicant's user ID is also the document key, so a user holds at
// most one application per type.
type Application struct {
	UserID      string             `json:"user_id"`
	Type        ApplicationType    `json:"type"`
	Status      ApplicationStatus  `json:"status"`
	Applicant   Applicant          `json:"applicant"`
	Restaurant  *RestaurantDetails `json:"restaurant,omitempty"`
	Delivery    *DeliveryDetails   `json:"delivery,omitempty"`
	SubmittedAt time.Time          `json:"submitted_at"`
	AdminNotes  string             `json:"admin_notes,omitempty"`
	ProcessedAt *time.Time         `json:"processed_at,omitempty"`
	ProcessedBy string             `json:"processed_by,omitempty"`
	ProfileSync ProfileSyncState   `json:"profile_sync"`
	SyncError   string             `json:"sync_error,omitempty"`
}

// IsPending reports whether the application still awaits review.
func (a *Application) IsPending() bool {
	return a != nil && a.Status == ApplicationStatusPending
}

// Applicant holds the contact fields shared by both application types.
type Applicant struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// RestaurantDetails holds the restaurant-specific part of an application.
type RestaurantDetails struct {
	RestaurantName string `json:"restaurant_name" validate:"required"`
	Cuisine        string `json:"cuisine" validate:"required"`
	Category       string `json:"category"`
	Description    string `json:"description"`
	Address        string `json:"address" validate:"required"`
	Phone          string `json:"phone"`
	Website        string `json:"website,omitempty" validate:"omitempty,url"`
	Experience     string `json:"experience,omitempty"`
}

// DeliveryDetails holds the rider-specific part of an application.
type DeliveryDetails struct {
	LicenseNumber         string `json:"license_number" validate:"required"`
	VehicleType           string `json:"vehicle_type" validate:"required"`
	VehicleModel          string `json:"vehicle_model,omitempty"`
	VehiclePlate          string `json:"vehicle_plate,omitempty"`
	Availability          string `json:"availability,omitempty"`
	EmergencyContactName  string `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string `json:"emergency_contact_phone,omitempty"`
	Experience            string `json:"experience,omitempty"`
}

// ApplicationSubmission is the applicant-provided payload of a submit call.
type ApplicationSubmission struct {
	Applicant  Applicant
	Restaurant *RestaurantDetails
	Delivery   *DeliveryDetails
}

// StatusChange is the admin decision written by a review.
type StatusChange struct {
	Status     ApplicationStatus
	ReviewerID string
	Notes      string
	At         time.Time
}
