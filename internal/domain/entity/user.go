// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// UserStatus is the account state controlled by admins.
type UserStatus string

const (
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
)

// IsValid checks if the UserStatus is a valid value.
func (s UserStatus) IsValid() bool {
	return s == UserStatusActive || s == UserStatusSuspended
}

// UserProfile is the identity record stored under users/{id}.
// Its ID is the identifier issued by the identity provider.
type UserProfile struct {
	ID             string     `json:"id"`
	Email          string     `json:"email"`
	DisplayName    string     `json:"display_name"`
	Phone          string     `json:"phone,omitempty"`
	Role           Role       `json:"role"`
	Address        string     `json:"address,omitempty"`
	RestaurantName string     `json:"restaurant_name,omitempty"` // Denormalized for restaurant owners.
	VehicleType    string     `json:"vehicle_type,omitempty"`    // Denormalized for delivery riders.
	Status         UserStatus `json:"status"`
	HasApplied     bool       `json:"has_applied"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// IsAdmin reports whether the profile carries the admin role.
func (p *UserProfile) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// IsSuspended reports whether the account has been suspended.
func (p *UserProfile) IsSuspended() bool {
	return p != nil && p.Status == UserStatusSuspended
}

// ProfileChanges holds the self-service fields a user may edit.
// Nil fields are left untouched.
type ProfileChanges struct {
	DisplayName    *string
	Phone          *string
	Address        *string
	RestaurantName *string
	VehicleType    *string
}

// IsEmpty reports whether no field is set.
func (c *ProfileChanges) IsEmpty() bool {
	return c == nil || (c.DisplayName == nil && c.Phone == nil && c.Address == nil &&
		c.RestaurantName == nil && c.VehicleType == nil)
}
