// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleCustomer is assigned to every newly registered user.
	RoleCustomer Role = "customer"
	// RoleRestaurantOwner is granted through a restaurant application.
	RoleRestaurantOwner Role = "restaurant_owner"
	// RoleDeliveryRider is granted through a delivery application.
	RoleDeliveryRider Role = "delivery_rider"
	// RoleAdmin reviews applications and manages users.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleRestaurantOwner, RoleDeliveryRider, RoleAdmin:
		return true
	default:
		return false
	}
}

// Roles is a slice of Role for convenience.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}
