package entity

import "marketplace/internal/domain/constants"

// AccessMode distinguishes reads from writes in the collection policy.
type AccessMode int

const (
	AccessRead AccessMode = iota
	AccessWrite
)

// collectionPolicy maps each role to the generic collections it may use.
// Admins are handled separately and may use all of them.
//
//nolint:gochecknoglobals
var collectionPolicy = map[Role]map[AccessMode][]string{
	RoleCustomer: {
		AccessRead:  {constants.CollectionRestaurants, constants.CollectionMenuItems, constants.CollectionOrders},
		AccessWrite: {constants.CollectionOrders, constants.CollectionPartnerRequests},
	},
	RoleRestaurantOwner: {
		AccessRead:  {constants.CollectionRestaurants, constants.CollectionMenuItems, constants.CollectionOrders},
		AccessWrite: {constants.CollectionRestaurants, constants.CollectionMenuItems, constants.CollectionOrders},
	},
	RoleDeliveryRider: {
		AccessRead:  {constants.CollectionRestaurants, constants.CollectionOrders, constants.CollectionDrivers},
		AccessWrite: {constants.CollectionOrders, constants.CollectionDrivers},
	},
}

// GenericCollections lists the collections served by the generic record API.
//
//nolint:gochecknoglobals
var GenericCollections = []string{
	constants.CollectionRestaurants,
	constants.CollectionOrders,
	constants.CollectionDrivers,
	constants.CollectionMenuItems,
	constants.CollectionPartnerRequests,
}

// IsGenericCollection reports whether the collection is served by the generic record API.
func IsGenericCollection(collection string) bool {
	for _, c := range GenericCollections {
		if c == collection {
			return true
		}
	}

	return false
}

// CanAccess reports whether a role may access a generic collection in the given mode.
func CanAccess(role Role, collection string, mode AccessMode) bool {
	if !IsGenericCollection(collection) {
		return false
	}
	if role == RoleAdmin {
		return true
	}

	for _, c := range collectionPolicy[role][mode] {
		if c == collection {
			return true
		}
	}

	return false
}
