// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvStaging    = "staging"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document store providers
const (
	DocStoreProviderFirestore = "firestore"
	DocStoreProviderRedis     = "redis"
	DocStoreProviderPostgres  = "postgres"
)

// Mail providers
const (
	MailProviderPostmark = "postmark"
	MailProviderSendGrid = "sendgrid"
	MailProviderLog      = "log"
)

// Collection names
const (
	CollectionUsers                  = "users"
	CollectionRestaurantApplications = "restaurantApplications"
	CollectionDeliveryApplications   = "deliveryApplications"
	CollectionRestaurants            = "restaurants"
	CollectionOrders                 = "orders"
	CollectionDrivers                = "drivers"
	CollectionMenuItems              = "menuItems"
	CollectionPartnerRequests        = "partnerRequests"
	CollectionDevices                = "devices"
)

// Document fields written by the store itself
const (
	FieldCreatedAt = "createdAt"
	FieldUpdatedAt = "updatedAt"
)
