// Package constants holds identifiers shared between infrastructure providers.
package constants

const (
	// PubSubProviderLocal pushes events to a local HTTP endpoint.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle publishes events to Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// Storage keys of the parental store. They match the keys written by the mobile app
// so an exported store can be imported as is.
const (
	KeySettings        = "kidmap_parental_settings"
	KeySafeZones       = "kidmap_safe_zones"
	KeyCheckInRequests = "kidmap_check_in_requests"
	KeyDashboardData   = "kidmap_dashboard_data"
	KeyDevicePings     = "kidmap_device_pings"
	KeyAuthAttempts    = "kidmap_auth_attempts"
	KeyPinHash         = "kidmap_pin_hash"
	KeyPinSalt         = "kidmap_pin_salt"
)

// Namespaces separate general documents from sealed secrets in a backend.
const (
	NamespaceGeneral = "kv_entries"
	NamespaceSecure  = "secure_entries"
)

// EnvLocal is the env name of a developer machine. Push authentication is skipped there.
const EnvLocal = "local"
