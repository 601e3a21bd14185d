// Package constants defines shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"
)

// SessionEvent type values published to the message queue.
const (
	SessionEventSignedIn     = "SIGNED_IN"
	SessionEventSignedOut    = "SIGNED_OUT"
	SessionEventShopLaunched = "SHOP_LAUNCHED"
)
