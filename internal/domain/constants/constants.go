// Package constants holds shared provider names and header keys.
package constants

const (
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
	// PubSubProviderLocal selects the local HTTP push publisher used in
	// development.
	PubSubProviderLocal = "local"
)

const (
	// RequestIDHeader carries the request identifier across service hops.
	RequestIDHeader = "X-Request-ID"
)
