// Package constants holds shared domain-level constant values.
package constants

// Pub/Sub provider selectors for the event publisher configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)
