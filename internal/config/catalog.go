package config

import "strings"

// FallbackPolicy decides what happens after the catalog falls back to the
// embedded dataset.
type FallbackPolicy string

const (
	// FallbackPin keeps serving the fallback for the lifetime of the process.
	FallbackPin FallbackPolicy = "pin"
	// FallbackRetry serves the fallback but re-attempts the backend once
	// RetryInterval has elapsed.
	FallbackRetry FallbackPolicy = "retry"
)

// CatalogConfig controls catalog caching behaviour.
type CatalogConfig struct {
	FallbackPolicy FallbackPolicy
	RetryInterval  Duration
}

func loadCatalog() CatalogConfig {
	return CatalogConfig{
		FallbackPolicy: ParseFallbackPolicy(envOrDefault(envFallbackPolicy, string(FallbackPin))),
		RetryInterval:  durationEnvOrDefault(envRetryInterval, defaultRetryInterval),
	}
}

// ParseFallbackPolicy maps raw values to a policy, defaulting to FallbackPin.
func ParseFallbackPolicy(raw string) FallbackPolicy {
	switch FallbackPolicy(strings.ToLower(strings.TrimSpace(raw))) {
	case FallbackRetry:
		return FallbackRetry
	default:
		return FallbackPin
	}
}
