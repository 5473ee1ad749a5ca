package config

import "strings"

// Provider names the source behind the backend client.
type Provider string

const (
	// ProviderRemote talks to the catalog backend over HTTP.
	ProviderRemote Provider = "remote"
	// ProviderFixture serves the embedded dataset without any backend.
	ProviderFixture Provider = "fixture"
)

// BackendConfig controls how we talk to the catalog backend.
type BackendConfig struct {
	Provider Provider
	BaseURL  string
	Timeout  Duration
}

func loadBackend() BackendConfig {
	return BackendConfig{
		Provider: ParseProvider(envOrDefault(envBackendProvider, string(defaultProvider))),
		BaseURL:  envOrDefault(envBackendBaseURL, defaultBackendBaseURL),
		Timeout:  durationEnvOrDefault(envBackendTimeout, defaultBackendTimeout),
	}
}

// ParseProvider maps raw input to a Provider, defaulting to remote.
func ParseProvider(raw string) Provider {
	switch Provider(strings.ToLower(strings.TrimSpace(raw))) {
	case ProviderFixture:
		return ProviderFixture
	default:
		return ProviderRemote
	}
}
