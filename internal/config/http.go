package config

import "time"

// HTTPConfig bounds the public listener and its shutdown.
type HTTPConfig struct {
	ReadTimeout     Duration
	WriteTimeout    Duration
	IdleTimeout     Duration
	ShutdownTimeout Duration
}

func loadHTTP() HTTPConfig {
	return HTTPConfig{
		ReadTimeout:     durationEnvOrDefault(envHTTPReadTimeout, defaultReadTimeout),
		WriteTimeout:    durationEnvOrDefault(envHTTPWriteTimeout, defaultWriteTimeout),
		IdleTimeout:     durationEnvOrDefault(envHTTPIdleTimeout, defaultIdleTimeout),
		ShutdownTimeout: durationEnvOrDefault(envShutdownTimeout, DefaultShutdownTimeout),
	}
}

// DefaultShutdownTimeout applies when no shutdown budget is configured.
const DefaultShutdownTimeout = 10 * time.Second

const (
	defaultReadTimeout  = 10 * time.Second
	defaultWriteTimeout = 10 * time.Second
	defaultIdleTimeout  = 60 * time.Second
)
