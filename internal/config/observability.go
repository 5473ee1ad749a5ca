package config

import "strings"

// LoggingConfig mirrors logging.Config without importing it.
type LoggingConfig struct {
	Level  string
	Format string
	// File, when set, rotates logs on disk instead of writing to stdout.
	File string
}

// MetricsConfig controls the Prometheus listener and optional OTLP push.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	ServiceName  string
	OtlpEndpoint string
	OtlpInsecure bool
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  strings.ToLower(strings.TrimSpace(envOrDefault(envLogLevel, "info"))),
		Format: strings.ToLower(strings.TrimSpace(envOrDefault(envLogFormat, "text"))),
		File:   envOrDefault(envLogFile, ""),
	}
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, true),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		ServiceName:  envOrDefault(envOtelService, defaultServiceName),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, true),
	}
}
