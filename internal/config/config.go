package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	CORSOrigins []string
	AdminToken  string
	HTTP        HTTPConfig
	Backend     BackendConfig
	Catalog     CatalogConfig
	Metrics     MetricsConfig
	Logging     LoggingConfig
}

// Load reads configuration from environment variables with sensible defaults.
// A dotenv file (ENV_FILE, default ".env") is applied first when present.
func Load() (Config, error) {
	if err := loadDotEnv(); err != nil {
		return Config{}, err
	}
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, defaultCORSOrigins),
		AdminToken:  envOrDefault(envAdminToken, ""),
		HTTP:        loadHTTP(),
		Backend:     loadBackend(),
		Catalog:     loadCatalog(),
		Metrics:     loadMetrics(),
		Logging:     loadLogging(),
	}, nil
}
