package config

import "time"

const (
	envPort             = "PORT"
	envBackendBaseURL   = "BACKEND_BASE_URL"
	envBackendTimeout   = "BACKEND_TIMEOUT"
	envBackendProvider  = "BACKEND_PROVIDER"
	envFallbackPolicy   = "CATALOG_FALLBACK_POLICY"
	envRetryInterval    = "CATALOG_RETRY_INTERVAL"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envAdminToken       = "ADMIN_TOKEN"
	envHTTPReadTimeout  = "HTTP_READ_TIMEOUT"
	envHTTPWriteTimeout = "HTTP_WRITE_TIMEOUT"
	envHTTPIdleTimeout  = "HTTP_IDLE_TIMEOUT"
	envShutdownTimeout  = "SHUTDOWN_TIMEOUT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envLogFile          = "LOG_FILE"
	envDotEnvFile       = "ENV_FILE"
	defaultDotEnvFile   = ".env"
	defaultServiceName  = "game-catalog-service"

	defaultPort           = "4000"
	defaultBackendBaseURL = "http://localhost:8000/frontend"
	defaultProvider       = ProviderRemote
	// Zero keeps the backend client without a deadline.
	defaultBackendTimeout = Duration(0)
	defaultRetryInterval  = 5 * Duration(time.Minute)
	defaultMetricsPort    = "9090"
	defaultCORSOrigins    = "*"
)
