package server

import (
	"log/slog"

	"github.com/preston-bernstein/game-catalog-service/internal/config"
	"github.com/preston-bernstein/game-catalog-service/internal/fixture"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/remote"
)

// selectAPI returns the backend the repositories read from.
func selectAPI(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) remote.API {
	switch cfg.Backend.Provider {
	case config.ProviderFixture:
		if logger != nil {
			logger.Info("serving embedded catalog data", slog.String("provider", string(cfg.Backend.Provider)))
		}
		return fixture.New()
	default:
		client := remote.NewClient(remote.Config{
			BaseURL: cfg.Backend.BaseURL,
			Timeout: cfg.Backend.Timeout,
			Logger:  logger,
			Metrics: recorder,
		})
		if logger != nil {
			logger.Info("catalog backend configured", slog.String("base_url", client.BaseURL()))
		}
		return client
	}
}
