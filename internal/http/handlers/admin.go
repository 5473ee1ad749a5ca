package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

// AdminHandler exposes admin-only endpoints.
type AdminHandler struct {
	catalog *catalog.Repository
	token   string
	logger  *slog.Logger
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(cat *catalog.Repository, token string, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		catalog: cat,
		token:   token,
		logger:  logger,
	}
}

// RefreshCatalog re-attempts the backend immediately, regardless of the
// fallback policy. Guarded by a bearer token; returns 401 if missing/invalid.
func (h *AdminHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if !requireMethod(w, r, http.MethodPost, h.logger) {
		return
	}
	if !h.authorize(r) {
		logging.Warn(h.logger, "admin unauthorized",
			slog.String("path", r.URL.Path),
			slog.String("client_ip", requestutil.ClientIP(r)),
		)
		writeError(w, r, http.StatusUnauthorized, "unauthorized", h.logger)
		return
	}
	if h.catalog == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	snap, err := h.catalog.Refresh(r.Context())
	if err != nil {
		logging.Warn(logger, "admin catalog refresh failed",
			slog.String(logging.FieldSource, string(snap.Source)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "catalog backend unavailable", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"source": snap.Source,
		"count":  len(snap.Games),
	}, logger)
	logging.Info(logger, "admin catalog refreshed", slog.Int(logging.FieldCount, len(snap.Games)))
}

func (h *AdminHandler) authorize(r *http.Request) bool {
	if h.token == "" {
		return false
	}
	got := []byte(r.Header.Get("Authorization"))
	want := []byte("Bearer " + h.token)
	return subtle.ConstantTimeCompare(got, want) == 1
}
