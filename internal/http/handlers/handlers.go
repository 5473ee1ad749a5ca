package handlers

import (
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/game-catalog-service/internal/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/detail"
	"github.com/preston-bernstein/game-catalog-service/internal/lists"
	"github.com/preston-bernstein/game-catalog-service/internal/poller"
)

// Handler wires HTTP routes to the catalog, detail and list layers.
type Handler struct {
	catalog  *catalog.Repository
	details  *detail.Repository
	lists    *lists.Manager
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler. statusFn may be nil, in which case the
// service reports ready unconditionally.
func NewHandler(cat *catalog.Repository, det *detail.Repository, lm *lists.Manager, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		catalog:  cat,
		details:  det,
		lists:    lm,
		logger:   logger,
		statusFn: statusFn,
	}
}

// ServeHTTP dispatches on the request path.
func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch {
	case r.URL.Path == "/health":
		h.Health(w, r)
	case r.URL.Path == "/ready":
		h.Ready(w, r)
	case r.URL.Path == "/games":
		h.Games(w, r)
	case strings.HasPrefix(r.URL.Path, "/games/"):
		h.GameRoutes(w, r)
	case r.URL.Path == "/lists":
		h.Lists(w, r)
	case strings.HasPrefix(r.URL.Path, "/lists/"):
		h.ListRoutes(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness once the catalog has been loaded from either source.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, nethttp.StatusOK, map[string]string{
			"status": "ready",
			"source": string(status.Source),
		}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, nethttp.StatusServiceUnavailable, msg, h.logger)
}

func requireMethod(w nethttp.ResponseWriter, r *nethttp.Request, method string, logger *slog.Logger) bool {
	if r.Method == method {
		return true
	}
	w.Header().Set("Allow", method)
	writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", logger)
	return false
}
