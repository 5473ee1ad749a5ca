package http

import (
	nethttp "net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux. admin is mounted only when
// non-nil.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/games", handler.Games)
	mux.HandleFunc("/games/", handler.GameRoutes)
	mux.HandleFunc("/lists", handler.Lists)
	mux.HandleFunc("/lists/", handler.ListRoutes)
	if admin != nil {
		mux.HandleFunc("/admin/catalog/refresh", admin.RefreshCatalog)
	}
	return mux
}
