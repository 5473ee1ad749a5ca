package handlers

import (
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/filter"
	"github.com/preston-bernstein/game-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

// Games returns the catalog narrowed by the genre, platform and language
// query parameters. An optional limit keeps only the first n matches.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	q := r.URL.Query()
	sel, err := filter.ParseSelection(q.Get("genre"), q.Get("platform"), q.Get("language"))
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
		return
	}

	limit := 0
	if raw := q.Get("limit"); raw != "" {
		if limit, err = requestutil.ParseID(raw); err != nil {
			writeError(w, r, nethttp.StatusBadRequest, "invalid limit", h.logger)
			return
		}
	}

	snap := h.catalog.Snapshot(r.Context())
	matched := filter.Catalog(snap.Games, sel)
	if limit > 0 {
		matched = filter.Featured(matched, limit)
	}
	logging.Info(loggerFromContext(r, h.logger), "served catalog",
		slog.String(logging.FieldSource, string(snap.Source)),
		slog.Int(logging.FieldCount, len(matched)),
	)
	writeJSON(w, nethttp.StatusOK, games.NewCatalogResponse(snap.Source, matched), h.logger)
}

// GameRoutes serves /games/facets, /games/{id} and /games/{id}/detail.
func (h *Handler) GameRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	segs := requestutil.SplitPath(r.URL.Path, "/games")
	switch {
	case len(segs) == 1 && segs[0] == "facets":
		h.Facets(w, r)
	case len(segs) == 1:
		h.GameByID(w, r)
	case len(segs) == 2 && segs[1] == "detail":
		h.GameDetail(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Facets lists the selectable tags per filter axis.
func (h *Handler) Facets(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	writeJSON(w, nethttp.StatusOK, filter.Facets(h.catalog.Catalog(r.Context())), h.logger)
}

// GameByID returns one catalog entry.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := gameID(w, r, h.logger)
	if !ok {
		return
	}
	game, found := h.catalog.Game(r.Context(), id)
	if !found {
		writeError(w, r, nethttp.StatusNotFound, "game not found", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, game, h.logger)
}

// GameDetail returns the detail record for a game. Backend failures are
// absorbed into fallback data, so this never answers with a 5xx.
func (h *Handler) GameDetail(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	id, ok := gameID(w, r, h.logger)
	if !ok {
		return
	}
	writeJSON(w, nethttp.StatusOK, h.details.Lookup(r.Context(), id), h.logger)
}

// gameID parses the id segment following /games.
func gameID(w nethttp.ResponseWriter, r *nethttp.Request, logger *slog.Logger) (int, bool) {
	segs := requestutil.SplitPath(r.URL.Path, "/games")
	if len(segs) == 0 {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", logger)
		return 0, false
	}
	id, err := requestutil.ParseID(segs[0])
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", logger)
		return 0, false
	}
	return id, true
}
