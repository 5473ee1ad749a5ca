package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/filter"
	"github.com/preston-bernstein/game-catalog-service/internal/http/requestutil"
	"github.com/preston-bernstein/game-catalog-service/internal/lists"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
)

type listsResponse struct {
	Lists    []lists.GameList `json:"lists"`
	ActiveID string           `json:"activeId"`
}

type nameRequest struct {
	Name string `json:"name"`
}

type selectRequest struct {
	ID string `json:"id"`
}

// Lists serves GET and POST on /lists.
func (h *Handler) Lists(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		all, active := h.lists.Lists()
		writeJSON(w, nethttp.StatusOK, listsResponse{Lists: all, ActiveID: active}, h.logger)
	case nethttp.MethodPost:
		var req nameRequest
		if !decodeBody(w, r, &req, h.logger) {
			return
		}
		created, err := h.lists.Create(req.Name)
		if err != nil {
			h.writeListError(w, r, err)
			return
		}
		logging.Info(loggerFromContext(r, h.logger), "list created", slog.String(logging.FieldListID, created.ID))
		writeJSON(w, nethttp.StatusCreated, created, h.logger)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// ListRoutes serves /lists/active, /lists/{id}, /lists/{id}/games and
// /lists/{id}/games/{gameId}.
func (h *Handler) ListRoutes(w nethttp.ResponseWriter, r *nethttp.Request) {
	segs := requestutil.SplitPath(r.URL.Path, "/lists")
	switch {
	case len(segs) == 1 && segs[0] == "active":
		h.SelectList(w, r)
	case len(segs) == 1:
		h.List(w, r, segs[0])
	case len(segs) == 2 && segs[1] == "games":
		h.ListGames(w, r, segs[0])
	case len(segs) == 3 && segs[1] == "games":
		h.ListMembership(w, r, segs[0], segs[2])
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// SelectList makes the list named in the body the active one.
func (h *Handler) SelectList(w nethttp.ResponseWriter, r *nethttp.Request) {
	if !requireMethod(w, r, nethttp.MethodPut, h.logger) {
		return
	}
	var req selectRequest
	if !decodeBody(w, r, &req, h.logger) {
		return
	}
	if err := h.lists.Select(req.ID); err != nil {
		h.writeListError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, map[string]string{"activeId": req.ID}, h.logger)
}

// List reads, renames or deletes a single list.
func (h *Handler) List(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	logger := loggerFromContext(r, h.logger)
	switch r.Method {
	case nethttp.MethodGet:
		l, ok := h.lists.Find(id)
		if !ok {
			h.writeListError(w, r, lists.ErrListNotFound)
			return
		}
		writeJSON(w, nethttp.StatusOK, l, h.logger)
	case nethttp.MethodPatch:
		var req nameRequest
		if !decodeBody(w, r, &req, h.logger) {
			return
		}
		l, err := h.lists.Rename(id, req.Name)
		if err != nil {
			h.writeListError(w, r, err)
			return
		}
		logging.Info(logger, "list renamed", slog.String(logging.FieldListID, id))
		writeJSON(w, nethttp.StatusOK, l, h.logger)
	case nethttp.MethodDelete:
		if err := h.lists.Delete(id); err != nil {
			h.writeListError(w, r, err)
			return
		}
		logging.Info(logger, "list deleted", slog.String(logging.FieldListID, id))
		w.WriteHeader(nethttp.StatusNoContent)
	default:
		w.Header().Set("Allow", "GET, PATCH, DELETE")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

// ListGames returns the catalog entries of a list in catalog order.
func (h *Handler) ListGames(w nethttp.ResponseWriter, r *nethttp.Request, id string) {
	if !requireMethod(w, r, nethttp.MethodGet, h.logger) {
		return
	}
	l, ok := h.lists.Find(id)
	if !ok {
		h.writeListError(w, r, lists.ErrListNotFound)
		return
	}
	snap := h.catalog.Snapshot(r.Context())
	writeJSON(w, nethttp.StatusOK, games.NewCatalogResponse(snap.Source, filter.InList(snap.Games, l.GameIDs)), h.logger)
}

// ListMembership adds (PUT) or removes (DELETE) a game from a list.
func (h *Handler) ListMembership(w nethttp.ResponseWriter, r *nethttp.Request, id, rawGameID string) {
	gameID, err := requestutil.ParseID(rawGameID)
	if err != nil {
		writeError(w, r, nethttp.StatusBadRequest, "invalid game id", h.logger)
		return
	}
	var l lists.GameList
	switch r.Method {
	case nethttp.MethodPut:
		l, err = h.lists.AddGame(id, gameID)
	case nethttp.MethodDelete:
		l, err = h.lists.RemoveGame(id, gameID)
	default:
		w.Header().Set("Allow", "PUT, DELETE")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err != nil {
		h.writeListError(w, r, err)
		return
	}
	writeJSON(w, nethttp.StatusOK, l, h.logger)
}

func (h *Handler) writeListError(w nethttp.ResponseWriter, r *nethttp.Request, err error) {
	switch {
	case errors.Is(err, lists.ErrEmptyName):
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), h.logger)
	case errors.Is(err, lists.ErrListNotFound):
		writeError(w, r, nethttp.StatusNotFound, err.Error(), h.logger)
	case errors.Is(err, lists.ErrDefaultList):
		writeError(w, r, nethttp.StatusConflict, err.Error(), h.logger)
	default:
		logging.Error(loggerFromContext(r, h.logger), "list operation failed", err)
		writeError(w, r, nethttp.StatusInternalServerError, "internal error", h.logger)
	}
}
