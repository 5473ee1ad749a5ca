package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/preston-bernstein/game-catalog-service/internal/detail"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/filter"
	"github.com/preston-bernstein/game-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/game-catalog-service/internal/lists"
	"github.com/preston-bernstein/game-catalog-service/internal/poller"
	"github.com/preston-bernstein/game-catalog-service/internal/teststubs"
	"github.com/preston-bernstein/game-catalog-service/internal/testutil"
)

const detailBody = `{"id":1,"title":"Alpha","developer":"dev","description":"d","shortDescription":"s","mainImage":"a.jpg","averageRating":4.5,"totalRatings":10,"savedByUsers":3,"estimatedHours":20,"genres":["action"],"platforms":["pc"],"onlineMultiplayer":true,"localMultiplayer":false,"requiresInternet":false,"releaseDate":"2024-01-01","prices":[],"reviews":[]}`

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	api := &teststubs.StubAPI{Details: map[int]string{1: detailBody}}
	return NewHandler(
		testutil.NewCatalogWithGames(testutil.SampleCatalog()),
		detail.NewRepository(api, detail.Options{}),
		lists.NewManager(lists.SeedCollection([]int{1, 2, 3})),
		nil,
		nil,
	)
}

func TestHealth(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h := newTestHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req.WithContext(ctx))

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
}

func TestReadyReflectsPollerStatus(t *testing.T) {
	h := newTestHandler(t)
	status := poller.Status{}
	h.statusFn = func() poller.Status { return status }

	rr := testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)

	status = poller.Status{Warmed: true, Source: games.SourceFallback}
	rr = testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["source"] != string(games.SourceFallback) {
		t.Fatalf("expected fallback source, got %v", resp)
	}
}

func TestGamesFiltersCatalog(t *testing.T) {
	h := newTestHandler(t)

	cases := []struct {
		path string
		ids  []int
	}{
		{path: "/games", ids: []int{1, 2, 3}},
		{path: "/games?genre=all&platform=all&language=all", ids: []int{1, 2, 3}},
		{path: "/games?genre=action", ids: []int{1, 3}},
		{path: "/games?genre=action&platform=ps5", ids: []int{1}},
		{path: "/games?language=de", ids: []int{}},
		{path: "/games?limit=2", ids: []int{1, 2}},
		{path: "/games?genre=action&limit=1", ids: []int{1}},
		{path: "/games?limit=10", ids: []int{1, 2, 3}},
	}

	for _, tc := range cases {
		rr := testutil.Serve(h, http.MethodGet, tc.path, nil)
		testutil.AssertStatus(t, rr, http.StatusOK)

		var resp games.CatalogResponse
		testutil.DecodeJSON(t, rr, &resp)
		if resp.Count != len(tc.ids) || len(resp.Games) != len(tc.ids) {
			t.Fatalf("%s: expected %d games, got %d", tc.path, len(tc.ids), resp.Count)
		}
		for i, id := range tc.ids {
			if resp.Games[i].ID != id {
				t.Fatalf("%s: expected id %d at %d, got %d", tc.path, id, i, resp.Games[i].ID)
			}
		}
		if resp.Source != games.SourceRemote {
			t.Fatalf("expected remote source, got %s", resp.Source)
		}
	}
}

func TestGamesRejectsMalformedQuery(t *testing.T) {
	h := newTestHandler(t)
	for _, path := range []string{"/games?genre=a%00b", "/games?limit=0", "/games?limit=many"} {
		rr := testutil.Serve(h, http.MethodGet, path, nil)
		testutil.AssertStatus(t, rr, http.StatusBadRequest)
	}
}

func TestGamesFiltersOnAdvertisedTags(t *testing.T) {
	h := newTestHandler(t)
	h.catalog = testutil.NewCatalogWithGames([]games.Game{
		{ID: 1, Title: "Alpha", Genres: []string{"RPG"}},
		{ID: 2, Title: "Beta", Genres: []string{"Mundo Abierto"}},
	})

	rr := testutil.Serve(h, http.MethodGet, "/games/facets", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var facets filter.FacetSet
	testutil.DecodeJSON(t, rr, &facets)

	for i, opt := range facets.Genres[1:] {
		rr := testutil.Serve(h, http.MethodGet, "/games?genre="+url.QueryEscape(opt.Value), nil)
		testutil.AssertStatus(t, rr, http.StatusOK)
		var resp games.CatalogResponse
		testutil.DecodeJSON(t, rr, &resp)
		if resp.Count != 1 || resp.Games[0].ID != i+1 {
			t.Fatalf("genre %q: expected game %d, got %+v", opt.Value, i+1, resp.Games)
		}
	}
}

func TestFacets(t *testing.T) {
	h := newTestHandler(t)
	rr := testutil.Serve(h, http.MethodGet, "/games/facets", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp filter.FacetSet
	testutil.DecodeJSON(t, rr, &resp)
	if len(resp.Genres) == 0 || resp.Genres[0].Value != filter.Wildcard {
		t.Fatalf("expected wildcard first, got %+v", resp.Genres)
	}
}

func TestGameByID(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/games/2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var game games.Game
	testutil.DecodeJSON(t, rr, &game)
	if game.ID != 2 || game.Title != "Beta" {
		t.Fatalf("unexpected game %+v", game)
	}

	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games/99", nil), http.StatusNotFound)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games/abc", nil), http.StatusBadRequest)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/games/1/unknown", nil), http.StatusNotFound)
}

func TestGameByIDKeepsPrice(t *testing.T) {
	h := newTestHandler(t)
	h.catalog = testutil.NewCatalogWithGames([]games.Game{testutil.SampleGame(5, "rpg")})

	rr := testutil.Serve(h, http.MethodGet, "/games/5", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var game games.Game
	testutil.DecodeJSON(t, rr, &game)
	if game.Price == nil || *game.Price != 19.99 || game.IsFree() {
		t.Fatalf("expected priced game, got %+v", game)
	}
}

func TestGameDetail(t *testing.T) {
	h := newTestHandler(t)

	rr := testutil.Serve(h, http.MethodGet, "/games/1/detail", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var res details.Result
	testutil.DecodeJSON(t, rr, &res)
	if res.Status != details.StatusOK || res.Detail.Developer != "dev" {
		t.Fatalf("unexpected detail %+v", res)
	}

	rr = testutil.Serve(h, http.MethodGet, "/games/999/detail", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.DecodeJSON(t, rr, &res)
	if res.Status != details.StatusFallback || res.Detail.Title != "Game #999" {
		t.Fatalf("expected generic fallback detail, got %+v", res)
	}
	if len(res.Detail.Reviews) != 0 || len(res.Detail.Prices) != 0 {
		t.Fatalf("expected empty reviews and prices")
	}
}

func TestMethodNotAllowedHandlers(t *testing.T) {
	h := newTestHandler(t)

	tests := []struct {
		name   string
		method string
		path   string
	}{
		{"health", http.MethodPost, "/health"},
		{"ready", http.MethodPost, "/ready"},
		{"games", http.MethodPost, "/games"},
		{"gameByID", http.MethodDelete, "/games/1"},
		{"detail", http.MethodPut, "/games/1/detail"},
		{"lists", http.MethodDelete, "/lists"},
		{"active", http.MethodGet, "/lists/active"},
		{"list", http.MethodPost, "/lists/favorites"},
		{"membership", http.MethodGet, "/lists/favorites/games/1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := testutil.Serve(h, tt.method, tt.path, nil)
			testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
		})
	}
}

func TestUnknownRoute(t *testing.T) {
	h := newTestHandler(t)
	testutil.AssertStatus(t, testutil.Serve(h, http.MethodGet, "/nope", nil), http.StatusNotFound)
}

func TestRequestIDPropagatesThroughMiddleware(t *testing.T) {
	h := newTestHandler(t)
	wrapped := middleware.LoggingMiddleware(nil, nil, h)

	req := httptest.NewRequest(http.MethodGet, "/games/404", nil)
	req.Header.Set("X-Request-ID", "req-123")
	rr := testutil.ServeRequest(wrapped, req)

	testutil.AssertStatus(t, rr, http.StatusNotFound)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["requestId"] != "req-123" {
		t.Fatalf("expected request id in error body, got %v", resp)
	}
}
