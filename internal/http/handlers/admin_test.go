package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/preston-bernstein/game-catalog-service/internal/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/remote"
	"github.com/preston-bernstein/game-catalog-service/internal/teststubs"
	"github.com/preston-bernstein/game-catalog-service/internal/testutil"
)

func TestAdminRefreshRequiresAuth(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
	rr := httptest.NewRecorder()

	h.RefreshCatalog(rr, req)
	testutil.AssertStatus(t, rr, http.StatusUnauthorized)
}

func TestAdminAuthorizeMatchesExactBearerToken(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	cases := []struct {
		header string
		want   bool
	}{
		{"Bearer secret", true},
		{"Bearer secre", false},
		{"Bearer secret2", false},
		{"bearer secret", false},
		{"secret", false},
		{"", false},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		if got := h.authorize(req); got != tc.want {
			t.Fatalf("authorize(%q) = %v, want %v", tc.header, got, tc.want)
		}
	}

	empty := NewAdminHandler(nil, "", nil)
	req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
	req.Header.Set("Authorization", "Bearer ")
	if empty.authorize(req) {
		t.Fatalf("expected empty token to reject every request")
	}
}

func TestAdminRefreshReloadsCatalog(t *testing.T) {
	api := &teststubs.StubAPI{Records: []remote.GameRecord{{ID: 1, Title: "Alpha"}}}
	cat := catalog.NewRepository(api, catalog.Options{})
	h := NewAdminHandler(cat, "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.RefreshCatalog(rr, req)

	testutil.AssertStatus(t, rr, http.StatusOK)
	var resp map[string]any
	testutil.DecodeJSON(t, rr, &resp)
	if resp["source"] != string(games.SourceRemote) || resp["count"] != float64(1) {
		t.Fatalf("unexpected refresh response %v", resp)
	}
	if api.ListCalls.Load() != 1 {
		t.Fatalf("expected one backend call, got %d", api.ListCalls.Load())
	}
}

func TestAdminRefreshReportsBackendFailure(t *testing.T) {
	h := NewAdminHandler(testutil.NewCatalogWithGames(testutil.SampleCatalog()), "secret", nil)

	req := httptest.NewRequest(http.MethodPost, "/admin/catalog/refresh", nil)
	req.Header.Set("Authorization", "Bearer secret")
	rr := httptest.NewRecorder()
	h.RefreshCatalog(rr, req)

	testutil.AssertStatus(t, rr, http.StatusBadGateway)
}

func TestAdminRefreshRejectsGet(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)
	rr := testutil.Serve(http.HandlerFunc(h.RefreshCatalog), http.MethodGet, "/admin/catalog/refresh", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}
