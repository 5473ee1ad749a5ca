package testutil

import (
	"errors"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/catalog"
	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
	"github.com/preston-bernstein/game-catalog-service/internal/teststubs"
)

// ErrBackendDown is returned by the stub API behind preloaded repositories.
var ErrBackendDown = errors.New("backend down")

// NewCatalogWithGames builds a catalog repository whose cache already holds
// g as a remote catalog. The backing API always fails.
func NewCatalogWithGames(g []games.Game) *catalog.Repository {
	st := store.NewCatalogStore()
	st.SetSnapshot(store.CatalogSnapshot{
		Games:    g,
		Source:   games.SourceRemote,
		LoadedAt: time.Now(),
	})
	return catalog.NewRepository(&teststubs.StubAPI{Err: ErrBackendDown}, catalog.Options{Store: st})
}
