package catalog

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/fixture"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/remote"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
)

const (
	cacheName            = "catalog"
	flightKey            = "catalog"
	defaultRetryInterval = 5 * time.Minute
)

// Options tune a Repository. The zero value pins the fallback for the
// lifetime of the repository.
type Options struct {
	Store         *store.CatalogStore
	RetryFallback bool
	RetryInterval time.Duration
	Logger        *slog.Logger
	Metrics       *metrics.Recorder
}

// Repository serves the game catalog, loading it once from the backend and
// substituting the embedded fallback table when the backend fails.
type Repository struct {
	api           remote.API
	store         *store.CatalogStore
	retryFallback bool
	retryInterval time.Duration
	logger        *slog.Logger
	metrics       *metrics.Recorder
	group         singleflight.Group
	now           func() time.Time
}

// NewRepository builds a Repository on top of api.
func NewRepository(api remote.API, opts Options) *Repository {
	st := opts.Store
	if st == nil {
		st = store.NewCatalogStore()
	}
	interval := opts.RetryInterval
	if interval <= 0 {
		interval = defaultRetryInterval
	}
	return &Repository{
		api:           api,
		store:         st,
		retryFallback: opts.RetryFallback,
		retryInterval: interval,
		logger:        opts.Logger,
		metrics:       opts.Metrics,
		now:           time.Now,
	}
}

// Catalog returns the catalog. It never fails: backend errors yield the
// fallback table, which is cached like any other result.
func (r *Repository) Catalog(ctx context.Context) []games.Game {
	return r.Snapshot(ctx).Games
}

// Snapshot returns the catalog together with its source and load time.
func (r *Repository) Snapshot(ctx context.Context) store.CatalogSnapshot {
	if snap, ok := r.store.Snapshot(); ok && !r.expired(snap) {
		r.metrics.RecordCacheHit(cacheName)
		return snap
	}

	_, _, _ = r.group.Do(flightKey, func() (any, error) {
		// Another caller may have filled the cache while we waited.
		if snap, ok := r.store.Snapshot(); ok && !r.expired(snap) {
			return nil, nil
		}
		_, err := r.load(context.WithoutCancel(ctx))
		return nil, err
	})

	snap, _ := r.store.Snapshot()
	return snap
}

// Game returns one catalog entry by id.
func (r *Repository) Game(ctx context.Context, id int) (games.Game, bool) {
	r.Snapshot(ctx)
	return r.store.GetGame(id)
}

// Source reports where the current catalog came from, loading it if needed.
func (r *Repository) Source(ctx context.Context) games.Source {
	return r.Snapshot(ctx).Source
}

// Peek returns the cached snapshot without triggering a load.
func (r *Repository) Peek() (store.CatalogSnapshot, bool) {
	return r.store.Snapshot()
}

// Refresh re-attempts the backend regardless of policy. A cached remote
// catalog is kept when the attempt fails. The returned error is the backend
// failure, if any.
func (r *Repository) Refresh(ctx context.Context) (store.CatalogSnapshot, error) {
	_, err, _ := r.group.Do(flightKey, func() (any, error) {
		_, err := r.load(context.WithoutCancel(ctx))
		return nil, err
	})
	snap, _ := r.store.Snapshot()
	return snap, err
}

// RetryEnabled reports whether a pinned fallback is re-attempted.
func (r *Repository) RetryEnabled() bool {
	return r.retryFallback
}

// RetryInterval is the minimum age of a fallback before it is re-attempted.
func (r *Repository) RetryInterval() time.Duration {
	return r.retryInterval
}

func (r *Repository) load(ctx context.Context) (store.CatalogSnapshot, error) {
	logger := logging.FromContext(ctx, r.logger)

	records, err := r.api.ListGames(ctx)
	if err != nil {
		if cur, ok := r.store.Snapshot(); ok && cur.Source == games.SourceRemote {
			logging.Warn(logger, "catalog refresh failed, keeping cached catalog", "error", err)
			return cur, err
		}
		snap := store.CatalogSnapshot{
			Games:    fixture.Catalog(),
			Source:   games.SourceFallback,
			LoadedAt: r.now(),
		}
		r.store.SetSnapshot(snap)
		r.metrics.RecordFallback(cacheName)
		logging.Warn(logger, "catalog backend unavailable, serving fallback",
			logging.FieldSource, games.SourceFallback,
			logging.FieldCount, len(snap.Games),
			"error", err,
		)
		return snap, err
	}

	snap := store.CatalogSnapshot{
		Games:    mapRecords(records),
		Source:   games.SourceRemote,
		LoadedAt: r.now(),
	}
	r.store.SetSnapshot(snap)
	logging.Info(logger, "catalog loaded",
		logging.FieldSource, games.SourceRemote,
		logging.FieldCount, len(snap.Games),
	)
	return snap, nil
}

// expired reports whether a cached fallback is due for another attempt.
func (r *Repository) expired(snap store.CatalogSnapshot) bool {
	if !r.retryFallback || snap.Source != games.SourceFallback {
		return false
	}
	return r.now().Sub(snap.LoadedAt) >= r.retryInterval
}
