package detail

import (
	"context"
	"log/slog"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/details"
	"github.com/preston-bernstein/game-catalog-service/internal/fixture"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/remote"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
)

const cacheName = "detail"

// Options tune a Repository.
type Options struct {
	Store   *store.DetailStore
	Logger  *slog.Logger
	Metrics *metrics.Recorder
}

// Repository serves per-game detail records. Successful backend responses
// are normalized and cached per id; failures are never cached.
type Repository struct {
	api     remote.API
	store   *store.DetailStore
	logger  *slog.Logger
	metrics *metrics.Recorder
	group   singleflight.Group
}

// NewRepository builds a Repository on top of api.
func NewRepository(api remote.API, opts Options) *Repository {
	st := opts.Store
	if st == nil {
		st = store.NewDetailStore()
	}
	return &Repository{
		api:     api,
		store:   st,
		logger:  opts.Logger,
		metrics: opts.Metrics,
	}
}

// Detail returns a fully populated record for id. It never fails.
func (r *Repository) Detail(ctx context.Context, id int) details.GameDetail {
	return r.Lookup(ctx, id).Detail
}

// Lookup is Detail with the normalization outcome attached.
func (r *Repository) Lookup(ctx context.Context, id int) details.Result {
	if res, ok := r.store.Get(id); ok {
		r.metrics.RecordCacheHit(cacheName)
		return res
	}

	v, _, _ := r.group.Do(strconv.Itoa(id), func() (any, error) {
		if res, ok := r.store.Get(id); ok {
			return res, nil
		}
		return r.fetch(context.WithoutCancel(ctx), id), nil
	})

	res := v.(details.Result)
	res.Detail = res.Detail.Clone()
	res.Substituted = append([]string(nil), res.Substituted...)
	return res
}

func (r *Repository) fetch(ctx context.Context, id int) details.Result {
	logger := logging.FromContext(ctx, r.logger)

	payload, err := r.api.GetGameDetail(ctx, id)
	if err != nil {
		res, mock := fallback(id)
		r.metrics.RecordFallback(cacheName)
		logging.Warn(logger, "detail backend unavailable, serving fallback",
			logging.FieldGameID, id,
			"mock", mock,
			"error", err,
		)
		return res
	}

	res := Normalize(id, payload)
	r.store.Set(id, res)
	r.metrics.RecordNormalization(string(res.Status))
	if res.Status == details.StatusDefaulted {
		logging.Warn(logger, "detail payload did not match expected shape",
			logging.FieldGameID, id,
			logging.FieldFields, res.Substituted,
		)
	}
	return res
}

// fallback returns the mock record for id, or the generic placeholder when
// no mock exists.
func fallback(id int) (details.Result, bool) {
	if d, ok := fixture.Detail(id); ok {
		return details.Result{Detail: d, Status: details.StatusFallback}, true
	}
	return details.Result{Detail: fixture.GenericDetail(id), Status: details.StatusFallback}, false
}
