package poller

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/preston-bernstein/game-catalog-service/internal/domain/games"
	"github.com/preston-bernstein/game-catalog-service/internal/logging"
	"github.com/preston-bernstein/game-catalog-service/internal/metrics"
	"github.com/preston-bernstein/game-catalog-service/internal/store"
)

const defaultInterval = 5 * time.Minute

// ErrServingFallback marks a cycle that ended with the catalog on the
// embedded fallback table.
var ErrServingFallback = errors.New("catalog is serving fallback data")

// Catalog is the part of the catalog repository the poller drives.
type Catalog interface {
	Snapshot(ctx context.Context) store.CatalogSnapshot
	Refresh(ctx context.Context) (store.CatalogSnapshot, error)
	Peek() (store.CatalogSnapshot, bool)
}

// Poller warms the catalog on boot and, when retry is enabled, keeps
// re-attempting the backend while the catalog is pinned to the fallback.
type Poller struct {
	catalog  Catalog
	retry    bool
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	done     chan struct{}
	stopOnce sync.Once

	// startMu guards started and ticker.
	startMu sync.Mutex
	started bool
	ticker  *time.Ticker

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the catalog warmer.
type Status struct {
	Warmed              bool
	Source              games.Source
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether a catalog has been loaded, from either source.
func (s Status) IsReady() bool {
	return s.Warmed
}

// New constructs a Poller. interval only matters when retry is true.
func New(catalog Catalog, retry bool, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		catalog:  catalog,
		retry:    retry,
		logger:   logger,
		metrics:  recorder,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start warms the catalog and, with retry enabled, re-attempts on an
// interval until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	var tick <-chan time.Time
	if p.retry {
		p.ticker = time.NewTicker(p.interval)
		tick = p.ticker.C
	}
	p.startMu.Unlock()

	go func() {
		logging.Info(p.logger, "catalog warmer started",
			"retry", p.retry,
			logging.FieldDurationMS, p.interval.Milliseconds(),
		)
		p.warm(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "catalog warmer stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "catalog warmer stopped")
				return
			case <-tick:
				p.retryOnce(ctx)
			}
		}
	}()
}

// Stop halts the loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

// warm loads the catalog through the normal cached path.
func (p *Poller) warm(ctx context.Context) {
	start := p.now()
	p.recordAttempt(start)
	snap := p.catalog.Snapshot(ctx)
	p.finish(start, snap, nil)
}

// retryOnce re-attempts the backend only while the catalog is on fallback.
func (p *Poller) retryOnce(ctx context.Context) {
	if snap, ok := p.catalog.Peek(); ok && snap.Source == games.SourceRemote {
		return
	}
	start := p.now()
	p.recordAttempt(start)
	snap, err := p.catalog.Refresh(ctx)
	p.finish(start, snap, err)
}

func (p *Poller) finish(start time.Time, snap store.CatalogSnapshot, err error) {
	if err == nil && snap.Source == games.SourceFallback {
		err = ErrServingFallback
	}
	elapsed := p.now().Sub(start)
	p.metrics.RecordPollerCycle(elapsed, err)

	if err != nil {
		logging.Warn(p.logger, "catalog warm cycle ended on fallback",
			logging.FieldSource, snap.Source,
			logging.FieldDurationMS, elapsed.Milliseconds(),
			"error", err,
		)
		p.recordFailure(err, start, snap.Source)
		return
	}
	p.recordSuccess(start, snap.Source)
	logging.Info(p.logger, "catalog warmed",
		logging.FieldSource, snap.Source,
		logging.FieldCount, len(snap.Games),
		logging.FieldDurationMS, elapsed.Milliseconds(),
	)
}

func (p *Poller) stopTicker() {
	p.startMu.Lock()
	defer p.startMu.Unlock()
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time, source games.Source) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.Warmed = true
	p.status.Source = source
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time, source games.Source) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	if source != "" {
		p.status.Warmed = true
		p.status.Source = source
	}
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the warmer's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
