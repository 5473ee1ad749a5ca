package metrics

import (
	"sync"
	"time"
)

type operationStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about backend calls and
// cache behaviour, optionally mirrored to OpenTelemetry instruments.
type Recorder struct {
	mu         sync.Mutex
	ops        map[string]*operationStats
	cacheHits  map[string]int
	fallbacks  map[string]int
	normalized map[string]int
	requests   map[string]int
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		ops:        make(map[string]*operationStats),
		cacheHits:  make(map[string]int),
		fallbacks:  make(map[string]int),
		normalized: make(map[string]int),
		requests:   make(map[string]int),
		otel:       otel,
	}
}

// RecordRemoteAttempt increments counters for a backend call and stores the last observed latency.
func (r *Recorder) RecordRemoteAttempt(op string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.ops[op]
	if !ok {
		stats = &operationStats{}
		r.ops[op] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRemoteAttempt(op, duration, err)
	}
}

// RecordCacheHit counts a lookup served from the named cache.
func (r *Recorder) RecordCacheHit(cache string) {
	if r == nil {
		return
	}
	r.bump(r.cacheHits, cache)
	if r.otel != nil {
		r.otel.recordCacheHit(cache)
	}
}

// RecordFallback counts a response substituted with embedded data.
func (r *Recorder) RecordFallback(source string) {
	if r == nil {
		return
	}
	r.bump(r.fallbacks, source)
	if r.otel != nil {
		r.otel.recordFallback(source)
	}
}

// RecordNormalization counts detail payloads by normalization status.
func (r *Recorder) RecordNormalization(status string) {
	if r == nil {
		return
	}
	r.bump(r.normalized, status)
	if r.otel != nil {
		r.otel.recordNormalization(status)
	}
}

// Snapshot is a copy of the current stats for one backend operation.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
}

// Snapshot returns a copy of the current stats for the operation.
func (r *Recorder) Snapshot(op string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.ops[op]
	if !ok || stats == nil {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RemoteCalls returns the total attempts recorded for an operation.
func (r *Recorder) RemoteCalls(op string) int {
	return r.Snapshot(op).Calls
}

// RemoteErrors returns the total failed attempts recorded for an operation.
func (r *Recorder) RemoteErrors(op string) int {
	return r.Snapshot(op).Errors
}

// CacheHits returns the number of hits recorded for a cache.
func (r *Recorder) CacheHits(cache string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cacheHits[cache]
}

// Fallbacks returns the number of fallback substitutions for a source.
func (r *Recorder) Fallbacks(source string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.fallbacks[source]
}

// Normalizations returns how many detail payloads ended with the given status.
func (r *Recorder) Normalizations(status string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.normalized[status]
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil {
		return
	}
	r.bump(r.requests, method+" "+path)
	if r.otel != nil {
		r.otel.recordHTTPRequest(method, path, status, duration)
	}
}

// HTTPRequests returns how many requests were served for method and route.
func (r *Recorder) HTTPRequests(method, route string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.requests[method+" "+route]
}

// RecordPollerCycle tracks catalog warm/refresh cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) bump(m map[string]int, key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m[key]++
}
