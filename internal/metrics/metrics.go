package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastRows        int
	lastCallLatency time.Duration
}

// Recorder captures lightweight, in-memory metrics about dataset ingests
// and HTTP traffic. A nil Recorder is safe to call; OTel export happens
// only when instruments are attached via Setup.
type Recorder struct {
	mu    sync.Mutex
	stats map[string]*providerStats
	otel  *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordIngestAttempt increments counters for one dataset fetch+decode
// and stores the observed latency and row count.
func (r *Recorder) RecordIngestAttempt(provider string, rows int, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureStats(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	} else {
		stats.lastRows = rows
	}
	if r.otel != nil {
		r.otel.recordIngestAttempt(provider, rows, duration, err)
	}
}

// IngestAttempts returns the total fetches recorded for a provider.
func (r *Recorder) IngestAttempts(provider string) int {
	return r.Snapshot(provider).Calls
}

// IngestErrors returns the total failed fetches recorded for a provider.
func (r *Recorder) IngestErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastRows returns the row count of the last successful ingest.
func (r *Recorder) LastRows(provider string) int {
	return r.Snapshot(provider).LastRows
}

// LastCallLatency returns the last recorded ingest latency.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a copy of the current stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	LastRows        int
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(provider)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		LastRows:        stats.lastRows,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordRefreshCycle tracks refresh loop cycles and errors.
func (r *Recorder) RecordRefreshCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordRefresh(duration, err)
}

func (r *Recorder) ensureStats(provider string) *providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) snapshot(provider string) providerStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.stats[provider]; ok && stats != nil {
		return *stats
	}
	return providerStats{}
}
