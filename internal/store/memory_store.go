package store

import (
	"sync"
	"time"

	"baseball-stats-service/internal/domain"
)

// MemoryStore keeps the most recent analysis report in memory behind a
// read-write lock. Refresh cycles swap the whole report atomically so
// readers never observe a half-updated view.
type MemoryStore struct {
	mu        sync.RWMutex
	report    *domain.Report
	refreshed time.Time
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Report returns the current report, or false if no refresh has
// completed yet.
func (s *MemoryStore) Report() (*domain.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.report == nil {
		return nil, false
	}
	return s.report, true
}

// SetReport replaces the current report with a new one.
func (s *MemoryStore) SetReport(report *domain.Report, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.report = report
	s.refreshed = at
}

// LastRefreshed returns when the report was last swapped in. The zero
// time means no refresh has completed.
func (s *MemoryStore) LastRefreshed() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.refreshed
}
