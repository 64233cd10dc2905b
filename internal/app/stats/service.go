package stats

import (
	"errors"
	"time"

	"baseball-stats-service/internal/domain"
)

// ErrNoReport is returned before the first refresh has produced a report.
var ErrNoReport = errors.New("no report available yet")

// ErrNotFound is returned when a league, player, or metric lookup misses.
var ErrNotFound = errors.New("not found")

// Store defines the contract for reading and swapping the current report.
type Store interface {
	Report() (*domain.Report, bool)
	SetReport(report *domain.Report, at time.Time)
	LastRefreshed() time.Time
}

// Service coordinates report queries using a Store.
type Service struct {
	store Store
}

// NewService constructs a Service with the provided Store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Report returns the latest full analysis report.
func (s *Service) Report() (*domain.Report, error) {
	report, ok := s.store.Report()
	if !ok {
		return nil, ErrNoReport
	}
	return report, nil
}

// Summary returns the dataset-level summary of the latest report.
func (s *Service) Summary() (domain.Summary, error) {
	report, ok := s.store.Report()
	if !ok {
		return domain.Summary{}, ErrNoReport
	}
	return report.Summary, nil
}

// Leagues returns both league splits in NL, AL order.
func (s *Service) Leagues() ([]domain.LeagueSplit, error) {
	report, ok := s.store.Report()
	if !ok {
		return nil, ErrNoReport
	}
	return []domain.LeagueSplit{report.NL, report.AL}, nil
}

// League returns the split for one league code.
func (s *Service) League(code string) (domain.LeagueSplit, error) {
	report, ok := s.store.Report()
	if !ok {
		return domain.LeagueSplit{}, ErrNoReport
	}
	switch code {
	case domain.LeagueNL:
		return report.NL, nil
	case domain.LeagueAL:
		return report.AL, nil
	}
	return domain.LeagueSplit{}, ErrNotFound
}

// Careers returns career aggregates, optionally filtered to players
// with at least minAB career at-bats and truncated to limit entries.
// Non-positive values disable the respective constraint.
func (s *Service) Careers(minAB, limit int) ([]domain.Career, error) {
	report, ok := s.store.Report()
	if !ok {
		return nil, ErrNoReport
	}
	careers := report.Careers
	if minAB > 0 {
		filtered := make([]domain.Career, 0, len(careers))
		for _, c := range careers {
			if c.AtBats >= minAB {
				filtered = append(filtered, c)
			}
		}
		careers = filtered
	}
	if limit > 0 && limit < len(careers) {
		careers = careers[:limit]
	}
	return careers, nil
}

// CareerByID returns the career aggregate for one player.
func (s *Service) CareerByID(id string) (domain.Career, error) {
	report, ok := s.store.Report()
	if !ok {
		return domain.Career{}, ErrNoReport
	}
	for _, c := range report.Careers {
		if c.PlayerID == id {
			return c, nil
		}
	}
	return domain.Career{}, ErrNotFound
}

// Records returns all record categories and their holders.
func (s *Service) Records() (domain.Records, error) {
	report, ok := s.store.Report()
	if !ok {
		return nil, ErrNoReport
	}
	return report.Records, nil
}

// RecordByMetric returns the holder of one record category.
func (s *Service) RecordByMetric(metric domain.RecordMetric) (domain.RecordEntry, error) {
	report, ok := s.store.Report()
	if !ok {
		return domain.RecordEntry{}, ErrNoReport
	}
	entry, ok := report.Records[metric]
	if !ok {
		return domain.RecordEntry{}, ErrNotFound
	}
	return entry, nil
}

// ReplaceReport swaps in a freshly computed report.
func (s *Service) ReplaceReport(report *domain.Report, at time.Time) {
	s.store.SetReport(report, at)
}

// LastRefreshed returns when the report was last replaced.
func (s *Service) LastRefreshed() time.Time {
	return s.store.LastRefreshed()
}
