package snapshots

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"baseball-stats-service/internal/domain"
)

// Store defines how report snapshots are loaded.
type Store interface {
	LoadReport(date string) (*domain.Report, error)
	LatestDate() (string, error)
}

// ErrNoSnapshots is returned when the snapshot directory holds no reports.
var ErrNoSnapshots = errors.New("no snapshots available")

// FSStore loads report snapshots from the filesystem.
type FSStore struct {
	basePath string
}

// NewFSStore constructs an FS-backed snapshot store rooted at basePath.
func NewFSStore(basePath string) *FSStore {
	return &FSStore{basePath: basePath}
}

// LoadReport reads a report snapshot for the given date (YYYY-MM-DD).
// Files live at {basePath}/reports/{date}.json.
func (s *FSStore) LoadReport(date string) (*domain.Report, error) {
	if s == nil {
		return nil, errors.New("snapshot store not configured")
	}
	if date == "" {
		return nil, errors.New("snapshot date required")
	}

	f, err := os.Open(ReportSnapshotPath(s.basePath, date))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var report domain.Report
	if err := json.NewDecoder(f).Decode(&report); err != nil {
		return nil, err
	}
	if report.Date == "" {
		report.Date = date
	}
	return &report, nil
}

// LatestDate returns the most recent snapshot date on disk. Used to warm
// the store on startup before the first refresh completes.
func (s *FSStore) LatestDate() (string, error) {
	if s == nil {
		return "", errors.New("snapshot store not configured")
	}

	entries, err := os.ReadDir(filepath.Join(s.basePath, reportsDir))
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoSnapshots
		}
		return "", err
	}

	latest := ""
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		date := name[:len(name)-len(".json")]
		if date > latest {
			latest = date
		}
	}
	if latest == "" {
		return "", ErrNoSnapshots
	}
	return latest, nil
}
