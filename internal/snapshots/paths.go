package snapshots

import (
	"fmt"
	"path/filepath"
)

// ReportSnapshotPath builds the path to a report snapshot for a given date.
func ReportSnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "reports", fmt.Sprintf("%s.json", date))
}
