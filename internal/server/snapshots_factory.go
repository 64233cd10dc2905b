package server

import (
	"errors"
	"log/slog"
	"time"

	"baseball-stats-service/internal/app/stats"
	"baseball-stats-service/internal/config"
	"baseball-stats-service/internal/snapshots"
)

type snapshotComponents struct {
	store  snapshots.Store
	writer *snapshots.Writer
}

func buildSnapshots(cfg config.Config) snapshotComponents {
	basePath := cfg.Snapshots.Dir
	return snapshotComponents{
		store:  snapshots.NewFSStore(basePath),
		writer: snapshots.NewWriter(basePath, cfg.Snapshots.RetentionDays),
	}
}

// warmFromSnapshot seeds the store with the most recent on-disk report so
// queries can be served before the first refresh completes.
func warmFromSnapshot(snaps snapshots.Store, svc *stats.Service, logger *slog.Logger) {
	date, err := snaps.LatestDate()
	if err != nil {
		if !errors.Is(err, snapshots.ErrNoSnapshots) && logger != nil {
			logger.Warn("snapshot scan failed", "error", err)
		}
		return
	}
	report, err := snaps.LoadReport(date)
	if err != nil {
		if logger != nil {
			logger.Warn("snapshot warm load failed", "date", date, "error", err)
		}
		return
	}
	svc.ReplaceReport(report, time.Now().UTC())
	if logger != nil {
		logger.Info("store warmed from snapshot", "date", date)
	}
}
