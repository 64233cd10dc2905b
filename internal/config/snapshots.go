package config

// SnapshotConfig controls where dated report snapshots are written and
// how long they are retained.
type SnapshotConfig struct {
	Dir           string
	RetentionDays int
	AdminToken    string // guards the refresh endpoint; empty disables it
}

func loadSnapshots(file fileConfig) SnapshotConfig {
	return SnapshotConfig{
		Dir:           envOrDefault(envSnapshotDir, file.stringOr("snapshot_dir", defaultSnapshotDir)),
		RetentionDays: intEnvOrDefault(envSnapshotDays, file.intOr("snapshot_retention_days", defaultSnapshotDays)),
		AdminToken:    envOrDefault(envAdminToken, file.stringOr("admin_token", "")),
	}
}
