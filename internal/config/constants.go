package config

import "time"

const (
	envPort          = "PORT"
	envPollInterval  = "POLL_INTERVAL"
	envProvider      = "PROVIDER"
	envConfigFile    = "BBSTATS_CONFIG"
	envDatasetPath   = "DATASET_PATH"
	envDatasetURL    = "DATASET_URL"
	envDatasetStrict = "DATASET_STRICT"
	envWatchEnabled  = "WATCH_ENABLED"
	envMetricsPort   = "METRICS_PORT"
	envMetricsOn     = "METRICS_ENABLED"
	envOtelEndpoint  = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService   = "OTEL_SERVICE_NAME"
	envOtelInsecure  = "OTEL_EXPORTER_OTLP_INSECURE"
	envAdminToken    = "ADMIN_TOKEN"
	envSnapshotDir   = "SNAPSHOT_DIR"
	envSnapshotDays  = "SNAPSHOT_RETENTION_DAYS"

	defaultPort        = "4000"
	defaultProvider    = "file"
	defaultDatasetPath = "baseball.csv"
	defaultMetricsPort = "9090"
	defaultSnapshotDir = "data/snapshots"
	// Rolling window of dated report snapshots kept on disk.
	defaultSnapshotDays = 14
	// The dataset is a local file; a long interval plus the fs watcher
	// keeps the report fresh without rescanning constantly.
	defaultPollInterval = 15 * Duration(time.Minute)
)
