package config

// Config holds runtime configuration for the service.
type Config struct {
	Port         string
	PollInterval Duration
	Provider     string
	Dataset      DatasetConfig
	Metrics      MetricsConfig
	Snapshots    SnapshotConfig
}

// Load reads configuration from an optional YAML file (BBSTATS_CONFIG)
// overlaid by environment variables with sensible defaults. Env always
// wins over the file; the file wins over built-in defaults.
func Load() Config {
	file := loadFile(envOrDefault(envConfigFile, ""))

	return Config{
		Port:         envOrDefault(envPort, file.stringOr("port", defaultPort)),
		PollInterval: durationEnvOrDefault(envPollInterval, file.durationOr("poll_interval", defaultPollInterval)),
		Provider:     envOrDefault(envProvider, file.stringOr("provider", defaultProvider)),
		Dataset:      loadDataset(file),
		Metrics:      loadMetrics(file),
		Snapshots:    loadSnapshots(file),
	}
}
