package config

// DatasetConfig describes where the batting CSV lives and how strictly
// it is validated on ingest.
type DatasetConfig struct {
	Path   string // local CSV path (file provider)
	URL    string // CSV URL (http provider)
	Strict bool   // reject files missing core columns
	Watch  bool   // reload on file change via fsnotify
}

func loadDataset(file fileConfig) DatasetConfig {
	return DatasetConfig{
		Path:   envOrDefault(envDatasetPath, file.stringOr("dataset_path", defaultDatasetPath)),
		URL:    envOrDefault(envDatasetURL, file.stringOr("dataset_url", "")),
		Strict: boolEnvOrDefault(envDatasetStrict, file.boolOr("dataset_strict", true)),
		Watch:  boolEnvOrDefault(envWatchEnabled, file.boolOr("watch_enabled", true)),
	}
}
