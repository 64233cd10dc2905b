package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the flat key set accepted in the optional YAML config
// file. Every key has an env-var counterpart that takes precedence.
type fileConfig struct {
	Port                  string `yaml:"port"`
	PollInterval          string `yaml:"poll_interval"`
	Provider              string `yaml:"provider"`
	DatasetPath           string `yaml:"dataset_path"`
	DatasetURL            string `yaml:"dataset_url"`
	DatasetStrict         *bool  `yaml:"dataset_strict"`
	WatchEnabled          *bool  `yaml:"watch_enabled"`
	MetricsEnabled        *bool  `yaml:"metrics_enabled"`
	MetricsPort           string `yaml:"metrics_port"`
	OtlpEndpoint          string `yaml:"otlp_endpoint"`
	OtlpInsecure          *bool  `yaml:"otlp_insecure"`
	ServiceName           string `yaml:"service_name"`
	AdminToken            string `yaml:"admin_token"`
	SnapshotDir           string `yaml:"snapshot_dir"`
	SnapshotRetentionDays int    `yaml:"snapshot_retention_days"`
}

// loadFile reads the YAML config file when a path is set. Unreadable or
// malformed files degrade to the built-in defaults rather than failing
// startup; env vars still apply.
func loadFile(path string) fileConfig {
	var fc fileConfig
	if path == "" {
		return fc
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fileConfig{}
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fileConfig{}
	}
	return fc
}

func (f fileConfig) stringOr(key, defaultValue string) string {
	val := ""
	switch key {
	case "port":
		val = f.Port
	case "provider":
		val = f.Provider
	case "dataset_path":
		val = f.DatasetPath
	case "dataset_url":
		val = f.DatasetURL
	case "metrics_port":
		val = f.MetricsPort
	case "otlp_endpoint":
		val = f.OtlpEndpoint
	case "service_name":
		val = f.ServiceName
	case "admin_token":
		val = f.AdminToken
	case "snapshot_dir":
		val = f.SnapshotDir
	}
	if val == "" {
		return defaultValue
	}
	return val
}

func (f fileConfig) boolOr(key string, defaultValue bool) bool {
	var val *bool
	switch key {
	case "dataset_strict":
		val = f.DatasetStrict
	case "watch_enabled":
		val = f.WatchEnabled
	case "metrics_enabled":
		val = f.MetricsEnabled
	case "otlp_insecure":
		val = f.OtlpInsecure
	}
	if val == nil {
		return defaultValue
	}
	return *val
}

func (f fileConfig) intOr(key string, defaultValue int) int {
	val := 0
	switch key {
	case "snapshot_retention_days":
		val = f.SnapshotRetentionDays
	}
	if val <= 0 {
		return defaultValue
	}
	return val
}

func (f fileConfig) durationOr(key string, defaultValue time.Duration) time.Duration {
	raw := ""
	switch key {
	case "poll_interval":
		raw = f.PollInterval
	}
	if raw == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil || parsed <= 0 {
		return defaultValue
	}
	return parsed
}
