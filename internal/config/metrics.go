package config

// MetricsConfig controls telemetry export settings.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtlpEndpoint string
	ServiceName  string
	OtlpInsecure bool
}

func loadMetrics(file fileConfig) MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, file.boolOr("metrics_enabled", true)),
		Port:         envOrDefault(envMetricsPort, file.stringOr("metrics_port", defaultMetricsPort)),
		OtlpEndpoint: envOrDefault(envOtelEndpoint, file.stringOr("otlp_endpoint", "")),
		ServiceName:  envOrDefault(envOtelService, file.stringOr("service_name", "baseball-stats-service")),
		OtlpInsecure: boolEnvOrDefault(envOtelInsecure, file.boolOr("otlp_insecure", true)),
	}
}
