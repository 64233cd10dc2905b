package server

import (
	"log/slog"
	"strings"

	"baseball-stats-service/internal/config"
	"baseball-stats-service/internal/metrics"
	"baseball-stats-service/internal/providers"
)

// providerFactory assembles the dataset provider with shared wrappers
// (retry + instrumentation).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.DatasetProvider {
	base := selectProvider(cfg, f.logger)
	name := normalizeProviderName(cfg.Provider)
	retrying := providers.NewRetryingProvider(base, f.logger, 0, 0)
	return providers.NewInstrumentedProvider(retrying, name, f.logger, f.metrics)
}

func selectProvider(cfg config.Config, logger *slog.Logger) providers.DatasetProvider {
	switch cfg.Provider {
	case providers.NameHTTP:
		return providers.NewHTTPProvider(cfg.Dataset.URL, cfg.Dataset.Strict)
	case providers.NameFile, "":
		return providers.NewFileProvider(cfg.Dataset.Path, cfg.Dataset.Strict)
	default:
		if logger != nil {
			logger.Warn("unknown provider, falling back to file", slog.String("provider", cfg.Provider))
		}
		return providers.NewFileProvider(cfg.Dataset.Path, cfg.Dataset.Strict)
	}
}

// normalizeProviderName returns a lower-cased provider name for
// consistent metrics/log labels.
func normalizeProviderName(raw string) string {
	if raw == "" {
		return providers.NameFile
	}
	return strings.ToLower(raw)
}
