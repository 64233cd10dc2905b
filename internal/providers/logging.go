package providers

import (
	"context"
	"log/slog"
	"time"

	"baseball-stats-service/internal/dataset"
	"baseball-stats-service/internal/logging"
	"baseball-stats-service/internal/metrics"
)

// instrumentedProvider decorates a DatasetProvider with structured
// logging and ingest metrics.
type instrumentedProvider struct {
	inner    DatasetProvider
	name     string
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// NewInstrumentedProvider wraps a provider so every fetch is logged and
// recorded under the given provider name.
func NewInstrumentedProvider(inner DatasetProvider, name string, logger *slog.Logger, recorder *metrics.Recorder) DatasetProvider {
	return &instrumentedProvider{
		inner:    inner,
		name:     name,
		logger:   logger,
		recorder: recorder,
	}
}

func (p *instrumentedProvider) FetchDataset(ctx context.Context) (*dataset.Dataset, error) {
	start := time.Now()
	ds, err := p.inner.FetchDataset(ctx)
	duration := time.Since(start)

	rows := 0
	if ds != nil {
		rows = len(ds.Lines)
	}
	p.recorder.RecordIngestAttempt(p.name, rows, duration, err)

	logger := logging.FromContext(ctx, p.logger)
	if err != nil {
		logging.Error(logger, "dataset fetch failed", err,
			logging.FieldProvider, p.name,
			logging.FieldDurationMS, duration.Milliseconds(),
		)
		return nil, err
	}
	logging.Info(logger, "dataset fetched",
		logging.FieldProvider, p.name,
		logging.FieldSource, ds.Source,
		logging.FieldRows, rows,
		logging.FieldDurationMS, duration.Milliseconds(),
	)
	return ds, nil
}
