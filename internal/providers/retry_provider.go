package providers

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"

	"baseball-stats-service/internal/dataset"
	"baseball-stats-service/internal/logging"
)

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxElapsed     = 30 * time.Second
)

// retryingProvider wraps a DatasetProvider with exponential backoff.
// Malformed-data errors are permanent: retrying won't fix the file.
type retryingProvider struct {
	inner      DatasetProvider
	logger     *slog.Logger
	initial    time.Duration
	maxElapsed time.Duration
}

// NewRetryingProvider wraps the given provider with retries. Non-positive
// durations fall back to defaults.
func NewRetryingProvider(inner DatasetProvider, logger *slog.Logger, initial, maxElapsed time.Duration) DatasetProvider {
	if initial <= 0 {
		initial = defaultInitialBackoff
	}
	if maxElapsed <= 0 {
		maxElapsed = defaultMaxElapsed
	}
	return &retryingProvider{
		inner:      inner,
		logger:     logger,
		initial:    initial,
		maxElapsed: maxElapsed,
	}
}

func (r *retryingProvider) FetchDataset(ctx context.Context) (*dataset.Dataset, error) {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = r.initial
	policy.MaxElapsedTime = r.maxElapsed

	var ds *dataset.Dataset
	op := func() error {
		var err error
		ds, err = r.inner.FetchDataset(ctx)
		if err != nil && !retryable(err) {
			return backoff.Permanent(err)
		}
		return err
	}

	notify := func(err error, next time.Duration) {
		logger := logging.FromContext(ctx, r.logger)
		logging.Warn(logger, "dataset fetch retry",
			"err", err,
			"next_attempt_in", next.String(),
		)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		logging.Warn(logging.FromContext(ctx, r.logger), "dataset fetch failed", "err", err)
		return nil, err
	}
	return ds, nil
}

// retryable reports whether a fetch error could succeed on a later
// attempt. Decode failures and missing columns are data problems.
func retryable(err error) bool {
	var parseErr *dataset.ParseError
	if errors.As(err, &parseErr) {
		return false
	}
	var missingErr *dataset.MissingColumnsError
	if errors.As(err, &missingErr) {
		return false
	}
	if errors.Is(err, dataset.ErrNoHeader) {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}
