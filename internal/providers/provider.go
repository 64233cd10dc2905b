package providers

import (
	"context"

	"baseball-stats-service/internal/dataset"
)

// Provider names used in config, logs, and metrics labels.
const (
	NameFile = "file"
	NameHTTP = "http"
)

// DatasetProvider fetches and decodes the batting dataset from wherever
// it lives. Implementations must honor context cancellation.
type DatasetProvider interface {
	FetchDataset(ctx context.Context) (*dataset.Dataset, error)
}
