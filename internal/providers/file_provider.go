package providers

import (
	"context"
	"fmt"
	"os"

	"baseball-stats-service/internal/dataset"
)

// FileProvider reads the batting CSV from a local path.
type FileProvider struct {
	path   string
	strict bool
}

// NewFileProvider constructs a provider for the given CSV path.
func NewFileProvider(path string, strict bool) *FileProvider {
	return &FileProvider{path: path, strict: strict}
}

// Path returns the watched CSV location (used by the fs watcher).
func (p *FileProvider) Path() string {
	return p.path
}

func (p *FileProvider) FetchDataset(ctx context.Context) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(p.path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	ds, err := dataset.Decode(f, dataset.Options{Strict: p.strict, Source: p.path})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.path, err)
	}
	return ds, nil
}
