package providers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"baseball-stats-service/internal/dataset"
)

const defaultFetchTimeout = 30 * time.Second

// HTTPProvider fetches the batting CSV from a URL.
type HTTPProvider struct {
	url    string
	strict bool
	client *http.Client
}

// NewHTTPProvider constructs a provider for the given CSV URL.
func NewHTTPProvider(url string, strict bool) *HTTPProvider {
	return &HTTPProvider{
		url:    url,
		strict: strict,
		client: &http.Client{Timeout: defaultFetchTimeout},
	}
}

func (p *HTTPProvider) FetchDataset(ctx context.Context) (*dataset.Dataset, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "text/csv")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch dataset: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &UpstreamError{URL: p.url, StatusCode: resp.StatusCode}
	}

	ds, err := dataset.Decode(resp.Body, dataset.Options{Strict: p.strict, Source: p.url})
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", p.url, err)
	}
	return ds, nil
}
