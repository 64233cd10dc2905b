package providers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"baseball-stats-service/internal/dataset"
	"baseball-stats-service/internal/metrics"
)

const fixtureCSV = "id,year,team,lg,g,ab,h,hr,rbi,sb,so,bb,hbp,sh,sf\n" +
	"aaronha01,1954,ML1,NL,122,468,131,13,69,2,39,28,3,6,4\n"

// stubProvider fails a configurable number of times before succeeding.
type stubProvider struct {
	calls    int
	failures int
	err      error
	ds       *dataset.Dataset
}

func (s *stubProvider) FetchDataset(ctx context.Context) (*dataset.Dataset, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, s.err
	}
	if s.ds == nil {
		return &dataset.Dataset{Source: "stub"}, nil
	}
	return s.ds, nil
}

func writeFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "baseball.csv")
	if err := os.WriteFile(path, []byte(fixtureCSV), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestFileProviderFetchesDataset(t *testing.T) {
	path := writeFixture(t)
	p := NewFileProvider(path, true)

	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(ds.Lines) != 1 || ds.Source != path {
		t.Fatalf("unexpected dataset %+v", ds)
	}
	if p.Path() != path {
		t.Fatalf("expected path accessor to return %s", path)
	}
}

func TestFileProviderMissingFile(t *testing.T) {
	p := NewFileProvider(filepath.Join(t.TempDir(), "nope.csv"), true)
	if _, err := p.FetchDataset(context.Background()); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestFileProviderHonorsContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewFileProvider(writeFixture(t), true)
	if _, err := p.FetchDataset(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context error, got %v", err)
	}
}

func TestHTTPProviderFetchesDataset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(fixtureCSV))
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, true)
	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if len(ds.Lines) != 1 || ds.Source != srv.URL {
		t.Fatalf("unexpected dataset %+v", ds)
	}
}

func TestHTTPProviderUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer srv.Close()

	p := NewHTTPProvider(srv.URL, true)
	_, err := p.FetchDataset(context.Background())
	upErr, ok := AsUpstreamError(err)
	if !ok {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if upErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("unexpected status %d", upErr.StatusCode)
	}
}

func TestRetryingProviderRecoversFromTransientFailures(t *testing.T) {
	stub := &stubProvider{failures: 2, err: errors.New("flaky")}
	p := NewRetryingProvider(stub, nil, time.Millisecond, time.Second)

	ds, err := p.FetchDataset(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if ds == nil || stub.calls != 3 {
		t.Fatalf("expected success on third call, calls=%d", stub.calls)
	}
}

func TestRetryingProviderDoesNotRetryDataErrors(t *testing.T) {
	parseErr := &dataset.ParseError{Row: 1, Column: "ab", Err: errors.New("bad cell")}
	stub := &stubProvider{failures: 10, err: parseErr}
	p := NewRetryingProvider(stub, nil, time.Millisecond, time.Second)

	if _, err := p.FetchDataset(context.Background()); !errors.Is(err, parseErr) {
		t.Fatalf("expected parse error surfaced, got %v", err)
	}
	if stub.calls != 1 {
		t.Fatalf("data error must not be retried, calls=%d", stub.calls)
	}
}

func TestRetryingProviderStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	stub := &stubProvider{failures: 10, err: errors.New("flaky")}
	p := NewRetryingProvider(stub, nil, time.Millisecond, time.Second)

	if _, err := p.FetchDataset(ctx); err == nil {
		t.Fatalf("expected error after cancellation")
	}
	if stub.calls > 1 {
		t.Fatalf("expected no retries after cancel, calls=%d", stub.calls)
	}
}

func TestInstrumentedProviderRecordsMetrics(t *testing.T) {
	rec := metrics.NewRecorder()
	stub := &stubProvider{ds: &dataset.Dataset{Source: "stub", Lines: nil}}

	p := NewInstrumentedProvider(stub, NameFile, nil, rec)
	if _, err := p.FetchDataset(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if rec.IngestAttempts(NameFile) != 1 || rec.IngestErrors(NameFile) != 0 {
		t.Fatalf("expected success recorded: %+v", rec.Snapshot(NameFile))
	}

	failing := &stubProvider{failures: 1, err: errors.New("boom")}
	p = NewInstrumentedProvider(failing, NameHTTP, nil, rec)
	if _, err := p.FetchDataset(context.Background()); err == nil {
		t.Fatalf("expected error passthrough")
	}
	if rec.IngestErrors(NameHTTP) != 1 {
		t.Fatalf("expected failure recorded: %+v", rec.Snapshot(NameHTTP))
	}
}
