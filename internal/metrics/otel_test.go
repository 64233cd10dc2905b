package metrics

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsPlainRecorder(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: false})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected no prometheus handler when disabled")
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestSetupEnabledWiresInstruments(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	defer func() {
		if err := shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	}()

	if handler == nil {
		t.Fatalf("expected prometheus handler")
	}
	if rec.otel == nil {
		t.Fatalf("expected otel instruments attached")
	}

	// Exercise each instrument path once.
	rec.RecordIngestAttempt("file", 100, 5*time.Millisecond, nil)
	rec.RecordIngestAttempt("file", 0, time.Millisecond, errors.New("boom"))
	rec.RecordHTTPRequest("GET", "/report", 200, time.Millisecond)
	rec.RecordRefreshCycle(2*time.Millisecond, nil)
	rec.RecordRefreshCycle(2*time.Millisecond, errors.New("boom"))
}

func TestSetupPropagatesReaderErrors(t *testing.T) {
	orig := promReaderFactory
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("registry down")
	}
	defer func() { promReaderFactory = orig }()

	if _, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true}); err == nil {
		t.Fatalf("expected error from prometheus factory")
	}
}
