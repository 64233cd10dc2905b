package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubRefresher struct {
	calls int
	err   error
}

func (s *stubRefresher) Refresh(ctx context.Context) error {
	s.calls++
	return s.err
}

func adminRequest(token string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/admin/refresh", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAdminRefresh(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("secret"))

	if rec.Code != http.StatusOK {
		t.Fatalf("unexpected status %d: %s", rec.Code, rec.Body.String())
	}
	if refresher.calls != 1 {
		t.Fatalf("expected one refresh call, got %d", refresher.calls)
	}
}

func TestAdminRefreshUnauthorized(t *testing.T) {
	refresher := &stubRefresher{}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("wrong"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for wrong token, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.Refresh(rec, adminRequest(""))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for missing token, got %d", rec.Code)
	}
	if refresher.calls != 0 {
		t.Fatalf("unauthorized requests must not refresh")
	}
}

func TestAdminRefreshDisabledWithoutToken(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("anything"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 when no token configured, got %d", rec.Code)
	}
}

func TestAdminRefreshFailure(t *testing.T) {
	refresher := &stubRefresher{err: errors.New("dataset unreachable")}
	h := NewAdminHandler(refresher, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("secret"))
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 on refresh failure, got %d", rec.Code)
	}
}

func TestAdminRefreshMethodNotAllowed(t *testing.T) {
	h := NewAdminHandler(&stubRefresher{}, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, httptest.NewRequest(http.MethodGet, "/admin/refresh", nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestAdminRefreshNotConfigured(t *testing.T) {
	h := NewAdminHandler(nil, "secret", nil)

	rec := httptest.NewRecorder()
	h.Refresh(rec, adminRequest("secret"))
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 without refresher, got %d", rec.Code)
	}
}
