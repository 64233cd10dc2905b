package http

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"baseball-stats-service/internal/app/stats"
	"baseball-stats-service/internal/domain"
	"baseball-stats-service/internal/http/handlers"
	"baseball-stats-service/internal/poller"
	"baseball-stats-service/internal/store"
)

func newTestRouter(t *testing.T, withAdmin bool) nethttp.Handler {
	t.Helper()

	s := store.NewMemoryStore()
	s.SetReport(&domain.Report{
		Date:    "2007-06-15",
		Summary: domain.Summary{RecordCount: 1},
		NL:      domain.LeagueSplit{League: domain.LeagueNL},
		AL:      domain.LeagueSplit{League: domain.LeagueAL},
		Careers: []domain.Career{{PlayerID: "aaronha01"}},
		Records: domain.Records{domain.MetricHR: {PlayerID: "aaronha01", Value: 755}},
	}, time.Now())

	svc := stats.NewService(s)
	statusFn := func() poller.Status { return poller.Status{LastSuccess: time.Now()} }
	handler := handlers.NewHandler(svc, nil, nil, statusFn)

	var admin *handlers.AdminHandler
	if withAdmin {
		admin = handlers.NewAdminHandler(nil, "secret", nil)
	}
	return NewRouter(handler, admin)
}

func TestRouterRoutes(t *testing.T) {
	router := newTestRouter(t, true)

	cases := []struct {
		method string
		path   string
		status int
	}{
		{nethttp.MethodGet, "/health", nethttp.StatusOK},
		{nethttp.MethodGet, "/ready", nethttp.StatusOK},
		{nethttp.MethodGet, "/report", nethttp.StatusOK},
		{nethttp.MethodGet, "/report/summary", nethttp.StatusOK},
		{nethttp.MethodGet, "/leagues", nethttp.StatusOK},
		{nethttp.MethodGet, "/leagues/NL", nethttp.StatusOK},
		{nethttp.MethodGet, "/careers", nethttp.StatusOK},
		{nethttp.MethodGet, "/careers/aaronha01", nethttp.StatusOK},
		{nethttp.MethodGet, "/records", nethttp.StatusOK},
		{nethttp.MethodGet, "/records/hr", nethttp.StatusOK},
		{nethttp.MethodGet, "/nope", nethttp.StatusNotFound},
		{nethttp.MethodPost, "/admin/refresh", nethttp.StatusUnauthorized},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(tc.method, tc.path, nil))
		if rec.Code != tc.status {
			t.Fatalf("%s %s: expected %d, got %d (%s)", tc.method, tc.path, tc.status, rec.Code, rec.Body.String())
		}
	}
}

func TestRouterWithoutAdmin(t *testing.T) {
	router := newTestRouter(t, false)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(nethttp.MethodPost, "/admin/refresh", nil))
	if rec.Code != nethttp.StatusNotFound {
		t.Fatalf("expected 404 without admin handler, got %d", rec.Code)
	}
}
