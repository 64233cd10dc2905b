package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"baseball-stats-service/internal/app/stats"
	"baseball-stats-service/internal/domain"
	"baseball-stats-service/internal/logging"
	"baseball-stats-service/internal/poller"
	"baseball-stats-service/internal/snapshots"
	"baseball-stats-service/internal/timeutil"
)

// Handler wires HTTP routes to the stats service.
type Handler struct {
	svc      *stats.Service
	snaps    snapshots.Store
	logger   *slog.Logger
	statusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(svc *stats.Service, snaps snapshots.Store, logger *slog.Logger, statusFn func() poller.Status) *Handler {
	return &Handler{
		svc:      svc,
		snaps:    snaps,
		logger:   logger,
		statusFn: statusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Report returns the current analysis report. An explicit ?date= query
// serves the snapshot written for that day instead of the live report.
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	logger := loggerFromContext(r, h.logger)

	if date := strings.TrimSpace(r.URL.Query().Get("date")); date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		if h.snaps == nil {
			writeError(w, r, http.StatusServiceUnavailable, "snapshots not configured", h.logger)
			return
		}
		report, err := h.snaps.LoadReport(date)
		if err != nil {
			writeError(w, r, http.StatusNotFound, "no snapshot for date", h.logger)
			return
		}
		logging.Info(logger, "served snapshot report", logging.FieldDate, date, logging.FieldSource, "snapshot")
		writeJSON(w, http.StatusOK, report, h.logger)
		return
	}

	report, err := h.svc.Report()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, report, h.logger)
}

// ReportSummary returns the dataset-level summary of the current report.
func (h *Handler) ReportSummary(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	summary, err := h.svc.Summary()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, summary, h.logger)
}

// Leagues returns both league splits.
func (h *Handler) Leagues(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	splits, err := h.svc.Leagues()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, splits, h.logger)
}

// LeagueByCode returns the split for one league. Expects /leagues/{code}.
func (h *Handler) LeagueByCode(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	code, ok := pathSuffix(r.URL.Path, "/leagues/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid league code", h.logger)
		return
	}
	split, err := h.svc.League(strings.ToUpper(code))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, split, h.logger)
}

// Careers returns career aggregates; ?minAB=N filters by career at-bats
// and ?limit=N truncates the result.
func (h *Handler) Careers(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	minAB, ok := intQuery(w, r, "minAB", h.logger)
	if !ok {
		return
	}
	limit, ok := intQuery(w, r, "limit", h.logger)
	if !ok {
		return
	}
	careers, err := h.svc.Careers(minAB, limit)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, careers, h.logger)
}

// CareerByID returns one player's career aggregate. Expects /careers/{id}.
func (h *Handler) CareerByID(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	id, ok := pathSuffix(r.URL.Path, "/careers/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return
	}
	career, err := h.svc.CareerByID(id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, career, h.logger)
}

// Records returns every record category and its holder.
func (h *Handler) Records(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	records, err := h.svc.Records()
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, records, h.logger)
}

// RecordByMetric returns one record category. Expects /records/{metric}.
func (h *Handler) RecordByMetric(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r, h.logger) {
		return
	}
	metric, ok := pathSuffix(r.URL.Path, "/records/")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid metric", h.logger)
		return
	}
	entry, err := h.svc.RecordByMetric(domain.RecordMetric(metric))
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, entry, h.logger)
}

func (h *Handler) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, stats.ErrNoReport):
		writeError(w, r, http.StatusServiceUnavailable, "report not ready", h.logger)
	case errors.Is(err, stats.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found", h.logger)
	default:
		writeError(w, r, http.StatusInternalServerError, "internal error", h.logger)
	}
}

func intQuery(w http.ResponseWriter, r *http.Request, name string, logger *slog.Logger) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, true
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 0 {
		writeError(w, r, http.StatusBadRequest, "invalid "+name, logger)
		return 0, false
	}
	return parsed, true
}

func requireGet(w http.ResponseWriter, r *http.Request, logger *slog.Logger) bool {
	if r.Method != http.MethodGet {
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", logger)
		return false
	}
	return true
}

func pathSuffix(path, prefix string) (string, bool) {
	raw := strings.TrimPrefix(path, prefix)
	if raw == "" || raw == path {
		return "", false
	}
	value, err := url.PathUnescape(raw)
	if err != nil || value == "" || strings.ContainsAny(value, " \t/") {
		return "", false
	}
	return value, true
}
