package http

import (
	nethttp "net/http"

	"baseball-stats-service/internal/http/handlers"
)

// NewRouter registers HTTP routes on a ServeMux.
func NewRouter(handler *handlers.Handler, admin *handlers.AdminHandler) nethttp.Handler {
	mux := nethttp.NewServeMux()
	mux.HandleFunc("/health", handler.Health)
	mux.HandleFunc("/ready", handler.Ready)
	mux.HandleFunc("/report", handler.Report)
	mux.HandleFunc("/report/summary", handler.ReportSummary)
	mux.HandleFunc("/leagues", handler.Leagues)
	mux.HandleFunc("/leagues/", handler.LeagueByCode)
	mux.HandleFunc("/careers", handler.Careers)
	mux.HandleFunc("/careers/", handler.CareerByID)
	mux.HandleFunc("/records", handler.Records)
	mux.HandleFunc("/records/", handler.RecordByMetric)
	if admin != nil {
		mux.HandleFunc("/admin/refresh", admin.Refresh)
	}
	return mux
}
