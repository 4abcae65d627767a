// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/legitrack/handlers"
	"github.com/danielhkuo/legitrack/middleware"
)

// NewRouter builds the HTTP routing table.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	reportHandler := handlers.NewReportHandler(db)
	billHandler := handlers.NewBillHandler(db)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		middleware.JSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// Report endpoints
	mux.HandleFunc("GET /reports/calendar", middleware.WithLogging(reportHandler.GetCalendarReport))

	// Bill endpoints
	mux.HandleFunc("GET /bills/{billNumber}", middleware.WithLogging(billHandler.GetBill))
	mux.HandleFunc("GET /bills/{billNumber}/committee-vote", middleware.WithLogging(billHandler.GetCommitteeVote))

	// Root
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			middleware.ErrorResponse(w, http.StatusNotFound, "Route not found")
			return
		}
		middleware.JSONResponse(w, http.StatusOK, map[string]string{
			"service": "legitrack",
			"version": "v1",
		})
	})

	return middleware.CORS(mux)
}
