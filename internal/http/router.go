package http

import (
	"net/http"
	"time"

	"log-analyzer/internal/analyzers"
	"log-analyzer/internal/reports"
	"log-analyzer/internal/shared/loggers"
	"log-analyzer/internal/shared/metrics"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router. now gives the run date of
// POST /analyses requests without an explicit date.
func NewRouter(analysisService analyzers.AnalysisService, reportStore reports.ReportStore, now func() time.Time, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	analysisHandler := NewAnalysisHandler(analysisService, now)
	listReportsHandler := NewListReportsHandler(reportStore)
	getReportHandler := NewGetReportHandler(reportStore)

	router.Post("/analyses", errorHandlingAdapter(analysisHandler))
	router.Get("/reports", errorHandlingAdapter(listReportsHandler))
	router.Get("/reports/{"+urlParamDate+"}", errorHandlingAdapter(getReportHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
