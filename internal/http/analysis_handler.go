package http

import (
	"net/http"
	"sync"
	"time"

	"log-analyzer/internal/analyzers"
)

type analysisHandler struct {
	analysisService analyzers.AnalysisService
	now             func() time.Time
	// one run at a time, so the report directory has a single writer
	mu sync.Mutex
}

func NewAnalysisHandler(analysisService analyzers.AnalysisService, now func() time.Time) AppHttpHandler {
	return &analysisHandler{
		analysisService: analysisService,
		now:             now,
	}
}

// Handle processes POST /analyses for the current date. It answers 201 when a report was
// written and 200 when the date was already processed or the log had no data.
// The report is always named after the run date, so the date is not caller supplied.
func (h *analysisHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	runDate := h.now()

	h.mu.Lock()
	result, err := h.analysisService.Analyze(r.Context(), runDate)
	h.mu.Unlock()
	if err != nil {
		return err
	}

	status := http.StatusOK
	if result.Outcome == analyzers.OutcomeReportWritten {
		status = http.StatusCreated
	}
	return writeJSON(w, status, result)
}
