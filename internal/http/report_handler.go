package http

import (
	"errors"
	"net/http"
	"time"

	"log-analyzer/internal/reports"

	"github.com/go-chi/chi/v5"
)

const urlParamDate = "date"

// ReportListItem is one entry of GET /reports.
type ReportListItem struct {
	Date string `json:"date"`
	Key  string `json:"key"`
}

type ReportListResponse struct {
	Reports []ReportListItem `json:"reports"`
}

type listReportsHandler struct {
	reportStore reports.ReportStore
}

func NewListReportsHandler(reportStore reports.ReportStore) AppHttpHandler {
	return &listReportsHandler{reportStore: reportStore}
}

// Handle processes GET /reports, most recent first.
func (h *listReportsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	dates, err := h.reportStore.List(r.Context())
	if err != nil {
		return errInternalReportStoreFailed(err)
	}

	response := ReportListResponse{Reports: make([]ReportListItem, 0, len(dates))}
	for _, date := range dates {
		response.Reports = append(response.Reports, ReportListItem{
			Date: date.Format(time.DateOnly),
			Key:  reports.ReportKey(date),
		})
	}
	return writeJSON(w, http.StatusOK, response)
}

type getReportHandler struct {
	reportStore reports.ReportStore
}

func NewGetReportHandler(reportStore reports.ReportStore) AppHttpHandler {
	return &getReportHandler{reportStore: reportStore}
}

// Handle processes GET /reports/{date}.
func (h *getReportHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	value := chi.URLParam(r, urlParamDate)
	date, err := reports.ParseReportDate(value)
	if err != nil {
		return errInvalidReportDate(value, err)
	}

	content, err := h.reportStore.Get(r.Context(), date)
	if err != nil {
		if errors.Is(err, reports.ErrReportNotFound) {
			return errReportNotFound(err)
		}
		return errInternalReportStoreFailed(err)
	}

	w.Header().Set(headerContentType, contentTypeHTML)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(content)
	return err
}
