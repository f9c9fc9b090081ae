package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/reboot-ai/crm-backend-go/internal/domain/report"
	"github.com/reboot-ai/crm-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
	Graph(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// Summary implements ReportHandler.
func (h *ReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	summaryReq := report.SummaryRequest{
		StartDate: r.URL.Query().Get("startdate"),
		EndDate:   r.URL.Query().Get("enddate"),
	}

	summary, err := h.reportService.GeneratePeriodSummary(r.Context(), summaryReq)
	if err != nil {
		slog.Error("Summary service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, summary)
}

// Graph implements ReportHandler.
func (h *ReportHandlerImpl) Graph(w http.ResponseWriter, r *http.Request) {
	graphReq, ok := parseGraphRequest(w, r)
	if !ok {
		return
	}

	graph, err := h.reportService.GenerateYearGraph(r.Context(), graphReq)
	if err != nil {
		slog.Error("Graph service error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, graph)
}

// Export implements ReportHandler.
func (h *ReportHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	graphReq, ok := parseGraphRequest(w, r)
	if !ok {
		return
	}

	payload, filename, err := h.reportService.ExportYearReport(r.Context(), graphReq)
	if err != nil {
		slog.Error("Export service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.File(w, filename,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", payload)
}

func parseGraphRequest(w http.ResponseWriter, r *http.Request) (report.GraphRequest, bool) {
	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		response.BadRequest(w, "year must be a number", nil)
		return report.GraphRequest{}, false
	}
	return report.GraphRequest{Year: year}, true
}
