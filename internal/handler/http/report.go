package http

import (
	"log/slog"
	"net/http"

	"github.com/unolo/fieldtrack-backend-go/internal/domain/report"
	"github.com/unolo/fieldtrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	DailySummary(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// DailySummary implements ReportHandler.
func (h *ReportHandlerImpl) DailySummary(w http.ResponseWriter, r *http.Request) {
	managerID, err := callerID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	date := r.URL.Query().Get("date")

	result, err := h.reportService.DailySummary(r.Context(), managerID, date)
	if err != nil {
		slog.Error("DailySummary service error", "error", err, "manager_id", managerID, "date", date)
		response.HandleError(w, err)
		return
	}

	response.SuccessForDate(w, result.Date, result.Records)
}
