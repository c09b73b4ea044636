package handlers

import (
	"net/http"

	"github.com/LavaJover/shvark-revenue-service/internal/usecase"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUsecase
}

func NewReportHandler(reportUsecase usecase.ReportUsecase) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase}
}

func (h *ReportHandler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportUsecase.BuildRevenueReport()
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="revenue-report.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(report))
}
