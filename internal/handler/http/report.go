package http

import (
	"fmt"
	"net/http"

	"github.com/workholic/attendance-backend-go/internal/handler/http/response"
	reportService "github.com/workholic/attendance-backend-go/internal/service/report"
)

type ReportHandler interface {
	ExportXLSX(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService reportService.ReportService
}

func NewReportHandler(svc reportService.ReportService) ReportHandler {
	return &reportHandlerImpl{reportService: svc}
}

// ExportXLSX implements ReportHandler.
func (h *reportHandlerImpl) ExportXLSX(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportAttendanceXLSX(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveAttachment(w, data, filename, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
}

// ExportPDF implements ReportHandler.
func (h *reportHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportAttendancePDF(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	serveAttachment(w, data, filename, "application/pdf")
}

func serveAttachment(w http.ResponseWriter, data []byte, filename, contentType string) {
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(data)))
	_, _ = w.Write(data)
}
