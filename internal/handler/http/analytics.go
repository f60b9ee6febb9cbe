package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/handler/http/response"
	analyticsservice "github.com/leavedesk/leave-backend-go/internal/service/analytics"
)

type AnalyticsHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	GetSummary(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analyticsservice.Service
}

func NewAnalyticsHandler(analyticsService analyticsservice.Service) AnalyticsHandler {
	return &analyticsHandlerImpl{analyticsService: analyticsService}
}

// GetReport returns the full analytics dashboard payload
func (h *analyticsHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.analyticsService.GetReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GetSummary returns the aggregate counters only
func (h *analyticsHandlerImpl) GetSummary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.analyticsService.GetSummary(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}

// Export streams the detailed request list as CSV or XLSX
func (h *analyticsHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}

	filename := fmt.Sprintf("leave-requests-%s", time.Now().Format("2006-01-02"))

	switch format {
	case "csv":
		data, err := h.analyticsService.ExportCSV(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	case "xlsx":
		data, err := h.analyticsService.ExportXLSX(r.Context())
		if err != nil {
			response.HandleError(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)

	default:
		response.BadRequest(w, "format must be csv or xlsx", nil)
	}
}
