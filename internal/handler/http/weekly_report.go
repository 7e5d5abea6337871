package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/weeklyreport"
	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
	weeklyReportService "github.com/cmlabs-hris/hris-console-core/internal/service/weeklyreport"
)

type WeeklyReportHandler interface {
	ApplyBulkSettings(w http.ResponseWriter, r *http.Request)
	ToggleHolidayWork(w http.ResponseWriter, r *http.Request)
	Week(w http.ResponseWriter, r *http.Request)
	Summary(w http.ResponseWriter, r *http.Request)
}

type WeeklyReportHandlerImpl struct {
	now func() time.Time
}

// ApplyBulkSettings implements WeeklyReportHandler.
func (h *WeeklyReportHandlerImpl) ApplyBulkSettings(w http.ResponseWriter, r *http.Request) {
	var req weeklyreport.BulkSettingsRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ApplyBulkSettings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records := weeklyReportService.ApplyBulkSettings(req.DailyRecords, req.Settings)
	response.SuccessWithMessage(w, "Bulk settings applied successfully", weeklyreport.DailyRecordsResponse{DailyRecords: records})
}

// ToggleHolidayWork implements WeeklyReportHandler.
func (h *WeeklyReportHandlerImpl) ToggleHolidayWork(w http.ResponseWriter, r *http.Request) {
	var req weeklyreport.HolidayWorkRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ToggleHolidayWork decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	records := weeklyReportService.ToggleHolidayWork(req.DailyRecords, req.Index, req.DefaultSettings)
	response.Success(w, weeklyreport.DailyRecordsResponse{DailyRecords: records})
}

// Week implements WeeklyReportHandler. Without a date it returns the current week.
func (h *WeeklyReportHandlerImpl) Week(w http.ResponseWriter, r *http.Request) {
	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, ok := validator.IsValidDate(raw)
		if !ok {
			response.HandleError(w, weeklyreport.ErrInvalidWeekDate)
			return
		}
		date = parsed
	}

	response.Success(w, weeklyreport.DailyRecordsResponse{DailyRecords: weeklyReportService.NewWeek(date)})
}

// Summary implements WeeklyReportHandler.
func (h *WeeklyReportHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	var req weeklyreport.SummaryRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Summary decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	response.Success(w, weeklyReportService.SummarizeHours(req.DailyRecords))
}

func NewWeeklyReportHandler() WeeklyReportHandler {
	return &WeeklyReportHandlerImpl{
		now: time.Now,
	}
}
