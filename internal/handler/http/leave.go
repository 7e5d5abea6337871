package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/response"
	leaveService "github.com/cmlabs-hris/hris-console-core/internal/service/leave"
)

type LeaveHandler interface {
	Calculate(w http.ResponseWriter, r *http.Request)
	Validate(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	calculator *leaveService.Calculator
}

// Calculate implements LeaveHandler. It never rejects a well-formed request; an
// incomplete hourly range simply yields zero days.
func (l *LeaveHandlerImpl) Calculate(w http.ResponseWriter, r *http.Request) {
	var req leave.CalculateLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Calculate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	in := req.ToInput()
	response.Success(w, leave.CalculateLeaveResponse{
		Days:          l.calculator.Days(in),
		IsHourlyBased: in.IsHourlyBased,
		DateCount:     len(in.SelectedDates),
	})
}

// Validate implements LeaveHandler.
func (l *LeaveHandlerImpl) Validate(w http.ResponseWriter, r *http.Request) {
	var req leave.ValidateLeaveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Validate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	in := req.ToInput()
	days, err := l.calculator.ValidateRequest(in, req.RemainingDays)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request is valid", leave.CalculateLeaveResponse{
		Days:          days,
		IsHourlyBased: in.IsHourlyBased,
		DateCount:     len(in.SelectedDates),
	})
}

func NewLeaveHandler(calculator *leaveService.Calculator) LeaveHandler {
	return &LeaveHandlerImpl{
		calculator: calculator,
	}
}
