package leave

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

type CalculateLeaveRequest struct {
	SelectedDates []string `json:"selected_dates"`
	IsHourlyBased bool     `json:"is_hourly_based"`
	StartTime     string   `json:"start_time,omitempty"`
	EndTime       string   `json:"end_time,omitempty"`
}

// Validate only checks the shape of the input. An hourly request without times is
// allowed and simply counts as zero days.
func (r *CalculateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Selected dates
	for i, d := range r.SelectedDates {
		if _, ok := validator.IsValidDate(d); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("selected_dates[%d]", i),
				Message: "selected_dates must use YYYY-MM-DD format",
			})
		}
	}

	// Times
	if r.StartTime != "" && !validator.IsValidClock(r.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must use HH:MM format",
		})
	}
	if r.EndTime != "" && !validator.IsValidClock(r.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must use HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToInput converts a validated request. Dates are taken as calendar days in UTC.
func (r *CalculateLeaveRequest) ToInput() CalculationInput {
	dates := make([]time.Time, 0, len(r.SelectedDates))
	for _, d := range r.SelectedDates {
		if t, ok := validator.IsValidDate(d); ok {
			dates = append(dates, t)
		}
	}
	return CalculationInput{
		SelectedDates: dates,
		IsHourlyBased: r.IsHourlyBased,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
	}
}

type ValidateLeaveRequest struct {
	CalculateLeaveRequest
	RemainingDays float64 `json:"remaining_days"`
}

func (r *ValidateLeaveRequest) Validate() error {
	var errs validator.ValidationErrors
	if err := r.CalculateLeaveRequest.Validate(); err != nil {
		errs = append(errs, err.(validator.ValidationErrors)...)
	}

	if !validator.IsNonNegative(r.RemainingDays) {
		errs = append(errs, validator.ValidationError{
			Field:   "remaining_days",
			Message: "remaining_days must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CalculateLeaveResponse struct {
	Days          float64 `json:"days"`
	IsHourlyBased bool    `json:"is_hourly_based"`
	DateCount     int     `json:"date_count"`
}
