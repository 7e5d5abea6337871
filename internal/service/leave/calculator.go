package leave

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/dateutil"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

// Calculator turns selected dates and an optional clock range into leave days.
type Calculator struct {
	LunchBreak  leave.TimeWindow
	HoursPerDay float64
}

// NewCalculator falls back to the default lunch window and day length for zero or
// invalid values.
func NewCalculator(lunchBreak leave.TimeWindow, hoursPerDay float64) *Calculator {
	if !lunchBreak.Valid() {
		lunchBreak = leave.DefaultLunchBreak
	}
	if hoursPerDay <= 0 {
		hoursPerDay = leave.HoursPerDay
	}
	return &Calculator{LunchBreak: lunchBreak, HoursPerDay: hoursPerDay}
}

var defaultCalculator = NewCalculator(leave.DefaultLunchBreak, leave.HoursPerDay)

// CalculateLeaveDays counts leave days with the default lunch window and an eight hour day.
func CalculateLeaveDays(dates []time.Time, hourly bool, start, end string) float64 {
	return defaultCalculator.Days(leave.CalculationInput{
		SelectedDates: dates,
		IsHourlyBased: hourly,
		StartTime:     start,
		EndTime:       end,
	})
}

// Days never fails. A missing, malformed or reversed clock range in hourly mode yields 0.
func (c *Calculator) Days(in leave.CalculationInput) float64 {
	if len(in.SelectedDates) == 0 {
		return 0
	}
	if !in.IsHourlyBased {
		return float64(len(in.SelectedDates))
	}

	startHour, ok := dateutil.ClockHours(in.StartTime)
	if !ok {
		return 0
	}
	endHour, ok := dateutil.ClockHours(in.EndTime)
	if !ok {
		return 0
	}
	if endHour <= startHour {
		return 0
	}

	rawHours := endHour - startHour
	effective := max(0, rawHours-c.LunchBreak.Overlap(startHour, endHour))
	return effective / c.HoursPerDay * float64(len(in.SelectedDates))
}

// ValidateRequest applies the leave form checks and returns the requested days.
func (c *Calculator) ValidateRequest(in leave.CalculationInput, remainingDays float64) (float64, error) {
	if len(in.SelectedDates) == 0 {
		return 0, leave.ErrNoDatesSelected
	}

	seen := make(map[string]struct{}, len(in.SelectedDates))
	for _, d := range in.SelectedDates {
		day := d.Format("2006-01-02")
		if _, dup := seen[day]; dup {
			return 0, fmt.Errorf("%w: %s", leave.ErrDuplicateDates, day)
		}
		seen[day] = struct{}{}
	}

	if in.IsHourlyBased {
		var errs validator.ValidationErrors
		if !validator.IsValidClock(in.StartTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "start_time",
				Message: "start_time is required in HH:MM format for hourly leave",
			})
		}
		if !validator.IsValidClock(in.EndTime) {
			errs = append(errs, validator.ValidationError{
				Field:   "end_time",
				Message: "end_time is required in HH:MM format for hourly leave",
			})
		}
		if len(errs) > 0 {
			return 0, errs
		}
	}

	days := c.Days(in)
	if days <= 0 {
		return 0, leave.ErrInvalidTimeRange
	}
	if days > remainingDays {
		return 0, fmt.Errorf("%w: requested %g, remaining %g", leave.ErrInsufficientBalance, days, remainingDays)
	}
	return days, nil
}

// ParseTimeWindow builds a window from two "HH:MM" clocks.
func ParseTimeWindow(start, end string) (leave.TimeWindow, error) {
	s, ok := dateutil.ClockHours(start)
	if !ok {
		return leave.TimeWindow{}, fmt.Errorf("invalid window start %q", start)
	}
	e, ok := dateutil.ClockHours(end)
	if !ok {
		return leave.TimeWindow{}, fmt.Errorf("invalid window end %q", end)
	}
	w := leave.TimeWindow{Start: s, End: e}
	if !w.Valid() {
		return leave.TimeWindow{}, fmt.Errorf("%w: %s-%s", leave.ErrInvalidTimeRange, start, end)
	}
	return w, nil
}
