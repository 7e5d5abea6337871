package weeklyreport

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

type BulkSettingsRequest struct {
	DailyRecords []DailyRecord `json:"daily_records"`
	Settings     BulkSettings  `json:"settings"`
}

func (r *BulkSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidClock(r.Settings.StartTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "settings.start_time",
			Message: "start_time must use HH:MM format",
		})
	}
	if !validator.IsValidClock(r.Settings.EndTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "settings.end_time",
			Message: "end_time must use HH:MM format",
		})
	}
	if !validator.IsNonNegative(r.Settings.BreakTime) {
		errs = append(errs, validator.ValidationError{
			Field:   "settings.break_time",
			Message: "break_time must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type HolidayWorkRequest struct {
	DailyRecords    []DailyRecord           `json:"daily_records"`
	Index           int                     `json:"index"`
	DefaultSettings DefaultWorkTimeSettings `json:"default_settings"`
}

func (r *HolidayWorkRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Index < 0 || r.Index >= len(r.DailyRecords) {
		errs = append(errs, validator.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must be between 0 and %d", len(r.DailyRecords)-1),
		})
	}
	errs = append(errs, validateDefaults(r.DefaultSettings)...)

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SummaryRequest struct {
	DailyRecords []DailyRecord `json:"daily_records"`
}

type DailyRecordsResponse struct {
	DailyRecords []DailyRecord `json:"daily_records"`
}

func validateDefaults(s DefaultWorkTimeSettings) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if s.WeekdayStart != "" && !validator.IsValidClock(s.WeekdayStart) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_settings.weekday_start",
			Message: "weekday_start must use HH:MM format",
		})
	}
	if s.WeekdayEnd != "" && !validator.IsValidClock(s.WeekdayEnd) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_settings.weekday_end",
			Message: "weekday_end must use HH:MM format",
		})
	}
	if !validator.IsNonNegative(s.WeekdayBreak) {
		errs = append(errs, validator.ValidationError{
			Field:   "default_settings.weekday_break",
			Message: "weekday_break must not be negative",
		})
	}
	return errs
}
