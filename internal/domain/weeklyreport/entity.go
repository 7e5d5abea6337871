package weeklyreport

import "time"

// RegularHoursPerDay splits worked time into regular and overtime hours.
const RegularHoursPerDay = 8.0

// DailyRecord is one day of a weekly report. Times are "HH:MM" and break times are hours.
type DailyRecord struct {
	Date            string  `json:"date"`
	DayOfWeek       string  `json:"day_of_week,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	BreakTime       float64 `json:"break_time"`
	Remarks         string  `json:"remarks"`
	IsHolidayWork   bool    `json:"is_holiday_work"`
	HasClientWork   bool    `json:"has_client_work"`
	ClientStartTime string  `json:"client_start_time"`
	ClientEndTime   string  `json:"client_end_time"`
	ClientBreakTime float64 `json:"client_break_time"`
	ClientWorkHours float64 `json:"client_work_hours"`
}

// BulkSettings is applied to every weekday record at once.
type BulkSettings struct {
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	BreakTime float64 `json:"break_time"`
	Remarks   string  `json:"remarks"`
}

type DaySettings struct {
	Enabled   bool    `json:"enabled"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`
	BreakTime float64 `json:"break_time"`
}

type CustomDaySettings struct {
	Monday    DaySettings `json:"monday"`
	Tuesday   DaySettings `json:"tuesday"`
	Wednesday DaySettings `json:"wednesday"`
	Thursday  DaySettings `json:"thursday"`
	Friday    DaySettings `json:"friday"`
	Saturday  DaySettings `json:"saturday"`
	Sunday    DaySettings `json:"sunday"`
}

func (c CustomDaySettings) For(d time.Weekday) DaySettings {
	switch d {
	case time.Monday:
		return c.Monday
	case time.Tuesday:
		return c.Tuesday
	case time.Wednesday:
		return c.Wednesday
	case time.Thursday:
		return c.Thursday
	case time.Friday:
		return c.Friday
	case time.Saturday:
		return c.Saturday
	case time.Sunday:
		return c.Sunday
	}
	return DaySettings{}
}

// DefaultWorkTimeSettings are the engineer's usual hours, optionally overridden per weekday.
type DefaultWorkTimeSettings struct {
	WeekdayStart      string            `json:"weekday_start"`
	WeekdayEnd        string            `json:"weekday_end"`
	WeekdayBreak      float64           `json:"weekday_break"`
	CustomDaySettings CustomDaySettings `json:"custom_day_settings"`
}

// ClientTimeField names the client clock fields that can be edited directly.
type ClientTimeField string

const (
	ClientStartTime ClientTimeField = "client_start_time"
	ClientEndTime   ClientTimeField = "client_end_time"
)

func (f ClientTimeField) Valid() bool {
	return f == ClientStartTime || f == ClientEndTime
}

type HoursSummary struct {
	CompanyRegularHours  float64 `json:"company_regular_hours"`
	CompanyOvertimeHours float64 `json:"company_overtime_hours"`
	ClientRegularHours   float64 `json:"client_regular_hours"`
	ClientOvertimeHours  float64 `json:"client_overtime_hours"`
	BreakHours           float64 `json:"break_hours"`
	TotalHours           float64 `json:"total_hours"`
}
