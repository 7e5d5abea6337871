package weeklyreport

import (
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/weeklyreport"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/dateutil"
)

const recordDateLayout = "2006-01-02"

// ApplyBulkSettings returns a copy of records with the settings applied to every
// weekday. Saturday and Sunday records are returned unchanged. A record whose date
// cannot be parsed is treated as a weekday.
func ApplyBulkSettings(records []weeklyreport.DailyRecord, settings weeklyreport.BulkSettings) []weeklyreport.DailyRecord {
	out := make([]weeklyreport.DailyRecord, len(records))
	for i, record := range records {
		weekday, ok := dateutil.DayOfWeek(record.Date)
		if !ok {
			slog.Warn("bulk settings: unparseable record date, treating as weekday",
				slog.Int("index", i),
				slog.String("date", record.Date),
			)
		}
		if ok && dateutil.IsWeekend(weekday) {
			out[i] = record
			continue
		}

		record.StartTime = settings.StartTime
		record.EndTime = settings.EndTime
		record.BreakTime = settings.BreakTime
		if settings.Remarks != "" {
			record.Remarks = settings.Remarks
		}
		out[i] = record
	}
	return out
}

// ChangeBreakTime sets the company break from the leading number of raw input.
// Input without one becomes 0.
func ChangeBreakTime(records []weeklyreport.DailyRecord, index int, raw string) []weeklyreport.DailyRecord {
	return update(records, index, func(r *weeklyreport.DailyRecord) {
		r.BreakTime = parseHours(raw)
	})
}

// ToggleHolidayWork flips the holiday work flag. When enabling, empty times and a zero
// break are filled from the day's defaults; values already entered are kept.
func ToggleHolidayWork(records []weeklyreport.DailyRecord, index int, defaults weeklyreport.DefaultWorkTimeSettings) []weeklyreport.DailyRecord {
	return update(records, index, func(r *weeklyreport.DailyRecord) {
		r.IsHolidayWork = !r.IsHolidayWork
		if !r.IsHolidayWork {
			return
		}
		ds := settingsFor(r.Date, defaults)
		if r.StartTime == "" {
			r.StartTime = ds.StartTime
		}
		if r.EndTime == "" {
			r.EndTime = ds.EndTime
		}
		if r.BreakTime == 0 {
			r.BreakTime = ds.BreakTime
		}
	})
}

// SetClientWork enables or disables client work on a record. Enabling copies the
// company times, or the day's defaults where those are empty. Disabling clears every
// client field.
func SetClientWork(records []weeklyreport.DailyRecord, index int, enabled bool, defaults weeklyreport.DefaultWorkTimeSettings) []weeklyreport.DailyRecord {
	return update(records, index, func(r *weeklyreport.DailyRecord) {
		if !enabled {
			r.HasClientWork = false
			r.ClientStartTime = ""
			r.ClientEndTime = ""
			r.ClientBreakTime = 0
			r.ClientWorkHours = 0
			return
		}

		ds := settingsFor(r.Date, defaults)
		r.HasClientWork = true
		r.ClientStartTime = firstNonEmpty(r.StartTime, ds.StartTime)
		r.ClientEndTime = firstNonEmpty(r.EndTime, ds.EndTime)
		r.ClientBreakTime = r.BreakTime
		if r.ClientBreakTime == 0 {
			r.ClientBreakTime = ds.BreakTime
		}
	})
}

// SetClientTime writes one client clock and marks the record as client work.
func SetClientTime(records []weeklyreport.DailyRecord, index int, field weeklyreport.ClientTimeField, value string) []weeklyreport.DailyRecord {
	if !field.Valid() {
		return records
	}
	return update(records, index, func(r *weeklyreport.DailyRecord) {
		switch field {
		case weeklyreport.ClientStartTime:
			r.ClientStartTime = value
		case weeklyreport.ClientEndTime:
			r.ClientEndTime = value
		}
		r.HasClientWork = true
	})
}

func SetClientBreakTime(records []weeklyreport.DailyRecord, index int, raw string) []weeklyreport.DailyRecord {
	return update(records, index, func(r *weeklyreport.DailyRecord) {
		r.ClientBreakTime = parseHours(raw)
		r.HasClientWork = true
	})
}

// NewWeek returns seven empty records, Monday through Sunday, for the week of date.
func NewWeek(date time.Time) []weeklyreport.DailyRecord {
	days := dateutil.WeekDays(date)
	records := make([]weeklyreport.DailyRecord, len(days))
	for i, d := range days {
		records[i] = weeklyreport.DailyRecord{
			Date:      d.Format(recordDateLayout),
			DayOfWeek: dateutil.JapaneseWeekday(d.Weekday()),
		}
	}
	return records
}

// SummarizeHours totals worked hours per record, splitting each day at
// RegularHoursPerDay into regular and overtime. Records with missing or reversed
// times contribute nothing.
func SummarizeHours(records []weeklyreport.DailyRecord) weeklyreport.HoursSummary {
	var s weeklyreport.HoursSummary
	for _, r := range records {
		if worked, ok := workedHours(r.StartTime, r.EndTime, r.BreakTime); ok {
			regular, overtime := splitOvertime(worked)
			s.CompanyRegularHours += regular
			s.CompanyOvertimeHours += overtime
			s.BreakHours += r.BreakTime
		}
		if !r.HasClientWork {
			continue
		}
		if worked, ok := workedHours(r.ClientStartTime, r.ClientEndTime, r.ClientBreakTime); ok {
			regular, overtime := splitOvertime(worked)
			s.ClientRegularHours += regular
			s.ClientOvertimeHours += overtime
			s.BreakHours += r.ClientBreakTime
		}
	}
	s.TotalHours = s.CompanyRegularHours + s.CompanyOvertimeHours + s.ClientRegularHours + s.ClientOvertimeHours
	return s
}

// update copies records and applies fn to the copy at index. An index out of range
// returns records untouched.
func update(records []weeklyreport.DailyRecord, index int, fn func(*weeklyreport.DailyRecord)) []weeklyreport.DailyRecord {
	if index < 0 || index >= len(records) {
		return records
	}
	out := make([]weeklyreport.DailyRecord, len(records))
	copy(out, records)
	fn(&out[index])
	return out
}

func settingsFor(date string, defaults weeklyreport.DefaultWorkTimeSettings) weeklyreport.DaySettings {
	if weekday, ok := dateutil.DayOfWeek(date); ok {
		if ds := defaults.CustomDaySettings.For(weekday); ds.Enabled {
			return ds
		}
	}
	return weeklyreport.DaySettings{
		StartTime: defaults.WeekdayStart,
		EndTime:   defaults.WeekdayEnd,
		BreakTime: defaults.WeekdayBreak,
	}
}

func workedHours(start, end string, breakHours float64) (float64, bool) {
	s, ok := dateutil.ClockHours(start)
	if !ok {
		return 0, false
	}
	e, ok := dateutil.ClockHours(end)
	if !ok || e <= s {
		return 0, false
	}
	return max(0, e-s-breakHours), true
}

func splitOvertime(worked float64) (regular, overtime float64) {
	regular = min(worked, weeklyreport.RegularHoursPerDay)
	return regular, worked - regular
}

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// parseHours reads the leading decimal of raw, so "1.5h" is 1.5. Anything else is 0.
func parseHours(raw string) float64 {
	v, err := strconv.ParseFloat(leadingNumber.FindString(strings.TrimSpace(raw)), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
