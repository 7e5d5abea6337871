package dateutil

import (
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
	"github.com/jinzhu/now"
)

// Placeholder is rendered for absent or unparseable dates.
const Placeholder = "—"

const DefaultPattern = "2006/01/02"

var layouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02 15:04",
	"2006/01/02",
}

// Parse accepts time.Time, *time.Time and date strings. Zero and nil values do not parse.
func Parse(v any) (time.Time, bool) {
	switch d := v.(type) {
	case time.Time:
		return d, !d.IsZero()
	case *time.Time:
		if d == nil || d.IsZero() {
			return time.Time{}, false
		}
		return *d, true
	case string:
		return ParseString(d)
	case *string:
		if d == nil {
			return time.Time{}, false
		}
		return ParseString(*d)
	default:
		return time.Time{}, false
	}
}

func ParseString(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Format never fails; anything that does not parse becomes Placeholder.
func Format(v any, pattern string) string {
	t, ok := Parse(v)
	if !ok {
		return Placeholder
	}
	if pattern == "" {
		pattern = DefaultPattern
	}
	return t.Format(pattern)
}

// DayOfWeek derives the weekday of a date value in its own location.
func DayOfWeek(v any) (time.Weekday, bool) {
	t, ok := Parse(v)
	if !ok {
		return 0, false
	}
	return t.Weekday(), true
}

func IsWeekend(d time.Weekday) bool {
	return d == time.Saturday || d == time.Sunday
}

var jaWeekdays = [...]string{"日", "月", "火", "水", "木", "金", "土"}

// JapaneseWeekday returns the one-character weekday label used on report screens.
func JapaneseWeekday(d time.Weekday) string {
	return jaWeekdays[d%7]
}

// WeekDays returns the seven days, Monday through Sunday, of the week containing t.
func WeekDays(t time.Time) []time.Time {
	monday := now.With(t).Monday()
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}

// ClockHours converts "HH:MM" into fractional hours, e.g. "09:30" is 9.5.
func ClockHours(s string) (float64, bool) {
	hour, minute, ok := validator.ParseClock(s)
	if !ok {
		return 0, false
	}
	return float64(hour) + float64(minute)/60, true
}
