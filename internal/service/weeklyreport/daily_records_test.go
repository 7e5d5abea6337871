package weeklyreport

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/weeklyreport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 2024-01-01 is a Monday.
func week() []weeklyreport.DailyRecord {
	return NewWeek(time.Date(2024, time.January, 3, 15, 0, 0, 0, time.UTC))
}

func defaults() weeklyreport.DefaultWorkTimeSettings {
	return weeklyreport.DefaultWorkTimeSettings{
		WeekdayStart: "09:00",
		WeekdayEnd:   "18:00",
		WeekdayBreak: 1,
		CustomDaySettings: weeklyreport.CustomDaySettings{
			Saturday: weeklyreport.DaySettings{Enabled: true, StartTime: "10:00", EndTime: "15:00", BreakTime: 0.5},
		},
	}
}

func TestNewWeek(t *testing.T) {
	records := week()
	require.Len(t, records, 7)
	assert.Equal(t, "2024-01-01", records[0].Date)
	assert.Equal(t, "月", records[0].DayOfWeek)
	assert.Equal(t, "2024-01-07", records[6].Date)
	assert.Equal(t, "日", records[6].DayOfWeek)
}

func TestApplyBulkSettings(t *testing.T) {
	records := week()
	records[0].Remarks = "X"
	records[5].Remarks = "weekend"
	records[5].StartTime = "11:00"
	input := append([]weeklyreport.DailyRecord(nil), records...)

	settings := weeklyreport.BulkSettings{StartTime: "09:00", EndTime: "18:00", BreakTime: 1}
	out := ApplyBulkSettings(records, settings)

	require.Len(t, out, 7)
	assert.Equal(t, input, records, "input is not mutated")

	for i := 0; i < 5; i++ {
		assert.Equal(t, records[i].Date, out[i].Date, "order is kept")
		assert.Equal(t, "09:00", out[i].StartTime)
		assert.Equal(t, "18:00", out[i].EndTime)
		assert.Equal(t, 1.0, out[i].BreakTime)
	}
	assert.Equal(t, "X", out[0].Remarks, "empty remarks keep the existing value")

	assert.Equal(t, records[5], out[5])
	assert.Equal(t, records[6], out[6])

	out = ApplyBulkSettings(records, weeklyreport.BulkSettings{StartTime: "08:30", EndTime: "17:30", Remarks: "出社"})
	assert.Equal(t, "出社", out[0].Remarks)
	assert.Equal(t, "weekend", out[5].Remarks)
}

func TestApplyBulkSettings_UnparseableDateIsWeekday(t *testing.T) {
	records := []weeklyreport.DailyRecord{{Date: "someday", Remarks: "keep"}}
	out := ApplyBulkSettings(records, weeklyreport.BulkSettings{StartTime: "09:00", EndTime: "18:00", BreakTime: 1})
	assert.Equal(t, "09:00", out[0].StartTime)
	assert.Equal(t, "keep", out[0].Remarks)

	assert.Empty(t, ApplyBulkSettings(nil, weeklyreport.BulkSettings{}))
}

func TestChangeBreakTime(t *testing.T) {
	records := week()
	out := ChangeBreakTime(records, 1, "1.5")
	assert.Equal(t, 1.5, out[1].BreakTime)
	assert.Equal(t, 0.0, records[1].BreakTime)

	out = ChangeBreakTime(out, 1, "abc")
	assert.Equal(t, 0.0, out[1].BreakTime)

	assert.Equal(t, records, ChangeBreakTime(records, 7, "1"))
	assert.Equal(t, records, ChangeBreakTime(records, -1, "1"))
}

func TestParseHours(t *testing.T) {
	cases := []struct {
		input string
		want  float64
	}{
		{"1.5", 1.5},
		{"1.5h", 1.5},
		{" 2 hours", 2},
		{".5", 0.5},
		{"1e1x", 10},
		{"-1", -1},
		{"abc", 0},
		{"", 0},
		{"h1", 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, parseHours(c.input), "input %q", c.input)
	}
}

func TestToggleHolidayWork(t *testing.T) {
	records := week()
	records[6].StartTime = "13:00"

	// Saturday uses its custom settings.
	out := ToggleHolidayWork(records, 5, defaults())
	assert.True(t, out[5].IsHolidayWork)
	assert.Equal(t, "10:00", out[5].StartTime)
	assert.Equal(t, "15:00", out[5].EndTime)
	assert.Equal(t, 0.5, out[5].BreakTime)

	// Sunday has no custom settings; only empty fields are filled.
	out = ToggleHolidayWork(out, 6, defaults())
	assert.Equal(t, "13:00", out[6].StartTime)
	assert.Equal(t, "18:00", out[6].EndTime)
	assert.Equal(t, 1.0, out[6].BreakTime)

	// Disabling keeps the times.
	out = ToggleHolidayWork(out, 5, defaults())
	assert.False(t, out[5].IsHolidayWork)
	assert.Equal(t, "10:00", out[5].StartTime)
}

func TestSetClientWork(t *testing.T) {
	records := week()
	records[0].StartTime = "08:00"
	records[0].BreakTime = 0.75

	out := SetClientWork(records, 0, true, defaults())
	assert.True(t, out[0].HasClientWork)
	assert.Equal(t, "08:00", out[0].ClientStartTime)
	assert.Equal(t, "18:00", out[0].ClientEndTime)
	assert.Equal(t, 0.75, out[0].ClientBreakTime)

	out[0].ClientWorkHours = 9
	out = SetClientWork(out, 0, false, defaults())
	assert.Equal(t, weeklyreport.DailyRecord{
		Date:      "2024-01-01",
		DayOfWeek: "月",
		StartTime: "08:00",
		BreakTime: 0.75,
	}, out[0])
}

func TestSetClientTime(t *testing.T) {
	records := week()
	out := SetClientTime(records, 2, weeklyreport.ClientEndTime, "19:00")
	assert.Equal(t, "19:00", out[2].ClientEndTime)
	assert.True(t, out[2].HasClientWork)

	out = SetClientBreakTime(out, 3, "0.5")
	assert.Equal(t, 0.5, out[3].ClientBreakTime)
	assert.True(t, out[3].HasClientWork)

	assert.Equal(t, records, SetClientTime(records, 2, "remarks", "x"))
}

func TestSummarizeHours(t *testing.T) {
	full := ApplyBulkSettings(week(), weeklyreport.BulkSettings{StartTime: "09:00", EndTime: "18:00", BreakTime: 1})
	for i := 5; i < 7; i++ {
		full[i].StartTime, full[i].EndTime, full[i].BreakTime = "09:00", "18:00", 1
	}

	s := SummarizeHours(full)
	assert.Equal(t, 56.0, s.CompanyRegularHours)
	assert.Equal(t, 0.0, s.CompanyOvertimeHours)
	assert.Equal(t, 7.0, s.BreakHours)
	assert.Equal(t, 56.0, s.TotalHours)

	full[1].EndTime = "22:00"
	s = SummarizeHours(full)
	assert.Equal(t, 4.0, s.CompanyOvertimeHours)

	full = SetClientWork(full, 2, true, defaults())
	s = SummarizeHours(full)
	assert.Equal(t, 8.0, s.ClientRegularHours)
	assert.Equal(t, s.CompanyRegularHours+s.CompanyOvertimeHours+s.ClientRegularHours+s.ClientOvertimeHours, s.TotalHours)

	empty := SummarizeHours(week())
	assert.Equal(t, weeklyreport.HoursSummary{}, empty)
}
