package leave

import "time"

// HoursPerDay is the length of a full leave day in hourly mode.
const HoursPerDay = 8.0

// TimeWindow is a half-open interval [Start, End) of fractional hours within a day.
type TimeWindow struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DefaultLunchBreak is the lunch window excluded from hourly leave.
var DefaultLunchBreak = TimeWindow{Start: 12, End: 13}

// Overlap returns how many hours of [start, end) fall inside the window.
func (w TimeWindow) Overlap(start, end float64) float64 {
	overlapStart := max(start, w.Start)
	overlapEnd := min(end, w.End)
	return max(0, overlapEnd-overlapStart)
}

func (w TimeWindow) Valid() bool {
	return w.End > w.Start
}

// CalculationInput is one leave request as entered on the form. In hourly mode the same
// StartTime/EndTime window applies to every selected date.
type CalculationInput struct {
	SelectedDates []time.Time
	IsHourlyBased bool
	StartTime     string
	EndTime       string
}
