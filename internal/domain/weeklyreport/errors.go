package weeklyreport

import "errors"

var (
	ErrInvalidWeekDate    = errors.New("Invalid week date")
	ErrRecordOutOfRange   = errors.New("Daily record index out of range")
	ErrInvalidClientField = errors.New("Unknown client time field")
)
