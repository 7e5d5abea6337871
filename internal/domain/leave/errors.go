package leave

import "errors"

var (
	ErrNoDatesSelected     = errors.New("No leave dates selected")
	ErrDuplicateDates      = errors.New("Leave dates must not repeat")
	ErrInvalidTimeRange    = errors.New("Leave end time must be after start time")
	ErrInsufficientBalance = errors.New("Insufficient leave balance")
)
