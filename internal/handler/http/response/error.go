package response

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/leave"
	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/cmlabs-hris/hris-console-core/internal/domain/weeklyreport"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Leave domain errors
	case errors.Is(err, leave.ErrNoDatesSelected):
		BadRequest(w, "No leave dates selected", map[string]string{"selected_dates": "at least one date is required"})
	case errors.Is(err, leave.ErrDuplicateDates):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrInvalidTimeRange):
		BadRequest(w, "Leave end time must be after start time", nil)
	case errors.Is(err, leave.ErrInsufficientBalance):
		Conflict(w, err.Error())

	// Weekly report domain errors
	case errors.Is(err, weeklyreport.ErrInvalidWeekDate):
		BadRequest(w, "Invalid week date", map[string]string{"date": "date must use YYYY-MM-DD format"})
	case errors.Is(err, weeklyreport.ErrRecordOutOfRange):
		NotFound(w, "Daily record not found")
	case errors.Is(err, weeklyreport.ErrInvalidClientField):
		BadRequest(w, err.Error(), nil)

	// Table errors
	case errors.Is(err, table.ErrKeyFieldMissing):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, table.ErrRowNotFound):
		NotFound(w, "Row not found")
	case errors.Is(err, table.ErrRowClickDisabled), errors.Is(err, table.ErrPaginationDisabled):
		Conflict(w, err.Error())
	case errors.Is(err, table.ErrInvalidPageSize), errors.Is(err, table.ErrPageSizeChangeUnsupported):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
