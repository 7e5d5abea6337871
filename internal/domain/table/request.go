package table

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

// Named formats a column may request over HTTP.
const (
	FormatNone   = ""
	FormatDate   = "date"
	FormatStatus = "status"
	FormatNumber = "number"
)

var columnFormats = []string{FormatNone, FormatDate, FormatStatus, FormatNumber}

type ColumnSpec struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Align    Align  `json:"align,omitempty"`
	MinWidth int    `json:"min_width,omitempty"`
	Sortable bool   `json:"sortable,omitempty"`
	Format   string `json:"format,omitempty"`
}

type PaginationRequest struct {
	Enabled         bool  `json:"enabled"`
	Page            int   `json:"page"`
	PageSize        int   `json:"page_size"`
	TotalCount      int   `json:"total_count"`
	PageSizeOptions []int `json:"page_size_options,omitempty"`
	Loading         bool  `json:"loading,omitempty"`
}

// HistoryTableRequest previews a history table from plain JSON rows. DatePattern is a Go
// time layout.
type HistoryTableRequest struct {
	Columns            []ColumnSpec          `json:"columns"`
	Rows               []MapRow              `json:"rows"`
	KeyField           string                `json:"key_field,omitempty"`
	Loading            bool                  `json:"loading,omitempty"`
	EmptyMessage       string                `json:"empty_message,omitempty"`
	ConvertStatus      bool                  `json:"convert_status,omitempty"`
	StatusLabels       map[StatusKind]string `json:"status_labels,omitempty"`
	DatePattern        string                `json:"date_pattern,omitempty"`
	ShowProcessedDate  bool                  `json:"show_processed_date,omitempty"`
	ProcessedDateLabel string                `json:"processed_date_label,omitempty"`
	Pagination         *PaginationRequest    `json:"pagination,omitempty"`
}

func (r *HistoryTableRequest) Validate() error {
	var errs validator.ValidationErrors

	// Columns
	if len(r.Columns) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "columns",
			Message: "at least one column is required",
		})
	}
	for i, c := range r.Columns {
		if validator.IsEmpty(c.Key) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("columns[%d].key", i),
				Message: "key is required",
			})
		}
		if c.Align != "" && !validator.IsInSlice(string(c.Align), []string{string(AlignLeft), string(AlignCenter), string(AlignRight)}) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("columns[%d].align", i),
				Message: "align must be left, center or right",
			})
		}
		if !validator.IsInSlice(c.Format, columnFormats) {
			errs = append(errs, validator.ValidationError{
				Field:   fmt.Sprintf("columns[%d].format", i),
				Message: "format must be date, status or number",
			})
		}
	}

	// Pagination
	if p := r.Pagination; p != nil && p.Enabled {
		if p.Page < 1 {
			errs = append(errs, validator.ValidationError{
				Field:   "pagination.page",
				Message: "page must be at least 1",
			})
		}
		if p.PageSize <= 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "pagination.page_size",
				Message: "page_size must be positive",
			})
		}
		if p.TotalCount < 0 {
			errs = append(errs, validator.ValidationError{
				Field:   "pagination.total_count",
				Message: "total_count must not be negative",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
