package table

import "errors"

var (
	ErrKeyFieldMissing           = errors.New("Row is missing its key field")
	ErrRowNotFound               = errors.New("Row not found")
	ErrRowClickDisabled          = errors.New("Rows are not clickable")
	ErrPaginationDisabled        = errors.New("Pagination is disabled")
	ErrPageSizeChangeUnsupported = errors.New("Page size change is not supported")
	ErrInvalidPageSize           = errors.New("Page size must be positive")
)
