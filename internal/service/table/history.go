package table

import (
	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/dateutil"
)

const DefaultProcessedDateLabel = "処理日"

type HistoryProps[T table.Row] struct {
	table.Props[T]

	// StatusConverter enables the status formatter. Without it the status column is
	// rendered as plain text.
	StatusConverter    StatusConverter
	StatusDisplay      StatusDisplay
	DatePattern        string
	ShowProcessedDate  bool
	ProcessedDateLabel string
	Pagination         *table.PaginationConfig
}

// HistoryTable is a DataTable for rows with a date, a status and an optional processed
// date. It formats those fields unless the caller's columns already do.
type HistoryTable[T table.Row] struct {
	data       *DataTable[T]
	pagination *Pagination
}

func NewHistoryTable[T table.Row](props HistoryProps[T]) *HistoryTable[T] {
	base := props.Props
	base.Columns = historyColumns(props)

	h := &HistoryTable[T]{data: NewDataTable(base)}

	if cfg := props.Pagination; cfg != nil && cfg.Enabled {
		h.pagination = NewPagination(PaginationOptions{
			Page:             External(cfg.Page, cfg.OnPageChange),
			TotalPages:       cfg.TotalPages(),
			TotalCount:       cfg.TotalCount,
			PageSize:         cfg.PageSize,
			PageSizeOptions:  cfg.PageSizeOptions,
			Loading:          cfg.Loading,
			OnPageSizeChange: cfg.OnPageSizeChange,
		})
	}
	return h
}

func historyColumns[T table.Row](props HistoryProps[T]) []table.Column[T] {
	pattern := props.DatePattern
	if pattern == "" {
		pattern = dateutil.DefaultPattern
	}

	auto := map[string]table.Format[T]{
		table.KeyDate:        DateFormat[T](pattern),
		table.KeyProcessedAt: DateFormat[T](pattern),
	}
	if props.StatusConverter != nil {
		auto[table.KeyStatus] = StatusFormat[T](props.StatusConverter, props.StatusDisplay)
	}

	columns := MergeColumns(props.Columns, auto)

	if props.ShowProcessedDate && !HasColumn(columns, table.KeyProcessedAt) {
		label := props.ProcessedDateLabel
		if label == "" {
			label = DefaultProcessedDateLabel
		}
		columns = append(columns, table.Column[T]{
			Key:    table.KeyProcessedAt,
			Label:  label,
			Format: DateFormat[T](pattern),
		})
	}
	return columns
}

func (h *HistoryTable[T]) Columns() []table.Column[T] {
	return h.data.Columns()
}

// Render renders the table and, when pagination is enabled, the pagination view below it.
func (h *HistoryTable[T]) Render() (table.RenderTree, error) {
	tree, err := h.data.Render()
	if err != nil {
		return table.RenderTree{}, err
	}
	if h.pagination != nil {
		view := h.pagination.View()
		tree.Pagination = &view
	}
	return tree, nil
}

func (h *HistoryTable[T]) Click(key string) error {
	return h.data.Click(key)
}

func (h *HistoryTable[T]) ChangePage(page int) error {
	if h.pagination == nil {
		return table.ErrPaginationDisabled
	}
	return h.pagination.ChangePage(page)
}

func (h *HistoryTable[T]) ChangePageSize(size int) error {
	if h.pagination == nil {
		return table.ErrPaginationDisabled
	}
	return h.pagination.ChangePageSize(size)
}
