package table

import (
	"fmt"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
)

// PageState records who owns the current page. It is fixed when the controller is built.
type PageState struct {
	external bool
	page     int
	onChange func(page int)
}

// External leaves the page with the caller; changes are only reported through onChange.
func External(page int, onChange func(page int)) PageState {
	return PageState{external: true, page: page, onChange: onChange}
}

// Internal keeps the page inside the controller, starting at initial.
func Internal(initial int) PageState {
	if initial < 1 {
		initial = 1
	}
	return PageState{page: initial}
}

func (s PageState) IsExternal() bool {
	return s.external
}

type PaginationOptions struct {
	Page             PageState
	TotalPages       int
	TotalCount       int
	PageSize         int
	PageSizeOptions  []int
	Loading          bool
	OnPageSizeChange func(size int)
}

// Pagination reports page and page size intents. It does not clamp pages and only
// derives TotalPages itself when it owns the state.
type Pagination struct {
	state            PageState
	totalPages       int
	totalCount       int
	pageSize         int
	pageSizeOptions  []int
	loading          bool
	onPageSizeChange func(size int)
}

func NewPagination(opts PaginationOptions) *Pagination {
	if !opts.Page.external && opts.TotalPages == 0 {
		opts.TotalPages = table.PaginationState{PageSize: opts.PageSize, TotalCount: opts.TotalCount}.TotalPages()
	}
	return &Pagination{
		state:            opts.Page,
		totalPages:       opts.TotalPages,
		totalCount:       opts.TotalCount,
		pageSize:         opts.PageSize,
		pageSizeOptions:  opts.PageSizeOptions,
		loading:          opts.Loading,
		onPageSizeChange: opts.OnPageSizeChange,
	}
}

func (p *Pagination) Page() int {
	return p.state.page
}

func (p *Pagination) PageSize() int {
	return p.pageSize
}

// View reports the controller state. A loading controller is disabled, not hidden.
func (p *Pagination) View() table.PaginationView {
	page := p.state.page
	return table.PaginationView{
		Page:            page,
		TotalPages:      p.totalPages,
		TotalCount:      p.totalCount,
		PageSize:        p.pageSize,
		PageSizeOptions: p.pageSizeOptions,
		Disabled:        p.loading,
		HasPrev:         page > 1,
		HasNext:         page < p.totalPages,
		Showing:         showing(page, p.pageSize, p.totalCount),
	}
}

// ChangePage emits a page change intent.
func (p *Pagination) ChangePage(page int) error {
	if p.loading {
		return table.ErrPaginationDisabled
	}
	if p.state.external {
		if p.state.onChange != nil {
			p.state.onChange(page)
		}
		return nil
	}
	p.state.page = page
	return nil
}

// ChangePageSize emits a page size change intent. An internally owned controller also
// resizes itself and returns to the first page.
func (p *Pagination) ChangePageSize(size int) error {
	if p.loading {
		return table.ErrPaginationDisabled
	}
	if size <= 0 {
		return fmt.Errorf("%w: %d", table.ErrInvalidPageSize, size)
	}
	if p.state.external {
		if p.onPageSizeChange == nil {
			return table.ErrPageSizeChangeUnsupported
		}
		p.onPageSizeChange(size)
		return nil
	}

	p.pageSize = size
	p.state.page = 1
	p.totalPages = table.PaginationState{Page: 1, PageSize: size, TotalCount: p.totalCount}.TotalPages()
	if p.onPageSizeChange != nil {
		p.onPageSizeChange(size)
	}
	return nil
}

// NextPage moves forward when a next page exists.
func (p *Pagination) NextPage() error {
	if p.state.page >= p.totalPages {
		return nil
	}
	return p.ChangePage(p.state.page + 1)
}

// PrevPage moves back when a previous page exists.
func (p *Pagination) PrevPage() error {
	if p.state.page <= 1 {
		return nil
	}
	return p.ChangePage(p.state.page - 1)
}

// Offset is the zero-based index of the first row on the current page.
func (p *Pagination) Offset() int {
	if p.state.page < 1 || p.pageSize <= 0 {
		return 0
	}
	return (p.state.page - 1) * p.pageSize
}

func showing(page, pageSize, totalCount int) string {
	if totalCount <= 0 {
		return "0 results"
	}
	start := (page-1)*pageSize + 1
	if page < 1 || pageSize <= 0 || start > totalCount {
		return fmt.Sprintf("0 of %d results", totalCount)
	}
	end := start + pageSize - 1
	if end > totalCount {
		end = totalCount
	}
	return fmt.Sprintf("%d-%d of %d results", start, end, totalCount)
}
