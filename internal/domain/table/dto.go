package table

type Props[T Row] struct {
	Columns         []Column[T]
	Rows            []T
	KeyField        string
	Loading         bool
	EmptyMessage    string
	OnRowClick      func(row T)
	GetRowStyle     func(row T) map[string]string
	GetRowClassName func(row T) string
}

type BodyState string

const (
	StateLoading   BodyState = "loading"
	StateEmpty     BodyState = "empty"
	StatePopulated BodyState = "populated"
)

type HeaderCell struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Align    Align  `json:"align"`
	MinWidth int    `json:"min_width,omitempty"`
	Sortable bool   `json:"sortable,omitempty"`
}

type Cell struct {
	Key   string       `json:"key"`
	Align Align        `json:"align"`
	Value DisplayValue `json:"value"`
}

type BodyRow struct {
	Key       string            `json:"key"`
	Cells     []Cell            `json:"cells"`
	Style     map[string]string `json:"style,omitempty"`
	ClassName string            `json:"class_name,omitempty"`
	Clickable bool              `json:"clickable"`
}

// RenderTree is the framework-agnostic output of a table render.
type RenderTree struct {
	Headers      []HeaderCell    `json:"headers"`
	State        BodyState       `json:"state"`
	EmptyMessage string          `json:"empty_message,omitempty"`
	Rows         []BodyRow       `json:"rows,omitempty"`
	Pagination   *PaginationView `json:"pagination,omitempty"`
}

type PaginationState struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}

// TotalPages is ceil(TotalCount / PageSize), zero for an empty result.
func (s PaginationState) TotalPages() int {
	if s.TotalCount <= 0 || s.PageSize <= 0 {
		return 0
	}
	return (s.TotalCount + s.PageSize - 1) / s.PageSize
}

// PaginationConfig is what a history table receives from its caller.
type PaginationConfig struct {
	Enabled bool
	PaginationState
	PageSizeOptions  []int
	Loading          bool
	OnPageChange     func(page int)
	OnPageSizeChange func(size int)
}

type PaginationView struct {
	Page            int    `json:"page"`
	TotalPages      int    `json:"total_pages"`
	TotalCount      int    `json:"total_count"`
	PageSize        int    `json:"page_size"`
	PageSizeOptions []int  `json:"page_size_options,omitempty"`
	Disabled        bool   `json:"disabled"`
	HasPrev         bool   `json:"has_prev"`
	HasNext         bool   `json:"has_next"`
	Showing         string `json:"showing"`
}
