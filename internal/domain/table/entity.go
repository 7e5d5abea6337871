package table

// Row is any record a table can display. Field reports false when the row does not carry key.
type Row interface {
	Field(key string) (any, bool)
}

// MapRow is a row backed by a plain map, typically decoded JSON.
type MapRow map[string]any

func (m MapRow) Field(key string) (any, bool) {
	v, ok := m[key]
	return v, ok
}

// Well-known history item keys.
const (
	KeyID          = "id"
	KeyDate        = "date"
	KeyStatus      = "status"
	KeyProcessedAt = "processedAt"
)

// HistoryItem is a list/history screen row: a date, a status and an optional processed date.
// Any further fields live in Extra.
type HistoryItem struct {
	ID          any            `json:"id"`
	Date        any            `json:"date"`
	Status      string         `json:"status"`
	ProcessedAt any            `json:"processedAt,omitempty"`
	Extra       map[string]any `json:"extra,omitempty"`
}

func (h HistoryItem) Field(key string) (any, bool) {
	switch key {
	case KeyID:
		return h.ID, true
	case KeyDate:
		return h.Date, true
	case KeyStatus:
		return h.Status, true
	case KeyProcessedAt:
		return h.ProcessedAt, true
	}
	v, ok := h.Extra[key]
	return v, ok
}

type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// StatusKind is the semantic status a raw status string maps to.
type StatusKind string

const (
	StatusApproved     StatusKind = "approved"
	StatusPending      StatusKind = "pending"
	StatusRejected     StatusKind = "rejected"
	StatusSubmitted    StatusKind = "submitted"
	StatusDraft        StatusKind = "draft"
	StatusNotSubmitted StatusKind = "not_submitted"
	StatusReturned     StatusKind = "returned"
)

// StatusTone is the color family a status is displayed with.
type StatusTone string

const (
	ToneSuccess StatusTone = "success"
	ToneWarning StatusTone = "warning"
	ToneError   StatusTone = "error"
	ToneInfo    StatusTone = "info"
	ToneDefault StatusTone = "default"
)

// DisplayValue is what a cell shows. Status is set when the cell carries a semantic status
// whose presentation is left to the renderer.
type DisplayValue struct {
	Text   string      `json:"text"`
	Status *StatusKind `json:"status,omitempty"`
	Tone   StatusTone  `json:"tone,omitempty"`
}

func Text(s string) DisplayValue {
	return DisplayValue{Text: s}
}

// Format maps a raw field value to its display value.
type Format[T Row] func(value any, row T) DisplayValue

type Column[T Row] struct {
	Key      string
	Label    string
	Align    Align
	MinWidth int
	Format   Format[T]
	Sortable bool
}
