package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-core/internal/rendering"
	tableService "github.com/cmlabs-hris/hris-console-core/internal/service/table"
)

type TableHandler interface {
	History(w http.ResponseWriter, r *http.Request)
	HistoryText(w http.ResponseWriter, r *http.Request)
}

// TableDefaults fill request fields the caller leaves empty.
type TableDefaults struct {
	DatePattern        string
	ProcessedDateLabel string
	EmptyMessage       string
}

type TableHandlerImpl struct {
	defaults TableDefaults
	renderer *rendering.HTMLRenderer
}

// History implements TableHandler. It answers with the render tree as JSON, or with an
// HTML fragment when the client accepts text/html.
func (h *TableHandlerImpl) History(w http.ResponseWriter, r *http.Request) {
	tree, ok := h.render(w, r)
	if !ok {
		return
	}

	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		var buf bytes.Buffer
		if err := h.renderer.Render(&buf, tree); err != nil {
			slog.Error("History render html error", "error", err)
			response.InternalServerError(w, "Failed to render table")
			return
		}
		response.HTML(w, buf.Bytes())
		return
	}

	if p := tree.Pagination; p != nil {
		response.SuccessWithMeta(w, tree, &response.Meta{
			Page:       p.Page,
			PageSize:   p.PageSize,
			TotalItems: p.TotalCount,
			TotalPages: p.TotalPages,
		})
		return
	}
	response.Success(w, tree)
}

// HistoryText implements TableHandler.
func (h *TableHandlerImpl) HistoryText(w http.ResponseWriter, r *http.Request) {
	tree, ok := h.render(w, r)
	if !ok {
		return
	}
	response.Text(w, rendering.ToASCII(tree))
}

// render writes the error response itself and reports whether a tree was produced.
func (h *TableHandlerImpl) render(w http.ResponseWriter, r *http.Request) (table.RenderTree, bool) {
	var req table.HistoryTableRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("History decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return table.RenderTree{}, false
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return table.RenderTree{}, false
	}

	tree, err := tableService.NewHistoryTable(h.historyProps(req)).Render()
	if err != nil {
		response.HandleError(w, err)
		return table.RenderTree{}, false
	}
	return tree, true
}

func (h *TableHandlerImpl) historyProps(req table.HistoryTableRequest) tableService.HistoryProps[table.MapRow] {
	datePattern := firstNonEmpty(req.DatePattern, h.defaults.DatePattern)
	display := tableService.NewStatusDisplay(req.StatusLabels)

	props := tableService.HistoryProps[table.MapRow]{
		Props: table.Props[table.MapRow]{
			Columns:      buildColumns(req.Columns, datePattern, display),
			Rows:         req.Rows,
			KeyField:     req.KeyField,
			Loading:      req.Loading,
			EmptyMessage: firstNonEmpty(req.EmptyMessage, h.defaults.EmptyMessage),
		},
		StatusDisplay:      display,
		DatePattern:        datePattern,
		ShowProcessedDate:  req.ShowProcessedDate,
		ProcessedDateLabel: firstNonEmpty(req.ProcessedDateLabel, h.defaults.ProcessedDateLabel),
	}
	if req.ConvertStatus {
		props.StatusConverter = tableService.ConvertStatus
	}
	if p := req.Pagination; p != nil {
		props.Pagination = &table.PaginationConfig{
			Enabled: p.Enabled,
			PaginationState: table.PaginationState{
				Page:       p.Page,
				PageSize:   p.PageSize,
				TotalCount: p.TotalCount,
			},
			PageSizeOptions: p.PageSizeOptions,
			Loading:         p.Loading,
		}
	}
	return props
}

func NewTableHandler(defaults TableDefaults, renderer *rendering.HTMLRenderer) TableHandler {
	return &TableHandlerImpl{
		defaults: defaults,
		renderer: renderer,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
