package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/ui"
	"github.com/cmlabs-hris/hris-console-core/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/responsive"
)

type UIHandler interface {
	Resolve(w http.ResponseWriter, r *http.Request)
	ActionButton(w http.ResponseWriter, r *http.Request)
}

type UIHandlerImpl struct{}

// Resolve implements UIHandler.
func (h *UIHandlerImpl) Resolve(w http.ResponseWriter, r *http.Request) {
	var req ui.ResolveRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Resolve decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	active := req.Active()
	response.Success(w, ui.ResolveResponse{
		Breakpoint: active,
		Value:      responsive.Resolve(req.Value, active, req.Fallback),
	})
}

// ActionButton implements UIHandler.
func (h *UIHandlerImpl) ActionButton(w http.ResponseWriter, r *http.Request) {
	var req ui.ActionButtonRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("ActionButton decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, responsive.ResolveActionButton(req.ActionButtonProps, req.Active()))
}

func NewUIHandler() UIHandler {
	return &UIHandlerImpl{}
}
