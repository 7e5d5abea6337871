package ui

import (
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/responsive"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/validator"
)

// Viewport selects the active breakpoint either by name or by width in pixels.
type Viewport struct {
	Breakpoint responsive.Breakpoint `json:"breakpoint,omitempty"`
	Width      *int                  `json:"width,omitempty"`
}

func (v Viewport) Active() responsive.Breakpoint {
	if v.Breakpoint != "" {
		return v.Breakpoint
	}
	if v.Width != nil {
		return responsive.BreakpointForWidth(*v.Width)
	}
	return responsive.XS
}

func (v Viewport) validate() validator.ValidationErrors {
	var errs validator.ValidationErrors
	if v.Breakpoint != "" && !v.Breakpoint.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "breakpoint",
			Message: "breakpoint must be one of xs, sm, md, lg, xl",
		})
	}
	if v.Width != nil && *v.Width < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "width",
			Message: "width must not be negative",
		})
	}
	if v.Breakpoint == "" && v.Width == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "breakpoint",
			Message: "breakpoint or width is required",
		})
	}
	return errs
}

type ResolveRequest struct {
	Viewport
	Value    responsive.Value[string] `json:"value"`
	Fallback string                   `json:"fallback"`
}

func (r *ResolveRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}

type ResolveResponse struct {
	Breakpoint responsive.Breakpoint `json:"breakpoint"`
	Value      string                `json:"value"`
}

type ActionButtonRequest struct {
	Viewport
	responsive.ActionButtonProps
}

func (r *ActionButtonRequest) Validate() error {
	if errs := r.validate(); len(errs) > 0 {
		return errs
	}
	return nil
}
