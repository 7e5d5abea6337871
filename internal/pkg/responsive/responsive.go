// Package responsive resolves size and width values that may vary per viewport breakpoint.
package responsive

import (
	"encoding/json"
	"fmt"
)

type Breakpoint string

const (
	XS Breakpoint = "xs"
	SM Breakpoint = "sm"
	MD Breakpoint = "md"
	LG Breakpoint = "lg"
	XL Breakpoint = "xl"
)

// Descending is the resolution priority order, largest first.
var Descending = []Breakpoint{XL, LG, MD, SM, XS}

// Minimum viewport widths in pixels for each breakpoint.
const (
	SMMinWidth = 600
	MDMinWidth = 900
	LGMinWidth = 1200
	XLMinWidth = 1536
)

func (b Breakpoint) Valid() bool {
	switch b {
	case XS, SM, MD, LG, XL:
		return true
	}
	return false
}

// Flags holds the independently evaluated media query results, one per breakpoint.
type Flags map[Breakpoint]bool

// FlagsFor returns flags with only the given breakpoint active.
func FlagsFor(active Breakpoint) Flags {
	return Flags{active: true}
}

// BreakpointForWidth returns the single breakpoint a viewport of the given width falls in.
func BreakpointForWidth(width int) Breakpoint {
	switch {
	case width >= XLMinWidth:
		return XL
	case width >= LGMinWidth:
		return LG
	case width >= MDMinWidth:
		return MD
	case width >= SMMinWidth:
		return SM
	default:
		return XS
	}
}

// FlagsForWidth evaluates every breakpoint's "only" query against width.
func FlagsForWidth(width int) Flags {
	return FlagsFor(BreakpointForWidth(width))
}

// Value is either a scalar or a per-breakpoint map.
type Value[V any] struct {
	scalar   V
	isScalar bool
	byBreak  map[Breakpoint]V
}

func Scalar[V any](v V) Value[V] {
	return Value[V]{scalar: v, isScalar: true}
}

// Map builds a per-breakpoint value. Entries with unknown breakpoints are ignored.
func Map[V any](m map[Breakpoint]V) Value[V] {
	byBreak := make(map[Breakpoint]V, len(m))
	for bp, v := range m {
		if bp.Valid() {
			byBreak[bp] = v
		}
	}
	return Value[V]{byBreak: byBreak}
}

func (v Value[V]) IsScalar() bool {
	return v.isScalar
}

// Lookup returns the explicit value for a breakpoint.
func (v Value[V]) Lookup(bp Breakpoint) (V, bool) {
	if v.isScalar {
		return v.scalar, true
	}
	val, ok := v.byBreak[bp]
	return val, ok
}

// UnmarshalJSON accepts either a bare scalar or an object keyed by breakpoint.
func (v *Value[V]) UnmarshalJSON(data []byte) error {
	var scalar V
	if err := json.Unmarshal(data, &scalar); err == nil {
		*v = Scalar(scalar)
		return nil
	}

	var m map[Breakpoint]V
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("responsive value must be a scalar or a breakpoint map: %w", err)
	}
	*v = Map(m)
	return nil
}

func (v Value[V]) MarshalJSON() ([]byte, error) {
	if v.isScalar {
		return json.Marshal(v.scalar)
	}
	if v.byBreak == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(v.byBreak)
}

// Resolve returns the value for the active breakpoint, or fallback when none is defined.
func Resolve[V any](value Value[V], active Breakpoint, fallback V) V {
	return ResolveFlags(value, FlagsFor(active), fallback)
}

// ResolveFlags checks active breakpoints from largest to smallest and returns the first
// explicit value. Several flags may be true at boundary widths; the larger one wins.
func ResolveFlags[V any](value Value[V], flags Flags, fallback V) V {
	if value.isScalar {
		return value.scalar
	}
	for _, bp := range Descending {
		if !flags[bp] {
			continue
		}
		if val, ok := value.byBreak[bp]; ok {
			return val
		}
	}
	return fallback
}
