package table

import (
	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/dateutil"
)

// MergeColumns fills in formatters from auto for columns that do not define their own.
// Base wins on key collision for Format only; base is not modified.
func MergeColumns[T table.Row](base []table.Column[T], auto map[string]table.Format[T]) []table.Column[T] {
	merged := make([]table.Column[T], len(base))
	copy(merged, base)
	for i := range merged {
		if merged[i].Format != nil {
			continue
		}
		if format, ok := auto[merged[i].Key]; ok {
			merged[i].Format = format
		}
	}
	return merged
}

// HasColumn reports whether a column with key exists.
func HasColumn[T table.Row](columns []table.Column[T], key string) bool {
	for _, col := range columns {
		if col.Key == key {
			return true
		}
	}
	return false
}

// DateFormat renders date values with pattern, or dateutil.Placeholder when they do not parse.
func DateFormat[T table.Row](pattern string) table.Format[T] {
	return func(value any, _ T) table.DisplayValue {
		return table.Text(dateutil.Format(value, pattern))
	}
}

// StatusFormat delegates the raw status to convert and labels the resulting kind.
func StatusFormat[T table.Row](convert StatusConverter, display StatusDisplay) table.Format[T] {
	if display == nil {
		display = NewStatusDisplay(nil)
	}
	return func(value any, _ T) table.DisplayValue {
		kind := convert(ToText(value))
		return table.DisplayValue{
			Text:   display.Label(kind),
			Status: &kind,
			Tone:   display.Tone(kind),
		}
	}
}
