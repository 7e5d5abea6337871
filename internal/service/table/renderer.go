package table

import (
	"fmt"
	"maps"
	"reflect"
	"strconv"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
)

const (
	DefaultKeyField     = table.KeyID
	DefaultEmptyMessage = "データがありません"
)

// DataTable renders typed rows under typed column definitions.
type DataTable[T table.Row] struct {
	props table.Props[T]
}

func NewDataTable[T table.Row](props table.Props[T]) *DataTable[T] {
	if props.KeyField == "" {
		props.KeyField = DefaultKeyField
	}
	if props.EmptyMessage == "" {
		props.EmptyMessage = DefaultEmptyMessage
	}
	return &DataTable[T]{props: props}
}

// Render builds the render tree for the current snapshot of rows. Loading takes priority
// over every other state. A formatter that panics is not recovered.
func (d *DataTable[T]) Render() (table.RenderTree, error) {
	tree := table.RenderTree{Headers: d.headers()}

	switch {
	case d.props.Loading:
		tree.State = table.StateLoading
		return tree, nil
	case len(d.props.Rows) == 0:
		tree.State = table.StateEmpty
		tree.EmptyMessage = d.props.EmptyMessage
		return tree, nil
	}

	tree.State = table.StatePopulated
	tree.Rows = make([]table.BodyRow, 0, len(d.props.Rows))
	for _, row := range d.props.Rows {
		bodyRow, err := d.renderRow(row)
		if err != nil {
			return table.RenderTree{}, err
		}
		tree.Rows = append(tree.Rows, bodyRow)
	}
	return tree, nil
}

// Click fires OnRowClick once for the first populated row whose key matches.
func (d *DataTable[T]) Click(key string) error {
	if d.props.OnRowClick == nil {
		return table.ErrRowClickDisabled
	}
	if d.props.Loading {
		return table.ErrRowNotFound
	}
	for _, row := range d.props.Rows {
		rowKey, err := d.rowKey(row)
		if err != nil {
			return err
		}
		if rowKey == key {
			d.props.OnRowClick(row)
			return nil
		}
	}
	return table.ErrRowNotFound
}

func (d *DataTable[T]) Columns() []table.Column[T] {
	return d.props.Columns
}

func (d *DataTable[T]) headers() []table.HeaderCell {
	headers := make([]table.HeaderCell, 0, len(d.props.Columns))
	for _, col := range d.props.Columns {
		headers = append(headers, table.HeaderCell{
			Key:      col.Key,
			Label:    col.Label,
			Align:    alignOf(col),
			MinWidth: col.MinWidth,
			Sortable: col.Sortable,
		})
	}
	return headers
}

func (d *DataTable[T]) renderRow(row T) (table.BodyRow, error) {
	key, err := d.rowKey(row)
	if err != nil {
		return table.BodyRow{}, err
	}

	cells := make([]table.Cell, 0, len(d.props.Columns))
	for _, col := range d.props.Columns {
		cells = append(cells, table.Cell{
			Key:   col.Key,
			Align: alignOf(col),
			Value: CellValue(col, row),
		})
	}

	clickable := d.props.OnRowClick != nil
	bodyRow := table.BodyRow{
		Key:       key,
		Cells:     cells,
		Style:     d.rowStyle(row, clickable),
		Clickable: clickable,
	}
	if d.props.GetRowClassName != nil {
		bodyRow.ClassName = d.props.GetRowClassName(row)
	}
	return bodyRow, nil
}

func (d *DataTable[T]) rowKey(row T) (string, error) {
	v, ok := row.Field(d.props.KeyField)
	if !ok {
		return "", fmt.Errorf("%w: %q", table.ErrKeyFieldMissing, d.props.KeyField)
	}
	return ToText(v), nil
}

func (d *DataTable[T]) rowStyle(row T, clickable bool) map[string]string {
	var style map[string]string
	if d.props.GetRowStyle != nil {
		style = maps.Clone(d.props.GetRowStyle(row))
	}
	if clickable {
		if style == nil {
			style = map[string]string{}
		}
		if _, ok := style["cursor"]; !ok {
			style["cursor"] = "pointer"
		}
	}
	if len(style) == 0 {
		return nil
	}
	return style
}

// CellValue resolves a column's display value for row. An explicit Format is authoritative.
func CellValue[T table.Row](col table.Column[T], row T) table.DisplayValue {
	value, _ := row.Field(col.Key)
	if col.Format != nil {
		return col.Format(value, row)
	}
	return table.Text(ToText(value))
}

// ToText stringifies a raw value; nil values and nil pointers become "".
func ToText(v any) string {
	if v == nil {
		return ""
	}
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return ""
		}
		rv = rv.Elem()
	}
	switch x := rv.Interface().(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

func alignOf[T table.Row](col table.Column[T]) table.Align {
	if col.Align == "" {
		return table.AlignLeft
	}
	return col.Align
}
