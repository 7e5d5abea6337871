package http

import (
	"strconv"
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	tableService "github.com/cmlabs-hris/hris-console-core/internal/service/table"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// buildColumns turns column specs into typed columns. A named format becomes an explicit
// formatter, so it wins over the history table's auto-injected ones.
func buildColumns(specs []table.ColumnSpec, datePattern string, display tableService.StatusDisplay) []table.Column[table.MapRow] {
	columns := make([]table.Column[table.MapRow], 0, len(specs))
	for _, s := range specs {
		col := table.Column[table.MapRow]{
			Key:      s.Key,
			Label:    s.Label,
			Align:    s.Align,
			MinWidth: s.MinWidth,
			Sortable: s.Sortable,
		}
		switch s.Format {
		case table.FormatDate:
			col.Format = tableService.DateFormat[table.MapRow](datePattern)
		case table.FormatStatus:
			col.Format = tableService.StatusFormat[table.MapRow](tableService.ConvertStatus, display)
		case table.FormatNumber:
			col.Format = numberFormat
		}
		columns = append(columns, col)
	}
	return columns
}

// numberFormat groups digits the way Japanese screens show amounts and hours.
func numberFormat(value any, _ table.MapRow) table.DisplayValue {
	p := message.NewPrinter(language.Japanese)
	switch v := value.(type) {
	case float64:
		return table.Text(p.Sprint(number.Decimal(v)))
	case int:
		return table.Text(p.Sprint(number.Decimal(v)))
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return table.Text(p.Sprint(number.Decimal(f)))
		}
	}
	return table.Text(tableService.ToText(value))
}
