package table

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/cmlabs-hris/hris-console-core/internal/pkg/dateutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaveHistory() []table.HistoryItem {
	return []table.HistoryItem{
		{
			ID:          1,
			Date:        "2024-04-01",
			Status:      "approved",
			ProcessedAt: time.Date(2024, time.April, 3, 9, 0, 0, 0, time.UTC),
			Extra:       map[string]any{"type": "有給休暇"},
		},
		{
			ID:     2,
			Date:   "not a date",
			Status: "Pending",
			Extra:  map[string]any{"type": "特別休暇"},
		},
	}
}

func leaveHistoryColumns() []table.Column[table.HistoryItem] {
	return []table.Column[table.HistoryItem]{
		{Key: "date", Label: "取得日"},
		{Key: "type", Label: "種別"},
		{Key: "status", Label: "ステータス", Align: table.AlignCenter},
	}
}

func TestHistoryTable_AutoFormatters(t *testing.T) {
	ht := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props: table.Props[table.HistoryItem]{
			Columns:  leaveHistoryColumns(),
			Rows:     leaveHistory(),
			KeyField: "id",
		},
		StatusConverter: ConvertStatus,
	})

	tree, err := ht.Render()
	require.NoError(t, err)
	require.Len(t, tree.Rows, 2)

	first := tree.Rows[0]
	assert.Equal(t, "1", first.Key)
	assert.Equal(t, "2024/04/01", first.Cells[0].Value.Text)
	assert.Equal(t, "有給休暇", first.Cells[1].Value.Text)
	assert.Equal(t, "承認済", first.Cells[2].Value.Text)
	require.NotNil(t, first.Cells[2].Value.Status)
	assert.Equal(t, table.StatusApproved, *first.Cells[2].Value.Status)
	assert.Equal(t, table.ToneSuccess, first.Cells[2].Value.Tone)

	second := tree.Rows[1]
	assert.Equal(t, dateutil.Placeholder, second.Cells[0].Value.Text)
	assert.Equal(t, "申請中", second.Cells[2].Value.Text)

	assert.Nil(t, tree.Pagination)
}

func TestHistoryTable_NoStatusConverter(t *testing.T) {
	tree, err := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props: table.Props[table.HistoryItem]{Columns: leaveHistoryColumns(), Rows: leaveHistory()},
	}).Render()
	require.NoError(t, err)
	assert.Equal(t, "approved", tree.Rows[0].Cells[2].Value.Text)
	assert.Nil(t, tree.Rows[0].Cells[2].Value.Status)
}

func TestHistoryTable_ExplicitFormatWins(t *testing.T) {
	columns := leaveHistoryColumns()
	columns[0].Format = func(value any, _ table.HistoryItem) table.DisplayValue {
		return table.Text("custom:" + ToText(value))
	}
	columns[2].Format = func(value any, _ table.HistoryItem) table.DisplayValue {
		return table.Text("raw:" + ToText(value))
	}

	ht := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:           table.Props[table.HistoryItem]{Columns: columns, Rows: leaveHistory()},
		StatusConverter: ConvertStatus,
		DatePattern:     "2006-01-02",
	})

	tree, err := ht.Render()
	require.NoError(t, err)
	assert.Equal(t, "custom:2024-04-01", tree.Rows[0].Cells[0].Value.Text)
	assert.Equal(t, "raw:approved", tree.Rows[0].Cells[2].Value.Text)
}

func TestHistoryTable_ProcessedDate(t *testing.T) {
	ht := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:              table.Props[table.HistoryItem]{Columns: leaveHistoryColumns(), Rows: leaveHistory()},
		ShowProcessedDate:  true,
		ProcessedDateLabel: "承認日",
		DatePattern:        "01/02",
	})

	columns := ht.Columns()
	require.Len(t, columns, 4)
	assert.Equal(t, table.KeyProcessedAt, columns[3].Key)
	assert.Equal(t, "承認日", columns[3].Label)

	tree, err := ht.Render()
	require.NoError(t, err)
	assert.Equal(t, "04/03", tree.Rows[0].Cells[3].Value.Text)
	assert.Equal(t, dateutil.Placeholder, tree.Rows[1].Cells[3].Value.Text)

	// An existing processedAt column is not duplicated, but still gets the date format.
	withProcessed := append(leaveHistoryColumns(), table.Column[table.HistoryItem]{Key: table.KeyProcessedAt, Label: "処理"})
	ht = NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:             table.Props[table.HistoryItem]{Columns: withProcessed, Rows: leaveHistory()},
		ShowProcessedDate: true,
	})
	require.Len(t, ht.Columns(), 4)
	assert.Equal(t, "処理", ht.Columns()[3].Label)

	ht = NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:             table.Props[table.HistoryItem]{Columns: leaveHistoryColumns()},
		ShowProcessedDate: true,
	})
	assert.Equal(t, DefaultProcessedDateLabel, ht.Columns()[3].Label)
}

func TestHistoryTable_Pagination(t *testing.T) {
	var pages, sizes []int
	cfg := &table.PaginationConfig{
		Enabled:          true,
		PaginationState:  table.PaginationState{Page: 2, PageSize: 10, TotalCount: 25},
		PageSizeOptions:  []int{10, 25, 50},
		OnPageChange:     func(p int) { pages = append(pages, p) },
		OnPageSizeChange: func(s int) { sizes = append(sizes, s) },
	}
	ht := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:      table.Props[table.HistoryItem]{Columns: leaveHistoryColumns(), Rows: leaveHistory()},
		Pagination: cfg,
	})

	tree, err := ht.Render()
	require.NoError(t, err)
	require.NotNil(t, tree.Pagination)
	assert.Equal(t, 2, tree.Pagination.Page)
	assert.Equal(t, 3, tree.Pagination.TotalPages)
	assert.Equal(t, "11-20 of 25 results", tree.Pagination.Showing)

	require.NoError(t, ht.ChangePage(3))
	require.NoError(t, ht.ChangePageSize(50))
	assert.Equal(t, []int{3}, pages)
	assert.Equal(t, []int{50}, sizes)

	cfg.Enabled = false
	disabled := NewHistoryTable(HistoryProps[table.HistoryItem]{
		Props:      table.Props[table.HistoryItem]{Columns: leaveHistoryColumns(), Rows: leaveHistory()},
		Pagination: cfg,
	})
	tree, err = disabled.Render()
	require.NoError(t, err)
	assert.Nil(t, tree.Pagination)
	assert.ErrorIs(t, disabled.ChangePage(1), table.ErrPaginationDisabled)
}

func TestMergeColumns(t *testing.T) {
	explicit := func(any, table.MapRow) table.DisplayValue { return table.Text("explicit") }
	auto := func(any, table.MapRow) table.DisplayValue { return table.Text("auto") }

	base := []table.Column[table.MapRow]{
		{Key: "date", Format: explicit},
		{Key: "status"},
		{Key: "name"},
	}
	merged := MergeColumns(base, map[string]table.Format[table.MapRow]{
		"date":   auto,
		"status": auto,
	})

	row := table.MapRow{}
	assert.Equal(t, "explicit", merged[0].Format(nil, row).Text)
	assert.Equal(t, "auto", merged[1].Format(nil, row).Text)
	assert.Nil(t, merged[2].Format)
	assert.Nil(t, base[1].Format, "base columns are not modified")
}

func TestStatusDisplay(t *testing.T) {
	display := NewStatusDisplay(map[table.StatusKind]string{
		table.StatusApproved: "OK",
		table.StatusDraft:    "",
	})

	assert.Equal(t, "OK", display.Label(table.StatusApproved))
	assert.Equal(t, "下書き", display.Label(table.StatusDraft))
	assert.Equal(t, "差し戻し", display.Label(table.StatusReturned))
	assert.Equal(t, "On Hold", display.Label("on_hold"))

	assert.Equal(t, table.ToneWarning, display.Tone(table.StatusReturned))
	assert.Equal(t, table.ToneDefault, display.Tone(table.StatusNotSubmitted))
	assert.Equal(t, table.ToneDefault, display.Tone("on_hold"))
}

func TestConvertStatus(t *testing.T) {
	assert.Equal(t, table.StatusNotSubmitted, ConvertStatus(" Not-Submitted "))
	assert.Equal(t, table.StatusNotSubmitted, ConvertStatus("not submitted"))
	assert.Equal(t, table.StatusApproved, ConvertStatus("APPROVED"))
}
