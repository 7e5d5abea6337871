package rendering

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() table.RenderTree {
	approved := table.StatusApproved
	return table.RenderTree{
		Headers: []table.HeaderCell{
			{Key: "name", Label: "Name", Align: table.AlignLeft, MinWidth: 80},
			{Key: "days", Label: "Days", Align: table.AlignRight},
			{Key: "status", Label: "Status", Align: table.AlignCenter},
		},
		State: table.StatePopulated,
		Rows: []table.BodyRow{
			{
				Key: "1",
				Cells: []table.Cell{
					{Key: "name", Align: table.AlignLeft, Value: table.Text("<script>alert(1)</script>")},
					{Key: "days", Align: table.AlignRight, Value: table.Text("1.5")},
					{Key: "status", Align: table.AlignCenter, Value: table.DisplayValue{Text: "承認済", Status: &approved, Tone: table.ToneSuccess}},
				},
				ClassName: "highlight",
				Clickable: true,
			},
		},
	}
}

func TestHTMLRenderer_Render(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, sampleTree()))
	out := buf.String()

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, `class="highlight clickable"`)
	assert.Contains(t, out, `class="status-chip tone-success"`)
	assert.Contains(t, out, "承認済")
	assert.Contains(t, out, `data-min-width="80"`)
	assert.NotContains(t, out, "pagination")
}

func TestHTMLRenderer_States(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	tree := sampleTree()
	tree.State = table.StateLoading
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))
	assert.Contains(t, buf.String(), LoadingMessage)
	assert.NotContains(t, buf.String(), "1.5")

	tree = sampleTree()
	tree.State = table.StateEmpty
	tree.Rows = nil
	tree.EmptyMessage = "no history"
	tree.Pagination = &table.PaginationView{Page: 1, TotalPages: 0, Showing: "0 results", Disabled: true}
	buf.Reset()
	require.NoError(t, r.Render(&buf, tree))
	assert.Contains(t, buf.String(), "no history")
	assert.Contains(t, buf.String(), "0 results")
	assert.Contains(t, buf.String(), "pagination disabled")
	assert.NotContains(t, buf.String(), "pagination-page")
	assert.NotContains(t, buf.String(), "1 / 0")

	tree.Pagination = &table.PaginationView{Page: 2, TotalPages: 3, TotalCount: 25, Showing: "11-20 of 25 results", HasPrev: true, HasNext: true}
	buf.Reset()
	require.NoError(t, r.Render(&buf, tree))
	assert.Contains(t, buf.String(), "2 / 3")
}

func TestHTMLRenderer_NonClickableRow(t *testing.T) {
	r, err := NewHTMLRenderer()
	require.NoError(t, err)

	tree := sampleTree()
	tree.Rows[0].Clickable = false
	tree.Rows[0].ClassName = ""
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, tree))
	assert.NotContains(t, buf.String(), "clickable")
}

func TestToASCII(t *testing.T) {
	out := ToASCII(sampleTree())
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	// The name cell is wider than its 80px minimum.
	assert.Equal(t, "+---------------------------+------+--------+", lines[0])
	assert.Equal(t, "| Name                      | Days | Status |", lines[1])
	assert.Equal(t, "| <script>alert(1)</script> |  1.5 | 承認済 |", lines[3])
	for _, l := range lines {
		assert.Equal(t, displayWidth(lines[0]), displayWidth(l), l)
	}
}

func TestToASCII_MinWidthAndEmpty(t *testing.T) {
	tree := table.RenderTree{
		Headers:      []table.HeaderCell{{Key: "a", Label: "A", MinWidth: 48}},
		State:        table.StateEmpty,
		EmptyMessage: "none",
		Pagination:   &table.PaginationView{Showing: "0 results"},
	}
	out := ToASCII(tree)
	assert.Equal(t, "+--------+\n| A      |\n+--------+\n|  none  |\n+--------+\n0 results\n", out)
}

func TestDisplayWidth(t *testing.T) {
	assert.Equal(t, 5, displayWidth("hello"))
	assert.Equal(t, 6, displayWidth("承認済"))
	assert.Equal(t, 0, displayWidth(""))
}
