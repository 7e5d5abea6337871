package rendering

import (
	"embed"
	"io"
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"github.com/google/safehtml/template"
)

//go:embed templates/*
var templateFS embed.FS

const LoadingMessage = "読み込み中..."

// HTMLRenderer renders a table.RenderTree as an HTML fragment. Inline row styles are not
// emitted; row class names are.
type HTMLRenderer struct {
	tableTemplate *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	trustedFS := template.TrustedFSFromEmbed(templateFS)

	tableTemplate, err := template.New("table.html").ParseFS(trustedFS, "templates/table.html")
	if err != nil {
		return nil, err
	}

	return &HTMLRenderer{tableTemplate: tableTemplate}, nil
}

func (r *HTMLRenderer) Render(w io.Writer, tree table.RenderTree) error {
	return r.tableTemplate.Execute(w, newTableView(tree))
}

type tableView struct {
	Headers        []headerView
	Loading        bool
	Empty          bool
	LoadingMessage string
	EmptyMessage   string
	ColSpan        int
	Rows           []rowView
	Pagination     *table.PaginationView
}

type headerView struct {
	Key      string
	Label    string
	Class    string
	MinWidth int
}

type rowView struct {
	Key   string
	Class string
	Cells []cellView
}

type cellView struct {
	Text       string
	Class      string
	Status     bool
	StatusKind string
	Tone       string
}

func newTableView(tree table.RenderTree) tableView {
	vm := tableView{
		Loading:        tree.State == table.StateLoading,
		Empty:          tree.State == table.StateEmpty,
		LoadingMessage: LoadingMessage,
		EmptyMessage:   tree.EmptyMessage,
		ColSpan:        max(len(tree.Headers), 1),
		Pagination:     tree.Pagination,
	}

	for _, h := range tree.Headers {
		vm.Headers = append(vm.Headers, headerView{
			Key:      h.Key,
			Label:    h.Label,
			Class:    alignClass(h.Align),
			MinWidth: h.MinWidth,
		})
	}

	for _, row := range tree.Rows {
		rv := rowView{Key: row.Key, Class: rowClass(row)}
		for _, c := range row.Cells {
			cv := cellView{Text: c.Value.Text, Class: alignClass(c.Align)}
			if c.Value.Status != nil {
				cv.Status = true
				cv.StatusKind = string(*c.Value.Status)
				cv.Tone = string(c.Value.Tone)
				if cv.Tone == "" {
					cv.Tone = string(table.ToneDefault)
				}
			}
			rv.Cells = append(rv.Cells, cv)
		}
		vm.Rows = append(vm.Rows, rv)
	}
	return vm
}

func alignClass(a table.Align) string {
	if a == "" {
		a = table.AlignLeft
	}
	return "align-" + string(a)
}

func rowClass(row table.BodyRow) string {
	classes := make([]string, 0, 2)
	if row.ClassName != "" {
		classes = append(classes, row.ClassName)
	}
	if row.Clickable {
		classes = append(classes, "clickable")
	}
	return strings.Join(classes, " ")
}
