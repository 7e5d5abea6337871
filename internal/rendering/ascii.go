package rendering

import (
	"strings"

	"github.com/cmlabs-hris/hris-console-core/internal/domain/table"
	"golang.org/x/text/width"
)

// PixelsPerChar converts a column MinWidth in pixels to text columns.
const PixelsPerChar = 8

// ToASCII renders the tree as a bordered text table. Wide characters count as two
// columns so Japanese labels line up.
func ToASCII(tree table.RenderTree) string {
	var sb strings.Builder

	widths := columnWidths(tree)
	border := borderLine(widths)

	sb.WriteString(border)
	writeLine(&sb, widths, func(i int) (string, table.Align) {
		return tree.Headers[i].Label, tree.Headers[i].Align
	})
	sb.WriteString(border)

	switch tree.State {
	case table.StateLoading:
		writeSpanning(&sb, widths, LoadingMessage)
	case table.StateEmpty:
		writeSpanning(&sb, widths, tree.EmptyMessage)
	default:
		for _, row := range tree.Rows {
			writeLine(&sb, widths, func(i int) (string, table.Align) {
				if i >= len(row.Cells) {
					return "", table.AlignLeft
				}
				return row.Cells[i].Value.Text, row.Cells[i].Align
			})
		}
	}
	sb.WriteString(border)

	if p := tree.Pagination; p != nil {
		sb.WriteString(p.Showing)
		sb.WriteString("\n")
	}
	return sb.String()
}

func columnWidths(tree table.RenderTree) []int {
	widths := make([]int, len(tree.Headers))
	for i, h := range tree.Headers {
		widths[i] = max(1, h.MinWidth/PixelsPerChar, displayWidth(h.Label))
	}
	for _, row := range tree.Rows {
		for i, c := range row.Cells {
			if i < len(widths) {
				widths[i] = max(widths[i], displayWidth(c.Value.Text))
			}
		}
	}
	return widths
}

func borderLine(widths []int) string {
	var sb strings.Builder
	for _, w := range widths {
		sb.WriteString("+")
		sb.WriteString(strings.Repeat("-", w+2))
	}
	sb.WriteString("+\n")
	return sb.String()
}

func writeLine(sb *strings.Builder, widths []int, cell func(i int) (string, table.Align)) {
	for i, w := range widths {
		text, align := cell(i)
		sb.WriteString("| ")
		sb.WriteString(pad(text, w, align))
		sb.WriteString(" ")
	}
	sb.WriteString("|\n")
}

// writeSpanning writes one message across all columns.
func writeSpanning(sb *strings.Builder, widths []int, msg string) {
	total := 0
	for _, w := range widths {
		total += w + 3
	}
	inner := max(total-3, displayWidth(msg))
	sb.WriteString("| ")
	sb.WriteString(pad(msg, inner, table.AlignCenter))
	sb.WriteString(" |\n")
}

func pad(s string, w int, align table.Align) string {
	gap := w - displayWidth(s)
	if gap <= 0 {
		return s
	}
	switch align {
	case table.AlignRight:
		return strings.Repeat(" ", gap) + s
	case table.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
	default:
		return s + strings.Repeat(" ", gap)
	}
}

func displayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}
