package report

import (
	"fmt"
	"io"
	"strings"
)

const columnSeparator = " | "

// Table prints headers and rows as left-aligned padded columns. Column
// widths are computed in a first pass as the max of the header and every
// cell in that column, then a dash divider and the rows are rendered.
func Table(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	total := 0
	for _, width := range widths {
		total += width
	}
	if len(widths) > 1 {
		total += len(columnSeparator) * (len(widths) - 1)
	}

	fmt.Fprintln(w, formatRow(headers, widths))
	fmt.Fprintln(w, strings.Repeat("-", total))
	for _, row := range rows {
		fmt.Fprintln(w, formatRow(row, widths))
	}
}

// formatRow pads each cell to its column width and joins with the separator.
func formatRow(cells []string, widths []int) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		width := len(cell)
		if i < len(widths) {
			width = widths[i]
		}
		padded[i] = fmt.Sprintf("%-*s", width, cell)
	}
	return strings.Join(padded, columnSeparator)
}
