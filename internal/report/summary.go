package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jmhart/outlay/internal/model"
)

// MonthlySummary renders per-category totals as a two-column table followed
// by an overall sum footer.
func MonthlySummary(w io.Writer, totals []model.CategoryTotal) {
	var sum float64
	rows := make([][]string, 0, len(totals))
	for _, t := range totals {
		rows = append(rows, []string{t.Category, FormatMoney(t.Total)})
		sum += t.Total
	}

	Table(w, []string{"Category", "Total"}, rows)
	fmt.Fprintln(w, strings.Repeat("-", 32))
	fmt.Fprintf(w, "Overall: %s\n", FormatMoney(sum))
}
