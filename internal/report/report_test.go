package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhart/outlay/internal/model"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "thousands with half cent", value: 1234.5, want: "1.234,50"},
		{name: "zero", value: 0, want: "0,00"},
		{name: "small value", value: 7.25, want: "7,25"},
		{name: "exact thousand", value: 1000, want: "1.000,00"},
		{name: "millions", value: 1234567.89, want: "1.234.567,89"},
		{name: "three digits ungrouped", value: 999.99, want: "999,99"},
		{name: "negative", value: -1234.5, want: "-1.234,50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatMoney(tt.value))
		})
	}
}

func TestTable(t *testing.T) {
	var sb strings.Builder
	Table(&sb, []string{"ID", "Name"}, [][]string{
		{"1", "Food"},
		{"12", "Entertainment"},
	})

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 4)

	// Widths: ID column fits "12", Name column fits "Entertainment".
	assert.Equal(t, "ID | Name", strings.TrimRight(lines[0], " "))
	assert.Equal(t, strings.Repeat("-", 2+3+13), lines[1])
	assert.Equal(t, "1  | Food", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "12 | Entertainment", lines[3])
}

func TestTableHeaderWiderThanCells(t *testing.T) {
	var sb strings.Builder
	Table(&sb, []string{"Description"}, [][]string{{"x"}})

	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Description", lines[0])
	assert.Equal(t, strings.Repeat("-", len("Description")), lines[1])
	assert.Equal(t, "x"+strings.Repeat(" ", len("Description")-1), lines[2])
}

func TestExportPath(t *testing.T) {
	now := time.Date(2025, 6, 30, 14, 30, 5, 0, time.UTC)
	assert.Equal(t, filepath.Join("exports", "expenses_20250630_143005.csv"), ExportPath("exports", now))
}

func TestExportCSV(t *testing.T) {
	catID := "Food & Drink, \"fancy\""
	dir := filepath.Join(t.TempDir(), "exports")
	path := filepath.Join(dir, "expenses_test.csv")

	rows := []model.ExpenseRow{
		{ID: 1, Date: "2025-06-15", Amount: 12.5, Description: "Lunch", CategoryName: "Food"},
		{ID: 2, Date: "2025-06-16", Amount: 3, Description: "a,b \"c\"", CategoryName: catID},
		{ID: 3, Date: "2025-06-17", Amount: 9.99, Description: "", CategoryName: model.NoCategoryName},
	}

	out, err := ExportCSV(path, rows)
	require.NoError(t, err)
	assert.Equal(t, path, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "id,date,amount,description,category", lines[0])
	assert.Equal(t, "1,2025-06-15,12.50,Lunch,Food", lines[1])
	// Embedded commas and quotes get standard CSV quoting.
	assert.Equal(t, `2,2025-06-16,3.00,"a,b ""c""","Food & Drink, ""fancy"""`, lines[2])
	assert.Equal(t, "3,2025-06-17,9.99,,-", lines[3])
}

func TestExportCSVCreatesMissingDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.csv")

	_, err := ExportCSV(path, []model.ExpenseRow{{ID: 1, Date: "2025-01-01", Amount: 1}})
	require.NoError(t, err)

	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestMonthlySummary(t *testing.T) {
	var sb strings.Builder
	MonthlySummary(&sb, []model.CategoryTotal{
		{Category: "Food", Total: 15},
		{Category: model.NoCategoryName, Total: 1234.5},
	})

	out := sb.String()
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "15,00")
	assert.Contains(t, out, "1.234,50")
	assert.Contains(t, out, "Overall: 1.249,50")
}
