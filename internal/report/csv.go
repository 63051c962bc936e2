package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/jmhart/outlay/internal/model"
)

// csvHeader is the fixed export column order.
var csvHeader = []string{"id", "date", "amount", "description", "category"}

// ExportPath builds the timestamped destination for a CSV export, e.g.
// exports/expenses_20250630_143005.csv. Second resolution; a collision
// within the same second overwrites.
func ExportPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("expenses_%s.csv", now.Format("20060102_150405")))
}

// ExportCSV writes the expenses to path as UTF-8 CSV with standard quoting,
// creating any missing directories. It returns the path written. Callers
// short-circuit on zero rows; an empty export is never written here by them.
func ExportCSV(path string, rows []model.ExpenseRow) (string, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return "", fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Date,
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Description,
			row.CategoryName,
		}
		if err := w.Write(record); err != nil {
			return "", fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("failed to flush CSV: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close export file: %w", err)
	}

	return path, nil
}
