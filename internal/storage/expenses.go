package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jmhart/outlay/internal/model"
)

// CreateExpense inserts a new expense. The date must be a valid ISO date and
// the amount strictly positive; both are enforced here so the invariant
// holds at the data boundary, not only at the interactive prompt. An empty
// description is stored as NULL.
func (s *SQLiteStorage) CreateExpense(ctx context.Context, date string, amount float64, description string, categoryID *int64) (*model.Expense, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateDate(date); err != nil {
		return nil, err
	}
	if err := validateAmount(amount); err != nil {
		return nil, err
	}

	description = strings.TrimSpace(description)
	desc := sql.NullString{String: description, Valid: description != ""}

	result, err := s.db.ExecContext(ctx,
		`INSERT INTO expenses (date, amount, description, category_id) VALUES (?, ?, ?, ?)`,
		date, amount, desc, nullableID(categoryID))
	if err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get expense ID: %w", err)
	}

	slog.Info("created expense", "id", id, "date", date, "amount", amount)
	return &model.Expense{
		ID:          id,
		Date:        date,
		Amount:      amount,
		Description: description,
		CategoryID:  categoryID,
	}, nil
}

// ListExpenses returns expenses matching the filter, most recent first with
// the identifier as a stable tie-break. All filter fields are optional and
// combine with AND; date bounds are inclusive and compare lexicographically,
// which is correct for zero-padded ISO dates.
func (s *SQLiteStorage) ListExpenses(ctx context.Context, filter model.ExpenseFilter) ([]model.ExpenseRow, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if filter.DateFrom != "" {
		if err := validateDate(filter.DateFrom); err != nil {
			return nil, err
		}
	}
	if filter.DateTo != "" {
		if err := validateDate(filter.DateTo); err != nil {
			return nil, err
		}
	}

	query := `
		SELECT e.id, e.date, e.amount, COALESCE(e.description, ''),
		       COALESCE(c.name, ?)
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE 1=1`
	args := []any{model.NoCategoryName}

	if filter.DateFrom != "" {
		query += ` AND e.date >= ?`
		args = append(args, filter.DateFrom)
	}
	if filter.DateTo != "" {
		query += ` AND e.date <= ?`
		args = append(args, filter.DateTo)
	}
	if filter.CategoryID != nil {
		query += ` AND e.category_id = ?`
		args = append(args, *filter.CategoryID)
	}
	query += ` ORDER BY e.date DESC, e.id DESC`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []model.ExpenseRow
	for rows.Next() {
		var row model.ExpenseRow
		if err := rows.Scan(&row.ID, &row.Date, &row.Amount, &row.Description, &row.CategoryName); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}

	slog.Debug("retrieved expenses", "count", len(expenses))
	return expenses, nil
}

// UpdateExpense applies a partial update to an expense. Only supplied fields
// change; the category patch distinguishes "keep", "clear", and "reassign".
// Returns false when the id does not exist or the update is empty.
func (s *SQLiteStorage) UpdateExpense(ctx context.Context, id int64, update model.ExpenseUpdate) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}
	if update.Empty() {
		return false, nil
	}

	var sets []string
	var args []any

	if update.Date != nil {
		if err := validateDate(*update.Date); err != nil {
			return false, err
		}
		sets = append(sets, "date = ?")
		args = append(args, *update.Date)
	}
	if update.Amount != nil {
		if err := validateAmount(*update.Amount); err != nil {
			return false, err
		}
		sets = append(sets, "amount = ?")
		args = append(args, *update.Amount)
	}
	if update.Description != nil {
		description := strings.TrimSpace(*update.Description)
		sets = append(sets, "description = ?")
		args = append(args, sql.NullString{String: description, Valid: description != ""})
	}
	if update.Category.Set {
		sets = append(sets, "category_id = ?")
		args = append(args, nullableID(update.Category.ID))
	}

	args = append(args, id)
	query := "UPDATE expenses SET " + strings.Join(sets, ", ") + " WHERE id = ?"

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// DeleteExpense removes an expense by id and reports whether a row existed.
func (s *SQLiteStorage) DeleteExpense(ctx context.Context, id int64) (bool, error) {
	if err := validateContext(ctx); err != nil {
		return false, err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete expense: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get affected rows: %w", err)
	}

	return affected > 0, nil
}

// MonthlyTotals sums expense amounts for the given year and month, grouped
// by category with uncategorized spending under the placeholder, ordered by
// total descending.
func (s *SQLiteStorage) MonthlyTotals(ctx context.Context, year, month int) ([]model.CategoryTotal, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if year < 1900 || year > 9999 {
		return nil, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}

	// ISO dates are zero padded, so a YYYY-MM prefix match selects the
	// whole month.
	ym := fmt.Sprintf("%04d-%02d", year, month)

	query := `
		SELECT COALESCE(c.name, ?), SUM(e.amount) AS total
		FROM expenses e
		LEFT JOIN categories c ON c.id = e.category_id
		WHERE e.date LIKE ? || '%'
		GROUP BY c.name
		ORDER BY total DESC`

	rows, err := s.db.QueryContext(ctx, query, model.NoCategoryName, ym)
	if err != nil {
		return nil, fmt.Errorf("failed to query monthly totals: %w", err)
	}
	defer rows.Close()

	var totals []model.CategoryTotal
	for rows.Next() {
		var t model.CategoryTotal
		if err := rows.Scan(&t.Category, &t.Total); err != nil {
			return nil, fmt.Errorf("failed to scan total: %w", err)
		}
		totals = append(totals, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating totals: %w", err)
	}

	return totals, nil
}

// nullableID converts an optional id into a driver-friendly NULL.
func nullableID(id *int64) sql.NullInt64 {
	if id == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *id, Valid: true}
}
