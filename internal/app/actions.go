package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jmhart/outlay/internal/cli"
	"github.com/jmhart/outlay/internal/model"
	"github.com/jmhart/outlay/internal/parse"
	"github.com/jmhart/outlay/internal/report"
	"github.com/jmhart/outlay/internal/storage"
)

func (a *App) addCategory(ctx context.Context) error {
	name, err := a.prompter.Line(ctx, "Category name")
	if err != nil {
		return err
	}
	if name == "" {
		fmt.Fprintln(a.writer, cli.FormatError("Name cannot be empty."))
		return nil
	}

	if _, err := a.store.CreateCategory(ctx, name); err != nil {
		if errors.Is(err, storage.ErrDuplicateCategory) {
			fmt.Fprintln(a.writer, cli.FormatWarning(fmt.Sprintf("Error: %v", err)))
			return nil
		}
		return err
	}

	fmt.Fprintln(a.writer, cli.FormatSuccess("Category added."))
	return nil
}

func (a *App) listCategories(ctx context.Context) error {
	categories, err := a.store.GetCategories(ctx)
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.writer, cli.FormatInfo("No categories found."))
		return nil
	}

	rows := make([][]string, 0, len(categories))
	for _, cat := range categories {
		rows = append(rows, []string{strconv.FormatInt(cat.ID, 10), cat.Name})
	}
	report.Table(a.writer, []string{"ID", "Name"}, rows)
	return nil
}

func (a *App) addExpense(ctx context.Context) error {
	date, err := a.prompter.Date(ctx, "Date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	amount, err := a.prompter.Amount(ctx, "Amount (e.g., 12.50)")
	if err != nil {
		return err
	}
	description, err := a.prompter.Line(ctx, "Description (optional)")
	if err != nil {
		return err
	}

	categories, err := a.store.GetCategories(ctx)
	if err != nil {
		return err
	}
	categoryID, err := a.prompter.SelectCategory(ctx, categories)
	if err != nil {
		return err
	}

	expense, err := a.store.CreateExpense(ctx, date, amount, description, categoryID)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.writer, cli.FormatSuccess(fmt.Sprintf("Expense #%d added.", expense.ID)))
	return nil
}

func (a *App) listExpenses(ctx context.Context) error {
	dateFrom, err := a.prompter.OptionalDate(ctx, "From date (YYYY-MM-DD) or empty")
	if err != nil {
		return err
	}
	dateTo, err := a.prompter.OptionalDate(ctx, "To date (YYYY-MM-DD) or empty")
	if err != nil {
		return err
	}

	filter := model.ExpenseFilter{DateFrom: dateFrom, DateTo: dateTo}

	byCategory, err := a.prompter.Confirm(ctx, "Filter by a category?", false)
	if err != nil {
		return err
	}
	if byCategory {
		categories, catErr := a.store.GetCategories(ctx)
		if catErr != nil {
			return catErr
		}
		filter.CategoryID, err = a.prompter.SelectCategory(ctx, categories)
		if err != nil {
			return err
		}
	}

	rows, err := a.store.ListExpenses(ctx, filter)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.writer, cli.FormatInfo("No expenses found."))
		return nil
	}

	display := make([][]string, 0, len(rows))
	var sum float64
	for _, row := range rows {
		display = append(display, []string{
			strconv.FormatInt(row.ID, 10),
			row.Date,
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Description,
			row.CategoryName,
		})
		sum += row.Amount
	}
	report.Table(a.writer, []string{"ID", "Date", "Amount", "Description", "Category"}, display)
	fmt.Fprintf(a.writer, "Total items: %d | Sum: %s\n", len(rows), report.FormatMoney(sum))
	return nil
}

func (a *App) monthlySummary(ctx context.Context) error {
	year, err := a.prompter.IntRange(ctx, "Year (e.g., 2025)", 1900, 9999)
	if err != nil {
		return err
	}
	month, err := a.prompter.IntRange(ctx, "Month (1-12)", 1, 12)
	if err != nil {
		return err
	}

	totals, err := a.store.MonthlyTotals(ctx, year, month)
	if err != nil {
		return err
	}
	if len(totals) == 0 {
		fmt.Fprintln(a.writer, cli.FormatInfo("No data for that period."))
		return nil
	}

	report.MonthlySummary(a.writer, totals)
	return nil
}

func (a *App) updateExpense(ctx context.Context) error {
	id, ok, err := a.promptExpenseID(ctx, "Expense ID to update")
	if err != nil || !ok {
		return err
	}

	fmt.Fprintln(a.writer, cli.SubtleStyle.Render("Leave a field empty to keep current value."))

	var update model.ExpenseUpdate

	date, err := a.prompter.OptionalDate(ctx, "New date (YYYY-MM-DD)")
	if err != nil {
		return err
	}
	if date != "" {
		update.Date = &date
	}

	amount, set, err := a.promptOptionalAmount(ctx, "New amount")
	if err != nil {
		return err
	}
	if set {
		update.Amount = &amount
	}

	description, err := a.prompter.Line(ctx, "New description")
	if err != nil {
		return err
	}
	if description != "" {
		update.Description = &description
	}

	changeCategory, err := a.prompter.Confirm(ctx, "Change category?", false)
	if err != nil {
		return err
	}
	if changeCategory {
		categories, catErr := a.store.GetCategories(ctx)
		if catErr != nil {
			return catErr
		}
		// Inside this flow an empty selection clears the reference;
		// answering "n" above keeps it.
		categoryID, selErr := a.prompter.SelectCategory(ctx, categories)
		if selErr != nil {
			return selErr
		}
		update.Category = model.CategoryPatch{Set: true, ID: categoryID}
	}

	updated, err := a.store.UpdateExpense(ctx, id, update)
	if err != nil {
		return err
	}
	if updated {
		fmt.Fprintln(a.writer, cli.FormatSuccess("Updated."))
	} else {
		fmt.Fprintln(a.writer, cli.FormatInfo("No update performed (check id)."))
	}
	return nil
}

func (a *App) deleteExpense(ctx context.Context) error {
	id, ok, err := a.promptExpenseID(ctx, "Expense ID to delete")
	if err != nil || !ok {
		return err
	}

	confirmed, err := a.prompter.Confirm(ctx, fmt.Sprintf("Are you sure you want to delete expense #%d?", id), false)
	if err != nil {
		return err
	}
	if !confirmed {
		return nil
	}

	deleted, err := a.store.DeleteExpense(ctx, id)
	if err != nil {
		return err
	}
	if deleted {
		fmt.Fprintln(a.writer, cli.FormatSuccess("Deleted."))
	} else {
		fmt.Fprintln(a.writer, cli.FormatInfo("Not found."))
	}
	return nil
}

// ExportAll writes every expense to a timestamped CSV under the export
// directory. Exposed as both a menu action and the export subcommand.
func (a *App) ExportAll(ctx context.Context) error {
	rows, err := a.store.ListExpenses(ctx, model.ExpenseFilter{})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Fprintln(a.writer, cli.FormatInfo("Nothing to export."))
		return nil
	}

	path := report.ExportPath(a.exportDir, a.now())
	out, err := report.ExportCSV(path, rows)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.writer, cli.FormatSuccess("Exported to: "+out))
	return nil
}

// promptExpenseID asks for a numeric expense id. A non-numeric answer
// aborts the action with a message instead of retrying, mirroring the rest
// of the not-found handling.
func (a *App) promptExpenseID(ctx context.Context, label string) (int64, bool, error) {
	raw, err := a.prompter.Line(ctx, label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.ParseInt(raw, 10, 64)
	if convErr != nil || id <= 0 {
		fmt.Fprintln(a.writer, cli.FormatError("Invalid id."))
		return 0, false, nil
	}
	return id, true, nil
}

// promptOptionalAmount reads an amount where empty input means "keep".
func (a *App) promptOptionalAmount(ctx context.Context, label string) (float64, bool, error) {
	for {
		raw, err := a.prompter.Line(ctx, label)
		if err != nil {
			return 0, false, err
		}
		if raw == "" {
			return 0, false, nil
		}
		amount, parseErr := parse.Amount(raw)
		if parseErr != nil {
			fmt.Fprintln(a.writer, cli.FormatError("Invalid amount, must be positive number."))
			continue
		}
		return amount, true, nil
	}
}
