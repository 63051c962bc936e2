// Package app implements the interactive menu controller. It reads user
// choices, prompts for fields, invokes the persistence layer, and hands
// results to the reporting layer for display.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jmhart/outlay/internal/cli"
	"github.com/jmhart/outlay/internal/storage"
)

const banner = `
==============================
       Expense Tracker
==============================
`

// App ties the prompter, the store, and the reporters into the menu loop.
type App struct {
	store     *storage.SQLiteStorage
	prompter  *cli.Prompter
	writer    io.Writer
	now       func() time.Time
	exportDir string
}

// New creates the menu controller. The now function stamps CSV export
// filenames and seeds demo data relative to the current month.
func New(store *storage.SQLiteStorage, prompter *cli.Prompter, exportDir string) *App {
	return &App{
		store:     store,
		prompter:  prompter,
		writer:    prompter.Writer(),
		exportDir: exportDir,
		now:       time.Now,
	}
}

// Run presents the fixed menu until the user exits or the context is
// canceled. Every action runs to completion, then the loop pauses for
// acknowledgment and clears the screen.
func (a *App) Run(ctx context.Context) error {
	for {
		a.printMenu()

		choice, err := a.prompter.Line(ctx, "Select option")
		if err != nil {
			return exitOnCancel(err)
		}

		var actionErr error
		done := false
		switch choice {
		case "1":
			actionErr = a.addCategory(ctx)
		case "2":
			actionErr = a.listCategories(ctx)
		case "3":
			actionErr = a.addExpense(ctx)
		case "4":
			actionErr = a.listExpenses(ctx)
		case "5":
			actionErr = a.monthlySummary(ctx)
		case "6":
			actionErr = a.updateExpense(ctx)
		case "7":
			actionErr = a.deleteExpense(ctx)
		case "8":
			actionErr = a.ExportAll(ctx)
		case "9":
			actionErr = a.SeedDemoData(ctx)
		case "0":
			fmt.Fprintln(a.writer, "Goodbye!")
			done = true
		default:
			fmt.Fprintln(a.writer, cli.FormatError("Invalid option."))
		}

		if done {
			return nil
		}
		if actionErr != nil {
			return exitOnCancel(actionErr)
		}

		if err := a.prompter.Pause(ctx); err != nil {
			return exitOnCancel(err)
		}
		a.clearScreen()
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.writer, cli.FormatTitle(banner))
	fmt.Fprintln(a.writer, "1) Add category")
	fmt.Fprintln(a.writer, "2) List categories")
	fmt.Fprintln(a.writer, "3) Add expense")
	fmt.Fprintln(a.writer, "4) List expenses (with filters)")
	fmt.Fprintln(a.writer, "5) Monthly summary (per category)")
	fmt.Fprintln(a.writer, "6) Update expense")
	fmt.Fprintln(a.writer, "7) Delete expense")
	fmt.Fprintln(a.writer, "8) Export expenses to CSV")
	fmt.Fprintln(a.writer, "9) Seed demo data")
	fmt.Fprintln(a.writer, "0) Exit")
}

// clearScreen is purely aesthetic; failures are invisible and harmless.
func (a *App) clearScreen() {
	fmt.Fprint(a.writer, "\033[2J\033[H")
}

// exitOnCancel maps prompt cancellation (interrupt or end of input) to a
// clean exit; anything else propagates.
func exitOnCancel(err error) error {
	if errors.Is(err, cli.ErrInputCancelled) || errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
