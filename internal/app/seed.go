package app

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/schollz/progressbar/v3"

	"github.com/jmhart/outlay/internal/cli"
	"github.com/jmhart/outlay/internal/model"
)

var defaultCategories = []string{"Food", "Transport", "Entertainment", "Bills", "Health", "Other"}

const (
	seedCurrentMonthCount  = 20
	seedPreviousMonthCount = 15
)

// SeedDemoData creates the default categories when missing and fills the
// current and previous month with randomized expenses. Exposed as both a
// menu action and the seed subcommand.
func (a *App) SeedDemoData(ctx context.Context) error {
	for _, name := range defaultCategories {
		existing, err := a.store.GetCategoryByName(ctx, name)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if _, err := a.store.CreateCategory(ctx, name); err != nil {
			return err
		}
	}

	categories, err := a.store.GetCategories(ctx)
	if err != nil {
		return err
	}

	total := seedCurrentMonthCount + seedPreviousMonthCount
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(a.writer),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("Seeding demo data..."),
	)

	for i := 0; i < seedCurrentMonthCount; i++ {
		if err := a.seedRandomExpense(ctx, categories, 0); err != nil {
			return err
		}
		_ = bar.Add(1)
	}
	for i := 0; i < seedPreviousMonthCount; i++ {
		if err := a.seedRandomExpense(ctx, categories, -1); err != nil {
			return err
		}
		_ = bar.Add(1)
	}

	fmt.Fprintln(a.writer)
	fmt.Fprintln(a.writer, cli.FormatSuccess("Seeded demo data."))
	return nil
}

// seedRandomExpense inserts one random expense in the month at the given
// offset from the current one. Days stay within 1-28 so every month works.
func (a *App) seedRandomExpense(ctx context.Context, categories []model.Category, monthOffset int) error {
	now := a.now()
	year, month := now.Year(), int(now.Month())+monthOffset
	if month <= 0 {
		month += 12
		year--
	}

	date := fmt.Sprintf("%04d-%02d-%02d", year, month, gofakeit.Number(1, 28))
	amount := gofakeit.Price(2, 50)
	description := gofakeit.Word()
	category := categories[rand.Intn(len(categories))]

	_, err := a.store.CreateExpense(ctx, date, amount, description, &category.ID)
	return err
}
