package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jmhart/outlay/internal/app"
	"github.com/jmhart/outlay/internal/cli"
	"github.com/jmhart/outlay/internal/config"
	"github.com/jmhart/outlay/internal/storage"
)

// initStorage opens the configured database and runs migrations.
func initStorage(ctx context.Context) (*storage.SQLiteStorage, error) {
	dbPath := viper.GetString("database.path")
	if dbPath == "" {
		dbPath = "expenses.db"
	}
	dbPath = config.ExpandPath(dbPath)

	store, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store, nil
}

// newApp wires the store, the prompter over the real terminal streams, and
// the configured export directory.
func newApp(store *storage.SQLiteStorage) *app.App {
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	return app.New(store, prompter, config.ExpandPath(viper.GetString("export.dir")))
}

func runMenu(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	store, err := initStorage(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	return newApp(store).Run(ctx)
}
