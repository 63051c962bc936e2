package main

import (
	"github.com/spf13/cobra"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed demo categories and expenses",
		Long:  `Create the default categories when missing and fill the current and previous month with randomized demo expenses.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return newApp(store).SeedDemoData(ctx)
		},
	}
}
