package main

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all expenses to a timestamped CSV",
		Long:  `Write every recorded expense to exports/expenses_<timestamp>.csv without entering the interactive menu.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			if outDir != "" {
				viper.Set("export.dir", outDir)
			}

			store, err := initStorage(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			return newApp(store).ExportAll(ctx)
		},
	}

	cmd.Flags().StringVar(&outDir, "dir", "", "output directory (default from config, normally exports/)")

	return cmd
}
