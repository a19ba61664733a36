package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Print row counts for every table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		stats, err := database.Stats(context.Background())
		if err != nil {
			return err
		}

		fmt.Printf("database: %s\n", cfg.DatabasePath)
		if info, err := os.Stat(cfg.DatabasePath); err == nil {
			fmt.Printf("size:     %d bytes\n", info.Size())
		}
		for _, table := range db.Tables {
			fmt.Printf("  %-15s %d\n", table, stats[table])
		}
		return nil
	},
}
