package cmd

import (
	"context"
	"fmt"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/spf13/cobra"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create the database file and its schema",
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

		// Opening the database applies the schema, so all that is
		// left is confirming the tables exist.
		ctx := context.Background()
		for _, table := range db.Tables {
			count, err := database.TableCount(ctx, table)
			if err != nil {
				return fmt.Errorf("error verifying table %s: %w", table, err)
			}
			fmt.Printf("%-15s %d rows\n", table, count)
		}

		fmt.Printf("database ready at %s\n", cfg.DatabasePath)
		return nil
	},
}
