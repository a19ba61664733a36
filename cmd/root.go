package cmd

import (
	"fmt"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/chasen-bettinger/fantasy-analysis/espn"
	"github.com/itbasis/go-clock"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fantasy-analysis",
	Short: "Load and analyze fantasy football draft data",
	Long: `fantasy-analysis ingests ESPN league history and NFL reference data
into a local SQLite database and answers draft analysis queries over it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.AddCommand(ingestCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(serveCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openDB(cfg *config.Config) (db.DB, error) {
	database, err := db.Open(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("error opening database %s: %w", cfg.DatabasePath, err)
	}
	return database, nil
}

func newESPNClient(cfg *config.Config, bypassCache bool) (espn.Client, error) {
	return espn.New(espn.Options{
		LeagueID:           cfg.LeagueID,
		SWID:               cfg.SWID,
		ESPNS2:             cfg.ESPNS2,
		UserAgent:          cfg.UserAgent,
		Timeout:            cfg.APITimeout,
		MinRequestInterval: cfg.RateLimitDelay,
		CacheDir:           cfg.CacheDir,
		BypassCache:        bypassCache,
	}, clock.New())
}
