package cmd

import (
	"context"
	"fmt"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/ingest"
	"github.com/spf13/cobra"
)

var (
	ingestSeason     int
	ingestAllSeasons bool
	ingestTeamsFile  string
	ingestForce      bool
	ingestNoCache    bool
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Load one or more seasons from ESPN and the reference files",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		seasons := []int{cfg.DefaultSeason}
		if ingestAllSeasons {
			seasons = cfg.SupportedSeasons
		} else if ingestSeason != 0 {
			if !cfg.ValidSeason(ingestSeason) {
				return fmt.Errorf("unsupported season: %d", ingestSeason)
			}
			seasons = []int{ingestSeason}
		}

		if ingestTeamsFile != "" {
			cfg.TeamsFile = ingestTeamsFile
		}

		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		client, err := newESPNClient(cfg, ingestNoCache)
		if err != nil {
			return fmt.Errorf("error creating espn client: %w", err)
		}

		pipeline := ingest.New(database, client, ingest.Options{
			TeamsFile:        cfg.TeamsFile,
			PlayersCacheFile: cfg.PlayersCacheFile,
			RankingsDir:      cfg.RankingsDir,
			ProjectionSeason: cfg.ProjectionSeason,
		})

		ctx := context.Background()
		for _, season := range seasons {
			result, err := pipeline.Run(ctx, season, ingestForce)
			if err != nil {
				return err
			}
			printResult(season, result)
		}
		return nil
	},
}

func init() {
	ingestCmd.Flags().IntVar(&ingestSeason, "season", 0, "Season to ingest (default: DEFAULT_SEASON)")
	ingestCmd.Flags().BoolVar(&ingestAllSeasons, "all", false, "Ingest every supported season")
	ingestCmd.Flags().StringVar(&ingestTeamsFile, "teams-file", "", "Teams/schedule file (default: TEAMS_FILE)")
	ingestCmd.Flags().BoolVar(&ingestForce, "force-refresh", false, "Reload players even when the season already has rows")
	ingestCmd.Flags().BoolVar(&ingestNoCache, "no-cache", false, "Skip the on-disk response cache")
}

func printResult(season int, r *ingest.Result) {
	fmt.Printf("season %d ingested\n", season)
	fmt.Printf("  nfl teams:      %d\n", r.NFLTeams)
	fmt.Printf("  games:          %d\n", r.Games)
	if r.PlayersSkipped {
		fmt.Printf("  players:        already loaded\n")
	} else {
		fmt.Printf("  players:        %d (%d dropped)\n", r.Players, r.PlayersDropped)
	}
	fmt.Printf("  fantasy teams:  %d\n", r.FantasyTeams)
	fmt.Printf("  draft picks:    %d (%d skipped)\n", r.DraftPicks, r.PicksSkipped)
	fmt.Printf("  roster entries: %d (%d skipped)\n", r.RosterEntries, r.RostersSkipped)
	fmt.Printf("  scores applied: %d\n", r.ScoresApplied)
	fmt.Printf("  players ranked: %d\n", r.RankedPlayers)
}
