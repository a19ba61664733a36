package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/config"
	"github.com/chasen-bettinger/fantasy-analysis/model"
	"github.com/spf13/cobra"
)

var (
	querySeason   int
	queryRound    int
	queryWeek     int
	queryPosition string
)

var queryCmd = &cobra.Command{
	Use:   "query <view>",
	Short: "Run an analysis query and print the result as JSON",
	Long: `Run an analysis query and print the result as JSON.

Views:
  summary    table counts plus position and round breakdowns
  picks      draft picks, optionally filtered by --round
  positions  draft picks for one position (requires --pos)
  teams      per fantasy team draft summary with final standings
  trends     picks per position per round
  scarcity   scarcity score and draft urgency per position
  games      games, optionally filtered by --week`,
	Args: cobra.ExactArgs(1),
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

		ctx := context.Background()
		season := optional(querySeason)

		var result any
		switch view := args[0]; view {
		case "summary":
			result, err = database.DatabaseSummary(ctx)
		case "picks":
			result, err = database.DraftPicksByRound(ctx, optional(queryRound), season)
		case "positions":
			pos := model.ParsePosition(queryPosition)
			if pos == model.POS_UNKNOWN {
				return fmt.Errorf("unknown position: %q", queryPosition)
			}
			result, err = database.PicksByPosition(ctx, pos, season)
		case "teams":
			result, err = database.TeamDraftSummary(ctx, season)
		case "trends":
			result, err = database.PositionDraftTrends(ctx, season)
		case "scarcity":
			result, err = database.PositionScarcity(ctx, season)
		case "games":
			result, err = database.GamesByWeek(ctx, optional(queryWeek), season)
		default:
			return fmt.Errorf("unknown view: %q", view)
		}
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	},
}

func init() {
	queryCmd.Flags().IntVar(&querySeason, "season", 0, "Limit results to one season")
	queryCmd.Flags().IntVar(&queryRound, "round", 0, "Limit picks to one round")
	queryCmd.Flags().IntVar(&queryWeek, "week", 0, "Limit games to one scoring period")
	queryCmd.Flags().StringVar(&queryPosition, "pos", "", "Position for the positions view (QB, RB, WR, TE, K, DST)")
}

// optional maps the zero value of an int flag to "not set".
func optional(v int) *int {
	if v == 0 {
		return nil
	}
	return &v
}
