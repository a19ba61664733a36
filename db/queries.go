package db

import (
	"context"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// Read-only aggregate views consumed by reporting. Every query takes
// an optional season filter; with a season set the result set is
// season-homogeneous, without one rows carry their season column.

func (db *sqliteDB) DraftPicksByRound(ctx context.Context, roundID *int, season *int) ([]model.DraftPickRow, error) {
	query := `SELECT
			dp.season,
			dp.round_id,
			dp.round_pick_number,
			dp.overall_pick_number,
			p.name AS player_name,
			p.position,
			nt.abbreviation AS nfl_team_abbrev,
			ft.name AS fantasy_team_name,
			dp.is_keeper,
			dp.auto_draft_type_id
		FROM draft_picks dp
		LEFT JOIN players p ON dp.player_id = p.id
		LEFT JOIN nfl_teams nt ON p.nfl_team_id = nt.id
		LEFT JOIN fantasy_teams ft ON dp.fantasy_team_id = ft.id
		WHERE 1=1`

	args := make([]any, 0, 2)
	if roundID != nil {
		query += " AND dp.round_id = ?"
		args = append(args, *roundID)
	}
	if season != nil {
		query += " AND dp.season = ?"
		args = append(args, *season)
	}
	query += " ORDER BY dp.season, dp.overall_pick_number"

	var rows []model.DraftPickRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("draft picks by round", err)
	}
	return rows, nil
}

func (db *sqliteDB) PicksByPosition(ctx context.Context, pos model.Position, season *int) ([]model.DraftPickRow, error) {
	query := `SELECT
			dp.season,
			dp.round_id,
			dp.round_pick_number,
			dp.overall_pick_number,
			p.name AS player_name,
			p.position,
			nt.abbreviation AS nfl_team_abbrev,
			ft.name AS fantasy_team_name,
			dp.is_keeper,
			dp.auto_draft_type_id
		FROM draft_picks dp
		LEFT JOIN players p ON dp.player_id = p.id
		LEFT JOIN nfl_teams nt ON p.nfl_team_id = nt.id
		LEFT JOIN fantasy_teams ft ON dp.fantasy_team_id = ft.id
		WHERE p.position IS NOT NULL`

	args := make([]any, 0, 2)
	if pos != model.POS_UNKNOWN {
		query += " AND p.position = ?"
		args = append(args, string(pos))
	}
	if season != nil {
		query += " AND dp.season = ?"
		args = append(args, *season)
	}
	query += " ORDER BY p.position, dp.season, dp.overall_pick_number"

	var rows []model.DraftPickRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("picks by position", err)
	}
	return rows, nil
}

func (db *sqliteDB) TeamDraftSummary(ctx context.Context, season *int) ([]model.TeamDraftSummaryRow, error) {
	query := `SELECT
			ft.season,
			ft.name AS fantasy_team_name,
			COUNT(CASE WHEN p.position = 'QB' THEN 1 END) AS qb_picks,
			COUNT(CASE WHEN p.position = 'RB' THEN 1 END) AS rb_picks,
			COUNT(CASE WHEN p.position = 'WR' THEN 1 END) AS wr_picks,
			COUNT(CASE WHEN p.position = 'TE' THEN 1 END) AS te_picks,
			COUNT(CASE WHEN p.position = 'K' THEN 1 END) AS k_picks,
			COUNT(CASE WHEN p.position = 'DST' THEN 1 END) AS dst_picks,
			MIN(dp.overall_pick_number) AS earliest_pick,
			MAX(dp.overall_pick_number) AS latest_pick,
			ft.wins,
			ft.losses,
			ft.final_position,
			ft.points_for
		FROM fantasy_teams ft
		LEFT JOIN draft_picks dp ON ft.id = dp.fantasy_team_id
		LEFT JOIN players p ON p.id = dp.player_id`

	args := make([]any, 0, 1)
	if season != nil {
		query += " WHERE ft.season = ?"
		args = append(args, *season)
	}
	query += " GROUP BY ft.id, ft.season, ft.name ORDER BY ft.season, ft.name"

	var rows []model.TeamDraftSummaryRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("team draft summary", err)
	}
	return rows, nil
}

func (db *sqliteDB) PositionDraftTrends(ctx context.Context, season *int) ([]model.PositionTrendRow, error) {
	query := `SELECT
			dp.season,
			dp.round_id,
			p.position,
			COUNT(*) AS picks_count,
			AVG(dp.round_pick_number) AS avg_round_position,
			MIN(dp.overall_pick_number) AS earliest_overall,
			MAX(dp.overall_pick_number) AS latest_overall
		FROM draft_picks dp
		LEFT JOIN players p ON dp.player_id = p.id
		WHERE p.position IS NOT NULL`

	args := make([]any, 0, 1)
	if season != nil {
		query += " AND dp.season = ?"
		args = append(args, *season)
	}
	query += " GROUP BY dp.season, dp.round_id, p.position ORDER BY dp.season, dp.round_id, picks_count DESC"

	var rows []model.PositionTrendRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("position draft trends", err)
	}
	return rows, nil
}

// PositionScarcity computes the two draft-timing metrics per position:
// scarcity (100 divided by the average overall pick, so earlier
// drafting scores higher) and urgency (percentage of the position's
// picks spent in the first three rounds).
func (db *sqliteDB) PositionScarcity(ctx context.Context, season *int) ([]model.PositionScarcityRow, error) {
	query := `SELECT
			p.position,
			COUNT(*) AS pick_count,
			AVG(dp.overall_pick_number) AS avg_pick,
			100.0 / AVG(dp.overall_pick_number) AS scarcity_score,
			SUM(CASE WHEN dp.round_id <= 3 THEN 1 ELSE 0 END) * 100.0 / COUNT(*) AS draft_urgency
		FROM draft_picks dp
		JOIN players p ON dp.player_id = p.id
		WHERE p.position IS NOT NULL`

	args := make([]any, 0, 1)
	if season != nil {
		query += " AND dp.season = ?"
		args = append(args, *season)
	}
	query += " GROUP BY p.position ORDER BY scarcity_score DESC"

	var rows []model.PositionScarcityRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("position scarcity", err)
	}
	return rows, nil
}

func (db *sqliteDB) GamesByWeek(ctx context.Context, scoringPeriod *int, season *int) ([]model.GameWeekRow, error) {
	query := `SELECT
			g.season,
			g.scoring_period_id AS week,
			ht.name AS home_team,
			ht.abbreviation AS home_abbrev,
			at.name AS away_team,
			at.abbreviation AS away_abbrev,
			g.game_date,
			g.start_time_tbd,
			g.stats_official
		FROM games g
		LEFT JOIN nfl_teams ht ON g.home_team_id = ht.id
		LEFT JOIN nfl_teams at ON g.away_team_id = at.id
		WHERE 1=1`

	args := make([]any, 0, 2)
	if scoringPeriod != nil {
		query += " AND g.scoring_period_id = ?"
		args = append(args, *scoringPeriod)
	}
	if season != nil {
		query += " AND g.season = ?"
		args = append(args, *season)
	}
	query += " ORDER BY g.season, g.scoring_period_id, g.game_date"

	var rows []model.GameWeekRow
	if err := db.conn.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, storageErr("games by week", err)
	}
	return rows, nil
}

func (db *sqliteDB) DatabaseSummary(ctx context.Context) (*model.DatabaseSummary, error) {
	stats, err := db.Stats(ctx)
	if err != nil {
		return nil, err
	}

	var positions []model.PositionCount
	err = db.conn.SelectContext(ctx, &positions,
		`SELECT position, COUNT(*) AS count FROM players
		 WHERE position IS NOT NULL GROUP BY position ORDER BY count DESC`)
	if err != nil {
		return nil, storageErr("database summary", err)
	}

	var rounds []model.RoundCount
	err = db.conn.SelectContext(ctx, &rounds,
		`SELECT round_id, COUNT(*) AS picks FROM draft_picks
		 GROUP BY round_id ORDER BY round_id`)
	if err != nil {
		return nil, storageErr("database summary", err)
	}

	return &model.DatabaseSummary{
		TableCounts: stats,
		Positions:   positions,
		Rounds:      rounds,
	}, nil
}
