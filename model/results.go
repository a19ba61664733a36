package model

import "database/sql"

// Result rows returned by the read-only query layer. Every query that
// takes a season filter returns rows for that season only; with the
// filter omitted the Season column tells the rows apart.

type DraftPickRow struct {
	Season            int            `db:"season"`
	RoundID           int            `db:"round_id"`
	RoundPickNumber   int            `db:"round_pick_number"`
	OverallPickNumber int            `db:"overall_pick_number"`
	PlayerName        sql.NullString `db:"player_name"`
	Position          sql.NullString `db:"position"`
	NFLTeamAbbrev     sql.NullString `db:"nfl_team_abbrev"`
	FantasyTeamName   sql.NullString `db:"fantasy_team_name"`
	Keeper            bool           `db:"is_keeper"`
	AutoDraftTypeID   int            `db:"auto_draft_type_id"`
}

type TeamDraftSummaryRow struct {
	Season          int             `db:"season"`
	FantasyTeamName string          `db:"fantasy_team_name"`
	QBPicks         int             `db:"qb_picks"`
	RBPicks         int             `db:"rb_picks"`
	WRPicks         int             `db:"wr_picks"`
	TEPicks         int             `db:"te_picks"`
	KPicks          int             `db:"k_picks"`
	DSTPicks        int             `db:"dst_picks"`
	EarliestPick    sql.NullInt64   `db:"earliest_pick"`
	LatestPick      sql.NullInt64   `db:"latest_pick"`
	Wins            sql.NullInt64   `db:"wins"`
	Losses          sql.NullInt64   `db:"losses"`
	FinalPosition   sql.NullInt64   `db:"final_position"`
	PointsFor       sql.NullFloat64 `db:"points_for"`
}

type PositionTrendRow struct {
	Season          int     `db:"season"`
	RoundID         int     `db:"round_id"`
	Position        string  `db:"position"`
	PickCount       int     `db:"picks_count"`
	AvgRoundPick    float64 `db:"avg_round_position"`
	EarliestOverall int     `db:"earliest_overall"`
	LatestOverall   int     `db:"latest_overall"`
}

// PositionScarcityRow carries the two timing metrics reporting uses:
// scarcity (100 / average overall pick, higher means drafted earlier)
// and urgency (share of the position's picks spent in rounds 1-3).
type PositionScarcityRow struct {
	Position      string  `db:"position"`
	PickCount     int     `db:"pick_count"`
	AvgPick       float64 `db:"avg_pick"`
	ScarcityScore float64 `db:"scarcity_score"`
	DraftUrgency  float64 `db:"draft_urgency"`
}

type GameWeekRow struct {
	Season        int            `db:"season"`
	Week          int            `db:"week"`
	HomeTeam      sql.NullString `db:"home_team"`
	HomeAbbrev    sql.NullString `db:"home_abbrev"`
	AwayTeam      sql.NullString `db:"away_team"`
	AwayAbbrev    sql.NullString `db:"away_abbrev"`
	GameDate      int64          `db:"game_date"`
	StartTimeTBD  bool           `db:"start_time_tbd"`
	StatsOfficial bool           `db:"stats_official"`
}

type PositionCount struct {
	Position string `db:"position"`
	Count    int    `db:"count"`
}

type RoundCount struct {
	RoundID int `db:"round_id"`
	Picks   int `db:"picks"`
}

// DatabaseSummary is the status/summary view: per-table row counts
// plus the position and round distributions.
type DatabaseSummary struct {
	TableCounts map[string]int  `json:"table_counts"`
	Positions   []PositionCount `json:"positions"`
	Rounds      []RoundCount    `json:"rounds"`
}
