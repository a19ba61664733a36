package model

import (
	"database/sql"
	"time"
)

// NFLTeam is the external league team identity. It is the only entity
// not scoped by season; rows are loaded once and inserted-if-absent.
type NFLTeam struct {
	ID           int64
	Name         string
	Location     string
	Abbreviation string
	ByeWeek      sql.NullInt64
	Created      time.Time
}

// Game is a scheduled NFL matchup. Rows are owned by ingestion and
// never mutated after insert. Uniqueness is (Season, ESPNGameID).
type Game struct {
	ID              int64
	Season          int
	ESPNGameID      int64
	HomeTeamID      int64
	AwayTeamID      int64
	GameDate        int64 // unix millis as delivered by the teams file
	ScoringPeriodID int
	StartTimeTBD    bool
	StatsOfficial   bool
	ValidForLocking bool
	Created         time.Time
}

// FantasyTeam is a participant's team for one season, including the
// season record captured from the draft-history payload. Rows are
// written once per season and not updated afterwards.
type FantasyTeam struct {
	ID            int64
	Season        int
	ESPNTeamID    int64
	Name          string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
	FinalPosition sql.NullInt64
	Created       time.Time
}
