package model

import (
	"database/sql"
	"fmt"
	"time"
)

// Player is one NFL athlete's record for a single season. The same
// athlete in two seasons is two distinct rows; identity is the
// (Season, ESPNPlayerID) pair, never the surrogate ID.
type Player struct {
	ID                    int64
	Season                int
	ESPNPlayerID          int64
	Name                  string
	Position              Position
	NFLTeamID             sql.NullInt64
	EligibilityStatus     string
	Active                bool
	FantasyScore          float64
	PositionRank          sql.NullInt64
	OverallRank           sql.NullInt64
	ProjectedPositionRank sql.NullInt64
	ProjectedOverallRank  sql.NullInt64
	Created               time.Time
}

func (p *Player) String() string {
	return fmt.Sprintf("%s (%s, season %d)", p.Name, p.Position, p.Season)
}

// FallbackName is used when the upstream payload carries no display
// name for a player.
func FallbackName(espnPlayerID int64) string {
	return fmt.Sprintf("Player %d", espnPlayerID)
}

// RankedPlayer is the slice of a player row that rank reconciliation
// works with.
type RankedPlayer struct {
	ID           int64
	Name         string
	Position     Position
	FantasyScore float64
}
