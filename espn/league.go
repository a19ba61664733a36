package espn

import (
	"database/sql"
	"fmt"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// Wire types for the leagueHistory API. Responses are arrays of league
// snapshots; the first element carries the requested season's data.

type LeagueSnapshot struct {
	SeasonID    int         `json:"seasonId"`
	DraftDetail DraftDetail `json:"draftDetail"`
	Teams       []Team      `json:"teams"`
}

type DraftDetail struct {
	Picks []Pick `json:"picks"`
}

type Pick struct {
	ID                int64 `json:"id"`
	PlayerID          int64 `json:"playerId"`
	TeamID            int64 `json:"teamId"`
	RoundID           int   `json:"roundId"`
	RoundPickNumber   int   `json:"roundPickNumber"`
	OverallPickNumber int   `json:"overallPickNumber"`
	LineupSlotID      int   `json:"lineupSlotId"`
	Keeper            bool  `json:"keeper"`
	AutoDraftTypeID   int   `json:"autoDraftTypeId"`
}

type Team struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	Record              Record `json:"record"`
	RankCalculatedFinal int    `json:"rankCalculatedFinal"`
	Roster              Roster `json:"roster"`
}

type Record struct {
	Overall OverallRecord `json:"overall"`
}

type OverallRecord struct {
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	Ties          int     `json:"ties"`
	PointsFor     float64 `json:"pointsFor"`
	PointsAgainst float64 `json:"pointsAgainst"`
}

type Roster struct {
	Entries []RosterEntry `json:"entries"`
}

type RosterEntry struct {
	PlayerID        int64           `json:"playerId"`
	LineupSlotID    int             `json:"lineupSlotId"`
	PlayerPoolEntry PlayerPoolEntry `json:"playerPoolEntry"`
}

type PlayerPoolEntry struct {
	Player PoolPlayer `json:"player"`
}

type PoolPlayer struct {
	FullName string `json:"fullName"`
	Stats    []Stat `json:"stats"`
}

type Stat struct {
	ID           string  `json:"id"`
	AppliedTotal float64 `json:"appliedTotal"`
}

// SeasonTotal returns the applied fantasy-point total from the stat
// bucket belonging to the given season, id "00{season}".
func (p *PoolPlayer) SeasonTotal(season int) (float64, bool) {
	key := fmt.Sprintf("00%d", season)
	for _, s := range p.Stats {
		if s.ID == key {
			return s.AppliedTotal, true
		}
	}
	return 0, false
}

// Player is one record of the season players endpoint.
type Player struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName"`
	EligibleSlots []int  `json:"eligibleSlots"`
	ProTeamID     *int64 `json:"proTeamId"`
	InjuryStatus  string `json:"injuryStatus"`
}

// Status normalizes the injury-status field; the API omits it for
// healthy players.
func (p *Player) Status() string {
	if p.InjuryStatus == "" {
		return "ACTIVE"
	}
	return p.InjuryStatus
}

// ToModel converts an API player record into a season-scoped model
// row. The second return is false when the player has no recognized
// primary position and must be dropped from ingestion.
func (p *Player) ToModel(season int) (*model.Player, bool) {
	pos := model.PositionFromSlots(p.EligibleSlots)
	if pos == model.POS_UNKNOWN {
		return nil, false
	}

	name := p.FullName
	if name == "" {
		name = model.FallbackName(p.ID)
	}

	var teamID sql.NullInt64
	if p.ProTeamID != nil {
		teamID = sql.NullInt64{Int64: *p.ProTeamID, Valid: true}
	}

	status := p.Status()
	return &model.Player{
		Season:            season,
		ESPNPlayerID:      p.ID,
		Name:              name,
		Position:          pos,
		NFLTeamID:         teamID,
		EligibilityStatus: status,
		Active:            status == "ACTIVE",
	}, true
}

func (t *Team) ToModel(season int) *model.FantasyTeam {
	ft := &model.FantasyTeam{
		Season:        season,
		ESPNTeamID:    t.ID,
		Name:          t.Name,
		Wins:          t.Record.Overall.Wins,
		Losses:        t.Record.Overall.Losses,
		Ties:          t.Record.Overall.Ties,
		PointsFor:     t.Record.Overall.PointsFor,
		PointsAgainst: t.Record.Overall.PointsAgainst,
	}
	if t.RankCalculatedFinal > 0 {
		ft.FinalPosition = sql.NullInt64{Int64: int64(t.RankCalculatedFinal), Valid: true}
	}
	return ft
}
