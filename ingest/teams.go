package ingest

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// Wire types for the teams/schedule file.
type teamsFile struct {
	ProTeams []proTeam `json:"proTeams"`
}

type proTeam struct {
	ID                      int64                `json:"id"`
	Name                    string               `json:"name"`
	Location                string               `json:"location"`
	Abbrev                  string               `json:"abbrev"`
	ByeWeek                 *int64               `json:"byeWeek"`
	ProGamesByScoringPeriod map[string][]proGame `json:"proGamesByScoringPeriod"`
}

type proGame struct {
	ID              int64 `json:"id"`
	HomeProTeamID   int64 `json:"homeProTeamId"`
	AwayProTeamID   int64 `json:"awayProTeamId"`
	Date            int64 `json:"date"`
	ScoringPeriodID int   `json:"scoringPeriodId"`
	StartTimeTBD    bool  `json:"startTimeTBD"`
	StatsOfficial   bool  `json:"statsOfficial"`
	ValidForLocking bool  `json:"validForLocking"`
}

// loadTeams is step 1: upsert the reference NFL teams, then flatten
// every team's per-scoring-period game lists, dedupe the games, and
// bulk insert them.
func (p *Pipeline) loadTeams(ctx context.Context, season int, result *Result) error {
	b, err := os.ReadFile(p.opts.TeamsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("teams file not found: %s", p.opts.TeamsFile)
		}
		return fmt.Errorf("error reading teams file: %w", err)
	}

	var payload teamsFile
	if err := json.Unmarshal(b, &payload); err != nil {
		return fmt.Errorf("error parsing teams data: %w", err)
	}

	log.Printf("loading %d NFL teams", len(payload.ProTeams))

	teams := make([]model.NFLTeam, 0, len(payload.ProTeams))
	for _, t := range payload.ProTeams {
		team := model.NFLTeam{
			ID:           t.ID,
			Name:         t.Name,
			Location:     t.Location,
			Abbreviation: t.Abbrev,
		}
		if t.ByeWeek != nil {
			team.ByeWeek = sql.NullInt64{Int64: *t.ByeWeek, Valid: true}
		}
		teams = append(teams, team)
	}
	if err := p.db.UpsertNFLTeams(ctx, teams); err != nil {
		return err
	}
	result.NFLTeams = len(teams)
	log.Printf("loaded %d NFL teams", len(teams))

	games := flattenGames(season, payload.ProTeams)
	if err := p.db.InsertGames(ctx, games); err != nil {
		return err
	}
	result.Games = len(games)
	log.Printf("loaded %d games", len(games))

	return nil
}

// flattenGames collapses the nested per-period game lists into one
// slice deduplicated by game id. The same game appears under both
// participating teams' payloads.
func flattenGames(season int, teams []proTeam) []model.Game {
	seen := make(map[int64]bool)
	games := make([]model.Game, 0, len(teams)*17)

	for _, t := range teams {
		for _, period := range t.ProGamesByScoringPeriod {
			for _, g := range period {
				if seen[g.ID] {
					continue
				}
				seen[g.ID] = true

				games = append(games, model.Game{
					Season:          season,
					ESPNGameID:      g.ID,
					HomeTeamID:      g.HomeProTeamID,
					AwayTeamID:      g.AwayProTeamID,
					GameDate:        g.Date,
					ScoringPeriodID: g.ScoringPeriodID,
					StartTimeTBD:    g.StartTimeTBD,
					StatsOfficial:   g.StatsOfficial,
					ValidForLocking: g.ValidForLocking,
				})
			}
		}
	}
	return games
}
