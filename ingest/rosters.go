package ingest

import (
	"context"
	"log"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// loadRosters is step 4: apply each rostered player's season point
// total to the players table and record the roster assignment.
// Everything in here is per-entry best effort; partial roster data
// beats aborting the season.
func (p *Pipeline) loadRosters(ctx context.Context, season int, result *Result) error {
	snapshot, err := p.espn.Rosters(ctx, season)
	if err != nil {
		return err
	}

	playerIDs, err := p.db.PlayerIDsBySeason(ctx, season)
	if err != nil {
		return err
	}
	teamIDs, err := p.db.FantasyTeamIDsBySeason(ctx, season)
	if err != nil {
		return err
	}

	for i := range snapshot.Teams {
		team := &snapshot.Teams[i]
		for j := range team.Roster.Entries {
			entry := &team.Roster.Entries[j]

			if total, ok := entry.PlayerPoolEntry.Player.SeasonTotal(season); ok {
				// A no-op when the player row is absent for the season.
				if err := p.db.UpdatePlayerScore(ctx, season, entry.PlayerID, total); err != nil {
					log.Printf("warning: error applying score for player %d: %v", entry.PlayerID, err)
				} else {
					result.ScoresApplied++
				}
			}

			teamRes := resolveID(teamIDs, team.ID, "fantasy team")
			playerRes := resolveID(playerIDs, entry.PlayerID, "player")
			if !teamRes.Found() || !playerRes.Found() {
				result.RostersSkipped++
				continue
			}

			err := p.db.UpsertRosterEntry(ctx, model.RosterEntry{
				Season:        season,
				FantasyTeamID: teamRes.ID,
				PlayerID:      playerRes.ID,
				LineupSlotID:  entry.LineupSlotID,
			})
			if err != nil {
				log.Printf("warning: error saving roster entry for player %d: %v", entry.PlayerID, err)
				result.RostersSkipped++
				continue
			}
			result.RosterEntries++
		}
	}
	log.Printf("loaded %d roster entries (%d skipped)", result.RosterEntries, result.RostersSkipped)

	if season == p.opts.ProjectionSeason {
		p.applyProjections(ctx, season)
	}

	return nil
}

// applyProjections joins pre-computed per-position ranking documents
// to players by exact display name. The documents exist only for the
// configured projection season; a missing file or unmatched name is
// silently ignored.
func (p *Pipeline) applyProjections(ctx context.Context, season int) {
	if p.opts.RankingsDir == "" {
		return
	}

	for _, pos := range model.AllPositions {
		ranks, err := model.LoadProjections(p.opts.RankingsDir, season, pos)
		if err != nil {
			if !os.IsNotExist(err) {
				log.Printf("warning: error loading %s projections for season %d: %v", pos, season, err)
			}
			continue
		}

		for name, r := range ranks {
			if err := p.db.UpdateProjectedRanks(ctx, season, name, r.PositionRank, r.OverallRank); err != nil {
				log.Printf("warning: error applying projected ranks for %q: %v", name, err)
			}
		}
	}
}
