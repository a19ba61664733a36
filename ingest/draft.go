package ingest

import (
	"context"
	"log"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// loadDraftHistory is step 3: upsert the season's fantasy teams from
// the draft payload, then translate each pick's external player and
// team ids into internal surrogate ids before insert. Picks that fail
// to resolve are dropped with a warning; sibling picks still persist.
func (p *Pipeline) loadDraftHistory(ctx context.Context, season int, result *Result) error {
	snapshot, err := p.espn.DraftHistory(ctx, season)
	if err != nil {
		return err
	}

	teams := make([]model.FantasyTeam, 0, len(snapshot.Teams))
	seen := make(map[int64]bool)
	for i := range snapshot.Teams {
		t := &snapshot.Teams[i]
		if t.ID == 0 || seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		teams = append(teams, *t.ToModel(season))
	}
	if err := p.db.UpsertFantasyTeams(ctx, teams); err != nil {
		return err
	}
	result.FantasyTeams = len(teams)
	log.Printf("loaded %d fantasy teams", len(teams))

	// Lookup maps are rebuilt from store state every run so they see
	// the rows steps 2 and this step just wrote.
	playerIDs, err := p.db.PlayerIDsBySeason(ctx, season)
	if err != nil {
		return err
	}
	teamIDs, err := p.db.FantasyTeamIDsBySeason(ctx, season)
	if err != nil {
		return err
	}

	picks := make([]model.DraftPick, 0, len(snapshot.DraftDetail.Picks))
	for _, pick := range snapshot.DraftDetail.Picks {
		player := resolveID(playerIDs, pick.PlayerID, "player")
		if !player.Found() {
			log.Printf("warning: %s, skipping pick %d", player.Reason, pick.ID)
			result.PicksSkipped++
			continue
		}
		team := resolveID(teamIDs, pick.TeamID, "fantasy team")
		if !team.Found() {
			log.Printf("warning: %s, skipping pick %d", team.Reason, pick.ID)
			result.PicksSkipped++
			continue
		}

		picks = append(picks, model.DraftPick{
			Season:            season,
			ESPNPickID:        pick.ID,
			PlayerID:          player.ID,
			FantasyTeamID:     team.ID,
			RoundID:           pick.RoundID,
			RoundPickNumber:   pick.RoundPickNumber,
			OverallPickNumber: pick.OverallPickNumber,
			LineupSlotID:      pick.LineupSlotID,
			Keeper:            pick.Keeper,
			AutoDraftTypeID:   pick.AutoDraftTypeID,
		})
	}

	if len(picks) > 0 {
		if err := p.db.InsertDraftPicks(ctx, picks); err != nil {
			return err
		}
	}
	result.DraftPicks = len(picks)
	log.Printf("loaded %d draft picks (%d skipped)", len(picks), result.PicksSkipped)

	return nil
}
