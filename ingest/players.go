package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// loadPlayers is step 2: fetch the season's player pool and upsert it.
// A season that already has player rows is skipped unless forceRefresh
// is set, trading staleness for not repeating an expensive fetch.
func (p *Pipeline) loadPlayers(ctx context.Context, season int, forceRefresh bool, result *Result) error {
	count, err := p.db.PlayerCount(ctx, season)
	if err != nil {
		return err
	}
	if count > 0 && !forceRefresh {
		log.Printf("found %d existing players for season %d, skipping fetch; use force refresh to reload", count, season)
		result.PlayersSkipped = true
		return nil
	}

	log.Printf("fetching player data for season %d", season)
	payload, err := p.espn.Players(ctx, season)
	if err != nil {
		return err
	}
	if len(payload) == 0 {
		return errors.New("no player data received")
	}

	p.mirrorPlayersPayload(payload)

	players := make([]model.Player, 0, len(payload))
	for i := range payload {
		if payload[i].ID == 0 {
			continue
		}
		player, ok := payload[i].ToModel(season)
		if !ok {
			// No recognized primary position; dropped entirely rather
			// than stored as UNKNOWN.
			result.PlayersDropped++
			continue
		}
		players = append(players, *player)
	}

	if err := p.db.UpsertPlayers(ctx, players); err != nil {
		return err
	}
	result.Players = len(players)
	log.Printf("loaded %d players (%d dropped)", len(players), result.PlayersDropped)

	return nil
}

// mirrorPlayersPayload writes the raw payload next to the database for
// offline inspection. Failures only cost the mirror.
func (p *Pipeline) mirrorPlayersPayload(payload any) {
	if p.opts.PlayersCacheFile == "" {
		return
	}

	b, err := json.Marshal(payload)
	if err != nil {
		log.Printf("error marshaling players payload for mirror: %v", err)
		return
	}
	if err := os.WriteFile(p.opts.PlayersCacheFile, b, 0o644); err != nil {
		log.Printf("error writing players mirror file: %v", err)
	}
}
