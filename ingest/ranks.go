package ingest

import (
	"context"
	"log"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// reconcileRanks is step 5: recompute position_rank and overall_rank
// for every player with a strictly positive fantasy score. Ranks are
// dense ordinals over (score descending, name ascending); players
// with no positive score keep NULL ranks. The pass clears before it
// writes, so re-running it with unchanged scores is a no-op.
func (p *Pipeline) reconcileRanks(ctx context.Context, season int, result *Result) error {
	players, err := p.db.RankedPlayers(ctx, season)
	if err != nil {
		return err
	}

	overall := make(map[int64]int, len(players))
	position := make(map[int64]int, len(players))
	posCounters := make(map[model.Position]int)

	// Players arrive already ordered by (score DESC, name ASC).
	for i, pl := range players {
		overall[pl.ID] = i + 1
		posCounters[pl.Position]++
		position[pl.ID] = posCounters[pl.Position]
	}

	if err := p.db.ClearRanks(ctx, season); err != nil {
		return err
	}
	if err := p.db.WriteRanks(ctx, overall, position); err != nil {
		return err
	}

	result.RankedPlayers = len(players)
	log.Printf("reconciled ranks for %d players in season %d", len(players), season)
	return nil
}
