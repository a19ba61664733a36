package ingest

import (
	"context"
	"fmt"
	"log"

	"github.com/chasen-bettinger/fantasy-analysis/db"
	"github.com/chasen-bettinger/fantasy-analysis/espn"
)

// IngestionError marks a structural failure in a pipeline step. It
// always carries the step and season so a top-level caller can log
// one coherent message per failed run.
type IngestionError struct {
	Step   string
	Season int
	Err    error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("ingestion step %q failed for season %d: %v", e.Step, e.Season, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

// Result counts what one ingestion run loaded and skipped, so callers
// and tests can assert skip counts instead of digging through logs.
type Result struct {
	NFLTeams       int
	Games          int
	Players        int
	PlayersDropped int
	PlayersSkipped bool // step 2 short-circuited on existing rows
	FantasyTeams   int
	DraftPicks     int
	PicksSkipped   int
	RosterEntries  int
	RostersSkipped int
	ScoresApplied  int
	RankedPlayers  int
}

// Options fixes the file locations and the projection season for the
// lifetime of a pipeline.
type Options struct {
	TeamsFile        string
	PlayersCacheFile string
	RankingsDir      string
	ProjectionSeason int
}

// Pipeline ingests one season at a time: reference teams and games,
// then players, then draft history, then rosters, then rank
// reconciliation. The order is load-bearing; every step relies on
// rows materialized by its predecessors.
type Pipeline struct {
	db   db.DB
	espn espn.Client
	opts Options
}

func New(db db.DB, client espn.Client, opts Options) *Pipeline {
	return &Pipeline{db: db, espn: client, opts: opts}
}

// Run executes all five steps for a season. Steps 1-3 and 5 abort the
// run; step 4 skips bad entries and keeps going.
func (p *Pipeline) Run(ctx context.Context, season int, forceRefresh bool) (*Result, error) {
	log.Printf("starting ingestion for season %d", season)
	result := &Result{}

	if err := p.loadTeams(ctx, season, result); err != nil {
		return nil, &IngestionError{Step: "teams", Season: season, Err: err}
	}
	if err := p.loadPlayers(ctx, season, forceRefresh, result); err != nil {
		return nil, &IngestionError{Step: "players", Season: season, Err: err}
	}
	if err := p.loadDraftHistory(ctx, season, result); err != nil {
		return nil, &IngestionError{Step: "draft", Season: season, Err: err}
	}
	if err := p.loadRosters(ctx, season, result); err != nil {
		return nil, &IngestionError{Step: "rosters", Season: season, Err: err}
	}
	if err := p.reconcileRanks(ctx, season, result); err != nil {
		return nil, &IngestionError{Step: "ranks", Season: season, Err: err}
	}

	log.Printf("ingestion for season %d completed", season)
	return result, nil
}

// Resolution is the outcome of translating an external id into an
// internal surrogate id. A skip is an expected condition, not an
// error; the record it belongs to is dropped with a warning.
type Resolution struct {
	ID     int64
	Reason string
}

func (r Resolution) Found() bool {
	return r.Reason == ""
}

func resolveID(ids map[int64]int64, external int64, kind string) Resolution {
	id, found := ids[external]
	if !found {
		return Resolution{Reason: fmt.Sprintf("%s id %d not found", kind, external)}
	}
	return Resolution{ID: id}
}
