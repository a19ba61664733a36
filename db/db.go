package db

import (
	"context"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

type DB interface {
	// Write path, used by the ingestion pipeline in step order.
	UpsertNFLTeams(ctx context.Context, teams []model.NFLTeam) error
	InsertGames(ctx context.Context, games []model.Game) error
	UpsertPlayers(ctx context.Context, players []model.Player) error
	UpsertFantasyTeams(ctx context.Context, teams []model.FantasyTeam) error
	InsertDraftPicks(ctx context.Context, picks []model.DraftPick) error
	UpsertRosterEntry(ctx context.Context, entry model.RosterEntry) error
	UpdatePlayerScore(ctx context.Context, season int, espnPlayerID int64, score float64) error
	UpdateProjectedRanks(ctx context.Context, season int, name string, positionRank, overallRank int) error

	// Id-resolution reads. Maps are built fresh each pipeline run so
	// they always reflect rows inserted by earlier steps.
	PlayerIDsBySeason(ctx context.Context, season int) (map[int64]int64, error)
	FantasyTeamIDsBySeason(ctx context.Context, season int) (map[int64]int64, error)
	PlayerCount(ctx context.Context, season int) (int, error)

	// Rank reconciliation.
	RankedPlayers(ctx context.Context, season int) ([]model.RankedPlayer, error)
	ClearRanks(ctx context.Context, season int) error
	WriteRanks(ctx context.Context, overall map[int64]int, position map[int64]int) error

	// Diagnostics.
	TableCount(ctx context.Context, table string) (int, error)
	Stats(ctx context.Context) (map[string]int, error)

	// Read-only aggregate views consumed by reporting. A nil season
	// means all seasons.
	DraftPicksByRound(ctx context.Context, roundID *int, season *int) ([]model.DraftPickRow, error)
	PicksByPosition(ctx context.Context, pos model.Position, season *int) ([]model.DraftPickRow, error)
	TeamDraftSummary(ctx context.Context, season *int) ([]model.TeamDraftSummaryRow, error)
	PositionDraftTrends(ctx context.Context, season *int) ([]model.PositionTrendRow, error)
	PositionScarcity(ctx context.Context, season *int) ([]model.PositionScarcityRow, error)
	GamesByWeek(ctx context.Context, scoringPeriod *int, season *int) ([]model.GameWeekRow, error)
	DatabaseSummary(ctx context.Context) (*model.DatabaseSummary, error)

	Close() error
}
