package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chasen-bettinger/fantasy-analysis/model"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDB(t *testing.T) DB {
	t.Helper()

	database, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func TestOpenCreatesSchema(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	for _, table := range Tables {
		count, err := database.TableCount(ctx, table)
		require.NoError(t, err)
		assert.Equal(t, 0, count, "table %s", table)
	}

	// Opening an existing file re-runs the schema script without error.
	path := filepath.Join(t.TempDir(), "reopen.db")
	first, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, first.Close())
	second, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, second.Close())
}

func TestTableCountUnknownTable(t *testing.T) {
	database := testDB(t)

	_, err := database.TableCount(context.Background(), "players; DROP TABLE players")
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "table count", storageErr.Op)
}

func TestUpsertNFLTeamsIsIdempotent(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	teams := []model.NFLTeam{
		{ID: 3, Name: "Bears", Location: "Chicago", Abbreviation: "CHI", ByeWeek: sql.NullInt64{Int64: 7, Valid: true}},
		{ID: 9, Name: "Packers", Location: "Green Bay", Abbreviation: "GB", ByeWeek: sql.NullInt64{Int64: 13, Valid: true}},
	}
	require.NoError(t, database.UpsertNFLTeams(ctx, teams))
	require.NoError(t, database.UpsertNFLTeams(ctx, teams))

	count, err := database.TableCount(ctx, "nfl_teams")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestInsertGamesDeduplicates(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	game := model.Game{
		Season:          2015,
		ESPNGameID:      101,
		HomeTeamID:      3,
		AwayTeamID:      9,
		GameDate:        1441587600000,
		ScoringPeriodID: 1,
		ValidForLocking: true,
	}
	require.NoError(t, database.InsertGames(ctx, []model.Game{game}))

	// The same external game arriving from a second team's schedule
	// must not produce a second row.
	require.NoError(t, database.InsertGames(ctx, []model.Game{game}))

	count, err := database.TableCount(ctx, "games")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUpsertPlayersReplacesExistingRow(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	player := model.Player{
		Season:            2015,
		ESPNPlayerID:      101,
		Name:              "Alan Marsh",
		Position:          model.POS_QB,
		EligibilityStatus: "ACTIVE",
		Active:            true,
	}
	require.NoError(t, database.UpsertPlayers(ctx, []model.Player{player}))

	player.EligibilityStatus = "QUESTIONABLE"
	require.NoError(t, database.UpsertPlayers(ctx, []model.Player{player}))

	count, err := database.PlayerCount(ctx, 2015)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPlayerIdentityIsSeasonScoped(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	player := model.Player{
		ESPNPlayerID: 101,
		Name:         "Alan Marsh",
		Position:     model.POS_QB,
		Active:       true,
	}
	for _, season := range []int{2015, 2016} {
		player.Season = season
		require.NoError(t, database.UpsertPlayers(ctx, []model.Player{player}))
	}

	ids2015, err := database.PlayerIDsBySeason(ctx, 2015)
	require.NoError(t, err)
	ids2016, err := database.PlayerIDsBySeason(ctx, 2016)
	require.NoError(t, err)

	require.Contains(t, ids2015, int64(101))
	require.Contains(t, ids2016, int64(101))
	assert.NotEqual(t, ids2015[101], ids2016[101], "each season gets its own row")
}

func TestRankedPlayersOrdering(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	players := []model.Player{
		{Season: 2015, ESPNPlayerID: 101, Name: "Alan Marsh", Position: model.POS_QB, Active: true},
		{Season: 2015, ESPNPlayerID: 102, Name: "Ben Ortiz", Position: model.POS_RB, Active: true},
		{Season: 2015, ESPNPlayerID: 103, Name: "Cody Vance", Position: model.POS_WR, Active: true},
		{Season: 2015, ESPNPlayerID: 104, Name: "Drew Wells", Position: model.POS_TE, Active: true},
	}
	require.NoError(t, database.UpsertPlayers(ctx, players))

	require.NoError(t, database.UpdatePlayerScore(ctx, 2015, 101, 300))
	require.NoError(t, database.UpdatePlayerScore(ctx, 2015, 102, 250))
	require.NoError(t, database.UpdatePlayerScore(ctx, 2015, 103, 250))
	// Drew Wells keeps a zero score and must not appear at all.

	ranked, err := database.RankedPlayers(ctx, 2015)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, "Alan Marsh", ranked[0].Name)
	// Tied at 250: alphabetical order breaks the tie.
	assert.Equal(t, "Ben Ortiz", ranked[1].Name)
	assert.Equal(t, "Cody Vance", ranked[2].Name)
}

func TestWriteAndClearRanks(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	players := []model.Player{
		{Season: 2015, ESPNPlayerID: 101, Name: "Alan Marsh", Position: model.POS_QB, Active: true},
		{Season: 2015, ESPNPlayerID: 102, Name: "Ben Ortiz", Position: model.POS_RB, Active: true},
	}
	require.NoError(t, database.UpsertPlayers(ctx, players))

	ids, err := database.PlayerIDsBySeason(ctx, 2015)
	require.NoError(t, err)

	overall := map[int64]int{ids[101]: 1, ids[102]: 2}
	position := map[int64]int{ids[101]: 1, ids[102]: 1}
	require.NoError(t, database.WriteRanks(ctx, overall, position))

	sdb := database.(*sqliteDB)
	var got []struct {
		OverallRank  sql.NullInt64 `db:"overall_rank"`
		PositionRank sql.NullInt64 `db:"position_rank"`
	}
	err = sdb.conn.SelectContext(ctx, &got,
		"SELECT overall_rank, position_rank FROM players WHERE season=2015 ORDER BY espn_player_id")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].OverallRank.Int64)
	assert.Equal(t, int64(2), got[1].OverallRank.Int64)
	assert.Equal(t, int64(1), got[1].PositionRank.Int64)

	require.NoError(t, database.ClearRanks(ctx, 2015))
	got = nil
	err = sdb.conn.SelectContext(ctx, &got,
		"SELECT overall_rank, position_rank FROM players WHERE season=2015")
	require.NoError(t, err)
	for _, row := range got {
		assert.False(t, row.OverallRank.Valid)
		assert.False(t, row.PositionRank.Valid)
	}
}

func TestUpdateProjectedRanksMatchesByName(t *testing.T) {
	database := testDB(t)
	ctx := context.Background()

	players := []model.Player{
		{Season: 2017, ESPNPlayerID: 501, Name: "Alan Marsh", Position: model.POS_QB, Active: true},
	}
	require.NoError(t, database.UpsertPlayers(ctx, players))

	require.NoError(t, database.UpdateProjectedRanks(ctx, 2017, "Alan Marsh", 2, 14))
	// Unmatched names are silently ignored.
	require.NoError(t, database.UpdateProjectedRanks(ctx, 2017, "No Such Player", 1, 1))

	sdb := database.(*sqliteDB)
	var got struct {
		Pos     sql.NullInt64 `db:"projected_position_rank"`
		Overall sql.NullInt64 `db:"projected_overall_rank"`
	}
	err := sdb.conn.GetContext(ctx, &got,
		"SELECT projected_position_rank, projected_overall_rank FROM players WHERE season=2017 AND name='Alan Marsh'")
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Pos.Int64)
	assert.Equal(t, int64(14), got.Overall.Int64)
}

// seedDraftData loads a minimal season: two fantasy teams, four
// players, five picks across three rounds, one game.
func seedDraftData(t *testing.T, database DB) {
	t.Helper()
	ctx := context.Background()

	require.NoError(t, database.UpsertNFLTeams(ctx, []model.NFLTeam{
		{ID: 3, Name: "Bears", Location: "Chicago", Abbreviation: "CHI"},
		{ID: 9, Name: "Packers", Location: "Green Bay", Abbreviation: "GB"},
	}))
	require.NoError(t, database.InsertGames(ctx, []model.Game{
		{Season: 2015, ESPNGameID: 101, HomeTeamID: 3, AwayTeamID: 9, GameDate: 1441587600000, ScoringPeriodID: 1},
	}))
	require.NoError(t, database.UpsertPlayers(ctx, []model.Player{
		{Season: 2015, ESPNPlayerID: 101, Name: "Alan Marsh", Position: model.POS_QB, Active: true},
		{Season: 2015, ESPNPlayerID: 102, Name: "Ben Ortiz", Position: model.POS_RB, Active: true},
		{Season: 2015, ESPNPlayerID: 103, Name: "Cody Vance", Position: model.POS_WR, Active: true},
		{Season: 2015, ESPNPlayerID: 104, Name: "Drew Wells", Position: model.POS_RB, Active: true},
	}))
	require.NoError(t, database.UpsertFantasyTeams(ctx, []model.FantasyTeam{
		{Season: 2015, ESPNTeamID: 1, Name: "Gridiron Geeks", Wins: 10, Losses: 3, FinalPosition: sql.NullInt64{Int64: 1, Valid: true}},
		{Season: 2015, ESPNTeamID: 2, Name: "Couch Quarterbacks", Wins: 8, Losses: 5, FinalPosition: sql.NullInt64{Int64: 2, Valid: true}},
	}))

	playerIDs, err := database.PlayerIDsBySeason(ctx, 2015)
	require.NoError(t, err)
	teamIDs, err := database.FantasyTeamIDsBySeason(ctx, 2015)
	require.NoError(t, err)

	require.NoError(t, database.InsertDraftPicks(ctx, []model.DraftPick{
		{Season: 2015, ESPNPickID: 1, PlayerID: playerIDs[102], FantasyTeamID: teamIDs[1], RoundID: 1, RoundPickNumber: 1, OverallPickNumber: 1},
		{Season: 2015, ESPNPickID: 2, PlayerID: playerIDs[104], FantasyTeamID: teamIDs[2], RoundID: 1, RoundPickNumber: 2, OverallPickNumber: 2},
		{Season: 2015, ESPNPickID: 3, PlayerID: playerIDs[103], FantasyTeamID: teamIDs[1], RoundID: 2, RoundPickNumber: 1, OverallPickNumber: 3},
		{Season: 2015, ESPNPickID: 4, PlayerID: playerIDs[101], FantasyTeamID: teamIDs[2], RoundID: 4, RoundPickNumber: 1, OverallPickNumber: 7},
	}))
}

func TestDraftPicksByRound(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)
	ctx := context.Background()

	all, err := database.DraftPicksByRound(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 4)
	assert.Equal(t, "Ben Ortiz", all[0].PlayerName.String)
	assert.Equal(t, "Gridiron Geeks", all[0].FantasyTeamName.String)

	round := 1
	firstRound, err := database.DraftPicksByRound(ctx, &round, nil)
	require.NoError(t, err)
	require.Len(t, firstRound, 2)
	for _, pick := range firstRound {
		assert.Equal(t, 1, pick.RoundID)
	}

	season := 2024
	none, err := database.DraftPicksByRound(ctx, nil, &season)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestPicksByPosition(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)

	picks, err := database.PicksByPosition(context.Background(), model.POS_RB, nil)
	require.NoError(t, err)
	require.Len(t, picks, 2)
	for _, pick := range picks {
		assert.Equal(t, "RB", pick.Position.String)
	}
}

func TestTeamDraftSummary(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)

	rows, err := database.TeamDraftSummary(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Ordered by team name.
	couch := rows[0]
	assert.Equal(t, "Couch Quarterbacks", couch.FantasyTeamName)
	assert.Equal(t, 1, couch.QBPicks)
	assert.Equal(t, 1, couch.RBPicks)
	assert.Equal(t, int64(2), couch.EarliestPick.Int64)
	assert.Equal(t, int64(7), couch.LatestPick.Int64)
	assert.Equal(t, int64(2), couch.FinalPosition.Int64)

	geeks := rows[1]
	assert.Equal(t, "Gridiron Geeks", geeks.FantasyTeamName)
	assert.Equal(t, 1, geeks.RBPicks)
	assert.Equal(t, 1, geeks.WRPicks)
}

func TestPositionScarcity(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)

	rows, err := database.PositionScarcity(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	byPos := make(map[string]model.PositionScarcityRow, len(rows))
	for _, row := range rows {
		byPos[row.Position] = row
	}

	// RB picks at overall 1 and 2: avg 1.5, scarcity 100/1.5, both in
	// the first three rounds so urgency is 100%.
	rb := byPos["RB"]
	assert.Equal(t, 2, rb.PickCount)
	assert.InDelta(t, 1.5, rb.AvgPick, 0.001)
	assert.InDelta(t, 100.0/1.5, rb.ScarcityScore, 0.001)
	assert.InDelta(t, 100.0, rb.DraftUrgency, 0.001)

	// QB picked once in round 4: urgency 0%.
	qb := byPos["QB"]
	assert.InDelta(t, 0.0, qb.DraftUrgency, 0.001)

	// Highest scarcity first.
	assert.Equal(t, "RB", rows[0].Position)
}

func TestPositionDraftTrends(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)

	rows, err := database.PositionDraftTrends(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].RoundID)
	assert.Equal(t, "RB", rows[0].Position)
	assert.Equal(t, 2, rows[0].PickCount)
	assert.InDelta(t, 1.5, rows[0].AvgRoundPick, 0.001)
	assert.Equal(t, 1, rows[0].EarliestOverall)
	assert.Equal(t, 2, rows[0].LatestOverall)
}

func TestGamesByWeek(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)
	ctx := context.Background()

	games, err := database.GamesByWeek(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "Bears", games[0].HomeTeam.String)
	assert.Equal(t, "GB", games[0].AwayAbbrev.String)

	week := 2
	none, err := database.GamesByWeek(ctx, &week, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestDatabaseSummary(t *testing.T) {
	database := testDB(t)
	seedDraftData(t, database)

	summary, err := database.DatabaseSummary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, summary.TableCounts["players"])
	assert.Equal(t, 4, summary.TableCounts["draft_picks"])
	assert.Equal(t, 2, summary.TableCounts["fantasy_teams"])

	positions := make(map[string]int, len(summary.Positions))
	for _, p := range summary.Positions {
		positions[p.Position] = p.Count
	}
	assert.Equal(t, 2, positions["RB"])

	rounds := make(map[int]int, len(summary.Rounds))
	for _, r := range summary.Rounds {
		rounds[r.RoundID] = r.Picks
	}
	assert.Equal(t, 2, rounds[1])
	assert.Equal(t, 1, rounds[2])
}

func TestStorageErrorWrapsDriverFailure(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer mockDB.Close()

	database := &sqliteDB{conn: sqlx.NewDb(mockDB, "sqlmock")}

	driverErr := errors.New("disk I/O error")
	mock.ExpectBegin().WillReturnError(driverErr)

	err = database.UpsertNFLTeams(context.Background(), []model.NFLTeam{{ID: 1, Name: "Bears", Location: "Chicago", Abbreviation: "CHI"}})
	require.Error(t, err)

	var storageErr *StorageError
	require.True(t, errors.As(err, &storageErr))
	assert.Equal(t, "upsert nfl teams", storageErr.Op)
	assert.ErrorIs(t, err, driverErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}
