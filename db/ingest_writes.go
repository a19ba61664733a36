package db

import (
	"context"

	"github.com/chasen-bettinger/fantasy-analysis/model"
)

// Write operations used by the ingestion pipeline. Most tables use
// INSERT OR IGNORE so re-running ingestion for a season is safe; the
// player upsert and the score/rank updates are idempotent overwrites.

func (db *sqliteDB) UpsertNFLTeams(ctx context.Context, teams []model.NFLTeam) error {
	const query = `INSERT OR IGNORE INTO nfl_teams
		(id, name, location, abbreviation, bye_week)
		VALUES (:id, :name, :location, :abbreviation, :byeWeek)`

	args := make([]any, 0, len(teams))
	for _, t := range teams {
		args = append(args, map[string]any{
			"id":           t.ID,
			"name":         t.Name,
			"location":     t.Location,
			"abbreviation": t.Abbreviation,
			"byeWeek":      t.ByeWeek,
		})
	}
	return db.execMany(ctx, "upsert nfl teams", query, args)
}

func (db *sqliteDB) InsertGames(ctx context.Context, games []model.Game) error {
	const query = `INSERT OR IGNORE INTO games
		(season, espn_game_id, home_team_id, away_team_id, game_date,
		 scoring_period_id, start_time_tbd, stats_official, valid_for_locking)
		VALUES (:season, :espnGameID, :homeTeamID, :awayTeamID, :gameDate,
		 :scoringPeriodID, :startTimeTBD, :statsOfficial, :validForLocking)`

	args := make([]any, 0, len(games))
	for _, g := range games {
		args = append(args, map[string]any{
			"season":          g.Season,
			"espnGameID":      g.ESPNGameID,
			"homeTeamID":      g.HomeTeamID,
			"awayTeamID":      g.AwayTeamID,
			"gameDate":        g.GameDate,
			"scoringPeriodID": g.ScoringPeriodID,
			"startTimeTBD":    g.StartTimeTBD,
			"statsOfficial":   g.StatsOfficial,
			"validForLocking": g.ValidForLocking,
		})
	}
	return db.execMany(ctx, "insert games", query, args)
}

func (db *sqliteDB) UpsertPlayers(ctx context.Context, players []model.Player) error {
	const query = `INSERT OR REPLACE INTO players
		(season, espn_player_id, name, position, nfl_team_id, eligibility_status, is_active)
		VALUES (:season, :espnPlayerID, :name, :position, :nflTeamID, :status, :active)`

	args := make([]any, 0, len(players))
	for _, p := range players {
		args = append(args, map[string]any{
			"season":       p.Season,
			"espnPlayerID": p.ESPNPlayerID,
			"name":         p.Name,
			"position":     string(p.Position),
			"nflTeamID":    p.NFLTeamID,
			"status":       p.EligibilityStatus,
			"active":       p.Active,
		})
	}
	return db.execMany(ctx, "upsert players", query, args)
}

func (db *sqliteDB) UpsertFantasyTeams(ctx context.Context, teams []model.FantasyTeam) error {
	const query = `INSERT OR IGNORE INTO fantasy_teams
		(season, espn_team_id, name, wins, losses, ties, points_for, points_against, final_position)
		VALUES (:season, :espnTeamID, :name, :wins, :losses, :ties, :pointsFor, :pointsAgainst, :finalPosition)`

	args := make([]any, 0, len(teams))
	for _, t := range teams {
		args = append(args, map[string]any{
			"season":        t.Season,
			"espnTeamID":    t.ESPNTeamID,
			"name":          t.Name,
			"wins":          t.Wins,
			"losses":        t.Losses,
			"ties":          t.Ties,
			"pointsFor":     t.PointsFor,
			"pointsAgainst": t.PointsAgainst,
			"finalPosition": t.FinalPosition,
		})
	}
	return db.execMany(ctx, "upsert fantasy teams", query, args)
}

func (db *sqliteDB) InsertDraftPicks(ctx context.Context, picks []model.DraftPick) error {
	const query = `INSERT OR IGNORE INTO draft_picks
		(season, espn_pick_id, player_id, fantasy_team_id, round_id, round_pick_number,
		 overall_pick_number, lineup_slot_id, is_keeper, auto_draft_type_id)
		VALUES (:season, :espnPickID, :playerID, :fantasyTeamID, :roundID, :roundPickNumber,
		 :overallPickNumber, :lineupSlotID, :keeper, :autoDraftTypeID)`

	args := make([]any, 0, len(picks))
	for _, p := range picks {
		args = append(args, map[string]any{
			"season":            p.Season,
			"espnPickID":        p.ESPNPickID,
			"playerID":          p.PlayerID,
			"fantasyTeamID":     p.FantasyTeamID,
			"roundID":           p.RoundID,
			"roundPickNumber":   p.RoundPickNumber,
			"overallPickNumber": p.OverallPickNumber,
			"lineupSlotID":      p.LineupSlotID,
			"keeper":            p.Keeper,
			"autoDraftTypeID":   p.AutoDraftTypeID,
		})
	}
	return db.execMany(ctx, "insert draft picks", query, args)
}

func (db *sqliteDB) UpsertRosterEntry(ctx context.Context, entry model.RosterEntry) error {
	const query = `INSERT OR IGNORE INTO rosters
		(season, team_id, player_id, lineup_slot_id)
		VALUES (:season, :teamID, :playerID, :lineupSlotID)`

	_, err := db.conn.NamedExecContext(ctx, query, map[string]any{
		"season":       entry.Season,
		"teamID":       entry.FantasyTeamID,
		"playerID":     entry.PlayerID,
		"lineupSlotID": entry.LineupSlotID,
	})
	return storageErr("upsert roster entry", err)
}

// UpdatePlayerScore overwrites a player's fantasy score. A no-op when
// no player row exists for (season, espnPlayerID).
func (db *sqliteDB) UpdatePlayerScore(ctx context.Context, season int, espnPlayerID int64, score float64) error {
	const query = `UPDATE players SET fantasy_score=:score
		WHERE season=:season AND espn_player_id=:espnPlayerID`

	_, err := db.conn.NamedExecContext(ctx, query, map[string]any{
		"score":        score,
		"season":       season,
		"espnPlayerID": espnPlayerID,
	})
	return storageErr("update player score", err)
}

// UpdateProjectedRanks joins a projection document entry to a player
// by exact display name. A no-op when no name matches.
func (db *sqliteDB) UpdateProjectedRanks(ctx context.Context, season int, name string, positionRank, overallRank int) error {
	const query = `UPDATE players
		SET projected_position_rank=:posRank, projected_overall_rank=:overallRank
		WHERE season=:season AND name=:name`

	_, err := db.conn.NamedExecContext(ctx, query, map[string]any{
		"posRank":     positionRank,
		"overallRank": overallRank,
		"season":      season,
		"name":        name,
	})
	return storageErr("update projected ranks", err)
}

func (db *sqliteDB) PlayerIDsBySeason(ctx context.Context, season int) (map[int64]int64, error) {
	return db.idMap(ctx, "player id map",
		"SELECT espn_player_id, id FROM players WHERE season=?", season)
}

func (db *sqliteDB) FantasyTeamIDsBySeason(ctx context.Context, season int) (map[int64]int64, error) {
	return db.idMap(ctx, "fantasy team id map",
		"SELECT espn_team_id, id FROM fantasy_teams WHERE season=?", season)
}

func (db *sqliteDB) idMap(ctx context.Context, op, query string, season int) (map[int64]int64, error) {
	rows, err := db.conn.QueryContext(ctx, query, season)
	if err != nil {
		return nil, storageErr(op, err)
	}
	defer rows.Close()

	result := make(map[int64]int64)
	for rows.Next() {
		var external, internal int64
		if err := rows.Scan(&external, &internal); err != nil {
			return nil, storageErr(op, err)
		}
		result[external] = internal
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr(op, err)
	}
	return result, nil
}

func (db *sqliteDB) PlayerCount(ctx context.Context, season int) (int, error) {
	var count int
	err := db.conn.GetContext(ctx, &count, "SELECT COUNT(*) FROM players WHERE season=?", season)
	if err != nil {
		return 0, storageErr("player count", err)
	}
	return count, nil
}

// RankedPlayers returns every player eligible for ranking, already in
// rank order: score descending, name ascending on ties.
func (db *sqliteDB) RankedPlayers(ctx context.Context, season int) ([]model.RankedPlayer, error) {
	const query = `SELECT id, name, position, fantasy_score FROM players
		WHERE season=? AND fantasy_score > 0
		ORDER BY fantasy_score DESC, name ASC`

	rows, err := db.conn.QueryContext(ctx, query, season)
	if err != nil {
		return nil, storageErr("ranked players", err)
	}
	defer rows.Close()

	players := make([]model.RankedPlayer, 0, 64)
	for rows.Next() {
		var p model.RankedPlayer
		var pos string
		if err := rows.Scan(&p.ID, &p.Name, &pos, &p.FantasyScore); err != nil {
			return nil, storageErr("ranked players", err)
		}
		p.Position = model.ParsePosition(pos)
		players = append(players, p)
	}
	if err := rows.Err(); err != nil {
		return nil, storageErr("ranked players", err)
	}
	return players, nil
}

func (db *sqliteDB) ClearRanks(ctx context.Context, season int) error {
	_, err := db.conn.ExecContext(ctx,
		"UPDATE players SET position_rank=NULL, overall_rank=NULL WHERE season=?", season)
	return storageErr("clear ranks", err)
}

func (db *sqliteDB) WriteRanks(ctx context.Context, overall map[int64]int, position map[int64]int) error {
	const op = "write ranks"

	tx, err := db.conn.BeginTxx(ctx, nil)
	if err != nil {
		return storageErr(op, err)
	}
	defer tx.Rollback()

	for id, rank := range overall {
		if _, err := tx.ExecContext(ctx, "UPDATE players SET overall_rank=? WHERE id=?", rank, id); err != nil {
			return storageErr(op, err)
		}
	}
	for id, rank := range position {
		if _, err := tx.ExecContext(ctx, "UPDATE players SET position_rank=? WHERE id=?", rank, id); err != nil {
			return storageErr(op, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return storageErr(op, err)
	}
	return nil
}
