package db

// schema is executed on every Open. Every statement is idempotent so
// opening an existing database is safe. Foreign keys stay unenforced:
// the ingestion pipeline resolves references itself and prefers
// dropping an orphaned record over aborting a run.
const schema = `
CREATE TABLE IF NOT EXISTS nfl_teams (
    id INTEGER PRIMARY KEY,
    name TEXT NOT NULL,
    location TEXT NOT NULL,
    abbreviation TEXT NOT NULL UNIQUE,
    bye_week INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS games (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    espn_game_id INTEGER,
    home_team_id INTEGER NOT NULL,
    away_team_id INTEGER NOT NULL,
    game_date INTEGER NOT NULL,
    scoring_period_id INTEGER NOT NULL,
    start_time_tbd BOOLEAN DEFAULT FALSE,
    stats_official BOOLEAN DEFAULT FALSE,
    valid_for_locking BOOLEAN DEFAULT TRUE,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (home_team_id) REFERENCES nfl_teams (id),
    FOREIGN KEY (away_team_id) REFERENCES nfl_teams (id),
    UNIQUE(season, espn_game_id)
);

CREATE TABLE IF NOT EXISTS fantasy_teams (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    espn_team_id INTEGER NOT NULL,
    name TEXT,
    wins INTEGER,
    losses INTEGER,
    ties INTEGER,
    points_for REAL,
    points_against REAL,
    final_position INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    UNIQUE(season, espn_team_id)
);

CREATE TABLE IF NOT EXISTS players (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    espn_player_id INTEGER NOT NULL,
    name TEXT NOT NULL,
    position TEXT,
    nfl_team_id INTEGER,
    eligibility_status TEXT,
    is_active BOOLEAN DEFAULT TRUE,
    fantasy_score REAL DEFAULT 0.0,
    position_rank INTEGER,
    overall_rank INTEGER,
    projected_position_rank INTEGER,
    projected_overall_rank INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (nfl_team_id) REFERENCES nfl_teams (id),
    UNIQUE(season, espn_player_id)
);

CREATE TABLE IF NOT EXISTS draft_picks (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    espn_pick_id INTEGER,
    player_id INTEGER,
    fantasy_team_id INTEGER,
    round_id INTEGER NOT NULL,
    round_pick_number INTEGER NOT NULL,
    overall_pick_number INTEGER NOT NULL,
    lineup_slot_id INTEGER,
    is_keeper BOOLEAN DEFAULT FALSE,
    auto_draft_type_id INTEGER DEFAULT 0,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    FOREIGN KEY (player_id) REFERENCES players (id),
    FOREIGN KEY (fantasy_team_id) REFERENCES fantasy_teams (id),
    UNIQUE(season, espn_pick_id)
);

CREATE TABLE IF NOT EXISTS rosters (
    id INTEGER PRIMARY KEY,
    season INTEGER NOT NULL,
    team_id INTEGER,
    player_id INTEGER,
    lineup_slot_id INTEGER,
    FOREIGN KEY (team_id) REFERENCES fantasy_teams (id),
    FOREIGN KEY (player_id) REFERENCES players (id),
    UNIQUE(season, team_id, player_id, lineup_slot_id)
);

CREATE INDEX IF NOT EXISTS idx_games_season ON games (season);
CREATE INDEX IF NOT EXISTS idx_games_teams ON games (home_team_id, away_team_id);
CREATE INDEX IF NOT EXISTS idx_games_date ON games (game_date);
CREATE INDEX IF NOT EXISTS idx_fantasy_teams_season ON fantasy_teams (season);
CREATE INDEX IF NOT EXISTS idx_fantasy_teams_season_espn ON fantasy_teams (season, espn_team_id);
CREATE INDEX IF NOT EXISTS idx_rosters_season ON rosters (season);
CREATE INDEX IF NOT EXISTS idx_players_season ON players (season);
CREATE INDEX IF NOT EXISTS idx_players_team ON players (nfl_team_id);
CREATE INDEX IF NOT EXISTS idx_players_position ON players (position);
CREATE INDEX IF NOT EXISTS idx_draft_picks_season ON draft_picks (season);
CREATE INDEX IF NOT EXISTS idx_draft_picks_player ON draft_picks (player_id);
CREATE INDEX IF NOT EXISTS idx_draft_picks_team ON draft_picks (fantasy_team_id);
CREATE INDEX IF NOT EXISTS idx_draft_picks_round ON draft_picks (round_id, round_pick_number);
`

// Tables lists every table in the order status reports show them.
var Tables = []string{"nfl_teams", "games", "fantasy_teams", "players", "draft_picks", "rosters"}
