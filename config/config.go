package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"
)

const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10.15; rv:139.0) Gecko/20100101 Firefox/139.0"

// Config holds every tunable of the tool, loaded from the environment
// with sensible defaults. godotenv is loaded by main before this.
type Config struct {
	DatabasePath string

	LeagueID  string
	SWID      string
	ESPNS2    string
	UserAgent string

	TeamsFile        string
	PlayersCacheFile string
	CacheDir         string
	RankingsDir      string

	// ProjectionSeason is the historical season whose roster load
	// additionally joins pre-computed projection documents.
	ProjectionSeason int

	SupportedSeasons []int
	DefaultSeason    int

	RateLimitDelay time.Duration
	APITimeout     time.Duration

	Port int
}

func Load() (*Config, error) {
	c := &Config{
		DatabasePath:     getenv("DATABASE_PATH", "fantasy_football.db"),
		LeagueID:         getenv("ESPN_LEAGUE_ID", "730477"),
		SWID:             os.Getenv("ESPN_SWID"),
		ESPNS2:           os.Getenv("ESPN_S2"),
		UserAgent:        getenv("ESPN_USER_AGENT", defaultUserAgent),
		TeamsFile:        getenv("TEAMS_FILE", "teams.json"),
		PlayersCacheFile: getenv("PLAYERS_CACHE_FILE", "players_data.json"),
		CacheDir:         getenv("CACHE_DIR", "api_cache"),
		RankingsDir:      getenv("RANKINGS_DIR", "rankings"),
		SupportedSeasons: []int{2015, 2016, 2017, 2018, 2019, 2020, 2021, 2022, 2023, 2024},
	}

	var err error
	if c.ProjectionSeason, err = getenvInt("PROJECTION_SEASON", 2017); err != nil {
		return nil, err
	}
	if c.DefaultSeason, err = getenvInt("DEFAULT_SEASON", 2015); err != nil {
		return nil, err
	}
	if c.Port, err = getenvInt("PORT", 3000); err != nil {
		return nil, err
	}

	delay, err := getenvInt("API_RATE_LIMIT_DELAY_MS", 1000)
	if err != nil {
		return nil, err
	}
	c.RateLimitDelay = time.Duration(delay) * time.Millisecond

	timeout, err := getenvInt("API_TIMEOUT", 30)
	if err != nil {
		return nil, err
	}
	c.APITimeout = time.Duration(timeout) * time.Second

	if c.LeagueID == "" {
		return nil, fmt.Errorf("missing required configuration: ESPN_LEAGUE_ID")
	}
	if c.DatabasePath == "" {
		return nil, fmt.Errorf("missing required configuration: DATABASE_PATH")
	}

	return c, nil
}

func (c *Config) ValidSeason(season int) bool {
	return slices.Contains(c.SupportedSeasons, season)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("error parsing %s: %w", key, err)
	}
	return n, nil
}
