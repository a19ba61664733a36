package espn

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
)

const DefaultURL = "https://lm-api-reads.fantasy.espn.com"

const maxBackoff = 30 * time.Second

// FetchError is the single failure mode of the external data source:
// either retries were exhausted or the API answered with a
// non-retryable client error.
type FetchError struct {
	Endpoint string
	Season   int
	Attempts int
	Err      error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("fetch %s for season %d failed after %d attempt(s): %v",
		e.Endpoint, e.Season, e.Attempts, e.Err)
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

type Client interface {
	DraftHistory(ctx context.Context, season int) (*LeagueSnapshot, error)
	Players(ctx context.Context, season int) ([]Player, error)
	Rosters(ctx context.Context, season int) (*LeagueSnapshot, error)
}

type Options struct {
	URL       string
	LeagueID  string
	SWID      string // authentication cookie
	ESPNS2    string // authentication cookie
	UserAgent string
	Timeout   time.Duration

	// Minimum interval between any two outbound requests, regardless
	// of call site.
	MinRequestInterval time.Duration
	MaxRetries         int

	// CacheDir enables the on-disk response cache when non-empty.
	// BypassCache skips reads but still writes fresh responses.
	CacheDir    string
	BypassCache bool
}

func New(opts Options, clock clock.Clock) (Client, error) {
	if opts.LeagueID == "" {
		return nil, errors.New("espn: league id is required")
	}
	if opts.URL == "" {
		opts.URL = DefaultURL
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}

	return &client{
		opts:  opts,
		clock: clock,
		httpClient: &http.Client{
			Timeout: opts.Timeout,
		},
	}, nil
}

type client struct {
	opts       Options
	clock      clock.Clock
	httpClient *http.Client

	mu          sync.Mutex
	lastRequest time.Time
}

func (c *client) DraftHistory(ctx context.Context, season int) (*LeagueSnapshot, error) {
	url := fmt.Sprintf("%s/apis/v3/games/ffl/leagueHistory/%s"+
		"?view=mDraftDetail&view=mLiveScoring&view=mMatchupScore"+
		"&view=mPendingTransactions&view=mPositionalRatings&view=mSettings"+
		"&view=mTeam&view=modular&view=mNav&seasonId=%d",
		c.opts.URL, c.opts.LeagueID, season)

	body, err := c.fetch(ctx, "draft_history", season, url, `{"players":{}}`)
	if err != nil {
		return nil, err
	}
	return decodeLeagueHistory("draft_history", season, body)
}

func (c *client) Players(ctx context.Context, season int) ([]Player, error) {
	url := fmt.Sprintf("%s/apis/v3/games/ffl/seasons/%d/players?scoringPeriodId=0&view=players_wl",
		c.opts.URL, season)

	body, err := c.fetch(ctx, "players", season, url, `{"filterActive":null}`)
	if err != nil {
		return nil, err
	}

	var players []Player
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, &FetchError{Endpoint: "players", Season: season, Attempts: 1,
			Err: fmt.Errorf("error parsing players response: %w", err)}
	}
	return players, nil
}

func (c *client) Rosters(ctx context.Context, season int) (*LeagueSnapshot, error) {
	var teamIDs strings.Builder
	for id := 1; id <= 12; id++ {
		fmt.Fprintf(&teamIDs, "rosterForTeamId=%d&", id)
	}
	url := fmt.Sprintf("%s/apis/v3/games/ffl/leagueHistory/%s?%sview=mRoster&seasonId=%d",
		c.opts.URL, c.opts.LeagueID, teamIDs.String(), season)

	body, err := c.fetch(ctx, "rosters", season, url, `{"players":{}}`)
	if err != nil {
		return nil, err
	}
	return decodeLeagueHistory("rosters", season, body)
}

func decodeLeagueHistory(endpoint string, season int, body []byte) (*LeagueSnapshot, error) {
	var snapshots []LeagueSnapshot
	if err := json.Unmarshal(body, &snapshots); err != nil {
		return nil, fmt.Errorf("error parsing %s response: %w", endpoint, err)
	}
	if len(snapshots) == 0 {
		return nil, fmt.Errorf("%s response for season %d holds no league snapshot", endpoint, season)
	}
	return &snapshots[0], nil
}

// fetch serves the response from the on-disk cache when possible,
// otherwise performs a throttled, retried GET.
func (c *client) fetch(ctx context.Context, endpoint string, season int, url, fantasyFilter string) ([]byte, error) {
	cache := newResponseCache(c.opts.CacheDir)

	if !c.opts.BypassCache {
		if body, ok := cache.get(endpoint, season); ok {
			return body, nil
		}
	}

	body, err := c.get(ctx, endpoint, season, url, fantasyFilter)
	if err != nil {
		return nil, err
	}

	cache.put(endpoint, season, body)
	return body, nil
}

func (c *client) get(ctx context.Context, endpoint string, season int, url, fantasyFilter string) ([]byte, error) {
	var lastErr error

	attempts := 0
	for attempt := 0; attempt <= c.opts.MaxRetries; attempt++ {
		if attempt > 0 {
			wait := min(time.Duration(1<<attempt)*time.Second, maxBackoff)
			c.clock.Sleep(wait)
		}
		attempts++

		c.throttle()

		body, retryable, err := c.doRequest(ctx, url, fantasyFilter)
		if err == nil {
			return body, nil
		}
		if !retryable {
			return nil, &FetchError{Endpoint: endpoint, Season: season, Attempts: attempts, Err: err}
		}
		lastErr = err
	}

	return nil, &FetchError{Endpoint: endpoint, Season: season, Attempts: attempts, Err: lastErr}
}

// throttle enforces the minimum interval between outbound calls using
// the client's last-request timestamp.
func (c *client) throttle() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.opts.MinRequestInterval > 0 && !c.lastRequest.IsZero() {
		elapsed := c.clock.Now().Sub(c.lastRequest)
		if elapsed < c.opts.MinRequestInterval {
			c.clock.Sleep(c.opts.MinRequestInterval - elapsed)
		}
	}
	c.lastRequest = c.clock.Now()
}

func (c *client) doRequest(ctx context.Context, url, fantasyFilter string) (body []byte, retryable bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, false, fmt.Errorf("error creating http request: %w", err)
	}
	c.setHeaders(req, fantasyFilter)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, true, fmt.Errorf("error sending http request: %w", err)
	}
	defer resp.Body.Close()

	// Client errors are not retried; everything else non-2xx is.
	if resp.StatusCode >= 400 && resp.StatusCode < 500 {
		return nil, false, fmt.Errorf("client error %d", resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, true, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("error reading response body: %w", err)
	}
	return b, false, nil
}

func (c *client) setHeaders(req *http.Request, fantasyFilter string) {
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("X-Fantasy-Source", "kona")
	req.Header.Set("X-Fantasy-Filter", fantasyFilter)
	req.Header.Set("X-Fantasy-Platform", "kona-PROD-871ba974fde0504c7ee3018049a715c0af70b886")
	req.Header.Set("Origin", "https://fantasy.espn.com")
	req.Header.Set("Referer", "https://fantasy.espn.com/")
	req.Header.Set("Cache-Control", "no-cache")

	cookies := make([]string, 0, 2)
	if c.opts.SWID != "" {
		cookies = append(cookies, fmt.Sprintf("SWID=%s", c.opts.SWID))
	}
	if c.opts.ESPNS2 != "" {
		cookies = append(cookies, fmt.Sprintf("espn_s2=%s", c.opts.ESPNS2))
	}
	if len(cookies) > 0 {
		req.Header.Set("Cookie", strings.Join(cookies, "; "))
	}
}
