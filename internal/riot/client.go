package riot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"rift-scout/internal/config"
	"rift-scout/internal/region"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

type Client struct {
	apiKey      string
	baseURL     string
	client      *fasthttp.Client
	rateLimitMu sync.RWMutex
	rateLimit   RateLimitInfo
}

// RateLimitInfo mirrors the last rate-limit headers Riot sent back. It is
// informational only; the client never throttles on it.
type RateLimitInfo struct {
	AppLimit    string `json:"app_limit"`
	AppCount    string `json:"app_count"`
	MethodLimit string `json:"method_limit"`
	MethodCount string `json:"method_count"`

	// seconds, only set on 429
	RetryAfter int `json:"retry_after"`

	UpdatedAt time.Time `json:"updated_at"`
}

// StatusError is returned for any non-2xx upstream response.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("riot api error: %d %s", e.StatusCode, e.URL)
}

func IsNotFound(err error) bool {
	return StatusCode(err) == fasthttp.StatusNotFound
}

// StatusCode returns the upstream status carried by err, or 0.
func StatusCode(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode
	}
	return 0
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		apiKey:  cfg.RiotAPIKey,
		baseURL: cfg.RiotBaseURL,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         cfg.RiotTimeout,
			WriteTimeout:        cfg.RiotTimeout,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		rateLimit: RateLimitInfo{UpdatedAt: time.Now()},
	}
}

func (c *Client) RateLimit() RateLimitInfo {
	c.rateLimitMu.RLock()
	defer c.rateLimitMu.RUnlock()
	return c.rateLimit
}

func (c *Client) updateRateLimit(resp *fasthttp.Response) {
	c.rateLimitMu.Lock()
	defer c.rateLimitMu.Unlock()

	if v := string(resp.Header.Peek("X-App-Rate-Limit")); v != "" {
		c.rateLimit.AppLimit = v
	}
	if v := string(resp.Header.Peek("X-App-Rate-Limit-Count")); v != "" {
		c.rateLimit.AppCount = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit")); v != "" {
		c.rateLimit.MethodLimit = v
	}
	if v := string(resp.Header.Peek("X-Method-Rate-Limit-Count")); v != "" {
		c.rateLimit.MethodCount = v
	}
	c.rateLimit.RetryAfter = 0
	if v := string(resp.Header.Peek("Retry-After")); v != "" {
		if secs, err := strconv.Atoi(v); err == nil {
			c.rateLimit.RetryAfter = secs
		}
	}
	c.rateLimit.UpdatedAt = time.Now()
}

// ErrInvalidRouting is returned before any request is sent when the routing
// value is not a known platform or continental.
var ErrInvalidRouting = errors.New("invalid routing value")

// host builds the base URL for a platform ("kr") or continental ("asia") routing value.
func (c *Client) host(routing string) (string, error) {
	if !region.Routable(routing) {
		return "", fmt.Errorf("%w: %q", ErrInvalidRouting, routing)
	}
	return strings.ReplaceAll(c.baseURL, "{host}", strings.ToLower(routing)), nil
}

// withAPIKey appends the key after any existing query parameters.
func withAPIKey(rawURL, key string) string {
	sep := "?"
	if strings.Contains(rawURL, "?") {
		sep = "&"
	}
	return rawURL + sep + "api_key=" + url.QueryEscape(key)
}

func (c *Client) AccountByRiotID(ctx context.Context, continental, name, tag string) (*Account, error) {
	return doRequest[Account](ctx, c, continental, fmt.Sprintf("/riot/account/v1/accounts/by-riot-id/%s/%s", url.PathEscape(name), url.PathEscape(tag)))
}

func (c *Client) AccountByPuuid(ctx context.Context, continental, puuid string) (*Account, error) {
	return doRequest[Account](ctx, c, continental, fmt.Sprintf("/riot/account/v1/accounts/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) SummonerByPuuid(ctx context.Context, platform, puuid string) (*Summoner, error) {
	return doRequest[Summoner](ctx, c, platform, fmt.Sprintf("/lol/summoner/v4/summoners/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) SummonerByID(ctx context.Context, platform, summonerID string) (*Summoner, error) {
	return doRequest[Summoner](ctx, c, platform, fmt.Sprintf("/lol/summoner/v4/summoners/%s", url.PathEscape(summonerID)))
}

func (c *Client) TFTSummonerByPuuid(ctx context.Context, platform, puuid string) (*Summoner, error) {
	return doRequest[Summoner](ctx, c, platform, fmt.Sprintf("/tft/summoner/v1/summoners/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) ClashPlayersByPuuid(ctx context.Context, platform, puuid string) ([]ClashPlayer, error) {
	return doSlice[ClashPlayer](ctx, c, platform, fmt.Sprintf("/lol/clash/v1/players/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) LeagueEntriesBySummoner(ctx context.Context, platform, summonerID string) ([]LeagueEntry, error) {
	return doSlice[LeagueEntry](ctx, c, platform, fmt.Sprintf("/lol/league/v4/entries/by-summoner/%s", url.PathEscape(summonerID)))
}

func (c *Client) LeagueEntriesByPuuid(ctx context.Context, platform, puuid string) ([]LeagueEntry, error) {
	return doSlice[LeagueEntry](ctx, c, platform, fmt.Sprintf("/lol/league/v4/entries/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) MasteriesByPuuid(ctx context.Context, platform, puuid string) ([]ChampionMastery, error) {
	return doSlice[ChampionMastery](ctx, c, platform, fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s", url.PathEscape(puuid)))
}

func (c *Client) MasteryByChampion(ctx context.Context, platform, puuid string, championID int64) (*ChampionMastery, error) {
	return doRequest[ChampionMastery](ctx, c, platform, fmt.Sprintf("/lol/champion-mastery/v4/champion-masteries/by-puuid/%s/by-champion/%d", url.PathEscape(puuid), championID))
}

func (c *Client) MatchIDs(ctx context.Context, continental, puuid string, start, count int) ([]string, error) {
	return doSlice[string](ctx, c, continental, fmt.Sprintf("/lol/match/v5/matches/by-puuid/%s/ids?start=%d&count=%d", url.PathEscape(puuid), start, count))
}

func (c *Client) Match(ctx context.Context, continental, matchID string) (*Match, error) {
	return doRequest[Match](ctx, c, continental, fmt.Sprintf("/lol/match/v5/matches/%s", url.PathEscape(matchID)))
}

func (c *Client) Timeline(ctx context.Context, continental, matchID string) (*Timeline, error) {
	return doRequest[Timeline](ctx, c, continental, fmt.Sprintf("/lol/match/v5/matches/%s/timeline", url.PathEscape(matchID)))
}

func (c *Client) ActiveGame(ctx context.Context, platform, puuid string) (*ActiveGame, error) {
	return doRequest[ActiveGame](ctx, c, platform, fmt.Sprintf("/lol/spectator/v5/active-games/by-summoner/%s", url.PathEscape(puuid)))
}

func (c *Client) PlatformStatus(ctx context.Context, platform string) (*PlatformStatus, error) {
	return doRequest[PlatformStatus](ctx, c, platform, "/lol/status/v4/platform-data")
}

func (c *Client) ChampionRotation(ctx context.Context, platform string) (*ChampionRotation, error) {
	return doRequest[ChampionRotation](ctx, c, platform, "/lol/platform/v3/champion-rotations")
}

func (c *Client) ChallengerLeague(ctx context.Context, platform, queue string) (*LeagueList, error) {
	return doRequest[LeagueList](ctx, c, platform, fmt.Sprintf("/lol/league/v4/challengerleagues/by-queue/%s", url.PathEscape(queue)))
}

func doSlice[T any](ctx context.Context, client *Client, routing, path string) ([]T, error) {
	result, err := doRequest[[]T](ctx, client, routing, path)
	if err != nil {
		return nil, err
	}
	return *result, nil
}

func doRequest[T any](ctx context.Context, client *Client, routing, path string) (*T, error) {
	base, err := client.host(routing)
	if err != nil {
		return nil, err
	}
	u := base + path

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(withAPIKey(u, client.apiKey))
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			return nil, fmt.Errorf("riot request %s: %w", u, err)
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			return nil, fmt.Errorf("riot request %s: %w", u, err)
		}
	}

	client.updateRateLimit(resp)

	if code := resp.StatusCode(); code < 200 || code > 299 {
		zerolog.Ctx(ctx).Warn().Int("status", code).Str("url", u).Msg("riot api error")
		return nil, &StatusError{StatusCode: code, URL: u}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", u, err)
	}
	return &result, nil
}
