package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"rift-scout/internal/config"
	"rift-scout/internal/constants"
	"rift-scout/internal/domain"
	"rift-scout/internal/riot"

	"github.com/valyala/fasthttp"
)

// Error carries the proxy's {"error": ...} message and status.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("proxy returned %d", e.StatusCode)
	}
	return fmt.Sprintf("%s (%d)", e.Message, e.StatusCode)
}

func IsNotFound(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.StatusCode == fasthttp.StatusNotFound
}

// Client talks to a running rift-scout proxy.
type Client struct {
	baseURL string
	client  *fasthttp.Client
}

func New(cfg *config.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.ProxyURL, "/"),
		client: &fasthttp.Client{
			ReadTimeout:         constants.RequestTimeout,
			WriteTimeout:        constants.RequestTimeout,
			MaxIdleConnDuration: 30 * time.Second,
		},
	}
}

func (c *Client) Profile(ctx context.Context, name, tag, platform string) (*domain.PlayerProfile, error) {
	path := fmt.Sprintf("/api/player/%s/%s", url.PathEscape(name), url.PathEscape(tag))
	return do[domain.PlayerProfile](ctx, c, fasthttp.MethodGet, c.endpoint(path, platform), nil)
}

func (c *Client) Matches(ctx context.Context, puuid, platform string) ([]riot.Match, error) {
	matches, err := do[[]riot.Match](ctx, c, fasthttp.MethodGet, c.endpoint("/api/matches/"+puuid, platform), nil)
	if err != nil {
		return nil, err
	}
	return *matches, nil
}

func (c *Client) Summary(ctx context.Context, puuid, platform string) (*domain.MatchSummary, error) {
	return do[domain.MatchSummary](ctx, c, fasthttp.MethodGet, c.endpoint("/api/matches/"+puuid+"/summary", platform), nil)
}

func (c *Client) Live(ctx context.Context, puuid, platform string) (*domain.LiveGame, error) {
	return do[domain.LiveGame](ctx, c, fasthttp.MethodGet, c.endpoint("/api/live/"+puuid, platform), nil)
}

func (c *Client) Status(ctx context.Context, platform string) (*domain.PlatformStatus, error) {
	return do[domain.PlatformStatus](ctx, c, fasthttp.MethodGet, c.endpoint("/api/status", platform), nil)
}

func (c *Client) Leaderboard(ctx context.Context, platform string) ([]domain.LeaderboardEntry, error) {
	entries, err := do[[]domain.LeaderboardEntry](ctx, c, fasthttp.MethodGet, c.endpoint("/api/leaderboard", platform), nil)
	if err != nil {
		return nil, err
	}
	return *entries, nil
}

func (c *Client) Analysis(ctx context.Context, matchID, puuid, platform string) (*domain.MatchAnalysis, error) {
	u := c.endpoint("/api/match/"+matchID+"/analysis", platform) + "&puuid=" + url.QueryEscape(puuid)
	return do[domain.MatchAnalysis](ctx, c, fasthttp.MethodGet, u, nil)
}

func (c *Client) Lobby(ctx context.Context, text, platform string) ([]domain.LobbyResult, error) {
	results, err := do[[]domain.LobbyResult](ctx, c, fasthttp.MethodPost, c.endpoint("/api/lobby", platform), []byte(text))
	if err != nil {
		return nil, err
	}
	return *results, nil
}

func (c *Client) endpoint(path, platform string) string {
	return c.baseURL + path + "?region=" + url.QueryEscape(platform)
}

func do[T any](ctx context.Context, c *Client, method, u string, body []byte) (*T, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(method)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.SetContentType("text/plain; charset=utf-8")
		req.SetBody(body)
	}

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("proxy request %s: %w", u, err)
	}

	if code := resp.StatusCode(); code < 200 || code > 299 {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.Unmarshal(resp.Body(), &payload)
		return nil, &Error{StatusCode: code, Message: payload.Error}
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, fmt.Errorf("decode %s: %w", u, err)
	}
	return &result, nil
}
