// Package ddragon reads static League data from Data Dragon.
package ddragon

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"rift-scout/internal/config"
	"rift-scout/internal/constants"

	"github.com/valyala/fasthttp"
)

type Champion struct {
	ID   string `json:"id"`
	Key  string `json:"key"`
	Name string `json:"name"`
}

type championFile struct {
	Data map[string]Champion `json:"data"`
}

type Client struct {
	baseURL string
	client  *fasthttp.Client

	mu        sync.Mutex
	version   string
	champions map[int64]Champion
	// first load failure, returned for the rest of the process
	loadErr error
}

func New(cfg *config.ClientConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.DDragonURL, "/"),
		client: &fasthttp.Client{
			ReadTimeout:  constants.ExternalAPITimeout,
			WriteTimeout: constants.ExternalAPITimeout,
		},
	}
}

// LatestVersion returns the newest patch listed in versions.json.
func (c *Client) LatestVersion(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.latestVersion(ctx)
}

func (c *Client) latestVersion(ctx context.Context) (string, error) {
	if c.version != "" {
		return c.version, nil
	}

	var versions []string
	if err := c.get(ctx, c.baseURL+"/api/versions.json", &versions); err != nil {
		return "", err
	}
	if len(versions) == 0 {
		return "", fmt.Errorf("versions.json is empty")
	}
	c.version = versions[0]
	return c.version, nil
}

// Champions maps numeric champion keys to champion data.
func (c *Client) Champions(ctx context.Context) (map[int64]Champion, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.champions != nil {
		return c.champions, nil
	}
	if c.loadErr != nil {
		return nil, c.loadErr
	}

	champions, err := c.loadChampions(ctx)
	if err != nil {
		c.loadErr = err
		return nil, err
	}
	c.champions = champions
	return champions, nil
}

func (c *Client) loadChampions(ctx context.Context) (map[int64]Champion, error) {
	version, err := c.latestVersion(ctx)
	if err != nil {
		return nil, err
	}

	var file championFile
	if err := c.get(ctx, fmt.Sprintf("%s/cdn/%s/data/en_US/champion.json", c.baseURL, version), &file); err != nil {
		return nil, err
	}

	champions := make(map[int64]Champion, len(file.Data))
	for _, champ := range file.Data {
		key, err := strconv.ParseInt(champ.Key, 10, 64)
		if err != nil {
			continue
		}
		champions[key] = champ
	}
	return champions, nil
}

// ChampionName falls back to the numeric id when static data is unavailable.
func (c *Client) ChampionName(ctx context.Context, id int64) string {
	champions, err := c.Champions(ctx)
	if err == nil {
		if champ, ok := champions[id]; ok {
			return champ.Name
		}
	}
	return "#" + strconv.FormatInt(id, 10)
}

func (c *Client) get(ctx context.Context, u string, out any) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)

	var err error
	if deadline, ok := ctx.Deadline(); ok {
		err = c.client.DoDeadline(req, resp, deadline)
	} else {
		err = c.client.Do(req, resp)
	}
	if err != nil {
		return fmt.Errorf("ddragon request %s: %w", u, err)
	}
	if code := resp.StatusCode(); code != fasthttp.StatusOK {
		return fmt.Errorf("ddragon request %s: status %d", u, code)
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", u, err)
	}
	return nil
}
