package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"rift-scout/internal/config"
	"rift-scout/internal/domain"
	"rift-scout/internal/riot"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(&config.ClientConfig{ProxyURL: srv.URL + "/"})
}

func TestProfile(t *testing.T) {
	var gotPath, gotRegion string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotRegion = r.URL.Query().Get("region")
		json.NewEncoder(w).Encode(domain.PlayerProfile{Account: riot.Account{Puuid: "p-1"}})
	})

	profile, err := c.Profile(context.Background(), "Faker", "KR1", "kr")
	require.NoError(t, err)
	assert.Equal(t, "p-1", profile.Account.Puuid)
	assert.Equal(t, "/api/player/Faker/KR1", gotPath)
	assert.Equal(t, "kr", gotRegion)
}

func TestErrorPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Not in game"}`))
	})

	_, err := c.Live(context.Background(), "p-1", "na1")
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Not in game")
}

func TestLobbyPostsBody(t *testing.T) {
	var gotMethod, gotBody string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		json.NewEncoder(w).Encode([]domain.LobbyResult{{Name: "A#1"}, {Name: "B", Error: "Missing #Tag"}})
	})

	results, err := c.Lobby(context.Background(), "A#1\nB", "euw1")
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "A#1\nB", gotBody)
	require.Len(t, results, 2)
	assert.Equal(t, "Missing #Tag", results[1].Error)
}

func TestAnalysisQuery(t *testing.T) {
	var query map[string][]string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		json.NewEncoder(w).Encode(domain.MatchAnalysis{MatchID: "NA1_1"})
	})

	a, err := c.Analysis(context.Background(), "NA1_1", "p-1", "na1")
	require.NoError(t, err)
	assert.Equal(t, "NA1_1", a.MatchID)
	assert.Equal(t, "p-1", query["puuid"][0])
	assert.Equal(t, "na1", query["region"][0])
}
