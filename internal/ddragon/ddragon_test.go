package ddragon

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"rift-scout/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChampions(t *testing.T) {
	var versionHits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/versions.json":
			versionHits.Add(1)
			w.Write([]byte(`["14.20.1","14.19.1"]`))
		case "/cdn/14.20.1/data/en_US/champion.json":
			w.Write([]byte(`{"data":{"Ahri":{"id":"Ahri","key":"103","name":"Ahri"},"MonkeyKing":{"id":"MonkeyKing","key":"62","name":"Wukong"}}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := New(&config.ClientConfig{DDragonURL: srv.URL})
	ctx := context.Background()

	version, err := c.LatestVersion(ctx)
	require.NoError(t, err)
	assert.Equal(t, "14.20.1", version)

	champions, err := c.Champions(ctx)
	require.NoError(t, err)
	assert.Len(t, champions, 2)
	assert.Equal(t, "Wukong", c.ChampionName(ctx, 62))
	assert.Equal(t, "#999", c.ChampionName(ctx, 999))
	assert.Equal(t, int32(1), versionHits.Load())
}

func TestChampionNameDegradesToID(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := New(&config.ClientConfig{DDragonURL: srv.URL})
	for _, id := range []int64{103, 62, 1} {
		assert.Equal(t, fmt.Sprintf("#%d", id), c.ChampionName(context.Background(), id))
	}

	_, err := c.Champions(context.Background())
	assert.Error(t, err)
	assert.Equal(t, int32(1), hits.Load(), "a failed load is not retried")
}
