package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	var seen string
	var ctxLogger *zerolog.Logger
	handler := RequestID(zerolog.Nop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
		ctxLogger = zerolog.Ctx(r.Context())
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/status", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
		assert.NotNil(t, ctxLogger)
	})

	t.Run("propagates incoming uuid", func(t *testing.T) {
		incoming := "0b3d6c1e-6f1a-4a4e-9d3c-2f8a1b7c9e10"
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.Header.Set("X-Request-ID", incoming)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, incoming, seen)
		assert.Equal(t, incoming, rec.Header().Get("X-Request-ID"))
	})

	t.Run("replaces non-uuid id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
		req.Header.Set("X-Request-ID", "abc-123\nlevel=error forged")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.NotContains(t, seen, "forged")
		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get("X-Request-ID"))
	})
}

func TestRequestIDLogsOutcome(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		status   int
		level    string
		platform string
	}{
		{"server error", "/api/match?region=KR", http.StatusBadGateway, "error", "kr"},
		{"client error", "/api/match", http.StatusNotFound, "warn", "na1"},
		{"success", "/api/status?region=evil.com", http.StatusOK, "info", "na1"},
		{"liveness", "/", http.StatusOK, "debug", "na1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
			handler := RequestID(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("body"))
			}))

			handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			require.Len(t, lines, 2)

			var entry map[string]any
			require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
			assert.Equal(t, "request completed", entry["message"])
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.platform, entry["platform"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, 4, entry["bytes"])
		})
	}
}
