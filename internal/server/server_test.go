package server

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/StudyGarden_Go/internal/analytics"
	"github.com/osse101/StudyGarden_Go/internal/clock"
	"github.com/osse101/StudyGarden_Go/internal/event"
	"github.com/osse101/StudyGarden_Go/internal/garden"
	"github.com/osse101/StudyGarden_Go/internal/shop"
	"github.com/osse101/StudyGarden_Go/internal/state"
	"github.com/osse101/StudyGarden_Go/internal/streak"
)

const testAPIKey = "test-key"

func newTestServer(t *testing.T) http.Handler {
	t.Helper()

	m := state.NewManager(context.Background(), state.NewMemoryStore())
	clk := clock.NewSimulatedClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	bus := event.NewMemoryBus()

	store, err := analytics.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	analyticsSvc := analytics.NewService(store)
	analyticsSvc.Subscribe(bus)

	srv := NewServer(0, testAPIKey,
		streak.NewService(m, clk, bus),
		garden.NewService(m, clk, bus),
		shop.NewService(m, clk, bus),
		analyticsSvc,
	)
	return srv.httpServer.Handler
}

func doRequest(h http.Handler, method, path, apiKey, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	if apiKey != "" {
		req.Header.Set(HeaderAPIKey, apiKey)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestAuth(t *testing.T) {
	h := newTestServer(t)

	tests := []struct {
		name   string
		method string
		path   string
		apiKey string
		want   int
	}{
		{name: "healthz is public", method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{name: "version is public", method: http.MethodGet, path: "/version", want: http.StatusOK},
		{name: "metrics is public", method: http.MethodGet, path: "/metrics", want: http.StatusOK},
		{name: "api requires key", method: http.MethodGet, path: "/api/v1/garden/", apiKey: "", want: http.StatusUnauthorized},
		{name: "wrong key rejected", method: http.MethodGet, path: "/api/v1/garden/", apiKey: "wrong", want: http.StatusUnauthorized},
		{name: "correct key accepted", method: http.MethodGet, path: "/api/v1/garden/", apiKey: testAPIKey, want: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(h, tt.method, tt.path, tt.apiKey, "")
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestRoutes_EndToEnd(t *testing.T) {
	h := newTestServer(t)

	rec := doRequest(h, http.MethodPost, "/api/v1/review", testAPIKey, `{"outcome":"correct"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(h, http.MethodPost, "/api/v1/garden/place", testAPIKey, `{"kind":"plant","col":1,"row":1}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(h, http.MethodGet, "/api/v1/garden/", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"items"`)

	rec = doRequest(h, http.MethodGet, "/api/v1/analytics/summary", testAPIKey, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"reviews":1,"correct":1,"coins_granted":1}`, rec.Body.String())
}

func TestIdempotencyMiddleware(t *testing.T) {
	h := newTestServer(t)

	post := func(requestID string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/review", bytes.NewBufferString(`{"outcome":"correct"}`))
		req.Header.Set(HeaderAPIKey, testAPIKey)
		if requestID != "" {
			req.Header.Set(HeaderRequestID, requestID)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	// First submission lands, the replay is suppressed.
	assert.Equal(t, http.StatusOK, post("action-1").Code)
	assert.Equal(t, http.StatusConflict, post("action-1").Code)

	// A fresh id and an absent header both pass.
	assert.Equal(t, http.StatusOK, post("action-2").Code)
	assert.Equal(t, http.StatusOK, post("").Code)
}
