package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grapnel-games/tablet-tycoon/internal/attraction"
	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/conversion"
	"github.com/grapnel-games/tablet-tycoon/internal/event"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/handler"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
	"github.com/grapnel-games/tablet-tycoon/internal/sse"
)

const testAPIKey = "test-admin-key"

func newTestServer(t *testing.T) *Server {
	t.Helper()
	handler.InitValidator()

	now := func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }
	rnd := func() float64 { return 0.5 }

	cat := catalog.New()
	bus := event.NewMemoryBus()
	led := ledger.New(cat, bus, now)
	roller := roll.New(cat, rnd, now)
	boosts := gameevent.NewManager(bus, rnd, now)
	eng := conversion.NewEngine(cat, led, roller, boosts, bus, nil, now)
	hub := sse.NewHub()

	deps := Deps{
		Catalog:  cat,
		Ledger:   led,
		Roller:   roller,
		Boosts:   boosts,
		Convert:  eng,
		Truck:    attraction.NewTruck(cat, led, now),
		Wheel:    attraction.NewWheel(cat, led, roller, boosts, rnd, now),
		Showroom: attraction.NewShowroom(led, roller, now),
		Hub:      hub,
	}
	return NewServer(0, testAPIKey, nil, deps)
}

func TestHealthzIsPublic(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGameRoutesNeedNoKey(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/api/v1/state", "/api/v1/blocks", "/api/v1/rebirth", "/api/v1/events"} {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code, "path %s", path)
	}
}

func TestAdminRoutesRequireAPIKey(t *testing.T) {
	srv := newTestServer(t)

	t.Run("missing key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/chaos", nil)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong key rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/chaos", nil)
		req.Header.Set(HeaderAPIKey, "wrong-key")
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid key accepted", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/events/chaos", nil)
		req.Header.Set(HeaderAPIKey, testAPIKey)
		rec := httptest.NewRecorder()
		srv.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestSecurityHeadersPresent(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	assert.Equal(t, HeaderValueNoSniff, rec.Header().Get(HeaderContentType))
	assert.Equal(t, HeaderValueSameOrigin, rec.Header().Get(HeaderFrameOptions))
	assert.Equal(t, HeaderValueXSSBlock, rec.Header().Get(HeaderXSSProtection))
	assert.Equal(t, HeaderValueReferrerStrictOrigin, rec.Header().Get(HeaderReferrerPolicy))
}

func TestVersionEndpoint(t *testing.T) {
	srv := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
}
