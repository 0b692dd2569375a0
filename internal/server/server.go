package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/grapnel-games/tablet-tycoon/internal/attraction"
	"github.com/grapnel-games/tablet-tycoon/internal/catalog"
	"github.com/grapnel-games/tablet-tycoon/internal/conversion"
	"github.com/grapnel-games/tablet-tycoon/internal/gameevent"
	"github.com/grapnel-games/tablet-tycoon/internal/handler"
	"github.com/grapnel-games/tablet-tycoon/internal/ledger"
	"github.com/grapnel-games/tablet-tycoon/internal/logger"
	"github.com/grapnel-games/tablet-tycoon/internal/metrics"
	"github.com/grapnel-games/tablet-tycoon/internal/roll"
	"github.com/grapnel-games/tablet-tycoon/internal/sse"
)

// Deps bundles the game components the HTTP surface exposes.
type Deps struct {
	Catalog  *catalog.Catalog
	Ledger   *ledger.Ledger
	Roller   *roll.Engine
	Boosts   *gameevent.Manager
	Convert  *conversion.Engine
	Truck    *attraction.Truck
	Wheel    *attraction.Wheel
	Showroom *attraction.Showroom
	Hub      *sse.Hub
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, trustedProxies []string, deps Deps) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(RequestSizeLimit))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check route (unversioned)
	r.Get("/healthz", handler.HandleHealthz())

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(deps.Ledger, deps.Roller, deps.Boosts))
		r.Post("/click", handler.HandleClick(deps.Ledger))
		r.Post("/ad", handler.HandleWatchAd(deps.Ledger))

		// Shop routes
		r.Route("/shop", func(r chi.Router) {
			r.Get("/machines", handler.HandleListMachines(deps.Catalog))
			r.Post("/machines", handler.HandleBuyMachine(deps.Catalog, deps.Ledger))
			r.Post("/sell", handler.HandleSell(deps.Ledger))
			r.Get("/storage", handler.HandleGetStorage(deps.Ledger))
			r.Post("/storage", handler.HandleBuyStorageUpgrade(deps.Ledger))
			r.Post("/fast-charger", handler.HandleBuyFastCharger(deps.Ledger))
			r.Post("/charge", handler.HandleCharge(deps.Ledger))
			r.Get("/passes", handler.HandleListPasses(deps.Ledger))
			r.Post("/passes", handler.HandleBuyPass(deps.Ledger))
			r.Get("/weapons", handler.HandleListWeapons(deps.Ledger))
			r.Post("/weapons", handler.HandleBuyWeapon(deps.Ledger))
			r.Get("/multiplier", handler.HandleGetGlobalMultiplier(deps.Ledger))
			r.Post("/multiplier", handler.HandleBuyGlobalMultiplier(deps.Ledger))
			r.Get("/packs", handler.HandleListStarterPacks())
			r.Post("/packs", handler.HandleBuyStarterPack(deps.Ledger))
		})

		// Lucky block routes
		r.Route("/blocks", func(r chi.Router) {
			r.Get("/", handler.HandleListBlocks())
			r.Post("/open", handler.HandleOpenBlock(deps.Ledger, deps.Roller, deps.Boosts))
			r.Post("/bulk", handler.HandleOpenBulk(deps.Ledger, deps.Roller))
			r.Post("/mystery", handler.HandleOpenMystery(deps.Ledger, deps.Roller, deps.Boosts))
		})

		// Conversion routes
		r.Route("/convert", func(r chi.Router) {
			r.Get("/recipes", handler.HandleListRecipes(deps.Convert))
			r.Post("/fuse", handler.HandleFuse(deps.Convert))
			r.Post("/craft", handler.HandleCraft(deps.Convert))
			r.Post("/trade", handler.HandleTrade(deps.Convert))
			r.Get("/pending", handler.HandleGetPending(deps.Convert))
			r.Post("/skip", handler.HandleSkip(deps.Convert, deps.Ledger))
		})

		// Rebirth routes
		r.Get("/rebirth", handler.HandleGetRebirthStatus(deps.Ledger))
		r.Post("/rebirth", handler.HandleRebirth(deps.Ledger))
		r.Get("/rebirth/tiers", handler.HandleListRebirthTiers())

		// Attraction routes
		r.Get("/truck", handler.HandleGetTruck(deps.Truck))
		r.Post("/truck/exchange", handler.HandleTruckExchange(deps.Truck))
		r.Get("/wheel", handler.HandleGetWheel(deps.Wheel))
		r.Post("/wheel/spin", handler.HandleSpinWheel(deps.Wheel))
		r.Get("/showroom", handler.HandleGetShowroom(deps.Showroom))
		r.Post("/showroom/buy", handler.HandleShowroomBuy(deps.Showroom, deps.Ledger))

		// Boost event routes
		r.Get("/events", handler.HandleGetEvents(deps.Boosts))
		r.Get("/events/stream", sse.Handler(deps.Hub))

		// Admin routes (API key required)
		r.Route("/admin", func(r chi.Router) {
			r.Use(AdminAuthMiddleware(apiKey, trustedProxies, detector))

			r.Post("/spawn", handler.HandleAdminSpawnItem(deps.Catalog, deps.Ledger))
			r.Post("/money", handler.HandleAdminGrantMoney(deps.Ledger))
			r.Post("/rebirth", handler.HandleAdminSetRebirthTier(deps.Ledger))
			r.Post("/multiplier", handler.HandleAdminSetGlobalMultiplier(deps.Ledger))
			r.Post("/luck", handler.HandleAdminSetLuck(deps.Roller))
			r.Post("/trait", handler.HandleAdminSetTrait(deps.Ledger))
			r.Post("/message", handler.HandleAdminServerMessage(deps.Boosts))

			r.Route("/events", func(r chi.Router) {
				r.Post("/trigger", handler.HandleAdminTriggerEvent(deps.Boosts))
				r.Post("/chaos", handler.HandleAdminChaos(deps.Boosts))
				r.Post("/disable", handler.HandleAdminDisableEvent(deps.Boosts))
				r.Post("/duration", handler.HandleAdminSetDuration(deps.Boosts))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// Router exposes the configured handler for tests.
func (s *Server) Router() http.Handler {
	return s.httpServer.Handler
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // default status
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

// Flush forwards to the wrapped writer so SSE streaming keeps working.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		// Use HasPrefix to catch potential variations (e.g. /healthz/)
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		// Generate unique request ID
		requestID := logger.GenerateRequestID()

		// Add request ID to context
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		// Get scoped logger
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		// Wrap response writer to capture status code
		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
