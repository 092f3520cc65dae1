// Package server wires the HTTP API onto the economy and player services.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/FruitClicker_Go/internal/economy"
	"github.com/osse101/FruitClicker_Go/internal/handler"
	"github.com/osse101/FruitClicker_Go/internal/logger"
	"github.com/osse101/FruitClicker_Go/internal/metrics"
	"github.com/osse101/FruitClicker_Go/internal/player"
)

// Options configures the HTTP surface
type Options struct {
	Port           int
	APIKey         string
	Version        string
	ClickRateLimit float64
	ClickRateBurst int
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, store handler.Pinger, economyService economy.Service, playerService player.Service) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, store, economyService, playerService),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the route tree. Exposed so tests can drive it with httptest.
func NewRouter(opts Options, store handler.Pinger, economyService economy.Service, playerService player.Service) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware())
	r.Use(loggingMiddleware)
	r.Use(AuthMiddleware(opts.APIKey, NewFailedAuthDetector()))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)

	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())

	clicks := NewClickLimiter(opts.ClickRateLimit, opts.ClickRateBurst)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/catalog", handler.HandleGetCatalog(economyService))

		r.Route("/players", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterPlayer(playerService))
			r.Get("/me", handler.HandleGetPlayer(playerService))
			r.Get("/me/inventory", handler.HandleGetInventory(economyService))
			r.Get("/me/autoclickers", handler.HandleListPlayerAutoclickers(economyService))
		})

		r.With(clicks.Middleware).Post("/click", handler.HandleClick(economyService))
		r.Post("/items/sell", handler.HandleSellItem(economyService))

		r.Route("/marketplace", func(r chi.Router) {
			r.Get("/", handler.HandleListListings(economyService))
			r.Post("/", handler.HandleCreateListing(economyService))
			r.Post("/{id}/buy", handler.HandleBuyListing(economyService))
			r.Delete("/{id}", handler.HandleCancelListing(economyService))
		})

		r.Route("/autoclickers", func(r chi.Router) {
			r.Get("/", handler.HandleListAutoclickers(economyService))
			r.With(clicks.Middleware).Post("/tick", handler.HandleAutoclickerTick(economyService))
			r.Post("/{id}/buy", handler.HandleBuyAutoclicker(economyService))
		})

		r.Route("/trades", func(r chi.Router) {
			r.Get("/", handler.HandleListTrades(economyService))
			r.Post("/", handler.HandleCreateTrade(economyService))
			r.Post("/{id}/accept", handler.HandleAcceptTrade(economyService))
			r.Post("/{id}/reject", handler.HandleRejectTrade(economyService))
			r.Post("/{id}/cancel", handler.HandleCancelTrade(economyService))
		})
	})

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
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
		statusCode:     http.StatusOK,
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

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Probes and scrapes are not worth a log line
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		ctx := logger.WithRequestID(r.Context(), logger.GenerateRequestID())
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
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
