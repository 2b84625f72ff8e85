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

	"github.com/osse101/StudyGarden_Go/internal/analytics"
	"github.com/osse101/StudyGarden_Go/internal/garden"
	"github.com/osse101/StudyGarden_Go/internal/handler"
	"github.com/osse101/StudyGarden_Go/internal/logger"
	"github.com/osse101/StudyGarden_Go/internal/metrics"
	"github.com/osse101/StudyGarden_Go/internal/shop"
	"github.com/osse101/StudyGarden_Go/internal/streak"
)

// Server is the HTTP command surface of the engine. The host application's UI
// layer is the only expected client; it drives the garden entirely through
// these routes.
type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(
	port int,
	apiKey string,
	streakService streak.Service,
	gardenService garden.Service,
	shopService shop.Service,
	analyticsService analytics.Service,
) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost to innermost
	r.Use(AuthMiddleware(apiKey))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(IdempotencyMiddleware())

	// Unversioned operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		reviewHandler := handler.NewReviewHandler(streakService)
		r.Post("/review", reviewHandler.HandleReview)

		gardenHandler := handler.NewGardenHandler(gardenService)
		r.Get("/garden", gardenHandler.Snapshot) // handle /garden exactly
		r.Route("/garden", func(r chi.Router) {
			r.Get("/", gardenHandler.Snapshot)
			r.Post("/place", gardenHandler.Place)
			r.Post("/water", gardenHandler.Water)
			r.Post("/remove", gardenHandler.Remove)
			r.Post("/move", gardenHandler.Move)
			r.Post("/sunlight", gardenHandler.Sunlight)
			r.Post("/path", gardenHandler.PlacePath)
			r.Delete("/path", gardenHandler.RemovePath)
		})

		shopHandler := handler.NewShopHandler(shopService)
		r.Route("/shop", func(r chi.Router) {
			r.Post("/buy", shopHandler.Buy)
			r.Post("/theme/unlock", shopHandler.UnlockTheme)
			r.Post("/theme/activate", shopHandler.ActivateTheme)
		})

		analyticsHandler := handler.NewAnalyticsHandler(analyticsService)
		r.Get("/analytics/summary", analyticsHandler.Summary)
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

		// Health and metrics probes would drown out the interesting lines
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength)

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, "Authorization") {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug("Request headers", "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info("Server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
