package server

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/baedalhero/RaidSync_Go/internal/database"
	"github.com/baedalhero/RaidSync_Go/internal/handler"
	"github.com/baedalhero/RaidSync_Go/internal/logger"
	"github.com/baedalhero/RaidSync_Go/internal/metrics"
	"github.com/baedalhero/RaidSync_Go/internal/repository"
)

const (
	readHeaderTimeout = 5 * time.Second
	maxRequestBody    = 1 << 20 // 1MB
)

// Server hosts the raid read API and the ops surface.
type Server struct {
	httpServer *http.Server
}

// Deps carries everything the router needs.
type Deps struct {
	DBPool          database.Pool
	RaidRepo        repository.Raid
	ParticipantRepo repository.Participant
	DamageRepo      repository.Damage
	RewardRepo      repository.Reward
	Rankings        handler.RankingReader
}

// NewServer creates a new Server instance
func NewServer(port int, apiKey string, deps Deps) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost first
	r.Use(securityHeadersMiddleware)
	r.Use(requestSizeLimitMiddleware(maxRequestBody))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(deps.DBPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	raidHandler := handler.NewRaidHandler(deps.RaidRepo, deps.ParticipantRepo, deps.DamageRepo)
	rankingHandler := handler.NewRankingHandler(deps.Rankings, deps.DamageRepo, deps.RewardRepo)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/raids", func(r chi.Router) {
			r.Get("/", raidHandler.HandleListRaids)
			r.With(apiKeyMiddleware(apiKey)).Post("/", raidHandler.HandleCreateRaid)

			r.Route("/{raidID}", func(r chi.Router) {
				r.Get("/", raidHandler.HandleGetRaid)
				r.Get("/stats", raidHandler.HandleGetRaidStats)
				r.Get("/ranking", rankingHandler.HandleGetRanking)
				r.Get("/damage-history", rankingHandler.HandleGetDamageHistory)
				r.Get("/rewards", rankingHandler.HandleGetRewards)
				r.Post("/join", raidHandler.HandleJoinRaid)
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: readHeaderTimeout,
		},
	}
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

func securityHeadersMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

func requestSizeLimitMiddleware(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

// apiKeyMiddleware guards the admin mutation routes. An empty configured key
// disables the routes entirely rather than leaving them open.
func apiKeyMiddleware(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"unauthorized"}`))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
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

		// Health and metrics polling would drown the log.
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
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
			"remote_addr", r.RemoteAddr)

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rw, r)

		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", time.Since(start).Milliseconds())
	})
}
