// Package server provides the HTTP REST API for the career agent.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/jonathan/career-agent/internal/db"
	"github.com/jonathan/career-agent/internal/enhance"
	"github.com/jonathan/career-agent/internal/geo"
	"github.com/jonathan/career-agent/internal/jobs"
	"github.com/jonathan/career-agent/internal/location"
	"github.com/jonathan/career-agent/internal/upload"
)

// Config holds server configuration.
type Config struct {
	Port        int
	DatabaseURL string
	// RedisURL enables the shared geocode cache when set.
	RedisURL string
	// GeocodeURL overrides the reverse-geocoding endpoint; empty disables
	// geocoding entirely.
	GeocodeURL string
	// PruneSchedule is the cron spec for the expired-posting sweep.
	PruneSchedule string
}

// Server represents the HTTP server.
type Server struct {
	httpServer *http.Server
	store      Storage
	dbConn     *db.DB
	jobs       *jobs.Store
	engine     *enhance.Engine
	generator  *upload.Generator
	location   *location.Service
	validate   *validator.Validate
	log        zerolog.Logger
	cron       *cron.Cron
}

// New creates a server backed by PostgreSQL.
func New(cfg Config, log zerolog.Logger) (*Server, error) {
	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(ctx); err != nil {
		database.Close()
		return nil, err
	}

	var geocoder location.ReverseGeocoder
	if cfg.GeocodeURL != "" {
		opts := geo.DefaultGeocoderOptions()
		opts.BaseURL = cfg.GeocodeURL
		if cfg.RedisURL != "" {
			redisOpts, err := redis.ParseURL(cfg.RedisURL)
			if err != nil {
				database.Close()
				return nil, fmt.Errorf("failed to parse redis url: %w", err)
			}
			opts.Redis = redis.NewClient(redisOpts)
		}
		geocoder = geo.NewGeocoder(opts)
	}

	s := newServer(database, geocoder, log)
	s.dbConn = database

	if cfg.PruneSchedule == "" {
		cfg.PruneSchedule = "@hourly"
	}
	s.cron = cron.New()
	if _, err := s.cron.AddFunc(cfg.PruneSchedule, s.pruneExpiredPostings); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to schedule posting sweep: %w", err)
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // headless PDF printing can be slow
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// newServer wires the handler graph. Tests call it directly with a fake
// store and no geocoder.
func newServer(store Storage, geocoder location.ReverseGeocoder, log zerolog.Logger) *Server {
	return &Server{
		store:     store,
		jobs:      jobs.NewStore(),
		engine:    enhance.NewEngine(),
		generator: upload.NewGenerator(),
		location:  location.NewService(&locationStore{store: store}, geocoder, log),
		validate:  validator.New(),
		log:       log,
	}
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// Resume intake and export
	mux.HandleFunc("POST /resumes", s.handleUploadResume)
	mux.HandleFunc("GET /resumes", s.handleListResumes)
	mux.HandleFunc("GET /resumes/{id}", s.handleGetResume)
	mux.HandleFunc("DELETE /resumes/{id}", s.handleDeleteResume)
	mux.HandleFunc("GET /resumes/{id}/export", s.handleExportResume)

	// Enhancement
	mux.HandleFunc("POST /resumes/{id}/enhance", s.handleEnhanceResume)
	mux.HandleFunc("GET /resumes/{id}/enhancement", s.handleGetEnhancement)
	mux.HandleFunc("POST /enhancements/{id}/suggestions/{sid}/apply", s.handleApplySuggestion)
	mux.HandleFunc("DELETE /enhancements/{id}/suggestions/{sid}", s.handleRejectSuggestion)

	// Job search
	mux.HandleFunc("GET /jobs", s.handleListJobs)
	mux.HandleFunc("GET /jobs/{id}", s.handleGetJob)

	// Location
	mux.HandleFunc("PUT /location", s.handleSetLocation)
	mux.HandleFunc("GET /location", s.handleGetLocation)
	mux.HandleFunc("DELETE /location", s.handleClearLocation)

	return mux
}

// Start begins listening for requests and blocks until shutdown.
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	if s.cron != nil {
		s.cron.Start()
	}

	go func() {
		s.log.Info().Str("addr", s.httpServer.Addr).Msg("server starting")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-stop
	s.log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
	if s.dbConn != nil {
		s.dbConn.Close()
	}
	s.log.Info().Msg("server stopped")
	return nil
}

// pruneExpiredPostings sweeps the catalog for expired entries.
func (s *Server) pruneExpiredPostings() {
	if dropped := s.jobs.PruneExpired(); dropped > 0 {
		s.log.Info().Int("dropped", dropped).Msg("pruned expired job postings")
	}
}

// withCORS adds CORS headers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withLogging adds structured request logging.
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.status).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

// handleHealth returns server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response.
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.log.Error().Err(err).Msg("error encoding JSON response")
	}
}

// errorResponse writes an error JSON response.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
