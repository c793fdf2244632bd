// Package server provides the HTTP REST API for the career coach.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	rdebug "runtime/debug"
	"syscall"
	"time"

	"careercoach/internal/coach"
	"careercoach/internal/config"
	"careercoach/internal/db"
	"careercoach/internal/gemini"
)

// Server owns the HTTP listener and the shared pipeline collaborators.
// One database pool and one generation client live for the whole process.
type Server struct {
	httpServer *http.Server
	db         *db.DB
	pipeline   *coach.Pipeline
	debug      bool
}

// New creates a server from configuration: it connects the database pool,
// builds the generation client and wires the pipeline.
func New(cfg *config.Config) (*Server, error) {
	database, err := db.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	pipeline := &coach.Pipeline{
		Profiles:  database,
		Generator: gemini.NewClient(cfg.APIKey, cfg.Model, cfg.APIURL),
		Records:   database,
	}

	s := newServer(pipeline, cfg.Port, cfg.Debug)
	s.db = database
	return s, nil
}

// newServer wires the routes and middleware around an existing pipeline.
// Split from New so tests can inject stub collaborators.
func newServer(pipeline *coach.Pipeline, port int, debug bool) *Server {
	s := &Server{
		pipeline: pipeline,
		debug:    debug,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)

	// The declaratively configured pipeline endpoints.
	for _, ep := range coach.Endpoints {
		mux.HandleFunc("POST /api/"+ep.Name, s.handleGenerate(ep))
	}

	// Routes that deviate from the shared pipeline shape.
	mux.HandleFunc("POST /api/resume", s.handleResume)
	mux.HandleFunc("GET /api/industry-pulse", s.handleIndustryPulse)
	mux.HandleFunc("POST /api/job-tracker", s.handleJobTracker)
	mux.HandleFunc("POST /api/job-application-tracker", s.handleJobApplicationTracker)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      s.withRecovery(s.withLogging(s.withCORS(mux))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *Server) Start() error {
	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if s.db != nil {
		s.db.Close()
	}
	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("[%s] %s %s", r.Method, r.URL.Path, r.RemoteAddr)
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// withRecovery reports panics as unclassified 500s instead of dropping the
// connection.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Printf("panic serving %s %s: %v", r.Method, r.URL.Path, rec)
				s.failureResponse(w, fmt.Errorf("%v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse maps a pipeline error to its status code and writes the
// error body. Stack traces are included only in debug mode.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	payload := map[string]any{"error": err.Error()}
	if s.debug {
		payload["stack"] = string(rdebug.Stack())
	}
	s.jsonResponse(w, HTTPStatus(err), payload)
}

// failureResponse reports an unclassified failure as a 500.
func (s *Server) failureResponse(w http.ResponseWriter, err error) {
	payload := map[string]any{"error": err.Error()}
	if s.debug {
		payload["stack"] = string(rdebug.Stack())
	}
	s.jsonResponse(w, http.StatusInternalServerError, payload)
}
