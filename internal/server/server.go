// Package server provides the HTTP API for the certificate publisher.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/cert-publisher/internal/controller"
	"github.com/jonathan/cert-publisher/internal/orgconfig"
	"github.com/jonathan/cert-publisher/internal/render"
	"github.com/jonathan/cert-publisher/internal/state"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	controller *controller.Controller
	kv         state.KV
}

// New creates a new server instance.
//
// A mapping that cannot be loaded is logged and replaced by nil: the server
// still starts, and every session collapses to the generic unavailable
// state instead of partial content.
func New(cfg Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	orgs, err := orgconfig.LoadMapping(cfg.OrgConfigPath)
	if err != nil {
		log.Printf("[server] organization mapping unavailable: %v", err)
		orgs = nil
	}

	kv, err := OpenBackend(cfg)
	if err != nil {
		return nil, err
	}

	renderer := render.NewChromeRenderer(cfg.RenderTimeout)

	ctrl := controller.New(orgs, state.NewStore(kv), renderer)
	ctrl.Scale = cfg.PreviewScale

	s := &Server{
		controller: ctrl,
		kv:         kv,
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withRequestID(s.withLogging(s.withCORS(s.routes()))),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // renders can be slow on first load
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// routes builds the request mux.
func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /session", s.handleSession)
	mux.HandleFunc("POST /session/steps/{step}", s.handleMarkStep)
	mux.HandleFunc("GET /session/share-link", s.handleShareLink)
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// OpenBackend builds the configured completion-state backend.
func OpenBackend(cfg Config) (state.KV, error) {
	ctx := context.Background()
	switch cfg.StateBackend {
	case BackendSQLite:
		return state.OpenSQLite(ctx, cfg.SQLitePath)
	case BackendPostgres:
		return state.ConnectPostgres(ctx, cfg.DatabaseURL)
	default:
		return state.NewMemoryKV(), nil
	}
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("[server] starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[server] error: %v", err)
		}
	}()

	<-stop
	log.Println("[server] shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	if err := s.kv.Close(); err != nil {
		log.Printf("[server] state backend close: %v", err)
	}
	log.Println("[server] stopped")
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

// withRequestID tags each request with an id for log correlation.
func (s *Server) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
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
		log.Printf("[server] error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
