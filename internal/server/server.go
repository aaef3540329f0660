// Package server provides the HTTP server for the samvaad gesture translation backend.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ayusman/samvaad/internal/server/api"
)

// Pipeline is the gesture pipeline served over HTTP.
type Pipeline interface {
	api.Predictor
	api.ContextTranslator
}

// Config holds the server configuration.
type Config struct {
	Pipeline Pipeline

	// AllowedOrigins lists the browser origins allowed by CORS and the
	// websocket handshake. "*" allows any origin. Empty disables CORS headers.
	AllowedOrigins []string

	// StaticDir, when set, is served at / for the demo frontend.
	StaticDir string

	MetricsEnabled bool
	SwaggerEnabled bool
}

// Server represents the HTTP server for the samvaad application.
type Server struct {
	config  Config
	mux     *http.ServeMux
	handler http.Handler
}

// New creates a new Server with the given configuration.
func New(config Config) *Server {
	s := &Server{
		config: config,
		mux:    http.NewServeMux(),
	}
	s.setupRoutes()
	s.handler = logRequests(recoverer(cors(config.AllowedOrigins, s.mux)))
	return s
}

// setupRoutes configures all HTTP routes for the server.
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)

	if s.config.Pipeline != nil {
		s.mux.Handle("/predict", api.NewPredictHandler(s.config.Pipeline))
		s.mux.Handle("/context-translate", api.NewContextHandler(s.config.Pipeline))
		s.mux.Handle("/ws/predict", NewPredictStreamHandler(s.config.Pipeline, s.config.AllowedOrigins))
	}

	if s.config.MetricsEnabled {
		s.mux.Handle("/metrics", promhttp.Handler())
	}

	if s.config.SwaggerEnabled {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	if s.config.StaticDir != "" {
		fs := http.FileServer(http.Dir(s.config.StaticDir))
		s.mux.Handle("/", fs)
	}
}

// ServeHTTP implements the http.Handler interface.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}

// handleHealth handles GET requests to /health.
//
// @Summary  Health check
// @Tags     health
// @Produce  json
// @Success  200  {object}  healthResponse
// @Router   /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, api.ErrorResponse{Error: "Method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "OK"})
}

type healthResponse struct {
	Status string `json:"status" example:"OK"`
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
	}

	slog.Info("http server listening", "addr", addr)

	go func() {
		<-ctx.Done()
		slog.Info("http server shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != http.ErrServerClosed {
		return fmt.Errorf("http listen: %w", err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}
