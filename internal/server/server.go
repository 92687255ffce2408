package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"league-former/internal/logging"
	"league-former/internal/store"
)

// Server exposes run progress over HTTP while an assignment is in flight.
type Server struct {
	logger   *slog.Logger
	progress *store.ProgressStore
	srv      httpServer
}

// New constructs a status server on addr. metricsHandler may be nil, in
// which case /metrics is not mounted.
func New(addr string, progress *store.ProgressStore, metricsHandler http.Handler, logger *slog.Logger) *Server {
	s := &Server{
		logger:   logger,
		progress: progress,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.health)
	mux.HandleFunc("/status", s.status)
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}

	s.srv = netHTTPServer{srv: &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}}
	return s
}

// Start launches the server in the background and returns immediately.
func (s *Server) Start() {
	go func() {
		if s.logger != nil {
			s.logger.Info("status server starting", slog.String("addr", s.srv.Addr()))
		}
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Warn(s.logger, "status server failed", "error", err)
		}
	}()
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	return s.srv.Shutdown(shutdownCtx)
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.srv.Handler()
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.progress.Snapshot())
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Warn(s.logger, "failed to encode response", "error", err)
	}
}
