// Package httpapi exposes the running core over HTTP: health probes, the
// current view projection, an event intake, and Prometheus metrics.
package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/repstack/repcore/internal/app"
)

// Host is the running core as the API sees it.
type Host interface {
	Enqueue(app.Event) bool
	View() app.ViewModel
}

// Pinger reports whether the durable store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server is the HTTP front of a running core.
type Server struct {
	host     Host
	db       Pinger
	log      *slog.Logger
	gatherer prometheus.Gatherer
}

// New builds a server. gatherer may be nil to use the default registry.
func New(host Host, db Pinger, log *slog.Logger, gatherer prometheus.Gatherer) *Server {
	if log == nil {
		log = slog.Default()
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return &Server{host: host, db: db, log: log, gatherer: gatherer}
}

// Handler returns the routed handler with CORS applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /api/health", s.handleAPIHealth)
	mux.HandleFunc("GET /api/view", s.handleView)
	mux.HandleFunc("POST /api/events", s.handleEvent)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	return cors(mux)
}

// ListenAndServe runs the server until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", "addr", addr)
		errC <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-errC:
		if err == http.ErrServerClosed {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	io.WriteString(w, "OK")
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (s *Server) handleAPIHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "healthy", Database: "connected"}
	if err := s.db.Ping(r.Context()); err != nil {
		s.log.Error("database health check failed", "error", err)
		resp.Status = "unhealthy"
		resp.Database = fmt.Sprintf("error: %v", err)
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleView(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.host.View())
}

// handleEvent accepts one event envelope and submits it for reduction.
// Acceptance is 202: reduction happens on the core's loop, not in the
// request.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		http.Error(w, "request too large", http.StatusRequestEntityTooLarge)
		return
	}

	ev, err := app.DecodeEvent(body)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !s.host.Enqueue(ev) {
		http.Error(w, "core is shutting down", http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// cors allows all origins. The API serves local UI shells in development.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
