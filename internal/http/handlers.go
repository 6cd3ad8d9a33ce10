package http

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	appweb "wishlist/web"
)

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// handleReady reports readiness once the backing store answers a list call.
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if _, err := s.catalog.ListCategories(ctx); err != nil {
		slog.ErrorContext(r.Context(), "Readiness check failed", "error", err)
		http.Error(w, "store not ready", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

// handleMetrics exposes plain-text counters. Not a Prometheus endpoint, just
// enough to watch from curl.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintf(w, "requests_total %d\n", s.metrics.requestsTotal.Load())
	fmt.Fprintf(w, "status_changes_total %d\n", s.metrics.statusChanges.Load())
	fmt.Fprintf(w, "catalog_writes_total %d\n", s.metrics.catalogWrites.Load())
	fmt.Fprintf(w, "catalog_cache_hits_total %d\n", s.metrics.cacheHits.Load())
	fmt.Fprintf(w, "catalog_cache_misses_total %d\n", s.metrics.cacheMisses.Load())
	fmt.Fprintf(w, "rate_limit_denied_total %d\n", s.metrics.rateLimitDenied.Load())
	fmt.Fprintf(w, "catalog_cache_size %d\n", s.catalogCache.Size())
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := appweb.StaticFS.ReadFile("static/index.html")
	if err != nil {
		slog.ErrorContext(r.Context(), "Index page not embedded", "error", err)
		http.Error(w, "index not available", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(data)
}
