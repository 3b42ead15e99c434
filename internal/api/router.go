package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// healthCheckTimeout bounds each component check run by /health.
const healthCheckTimeout = 2 * time.Second

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)

		r.Route("/units", func(r chi.Router) {
			r.Get("/", s.handleListCategories)
			r.Get("/{category}", s.handleGetCategory)
			r.Get("/{category}/{member}", s.handleGetMember)
		})

		// Symbols may contain "/" (e.g. "W/m²"), so the rest of the path is
		// captured and unescaped by the handler.
		r.Get("/symbols/*", s.handleLookupSymbol)
		r.Get("/validate", s.handleValidate)

		r.Get("/catalog", s.handleCatalogStatus)
		r.Get("/ingest/stats", s.handleIngestStats)

		r.Get(wsPath(s.wsCfg.Path), s.handleWebSocket)
	})

	return r
}

// handleHealth returns the server health status. Any failing component
// check turns the response into a 503.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	components := make(map[string]string, len(s.checks))
	healthy := true

	for name, check := range s.checks {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		err := check.HealthCheck(ctx)
		cancel()

		if err != nil {
			components[name] = err.Error()
			healthy = false
			continue
		}
		components[name] = "ok"
	}

	status, code := "ok", http.StatusOK
	if !healthy {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	writeJSON(w, code, map[string]any{
		"status":     status,
		"version":    s.version,
		"components": components,
	})
}

// wsPath returns the configured WebSocket path, defaulting to /ws.
func wsPath(p string) string {
	if p == "" {
		return "/ws"
	}
	if p[0] != '/' {
		return "/" + p
	}
	return p
}
