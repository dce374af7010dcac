// Package httpapi serves the word-form generator as a stateless JSON
// API. No session lives server-side: the query string of a request is a
// locator (the same encoding sessions share as links), so every request
// carries the full selection it wants derived.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	_ "embed"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vyakarana-tools/rupavali"
	"github.com/vyakarana-tools/rupavali/internal/dto"
	"github.com/vyakarana-tools/rupavali/internal/logging"
	"github.com/vyakarana-tools/rupavali/pkg/catalog"
	"github.com/vyakarana-tools/rupavali/pkg/locator"
	"github.com/vyakarana-tools/rupavali/pkg/session"
	"github.com/vyakarana-tools/rupavali/pkg/vyakarana"
)

//go:embed openapi.yaml
var openapiSpec []byte

// suggestionLimit caps the near-miss list on empty filter results.
const suggestionLimit = 5

// Server handles the API routes over one App.
type Server struct {
	app      *rupavali.App
	codec    *locator.Codec
	logger   *slog.Logger
	gatherer prometheus.Gatherer
}

// Option configures the server.
type Option func(*Server)

// WithLogger sets the request logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithMetrics sets the gatherer behind /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) { s.gatherer = g }
}

// NewHandler creates the HTTP handler for an App.
func NewHandler(app *rupavali.App, opts ...Option) http.Handler {
	server := &Server{
		app:      app,
		logger:   logging.NewNop(),
		gatherer: prometheus.DefaultGatherer,
	}
	for _, opt := range opts {
		opt(server)
	}
	server.codec = locator.New(locator.WithLogger(server.logger))

	r := chi.NewRouter()
	r.Get("/api/state", server.getState)
	r.Get("/api/dhatus", server.listDhatus)
	r.Get("/api/dhatus/{code}", server.getDhatu)
	r.Get("/api/tinantas", server.getTinantas)
	r.Get("/api/krdantas", server.getKrdantas)
	r.Get("/api/prakriya", server.getPrakriya)
	r.Get("/health", server.getHealth)
	r.Get("/info", server.getInfo)

	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openapiSpec)
	})
	r.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(swaggerHTML))
	})
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(server.gatherer, promhttp.HandlerOpts{}))

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// sessionFor replays the request's locator query onto a throwaway
// session and returns the restored snapshot.
func (s *Server) sessionFor(r *http.Request) session.State {
	store := s.app.NewSession()
	s.codec.Apply(r.Context(), store, r.URL.Query())
	return store.Snapshot()
}

// getState decodes the locator query and answers with the restored state.
func (s *Server) getState(w http.ResponseWriter, r *http.Request) {
	state := s.sessionFor(r)
	writeJSON(w, s.logger, dto.FromState(state, s.codec.EncodeString(state)))
}

// listDhatus filters the catalog; near misses ride along when the filter
// comes up empty.
func (s *Server) listDhatus(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	matches := s.app.SearchDhatus(query)

	resp := dto.DhatuList{Dhatus: dto.FromDhatus(matches)}
	if len(matches) == 0 && query != "" {
		resp.Suggestions = dto.FromDhatus(s.app.Catalog().Suggest(query, suggestionLimit))
	}
	writeJSON(w, s.logger, resp)
}

// getDhatu answers one catalog entry.
func (s *Server) getDhatu(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")
	dhatu, err := s.app.Dhatu(code)
	if err != nil {
		http.Error(w, fmt.Sprintf("dhatu %s not found", code), http.StatusNotFound)
		return
	}
	writeJSON(w, s.logger, dto.FromDhatu(dhatu))
}

// getTinantas derives the conjugation tables for the dhatu in the query.
func (s *Server) getTinantas(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get(locator.KeyDhatu)
	if code == "" {
		http.Error(w, "missing dhatu parameter", http.StatusBadRequest)
		return
	}

	state := s.sessionFor(r)
	tables, err := s.app.TinantaTables(r.Context(), code, state.Options)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, fmt.Sprintf("dhatu %s not found", code), http.StatusNotFound)
			return
		}
		s.logger.Error("tinanta derivation failed", "dhatu", code, "error", err)
		http.Error(w, fmt.Sprintf("derivation error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.logger, dto.FromLakaraTables(tables))
}

// getKrdantas derives the krt affix groups for the dhatu in the query.
func (s *Server) getKrdantas(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get(locator.KeyDhatu)
	if code == "" {
		http.Error(w, "missing dhatu parameter", http.StatusBadRequest)
		return
	}

	state := s.sessionFor(r)
	forms, err := s.app.KrdantaForms(r.Context(), code, state.Options)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.Error(w, fmt.Sprintf("dhatu %s not found", code), http.StatusNotFound)
			return
		}
		s.logger.Error("krdanta derivation failed", "dhatu", code, "error", err)
		http.Error(w, fmt.Sprintf("derivation error: %v", err), http.StatusInternalServerError)
		return
	}
	writeJSON(w, s.logger, dto.FromKrtForms(forms))
}

// getPrakriya re-derives the active pada and answers its step history
// with sutra texts attached.
func (s *Server) getPrakriya(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get(locator.KeyActivePada)
	if raw == "" {
		http.Error(w, "missing activePada parameter", http.StatusBadRequest)
		return
	}
	pada, err := vyakarana.UnmarshalPada([]byte(raw))
	if err != nil {
		http.Error(w, fmt.Sprintf("invalid activePada: %v", err), http.StatusBadRequest)
		return
	}

	derivation, err := s.app.Prakriya(r.Context(), pada)
	if err != nil {
		s.logger.Error("prakriya derivation failed", "error", err)
		http.Error(w, fmt.Sprintf("derivation error: %v", err), http.StatusInternalServerError)
		return
	}
	if derivation == nil {
		http.Error(w, "form is not derivable with the current engine", http.StatusNotFound)
		return
	}

	writeJSON(w, s.logger, dto.FromDerivation(*derivation, s.app.Sutrapatha().Text))
}

// getHealth answers a liveness probe.
func (s *Server) getHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// getInfo answers build information.
func (s *Server) getInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "rupavali-http",
		"version": rupavali.Version,
	})
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}

const swaggerHTML = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>rupavali API Documentation</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.11.0/swagger-ui-bundle.js" crossorigin></script>
<script>
    window.onload = () => {
    window.ui = SwaggerUIBundle({
        url: '/openapi.yaml',
        dom_id: '#swagger-ui',
    });
    };
</script>
</body>
</html>
`
