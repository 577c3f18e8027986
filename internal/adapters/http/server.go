package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aretw0/vibinremote/pkg/keymap"
)

// KeyBinding is one entry of the /keys response.
type KeyBinding struct {
	Key  string `json:"key"`
	Path string `json:"path"`
	URL  string `json:"url"`
}

// Server exposes the running remote's state.
type Server struct {
	Table   *keymap.Table
	BaseURL string
}

// NewHandler creates the status handler: /healthz, /keys and /metrics.
func NewHandler(table *keymap.Table, baseURL string, gatherer prometheus.Gatherer) http.Handler {
	server := &Server{Table: table, BaseURL: baseURL}
	r := chi.NewRouter()

	r.Get("/healthz", server.Health)
	r.Get("/keys", server.Keys)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	return r
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte("ok"))
}

// Keys handles GET /keys, listing registered keys ordered by name.
func (s *Server) Keys(w http.ResponseWriter, r *http.Request) {
	registered := s.Table.Keys()
	resp := make([]KeyBinding, 0, len(registered))
	for _, k := range registered {
		action, _ := s.Table.Lookup(k)
		resp = append(resp, KeyBinding{
			Key:  k.String(),
			Path: action.URL,
			URL:  s.BaseURL + action.URL,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Keys response encode failed", "error", err)
	}
}
