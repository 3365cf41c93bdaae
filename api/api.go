// Package api exposes the dispatcher over HTTP. It is a thin layer: the
// invocation string travels through unchanged, and the response carries the
// same boolean outcome Execute returns.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/taskcall/taskcall"
)

// API wires the HTTP handlers for a Dispatcher.
type API struct {
	dispatcher *taskcall.Dispatcher
	logger     *slog.Logger
}

// New creates an API serving the given dispatcher.
func New(d *taskcall.Dispatcher) *API {
	return &API{dispatcher: d, logger: d.Logger()}
}

// Handler returns the fully assembled http.Handler with all routes.
func (a *API) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	a.RegisterRoutes(r)
	return r
}

// RegisterRoutes registers all routes into the given chi router.
func (a *API) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Post("/execute", a.executeCall)
		r.Get("/tasks", a.listTasks)
	})
	r.Get("/healthz", a.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
}

func (a *API) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
