// Package http provides meta endpoints (health, version)
package http

import (
	stdhttp "net/http"
	"time"

	"mouthsoap/internal/core/version"
	"mouthsoap/internal/platform/httpkit"

	"github.com/go-chi/chi/v5"
)

type handlers struct {
	startedAt time.Time
}

// Register mounts the meta routes
func Register(r chi.Router) {
	h := &handlers{startedAt: time.Now().UTC()}
	r.Get("/health", h.health)
	r.Get("/version", h.version)
}

// HealthResponse is the health payload
type HealthResponse struct {
	OK      bool   `json:"ok"`
	Service string `json:"service"`
	Started string `json:"started"`
	Now     string `json:"now"`
}

func (h *handlers) health(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	httpkit.RespondOK(w, r, HealthResponse{
		OK:      true,
		Service: version.Info().Service,
		Started: h.startedAt.Format(time.RFC3339),
		Now:     time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *handlers) version(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	httpkit.RespondOK(w, r, version.Info())
}
