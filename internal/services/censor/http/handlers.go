// Package http provides http transport for the censor service
package http

import (
	stdhttp "net/http"

	"mouthsoap/internal/platform/httpkit"
	"mouthsoap/internal/services/censor/domain"

	"github.com/go-chi/chi/v5"
)

// Register mounts the censor endpoints under /v1
func Register(r chi.Router, svc domain.CensorPort) {
	h := &handlers{svc: svc}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/check", h.check)
		r.Post("/censor", h.censor)
		r.Post("/words", h.words)
		r.Put("/config", h.config)
	})
}

type handlers struct{ svc domain.CensorPort }

func (h *handlers) check(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseJSON[domain.CheckInput](r)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	out, err := h.svc.Check(r.Context(), in)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	httpkit.RespondOK(w, r, out)
}

func (h *handlers) censor(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseJSON[domain.CensorInput](r)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	out, err := h.svc.Censor(r.Context(), in)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	httpkit.RespondOK(w, r, out)
}

func (h *handlers) words(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseJSON[domain.WordsInput](r)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	out, err := h.svc.AddWords(r.Context(), in)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	httpkit.RespondOK(w, r, out)
}

func (h *handlers) config(w stdhttp.ResponseWriter, r *stdhttp.Request) {
	in, err := httpkit.ParseJSON[domain.ConfigInput](r)
	if err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	if err := h.svc.Configure(r.Context(), in); err != nil {
		httpkit.RespondError(w, r, err)
		return
	}
	httpkit.RespondOK(w, r, in)
}
