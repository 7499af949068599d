package attempt

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OfficialSahil548k/MindMania/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(auth.AuthMiddleware)

	r.Post("/start", h.Start)
	r.Post("/", h.Submit)
	r.Get("/user", h.ListForUser)
	r.Get("/{id}", h.Get)

	return r
}
