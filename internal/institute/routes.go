package institute

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/OfficialSahil548k/MindMania/internal/auth"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	// institute list feeds public dropdowns
	r.Get("/", h.ListAll)

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Post("/", h.Create)
		r.Get("/my-institutes", h.ListMine)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	return r
}
