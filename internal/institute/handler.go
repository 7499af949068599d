package institute

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/OfficialSahil548k/MindMania/internal/auth"
	"github.com/OfficialSahil548k/MindMania/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var dto CreateInstituteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	userID := uuid.MustParse(claims.UserID)
	i, err := h.service.Create(r.Context(), userID, dto)
	if err != nil {
		if errors.Is(err, ErrNameRequired) {
			config.Error(w, http.StatusBadRequest, "bad_request", "Institute name is required")
			return
		}
		log.WithError(err).Error("Failed to create institute")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusCreated, i)
}

func (h *Handler) ListAll(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	institutes, err := h.service.ListAll(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list institutes")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, institutes)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	institutes, err := h.service.ListMine(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list institutes for user")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, institutes)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	var dto UpdateInstituteDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	i, err := h.service.Update(r.Context(), id, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrInstituteNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Institute not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		case errors.Is(err, ErrNameRequired):
			config.Error(w, http.StatusBadRequest, "bad_request", "Institute name is required")
		default:
			log.WithError(err).Error("Failed to update institute")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	config.JSON(w, http.StatusOK, i)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	if err := h.service.Delete(r.Context(), id, uuid.MustParse(claims.UserID)); err != nil {
		switch {
		case errors.Is(err, ErrInstituteNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Institute not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		default:
			log.WithError(err).Error("Failed to delete institute")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
