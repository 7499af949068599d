package question

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

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var dto CreateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	q, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidQuestion) {
			config.Error(w, http.StatusBadRequest, "bad_request", "correct answer must match one of the options")
			return
		}
		log.WithError(err).Error("Failed to create question")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) ListMine(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	questions, err := h.service.ListMine(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, questions)
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

	var dto UpdateQuestionDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	q, err := h.service.Update(r.Context(), id, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuestionNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Question not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		case errors.Is(err, ErrInvalidQuestion):
			config.Error(w, http.StatusBadRequest, "bad_request", "correct answer must match one of the options")
		default:
			log.WithError(err).Error("Failed to update question")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	config.JSON(w, http.StatusOK, q)
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
		case errors.Is(err, ErrQuestionNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Question not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		default:
			log.WithError(err).Error("Failed to delete question")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "Question deleted successfully.",
	})
}
