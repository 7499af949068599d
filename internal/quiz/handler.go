package quiz

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
	service QuizService
}

func NewHandler(s QuizService) *Handler {
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

	var dto CreateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	q, err := h.service.Create(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		if errors.Is(err, ErrInvalidQuiz) {
			config.Error(w, http.StatusBadRequest, "bad_request", "title, category, a positive time limit and a passing score between 0 and 100 are required")
			return
		}
		log.WithError(err).Error("Failed to create quiz")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusCreated, q)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	if instituteParam := r.URL.Query().Get("instituteId"); instituteParam != "" {
		instituteID, err := uuid.Parse(instituteParam)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "bad_request", "invalid instituteId")
			return
		}
		quizzes, err := h.service.ListByInstitute(r.Context(), instituteID)
		if err != nil {
			log.WithError(err).Error("Failed to list institute quizzes")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
			return
		}
		config.JSON(w, http.StatusOK, quizzes)
		return
	}

	quizzes, err := h.service.List(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list quizzes")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, quizzes)
}

func (h *Handler) GetWithQuestions(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	dto, err := h.service.GetWithQuestions(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "not_found", "Quiz not found")
			return
		}
		log.WithError(err).Error("Failed to fetch quiz with questions")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, dto)
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

	var dto UpdateQuizDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	q, err := h.service.Update(r.Context(), id, uuid.MustParse(claims.UserID), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Quiz not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		case errors.Is(err, ErrInvalidQuiz):
			config.Error(w, http.StatusBadRequest, "bad_request", "invalid quiz")
		default:
			log.WithError(err).Error("Failed to update quiz")
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
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Quiz not found")
		case errors.Is(err, ErrUnauthorized):
			config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		default:
			log.WithError(err).Error("Failed to delete quiz")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	config.JSON(w, http.StatusOK, map[string]string{
		"message": "quiz deleted successfully",
	})
}
