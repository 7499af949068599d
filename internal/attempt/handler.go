package attempt

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
	service AttemptService
}

func NewHandler(s AttemptService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var dto StartAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	quizID, err := uuid.Parse(dto.QuizID)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid quizId")
		return
	}

	a, created, err := h.service.Start(r.Context(), quizID, uuid.MustParse(claims.UserID))
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Quiz not found")
		case errors.Is(err, ErrAlreadyCompleted):
			config.Error(w, http.StatusConflict, "conflict", "You have already completed this quiz.")
		default:
			log.WithError(err).Error("Failed to start attempt")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	// fresh attempts come back 201, resumed ones 200
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	config.JSON(w, status, a)
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	var dto SubmitAttemptDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid request body")
		return
	}

	quizID, err := uuid.Parse(dto.QuizID)
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid quizId")
		return
	}

	// strict answer schema, rejected before any scoring happens
	answers := make([]AnswerSubmission, 0, len(dto.Answers))
	for _, ans := range dto.Answers {
		if ans.QuestionID == "" || ans.SelectedOption == "" {
			config.Error(w, http.StatusBadRequest, "bad_request", "each answer requires questionId and selectedOption")
			return
		}
		questionID, err := uuid.Parse(ans.QuestionID)
		if err != nil {
			config.Error(w, http.StatusBadRequest, "bad_request", "invalid questionId")
			return
		}
		answers = append(answers, AnswerSubmission{
			QuestionID:     questionID,
			SelectedOption: ans.SelectedOption,
		})
	}

	result, err := h.service.Submit(r.Context(), quizID, uuid.MustParse(claims.UserID), answers)
	if err != nil {
		switch {
		case errors.Is(err, ErrQuizNotFound):
			config.Error(w, http.StatusNotFound, "not_found", "Quiz not found")
		case errors.Is(err, ErrNoActiveAttempt):
			config.Error(w, http.StatusNotFound, "not_found", "No active attempt found. Please start the quiz first.")
		case errors.Is(err, ErrAlreadyCompleted):
			config.Error(w, http.StatusConflict, "conflict", "You have already submitted this quiz.")
		default:
			log.WithError(err).Error("Failed to submit attempt")
			config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		}
		return
	}

	config.JSON(w, http.StatusOK, SubmitResponse{
		Message: "Quiz submitted successfully",
		Result:  *result,
	})
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		config.Error(w, http.StatusBadRequest, "bad_request", "invalid id")
		return
	}

	view, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrAttemptNotFound) || errors.Is(err, ErrQuizNotFound) {
			config.Error(w, http.StatusNotFound, "not_found", "Attempt not found")
			return
		}
		log.WithError(err).Error("Failed to fetch attempt")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, view)
}

func (h *Handler) ListForUser(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized", "unauthorized")
		return
	}

	summaries, err := h.service.ListForUser(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		log.WithError(err).Error("Failed to list attempts for user")
		config.Error(w, http.StatusInternalServerError, "internal", "something went wrong")
		return
	}

	config.JSON(w, http.StatusOK, summaries)
}
