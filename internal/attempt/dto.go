package attempt

import (
	"time"

	"github.com/google/uuid"

	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
)

type StartAttemptDTO struct {
	QuizID string `json:"quizId"`
}

type SubmittedAnswerDTO struct {
	QuestionID     string `json:"questionId"`
	SelectedOption string `json:"selectedOption"`
}

type SubmitAttemptDTO struct {
	QuizID  string               `json:"quizId"`
	Answers []SubmittedAnswerDTO `json:"answers"`
}

// AnswerSubmission is a boundary-validated (questionId, selectedOption) pair.
type AnswerSubmission struct {
	QuestionID     uuid.UUID
	SelectedOption string
}

// ResultSummary is everything the submitter learns: totals only, never
// per-question correctness. That disclosure is governed by Get.
type ResultSummary struct {
	Score          int     `json:"score"`
	TotalQuestions int     `json:"totalQuestions"`
	Passed         bool    `json:"passed"`
	Percentage     float64 `json:"percentage"`
}

type SubmitResponse struct {
	Message string        `json:"message"`
	Result  ResultSummary `json:"result"`
}

type AnswerView struct {
	Question       *question.QuestionView `json:"question"`
	SelectedOption string                 `json:"selectedOption"`
}

// AttemptView is the attempt enriched with its quiz and question details.
// Question correct answers are present only when the quiz is no longer live.
type AttemptView struct {
	ID          uuid.UUID     `json:"id"`
	Quiz        *quiz.Quiz    `json:"quiz"`
	UserID      uuid.UUID     `json:"userId"`
	Answers     []AnswerView  `json:"answers"`
	Score       int           `json:"score"`
	Status      AttemptStatus `json:"status"`
	Passed      bool          `json:"passed"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

// AttemptSummary is the list-view row: status only, no scores or answers.
type AttemptSummary struct {
	ID          uuid.UUID     `json:"id"`
	QuizID      uuid.UUID     `json:"quizId"`
	QuizTitle   string        `json:"quizTitle"`
	Status      AttemptStatus `json:"status"`
	StartedAt   time.Time     `json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}
