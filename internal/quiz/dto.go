package quiz

import (
	"time"

	"github.com/google/uuid"

	"github.com/OfficialSahil548k/MindMania/internal/question"
)

type CreateQuizDTO struct {
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     string      `json:"category"`
	Questions    []uuid.UUID `json:"questions"`
	TimeLimit    *int        `json:"timeLimit"`
	PassingScore *int        `json:"passingScore"`
	IsPublished  *bool       `json:"isPublished"`
	IsLive       *bool       `json:"isLive"`
	StartDate    *time.Time  `json:"startDate"`
	EndDate      *time.Time  `json:"endDate"`
	InstituteID  *uuid.UUID  `json:"instituteId"`
}

type UpdateQuizDTO struct {
	Title        *string      `json:"title"`
	Description  *string      `json:"description"`
	Category     *string      `json:"category"`
	Questions    *[]uuid.UUID `json:"questions"`
	TimeLimit    *int         `json:"timeLimit"`
	PassingScore *int         `json:"passingScore"`
	IsPublished  *bool        `json:"isPublished"`
	IsLive       *bool        `json:"isLive"`
	StartDate    *time.Time   `json:"startDate"`
	EndDate      *time.Time   `json:"endDate"`
	InstituteID  *uuid.UUID   `json:"instituteId"`
}

// QuizWithQuestionsDTO is the player payload: question details resolved from
// the bank, correct answers never included.
type QuizWithQuestionsDTO struct {
	Quiz      *Quiz                    `json:"quiz"`
	Questions []*question.QuestionView `json:"questions"`
}
