package attempt

import (
	"gorm.io/gorm"

	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
)

type AttemptContainer struct {
	Repo    AttemptRepository
	Service AttemptService
	Handler *Handler
}

func NewAttemptContainer(db *gorm.DB, quizRepo quiz.QuizRepository, questionRepo question.Repository) *AttemptContainer {
	repo := NewRepository(db)
	service := NewService(repo, quizRepo, questionRepo)
	handler := NewHandler(service)

	return &AttemptContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
