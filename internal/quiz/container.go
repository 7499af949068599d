package quiz

import (
	"gorm.io/gorm"

	"github.com/OfficialSahil548k/MindMania/internal/question"
)

type QuizContainer struct {
	Repo    QuizRepository
	Service QuizService
	Handler *Handler
}

func NewQuizContainer(db *gorm.DB, questionRepo question.Repository) *QuizContainer {
	repo := NewRepository(db)
	service := NewService(repo, questionRepo)
	handler := NewHandler(service)

	return &QuizContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
