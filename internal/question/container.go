package question

import "gorm.io/gorm"

type QuestionContainer struct {
	Repo    Repository
	Service Service
	Handler *Handler
}

func NewQuestionContainer(db *gorm.DB) *QuestionContainer {
	repo := NewRepository(db)
	service := NewService(repo)
	handler := NewHandler(service)

	return &QuestionContainer{
		Repo:    repo,
		Service: service,
		Handler: handler,
	}
}
