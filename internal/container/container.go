package container

import (
	"context"
	"log"
	"os"

	"github.com/OfficialSahil548k/MindMania/internal/attempt"
	"github.com/OfficialSahil548k/MindMania/internal/auth"
	"github.com/OfficialSahil548k/MindMania/internal/config"
	"github.com/OfficialSahil548k/MindMania/internal/institute"
	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
	"github.com/OfficialSahil548k/MindMania/internal/user"
)

type Container struct {
	UserContainer      *user.UserContainer
	InstituteContainer *institute.Container
	QuestionContainer  *question.QuestionContainer
	QuizContainer      *quiz.QuizContainer
	AttemptContainer   *attempt.AttemptContainer
}

func New() *Container {
	config.Init()
	auth.Init()

	dsn := os.Getenv("DATABASE_DSN")
	if err := config.Connect(context.Background(), dsn); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&institute.Institute{},
		&question.Question{},
		&quiz.Quiz{},
		&attempt.Attempt{},
		&attempt.Answer{},
	); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	userContainer := user.NewUserContainer(config.DB)
	instituteContainer := institute.NewContainer(config.DB)
	questionContainer := question.NewQuestionContainer(config.DB)
	quizContainer := quiz.NewQuizContainer(config.DB, questionContainer.Repo)
	attemptContainer := attempt.NewAttemptContainer(config.DB, quizContainer.Repo, questionContainer.Repo)

	return &Container{
		UserContainer:      userContainer,
		InstituteContainer: instituteContainer,
		QuestionContainer:  questionContainer,
		QuizContainer:      quizContainer,
		AttemptContainer:   attemptContainer,
	}
}
