package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/awslabs/aws-lambda-go-api-proxy/httpadapter"

	_ "github.com/OfficialSahil548k/MindMania/docs"
	"github.com/OfficialSahil548k/MindMania/internal/config"
	"github.com/OfficialSahil548k/MindMania/internal/container"
	"github.com/OfficialSahil548k/MindMania/internal/router"
)

// @title MindMania Quiz API
// @version 1.0
// @description Quiz platform backend: question banks, quizzes and scored attempts.
// @BasePath /api
func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:      c.UserContainer.Handler,
		InstituteHandler: c.InstituteContainer.Handler,
		QuestionHandler:  c.QuestionContainer.Handler,
		QuizHandler:      c.QuizContainer.Handler,
		AttemptHandler:   c.AttemptContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		lambda.Start(httpadapter.New(r).ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	log := config.WithContext(nil)
	log.WithField("port", port).Info("Server running")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.WithError(err).Fatal("Server stopped")
	}
}
