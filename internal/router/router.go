package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/OfficialSahil548k/MindMania/internal/attempt"
	"github.com/OfficialSahil548k/MindMania/internal/auth"
	"github.com/OfficialSahil548k/MindMania/internal/institute"
	"github.com/OfficialSahil548k/MindMania/internal/middlewares"
	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
	"github.com/OfficialSahil548k/MindMania/internal/user"
)

type RouterConfig struct {
	UserHandler      *user.Handler
	InstituteHandler *institute.Handler
	QuestionHandler  *question.Handler
	QuizHandler      *quiz.Handler
	AttemptHandler   *attempt.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("Quiz API running..."))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", cfg.UserHandler.Register)
			r.Post("/login", cfg.UserHandler.Login)
			r.Post("/logout", auth.NewHandler().Logout)
		})

		r.Mount("/institutes", institute.Routes(cfg.InstituteHandler))
		r.Mount("/questions", question.Routes(cfg.QuestionHandler))
		r.Mount("/quizzes", quiz.Routes(cfg.QuizHandler))
		r.Mount("/attempts", attempt.Routes(cfg.AttemptHandler))

		r.Group(func(r chi.Router) {
			r.Use(auth.AuthMiddleware)
			r.Mount("/user", user.Routes(cfg.UserHandler))
		})
	})

	return r
}
