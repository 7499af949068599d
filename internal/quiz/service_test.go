package quiz_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
)

type fakeQuizRepo struct {
	quizzes map[uuid.UUID]*quiz.Quiz
}

func newFakeQuizRepo() *fakeQuizRepo {
	return &fakeQuizRepo{quizzes: map[uuid.UUID]*quiz.Quiz{}}
}

func (r *fakeQuizRepo) Create(q *quiz.Quiz) error {
	cp := *q
	r.quizzes[q.ID] = &cp
	return nil
}

func (r *fakeQuizRepo) FindByID(id uuid.UUID) (*quiz.Quiz, error) {
	q, ok := r.quizzes[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuizRepo) FindAll() ([]quiz.Quiz, error) {
	var out []quiz.Quiz
	for _, q := range r.quizzes {
		out = append(out, *q)
	}
	return out, nil
}

func (r *fakeQuizRepo) FindAllByInstitute(instituteID uuid.UUID) ([]quiz.Quiz, error) {
	var out []quiz.Quiz
	for _, q := range r.quizzes {
		if q.InstituteID != nil && *q.InstituteID == instituteID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuizRepo) Update(q *quiz.Quiz) error {
	cp := *q
	r.quizzes[q.ID] = &cp
	return nil
}

func (r *fakeQuizRepo) Delete(id uuid.UUID) error {
	delete(r.quizzes, id)
	return nil
}

type fakeQuestionRepo struct {
	questions map[uuid.UUID]*question.Question
}

func newFakeQuestionRepo() *fakeQuestionRepo {
	return &fakeQuestionRepo{questions: map[uuid.UUID]*question.Question{}}
}

func (r *fakeQuestionRepo) Create(q *question.Question) error {
	cp := *q
	r.questions[q.ID] = &cp
	return nil
}

func (r *fakeQuestionRepo) FindByID(id uuid.UUID) (*question.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeQuestionRepo) FindAllByCreator(userID uuid.UUID) ([]question.Question, error) {
	var out []question.Question
	for _, q := range r.questions {
		if q.CreatedBy == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeQuestionRepo) Update(q *question.Question) error {
	cp := *q
	r.questions[q.ID] = &cp
	return nil
}

func (r *fakeQuestionRepo) Delete(id uuid.UUID) error {
	delete(r.questions, id)
	return nil
}

func intPtr(v int) *int { return &v }

func TestCreateQuiz(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("AppliesDefaults", func(t *testing.T) {
		svc := quiz.NewService(newFakeQuizRepo(), newFakeQuestionRepo())

		q, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{
			Title:    "Go Basics",
			Category: "programming",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if q.TimeLimit != 10 {
			t.Errorf("Expected default time limit 10, got: %d", q.TimeLimit)
		}
		if q.PassingScore != 50 {
			t.Errorf("Expected default passing score 50, got: %d", q.PassingScore)
		}
		if !q.IsLive {
			t.Error("Expected quizzes to default to live")
		}
		if q.IsPublished {
			t.Error("Expected quizzes to default to unpublished")
		}
	})

	t.Run("RequiresTitleAndCategory", func(t *testing.T) {
		svc := quiz.NewService(newFakeQuizRepo(), newFakeQuestionRepo())

		if _, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{Category: "programming"}); err != quiz.ErrInvalidQuiz {
			t.Errorf("Expected ErrInvalidQuiz without a title, got: %v", err)
		}
		if _, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{Title: "Go Basics"}); err != quiz.ErrInvalidQuiz {
			t.Errorf("Expected ErrInvalidQuiz without a category, got: %v", err)
		}
	})

	t.Run("RejectsPassingScoreOutOfRange", func(t *testing.T) {
		svc := quiz.NewService(newFakeQuizRepo(), newFakeQuestionRepo())

		for _, score := range []int{-1, 101} {
			_, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{
				Title:        "Go Basics",
				Category:     "programming",
				PassingScore: intPtr(score),
			})
			if err != quiz.ErrInvalidQuiz {
				t.Errorf("Passing score %d must be rejected, got: %v", score, err)
			}
		}
	})

	t.Run("RejectsNonPositiveTimeLimit", func(t *testing.T) {
		svc := quiz.NewService(newFakeQuizRepo(), newFakeQuestionRepo())

		_, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{
			Title:     "Go Basics",
			Category:  "programming",
			TimeLimit: intPtr(0),
		})
		if err != quiz.ErrInvalidQuiz {
			t.Errorf("Zero time limit must be rejected, got: %v", err)
		}
	})
}

func TestGetQuizWithQuestions(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	quizRepo := newFakeQuizRepo()
	questionRepo := newFakeQuestionRepo()
	svc := quiz.NewService(quizRepo, questionRepo)

	q1 := uuid.New()
	questionRepo.Create(&question.Question{
		ID:            q1,
		Text:          "Capital of France?",
		Type:          question.QuestionTypeMCQ,
		Options:       datatypes.NewJSONSlice([]string{"Paris", "London"}),
		CorrectAnswer: "Paris",
		Difficulty:    question.DifficultyEasy,
		CreatedBy:     userID,
	})
	dangling := uuid.New()

	created, err := svc.Create(ctx, userID, quiz.CreateQuizDTO{
		Title:     "Geography",
		Category:  "general",
		Questions: []uuid.UUID{q1, dangling},
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetWithQuestions(ctx, uuid.New())
		if err != quiz.ErrQuizNotFound {
			t.Fatalf("Expected ErrQuizNotFound, got: %v", err)
		}
	})

	t.Run("ResolvesQuestionsWithoutAnswers", func(t *testing.T) {
		result, err := svc.GetWithQuestions(ctx, created.ID)
		if err != nil {
			t.Fatalf("GetWithQuestions failed: %v", err)
		}
		if len(result.Questions) != 1 {
			t.Fatalf("Dangling reference must be skipped, got %d questions", len(result.Questions))
		}
		if result.Questions[0].CorrectAnswer != "" {
			t.Error("Player payload must never include the correct answer")
		}
		if result.Questions[0].Text != "Capital of France?" {
			t.Errorf("Unexpected question text: %q", result.Questions[0].Text)
		}
	})
}

func TestUpdateQuiz(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	seed := func(t *testing.T) (quiz.QuizService, *quiz.Quiz) {
		t.Helper()
		svc := quiz.NewService(newFakeQuizRepo(), newFakeQuestionRepo())
		q, err := svc.Create(ctx, owner, quiz.CreateQuizDTO{
			Title:    "Go Basics",
			Category: "programming",
		})
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		return svc, q
	}

	t.Run("OwnerCanToggleLive", func(t *testing.T) {
		svc, q := seed(t)

		live := false
		updated, err := svc.Update(ctx, q.ID, owner, quiz.UpdateQuizDTO{IsLive: &live})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.IsLive {
			t.Error("Expected the quiz to be taken off live")
		}
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		svc, q := seed(t)

		title := "hijacked"
		_, err := svc.Update(ctx, q.ID, uuid.New(), quiz.UpdateQuizDTO{Title: &title})
		if err != quiz.ErrUnauthorized {
			t.Fatalf("Expected ErrUnauthorized, got: %v", err)
		}
	})

	t.Run("RevalidatesPassingScore", func(t *testing.T) {
		svc, q := seed(t)

		_, err := svc.Update(ctx, q.ID, owner, quiz.UpdateQuizDTO{PassingScore: intPtr(150)})
		if err != quiz.ErrInvalidQuiz {
			t.Fatalf("Expected ErrInvalidQuiz, got: %v", err)
		}
	})
}

func TestDeleteQuiz(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	quizRepo := newFakeQuizRepo()
	svc := quiz.NewService(quizRepo, newFakeQuestionRepo())
	q, err := svc.Create(ctx, owner, quiz.CreateQuizDTO{Title: "Go Basics", Category: "programming"})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if err := svc.Delete(ctx, q.ID, uuid.New()); err != quiz.ErrUnauthorized {
		t.Fatalf("Expected ErrUnauthorized for a non-owner, got: %v", err)
	}
	if err := svc.Delete(ctx, q.ID, owner); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(quizRepo.quizzes) != 0 {
		t.Errorf("Expected the quiz to be removed, got %d left", len(quizRepo.quizzes))
	}
}
