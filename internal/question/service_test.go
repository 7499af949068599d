package question_test

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/OfficialSahil548k/MindMania/internal/question"
)

type fakeRepo struct {
	questions map[uuid.UUID]*question.Question
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{questions: map[uuid.UUID]*question.Question{}}
}

func (r *fakeRepo) Create(q *question.Question) error {
	cp := *q
	r.questions[q.ID] = &cp
	return nil
}

func (r *fakeRepo) FindByID(id uuid.UUID) (*question.Question, error) {
	q, ok := r.questions[id]
	if !ok {
		return nil, nil
	}
	cp := *q
	return &cp, nil
}

func (r *fakeRepo) FindAllByCreator(userID uuid.UUID) ([]question.Question, error) {
	var out []question.Question
	for _, q := range r.questions {
		if q.CreatedBy == userID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(q *question.Question) error {
	cp := *q
	r.questions[q.ID] = &cp
	return nil
}

func (r *fakeRepo) Delete(id uuid.UUID) error {
	delete(r.questions, id)
	return nil
}

func TestCreateQuestion(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("ValidMCQ", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		q, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Capital of France?",
			Type:          question.QuestionTypeMCQ,
			Options:       []string{"Paris", "London", "Berlin"},
			CorrectAnswer: "Paris",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if q.Difficulty != question.DifficultyMedium {
			t.Errorf("Expected difficulty to default to Medium, got: %s", q.Difficulty)
		}
		if q.CreatedBy != userID {
			t.Errorf("Expected creator %s, got: %s", userID, q.CreatedBy)
		}
	})

	t.Run("DefaultsToMCQ", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		q, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "2+2?",
			Options:       []string{"3", "4"},
			CorrectAnswer: "4",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if q.Type != question.QuestionTypeMCQ {
			t.Errorf("Expected type to default to MCQ, got: %s", q.Type)
		}
	})

	t.Run("TrueFalseDefaultsOptions", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		q, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Go has generics.",
			Type:          question.QuestionTypeTrueFalse,
			CorrectAnswer: "True",
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if len(q.Options) != 2 || q.Options[0] != "True" || q.Options[1] != "False" {
			t.Errorf("Expected defaulted True/False options, got: %v", q.Options)
		}
	})

	t.Run("TrueFalseRejectsOtherAnswers", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Go has generics.",
			Type:          question.QuestionTypeTrueFalse,
			CorrectAnswer: "Maybe",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsMissingText", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Options:       []string{"A", "B"},
			CorrectAnswer: "A",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsSingleOptionMCQ", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Pick one",
			Options:       []string{"A"},
			CorrectAnswer: "A",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsDuplicateOptions", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Pick one",
			Options:       []string{"A", "A"},
			CorrectAnswer: "A",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsEmptyOption", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Pick one",
			Options:       []string{"A", ""},
			CorrectAnswer: "A",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsAnswerOutsideOptions", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Pick one",
			Options:       []string{"A", "B"},
			CorrectAnswer: "C",
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})

	t.Run("RejectsUnknownDifficulty", func(t *testing.T) {
		svc := question.NewService(newFakeRepo())

		_, err := svc.Create(ctx, userID, question.CreateQuestionDTO{
			Text:          "Pick one",
			Options:       []string{"A", "B"},
			CorrectAnswer: "A",
			Difficulty:    question.Difficulty("Impossible"),
		})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Expected ErrInvalidQuestion, got: %v", err)
		}
	})
}

func TestUpdateQuestion(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	seed := func(t *testing.T) (question.Service, *question.Question) {
		t.Helper()
		svc := question.NewService(newFakeRepo())
		q, err := svc.Create(ctx, owner, question.CreateQuestionDTO{
			Text:          "Capital of France?",
			Options:       []string{"Paris", "London"},
			CorrectAnswer: "Paris",
		})
		if err != nil {
			t.Fatalf("Seed failed: %v", err)
		}
		return svc, q
	}

	t.Run("OwnerCanUpdate", func(t *testing.T) {
		svc, q := seed(t)

		text := "Capital of France is?"
		updated, err := svc.Update(ctx, q.ID, owner, question.UpdateQuestionDTO{Text: &text})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if updated.Text != text {
			t.Errorf("Expected updated text, got: %q", updated.Text)
		}
	})

	t.Run("OtherUserForbidden", func(t *testing.T) {
		svc, q := seed(t)

		text := "hijacked"
		_, err := svc.Update(ctx, q.ID, uuid.New(), question.UpdateQuestionDTO{Text: &text})
		if err != question.ErrUnauthorized {
			t.Fatalf("Expected ErrUnauthorized, got: %v", err)
		}
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _ := seed(t)

		text := "x"
		_, err := svc.Update(ctx, uuid.New(), owner, question.UpdateQuestionDTO{Text: &text})
		if err != question.ErrQuestionNotFound {
			t.Fatalf("Expected ErrQuestionNotFound, got: %v", err)
		}
	})

	t.Run("RevalidatesAnswerAgainstNewOptions", func(t *testing.T) {
		svc, q := seed(t)

		options := []string{"Berlin", "Madrid"}
		_, err := svc.Update(ctx, q.ID, owner, question.UpdateQuestionDTO{Options: &options})
		if err != question.ErrInvalidQuestion {
			t.Fatalf("Options excluding the stored answer must be rejected, got: %v", err)
		}
	})
}

func TestDeleteQuestion(t *testing.T) {
	ctx := context.Background()
	owner := uuid.New()

	repo := newFakeRepo()
	svc := question.NewService(repo)
	q, err := svc.Create(ctx, owner, question.CreateQuestionDTO{
		Text:          "Capital of France?",
		Options:       []string{"Paris", "London"},
		CorrectAnswer: "Paris",
	})
	if err != nil {
		t.Fatalf("Seed failed: %v", err)
	}

	if err := svc.Delete(ctx, q.ID, uuid.New()); err != question.ErrUnauthorized {
		t.Fatalf("Expected ErrUnauthorized for a non-owner, got: %v", err)
	}
	if err := svc.Delete(ctx, q.ID, owner); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if len(repo.questions) != 0 {
		t.Errorf("Expected the question to be removed, got %d left", len(repo.questions))
	}
}
