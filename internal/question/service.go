package question

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/OfficialSahil548k/MindMania/internal/config"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidQuestion  = errors.New("invalid question")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateQuestionDTO) (*Question, error)
	ListMine(ctx context.Context, userID uuid.UUID) ([]Question, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateQuestionDTO) (*Question, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// validate enforces the write-time invariant: the correct answer must always
// be resolvable against the current option set. Nothing re-checks this at
// scoring time.
func validate(q *Question) error {
	if q.Text == "" {
		return ErrInvalidQuestion
	}
	if !q.Type.IsValid() || !q.Difficulty.IsValid() {
		return ErrInvalidQuestion
	}

	switch q.Type {
	case QuestionTypeTrueFalse:
		if len(q.Options) == 0 {
			q.Options = datatypes.NewJSONSlice([]string{"True", "False"})
		}
		if q.CorrectAnswer != "True" && q.CorrectAnswer != "False" {
			return ErrInvalidQuestion
		}
	case QuestionTypeMCQ:
		if len(q.Options) < 2 {
			return ErrInvalidQuestion
		}
	}

	seen := make(map[string]struct{}, len(q.Options))
	found := false
	for _, opt := range q.Options {
		if opt == "" {
			return ErrInvalidQuestion
		}
		if _, dup := seen[opt]; dup {
			return ErrInvalidQuestion
		}
		seen[opt] = struct{}{}
		if opt == q.CorrectAnswer {
			found = true
		}
	}
	if !found {
		return ErrInvalidQuestion
	}
	return nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q := Question{
		ID:            uuid.New(),
		Text:          dto.Text,
		Type:          dto.Type,
		Options:       datatypes.NewJSONSlice(dto.Options),
		CorrectAnswer: dto.CorrectAnswer,
		Tags:          datatypes.NewJSONSlice(dto.Tags),
		Difficulty:    dto.Difficulty,
		CreatedBy:     userID,
	}
	if q.Type == "" {
		q.Type = QuestionTypeMCQ
	}
	if q.Difficulty == "" {
		q.Difficulty = DifficultyMedium
	}

	if err := validate(&q); err != nil {
		return nil, err
	}

	if err := s.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create question")
		return nil, err
	}

	log.WithField("question_id", q.ID.String()).Info("Question created")
	return &q, nil
}

func (s *service) ListMine(ctx context.Context, userID uuid.UUID) ([]Question, error) {
	return s.repo.FindAllByCreator(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateQuestionDTO) (*Question, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if q.CreatedBy != userID {
		return nil, ErrUnauthorized
	}

	if dto.Text != nil {
		q.Text = *dto.Text
	}
	if dto.Type != nil {
		q.Type = *dto.Type
	}
	if dto.Options != nil {
		q.Options = datatypes.NewJSONSlice(*dto.Options)
	}
	if dto.CorrectAnswer != nil {
		q.CorrectAnswer = *dto.CorrectAnswer
	}
	if dto.Tags != nil {
		q.Tags = datatypes.NewJSONSlice(*dto.Tags)
	}
	if dto.Difficulty != nil {
		q.Difficulty = *dto.Difficulty
	}

	if err := validate(q); err != nil {
		return nil, err
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update question")
		return nil, err
	}
	return q, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuestionNotFound
	}
	if q.CreatedBy != userID {
		return ErrUnauthorized
	}
	return s.repo.Delete(id)
}
