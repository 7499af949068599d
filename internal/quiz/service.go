package quiz

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/OfficialSahil548k/MindMania/internal/config"
	"github.com/OfficialSahil548k/MindMania/internal/question"
)

var (
	ErrQuizNotFound = errors.New("quiz not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidQuiz  = errors.New("invalid quiz")
)

type QuizService interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateQuizDTO) (*Quiz, error)
	List(ctx context.Context) ([]Quiz, error)
	ListByInstitute(ctx context.Context, instituteID uuid.UUID) ([]Quiz, error)
	GetWithQuestions(ctx context.Context, quizID uuid.UUID) (*QuizWithQuestionsDTO, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type quizService struct {
	repo         QuizRepository
	questionRepo question.Repository
}

func NewService(repo QuizRepository, questionRepo question.Repository) QuizService {
	return &quizService{
		repo:         repo,
		questionRepo: questionRepo,
	}
}

func validPassingScore(score int) bool {
	return score >= 0 && score <= 100
}

func (s *quizService) Create(ctx context.Context, userID uuid.UUID, dto CreateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	if dto.Title == "" || dto.Category == "" {
		return nil, ErrInvalidQuiz
	}

	q := Quiz{
		ID:           uuid.New(),
		Title:        dto.Title,
		Description:  dto.Description,
		Category:     dto.Category,
		QuestionIDs:  datatypes.NewJSONSlice(dto.Questions),
		TimeLimit:    10,
		PassingScore: 50,
		IsLive:       true,
		StartDate:    dto.StartDate,
		EndDate:      dto.EndDate,
		InstituteID:  dto.InstituteID,
		CreatedBy:    userID,
	}
	if dto.TimeLimit != nil {
		q.TimeLimit = *dto.TimeLimit
	}
	if dto.PassingScore != nil {
		q.PassingScore = *dto.PassingScore
	}
	if dto.IsPublished != nil {
		q.IsPublished = *dto.IsPublished
	}
	if dto.IsLive != nil {
		q.IsLive = *dto.IsLive
	}

	if q.TimeLimit <= 0 || !validPassingScore(q.PassingScore) {
		return nil, ErrInvalidQuiz
	}

	if err := s.repo.Create(&q); err != nil {
		log.WithError(err).Error("Failed to create quiz")
		return nil, err
	}

	log.WithField("quiz_id", q.ID.String()).Info("Quiz created")
	return &q, nil
}

func (s *quizService) List(ctx context.Context) ([]Quiz, error) {
	return s.repo.FindAll()
}

func (s *quizService) ListByInstitute(ctx context.Context, instituteID uuid.UUID) ([]Quiz, error) {
	return s.repo.FindAllByInstitute(instituteID)
}

// GetWithQuestions resolves the quiz's question references for the player.
// Correct answers are never included here; dangling references are skipped.
func (s *quizService) GetWithQuestions(ctx context.Context, quizID uuid.UUID) (*QuizWithQuestionsDTO, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	views := make([]*question.QuestionView, 0, len(q.QuestionIDs))
	for _, qid := range q.QuestionIDs {
		record, err := s.questionRepo.FindByID(qid)
		if err != nil {
			log.WithError(err).Error("Failed to fetch quiz question")
			return nil, err
		}
		if record == nil {
			continue
		}
		views = append(views, question.NewView(record, false))
	}

	return &QuizWithQuestionsDTO{Quiz: q, Questions: views}, nil
}

func (s *quizService) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateQuizDTO) (*Quiz, error) {
	log := config.WithContext(ctx)

	q, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}
	if q.CreatedBy != userID {
		return nil, ErrUnauthorized
	}

	if dto.Title != nil {
		q.Title = *dto.Title
	}
	if dto.Description != nil {
		q.Description = *dto.Description
	}
	if dto.Category != nil {
		q.Category = *dto.Category
	}
	if dto.Questions != nil {
		q.QuestionIDs = datatypes.NewJSONSlice(*dto.Questions)
	}
	if dto.TimeLimit != nil {
		q.TimeLimit = *dto.TimeLimit
	}
	if dto.PassingScore != nil {
		q.PassingScore = *dto.PassingScore
	}
	if dto.IsPublished != nil {
		q.IsPublished = *dto.IsPublished
	}
	if dto.IsLive != nil {
		q.IsLive = *dto.IsLive
	}
	if dto.StartDate != nil {
		q.StartDate = dto.StartDate
	}
	if dto.EndDate != nil {
		q.EndDate = dto.EndDate
	}
	if dto.InstituteID != nil {
		q.InstituteID = dto.InstituteID
	}

	if q.Title == "" || q.Category == "" || q.TimeLimit <= 0 || !validPassingScore(q.PassingScore) {
		return nil, ErrInvalidQuiz
	}

	if err := s.repo.Update(q); err != nil {
		log.WithError(err).Error("Failed to update quiz")
		return nil, err
	}
	return q, nil
}

func (s *quizService) Delete(ctx context.Context, id, userID uuid.UUID) error {
	q, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if q == nil {
		return ErrQuizNotFound
	}
	if q.CreatedBy != userID {
		return ErrUnauthorized
	}
	return s.repo.Delete(id)
}
