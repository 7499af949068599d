package attempt

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/OfficialSahil548k/MindMania/internal/config"
	"github.com/OfficialSahil548k/MindMania/internal/question"
	"github.com/OfficialSahil548k/MindMania/internal/quiz"
)

var (
	ErrQuizNotFound     = quiz.ErrQuizNotFound
	ErrAttemptNotFound  = errors.New("attempt not found")
	ErrNoActiveAttempt  = errors.New("no active attempt")
	ErrAlreadyCompleted = errors.New("attempt already completed")
)

type AttemptService interface {
	// Start returns the attempt and whether it was newly created.
	Start(ctx context.Context, quizID, userID uuid.UUID) (*Attempt, bool, error)
	Submit(ctx context.Context, quizID, userID uuid.UUID, answers []AnswerSubmission) (*ResultSummary, error)
	Get(ctx context.Context, attemptID uuid.UUID) (*AttemptView, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]AttemptSummary, error)
}

type attemptService struct {
	repo         AttemptRepository
	quizRepo     quiz.QuizRepository
	questionRepo question.Repository
}

func NewService(repo AttemptRepository, quizRepo quiz.QuizRepository, questionRepo question.Repository) AttemptService {
	return &attemptService{
		repo:         repo,
		quizRepo:     quizRepo,
		questionRepo: questionRepo,
	}
}

// Start returns the user's attempt at the quiz, creating a pending one if
// none exists. A pending attempt is returned unchanged so a reopened tab
// resumes instead of restarting; a completed attempt is terminal.
func (s *attemptService) Start(ctx context.Context, quizID, userID uuid.UUID) (*Attempt, bool, error) {
	log := config.WithContext(ctx)

	q, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, false, err
	}
	if q == nil {
		return nil, false, ErrQuizNotFound
	}

	existing, err := s.repo.FindByQuizAndUser(quizID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to look up existing attempt")
		return nil, false, err
	}
	if existing != nil {
		if existing.Status == AttemptStatusCompleted {
			return nil, false, ErrAlreadyCompleted
		}
		return existing, false, nil
	}

	a := &Attempt{
		ID:        uuid.New(),
		QuizID:    quizID,
		UserID:    userID,
		Status:    AttemptStatusPending,
		StartedAt: time.Now(),
	}
	if err := s.repo.Create(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a duplicate-tab race; the unique index is the authority.
			// Re-read and apply the same rules to the winner's row.
			log.WithFields(map[string]interface{}{
				"quiz_id": quizID.String(),
				"user_id": userID.String(),
			}).Warn("Concurrent attempt start detected, reusing existing attempt")

			existing, err := s.repo.FindByQuizAndUser(quizID, userID)
			if err != nil {
				return nil, false, err
			}
			if existing == nil {
				return nil, false, ErrAttemptNotFound
			}
			if existing.Status == AttemptStatusCompleted {
				return nil, false, ErrAlreadyCompleted
			}
			return existing, false, nil
		}
		log.WithError(err).Error("Failed to create attempt")
		return nil, false, err
	}

	log.WithField("attempt_id", a.ID.String()).Info("Attempt started")
	return a, true, nil
}

// Submit scores the answers against the authoritative question records and
// completes the attempt. Questions that no longer exist are excluded from
// both numerator and denominator rather than counted wrong.
func (s *attemptService) Submit(ctx context.Context, quizID, userID uuid.UUID, answers []AnswerSubmission) (*ResultSummary, error) {
	log := config.WithContext(ctx)

	q, err := s.quizRepo.FindByID(quizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	a, err := s.repo.FindByQuizAndUser(quizID, userID)
	if err != nil {
		log.WithError(err).Error("Failed to look up attempt")
		return nil, err
	}
	if a == nil {
		return nil, ErrNoActiveAttempt
	}
	if a.Status == AttemptStatusCompleted {
		return nil, ErrAlreadyCompleted
	}

	score := 0
	scored := make([]Answer, 0, len(answers))
	for _, ans := range answers {
		record, err := s.questionRepo.FindByID(ans.QuestionID)
		if err != nil {
			log.WithError(err).Error("Failed to fetch question for scoring")
			return nil, err
		}
		if record == nil {
			continue
		}
		// exact, case-sensitive match against the stored answer
		if record.CorrectAnswer == ans.SelectedOption {
			score++
		}
		scored = append(scored, Answer{
			ID:             uuid.New(),
			AttemptID:      a.ID,
			QuestionID:     record.ID,
			SelectedOption: ans.SelectedOption,
			OrderIndex:     len(scored),
		})
	}

	total := len(scored)
	percentage := 0.0
	if total > 0 {
		percentage = float64(score) / float64(total) * 100
	}
	passed := percentage >= float64(q.PassingScore)

	now := time.Now()
	a.Score = score
	a.Passed = passed
	a.Status = AttemptStatusCompleted
	a.CompletedAt = &now

	if err := s.repo.Complete(a, scored); err != nil {
		log.WithError(err).Error("Failed to persist scored attempt")
		return nil, err
	}

	log.WithFields(map[string]interface{}{
		"attempt_id": a.ID.String(),
		"score":      score,
		"total":      total,
		"passed":     passed,
	}).Info("Attempt submitted")

	return &ResultSummary{
		Score:          score,
		TotalQuestions: total,
		Passed:         passed,
		Percentage:     percentage,
	}, nil
}

// Get returns the attempt enriched with quiz and question details. While
// the quiz is live, correct answers are stripped; visibility depends only
// on the live flag, not on the caller's role.
func (s *attemptService) Get(ctx context.Context, attemptID uuid.UUID) (*AttemptView, error) {
	log := config.WithContext(ctx)

	a, err := s.repo.FindByID(attemptID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch attempt")
		return nil, err
	}
	if a == nil {
		return nil, ErrAttemptNotFound
	}

	q, err := s.quizRepo.FindByID(a.QuizID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch attempt quiz")
		return nil, err
	}
	if q == nil {
		return nil, ErrQuizNotFound
	}

	showCorrectAnswers := !q.IsLive

	views := make([]AnswerView, 0, len(a.Answers))
	for _, ans := range a.Answers {
		record, err := s.questionRepo.FindByID(ans.QuestionID)
		if err != nil {
			log.WithError(err).Error("Failed to fetch attempt question")
			return nil, err
		}
		// record may be nil when the question was deleted after submission;
		// the selected option stays visible either way.
		views = append(views, AnswerView{
			Question:       question.NewView(record, showCorrectAnswers),
			SelectedOption: ans.SelectedOption,
		})
	}

	return &AttemptView{
		ID:          a.ID,
		Quiz:        q,
		UserID:      a.UserID,
		Answers:     views,
		Score:       a.Score,
		Status:      a.Status,
		Passed:      a.Passed,
		StartedAt:   a.StartedAt,
		CompletedAt: a.CompletedAt,
	}, nil
}

func (s *attemptService) ListForUser(ctx context.Context, userID uuid.UUID) ([]AttemptSummary, error) {
	log := config.WithContext(ctx)

	attempts, err := s.repo.FindAllByUser(userID)
	if err != nil {
		log.WithError(err).Error("Failed to list attempts")
		return nil, err
	}

	summaries := make([]AttemptSummary, 0, len(attempts))
	for _, a := range attempts {
		title := ""
		if q, err := s.quizRepo.FindByID(a.QuizID); err != nil {
			log.WithError(err).Error("Failed to fetch quiz title for attempt list")
			return nil, err
		} else if q != nil {
			title = q.Title
		}
		summaries = append(summaries, AttemptSummary{
			ID:          a.ID,
			QuizID:      a.QuizID,
			QuizTitle:   title,
			Status:      a.Status,
			StartedAt:   a.StartedAt,
			CompletedAt: a.CompletedAt,
		})
	}
	return summaries, nil
}
