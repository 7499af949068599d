package attempt

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AttemptRepository interface {
	// Create inserts a fresh attempt. A gorm.ErrDuplicatedKey return means
	// another attempt for the same (quiz, user) already exists.
	Create(a *Attempt) error
	FindByID(id uuid.UUID) (*Attempt, error)
	FindByQuizAndUser(quizID, userID uuid.UUID) (*Attempt, error)
	FindAllByUser(userID uuid.UUID) ([]Attempt, error)
	// Complete persists the scored attempt and replaces its answers in one
	// transaction.
	Complete(a *Attempt, answers []Answer) error
}

type attemptRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) AttemptRepository {
	return &attemptRepository{db: db}
}

func orderedAnswers(db *gorm.DB) *gorm.DB {
	return db.Order("order_index ASC")
}

func (r *attemptRepository) Create(a *Attempt) error {
	return r.db.Create(a).Error
}

func (r *attemptRepository) FindByID(id uuid.UUID) (*Attempt, error) {
	var a Attempt
	if err := r.db.Preload("Answers", orderedAnswers).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) FindByQuizAndUser(quizID, userID uuid.UUID) (*Attempt, error) {
	var a Attempt
	if err := r.db.
		Preload("Answers", orderedAnswers).
		First(&a, "quiz_id = ? AND user_id = ?", quizID, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}

func (r *attemptRepository) FindAllByUser(userID uuid.UUID) ([]Attempt, error) {
	var attempts []Attempt
	if err := r.db.
		Where("user_id = ?", userID).
		Order("started_at DESC").
		Find(&attempts).Error; err != nil {
		return nil, err
	}
	return attempts, nil
}

func (r *attemptRepository) Complete(a *Attempt, answers []Answer) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&Answer{}, "attempt_id = ?", a.ID).Error; err != nil {
			return err
		}
		if len(answers) > 0 {
			if err := tx.Create(&answers).Error; err != nil {
				return err
			}
		}
		return tx.Model(&Attempt{}).
			Where("id = ?", a.ID).
			Updates(map[string]interface{}{
				"score":        a.Score,
				"passed":       a.Passed,
				"status":       a.Status,
				"completed_at": a.CompletedAt,
			}).Error
	})
}
