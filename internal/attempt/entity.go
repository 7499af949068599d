package attempt

import (
	"time"

	"github.com/google/uuid"
)

// Attempt is one user's single try at one quiz. The composite unique index
// is the authority for the one-attempt-per-(quiz,user) invariant; the
// service treats a duplicate-key insert as "attempt already exists".
type Attempt struct {
	ID          uuid.UUID     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	QuizID      uuid.UUID     `gorm:"column:quiz_id;type:uuid;not null;uniqueIndex:idx_attempts_quiz_user" json:"quizId"`
	UserID      uuid.UUID     `gorm:"column:user_id;type:uuid;not null;uniqueIndex:idx_attempts_quiz_user" json:"userId"`
	Answers     []Answer      `gorm:"foreignKey:AttemptID;constraint:OnDelete:CASCADE" json:"answers"`
	Score       int           `gorm:"not null;default:0" json:"score"`
	Status      AttemptStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	Passed      bool          `gorm:"not null;default:false" json:"passed"`
	StartedAt   time.Time     `gorm:"autoCreateTime" json:"startedAt"`
	CompletedAt *time.Time    `json:"completedAt,omitempty"`
}

type Answer struct {
	ID             uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"-"`
	AttemptID      uuid.UUID `gorm:"column:attempt_id;type:uuid;not null;index" json:"-"`
	QuestionID     uuid.UUID `gorm:"column:question_id;type:uuid;not null" json:"questionId"`
	SelectedOption string    `gorm:"type:text;not null" json:"selectedOption"`
	OrderIndex     int       `gorm:"not null" json:"-"`
}
