package question

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Question struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Text          string                      `gorm:"type:text;not null" json:"text"`
	Type          QuestionType                `gorm:"type:text;not null;default:'MCQ'" json:"type"`
	Options       datatypes.JSONSlice[string] `gorm:"type:jsonb;not null" json:"options"`
	CorrectAnswer string                      `gorm:"type:text;not null" json:"correctAnswer"`
	Tags          datatypes.JSONSlice[string] `gorm:"type:jsonb" json:"tags"`
	Difficulty    Difficulty                  `gorm:"type:text;not null;default:'Medium'" json:"difficulty"`
	CreatedBy     uuid.UUID                   `gorm:"column:created_by;type:uuid;not null;index" json:"createdBy"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime" json:"updatedAt"`
}
