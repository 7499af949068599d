package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Quiz struct {
	ID           uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Title        string                         `gorm:"type:text;not null" json:"title"`
	Description  string                         `gorm:"type:text" json:"description,omitempty"`
	Category     string                         `gorm:"type:text;not null" json:"category"`
	QuestionIDs  datatypes.JSONSlice[uuid.UUID] `gorm:"column:questions;type:jsonb" json:"questions"`
	TimeLimit    int                            `gorm:"not null;default:10" json:"timeLimit"`
	PassingScore int                            `gorm:"not null;default:50" json:"passingScore"`
	IsPublished  bool                           `gorm:"not null;default:false" json:"isPublished"`
	IsLive       bool                           `gorm:"not null;default:true" json:"isLive"`
	StartDate    *time.Time                     `json:"startDate,omitempty"`
	EndDate      *time.Time                     `json:"endDate,omitempty"`
	InstituteID  *uuid.UUID                     `gorm:"column:institute_id;type:uuid" json:"instituteId,omitempty"`
	CreatedBy    uuid.UUID                      `gorm:"column:created_by;type:uuid;not null;index" json:"createdBy"`
	CreatedAt    time.Time                      `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time                      `gorm:"autoUpdateTime" json:"updatedAt"`
}
