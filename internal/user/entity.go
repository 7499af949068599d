package user

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleStudent    UserRole = "student"
	UserRoleInstructor UserRole = "instructor"
	UserRoleAdmin      UserRole = "admin"
)

var AllRoles = []UserRole{
	UserRoleStudent,
	UserRoleInstructor,
	UserRoleAdmin,
}

func (r UserRole) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}

type User struct {
	ID           uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name         string    `gorm:"type:text;not null" json:"name"`
	Email        string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password     string    `gorm:"type:text" json:"-"`
	Role         UserRole  `gorm:"type:text;not null;default:'student'" json:"role"`
	ProfileImage string    `gorm:"type:text" json:"profileImage"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"createdAt"`
}
