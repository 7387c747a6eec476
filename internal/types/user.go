package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type User struct {
	ID            uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Username      string         `gorm:"uniqueIndex;not null;column:username" json:"username"`
	Email         string         `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Password      string         `gorm:"not null;column:password" json:"-"`
	CareerProfile datatypes.JSON `gorm:"type:jsonb;column:career_profile" json:"career_profile,omitempty"`
	CreatedAt     time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time      `gorm:"not null" json:"updated_at"`
}

func (User) TableName() string {
	return "user"
}

// CareerProfile is the onboarding snapshot stored on the user row. It feeds
// insight and roadmap generation but is not a generation input contract by
// itself; callers pass ProfileInput explicitly.
type CareerProfile struct {
	Industry    string   `json:"industry"`
	CurrentRole string   `json:"currentRole"`
	DesiredRole string   `json:"desiredRole"`
	Skills      []string `json:"skills"`
}
