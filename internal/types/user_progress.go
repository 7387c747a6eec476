package types

import (
	"time"

	"github.com/google/uuid"
)

// UserProgress is one completed-milestone marker. RoadmapID is the
// milestone id string, deliberately not a foreign key into the roadmap
// row: the ledger outlives roadmap regeneration, so rows referencing ids
// absent from the current roadmap are expected.
type UserProgress struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_user_node,unique" json:"user_id"`
	User        *User      `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	RoadmapID   string     `gorm:"not null;column:roadmap_id;index:idx_user_node,unique" json:"roadmap_id"`
	Completed   bool       `gorm:"not null;column:completed" json:"completed"`
	CompletedAt *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt   time.Time  `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"not null" json:"updated_at"`
}

func (UserProgress) TableName() string {
	return "user_progress"
}
