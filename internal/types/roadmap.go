package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Roadmap is the single live learning roadmap for a user. The milestones
// column is replaced wholesale on every regeneration; old milestones are
// discarded, never merged.
type Roadmap struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User        *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	DesiredRole string         `gorm:"not null;column:desired_role" json:"desired_role"`
	Milestones  datatypes.JSON `gorm:"type:jsonb;column:milestones" json:"milestones"`
	LastUpdated time.Time      `gorm:"column:last_updated" json:"last_updated"`
	CreatedAt   time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time      `gorm:"not null" json:"updated_at"`
}

func (Roadmap) TableName() string {
	return "roadmap"
}

type MilestoneResource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Milestone is one roadmap node. IDs are stable slugs, unique within one
// roadmap's milestones sequence.
type Milestone struct {
	ID         string              `json:"id"`
	Label      string              `json:"label"`
	Difficulty string              `json:"difficulty"`
	Resources  []MilestoneResource `json:"resources"`
	Subtasks   []string            `json:"subtasks"`
}

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)
