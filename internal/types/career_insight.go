package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CareerInsight holds one generated insight per (user, target role). The
// row is overwritten in place on regeneration for the same role; a user
// accumulates one row per distinct target role ever requested.
type CareerInsight struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID      `gorm:"type:uuid;not null;index:idx_user_target_role,unique" json:"user_id"`
	User               *User          `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"user,omitempty"`
	TargetRole         string         `gorm:"not null;index:idx_user_target_role,unique" json:"target_role"`
	Industry           string         `gorm:"column:industry" json:"industry"`
	CurrentRole        string         `gorm:"column:current_role" json:"current_role"`
	Skills             datatypes.JSON `gorm:"type:jsonb;column:skills" json:"skills"`
	IndustryTrends     datatypes.JSON `gorm:"type:jsonb;column:industry_trends" json:"industry_trends"`
	InDemandSkills     datatypes.JSON `gorm:"type:jsonb;column:in_demand_skills" json:"in_demand_skills"`
	SkillGapAnalysis   datatypes.JSON `gorm:"type:jsonb;column:skill_gap_analysis" json:"skill_gap_analysis"`
	ActionableFeedback string         `gorm:"column:actionable_feedback" json:"actionable_feedback"`
	GeneratedAt        time.Time      `gorm:"column:generated_at" json:"generated_at"`
	CreatedAt          time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt          time.Time      `gorm:"not null" json:"updated_at"`
}

func (CareerInsight) TableName() string {
	return "career_insight"
}

// SkillGapAnalysis is the JSON shape stored in the skill_gap_analysis
// column. matchedSkills and missingSkills are not enforced disjoint.
type SkillGapAnalysis struct {
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
}
