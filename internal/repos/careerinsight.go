package repos

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/types"
)

type CareerInsightRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.CareerInsight) (*types.CareerInsight, error)
	GetByUserAndRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, targetRole string) (*types.CareerInsight, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CareerInsight, error)
}

type careerInsightRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerInsightRepo(db *gorm.DB, baseLog *logger.Logger) CareerInsightRepo {
	repoLog := baseLog.With("repo", "CareerInsightRepo")
	return &careerInsightRepo{db: db, log: repoLog}
}

// Upsert is an atomic find-and-replace keyed by (user_id, target_role).
// Concurrent upserts for the same key are last-write-wins; the repo adds no
// serialization of its own.
func (r *careerInsightRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.CareerInsight) (*types.CareerInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if row == nil {
		return nil, nil
	}
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND target_role = ?", row.UserID, row.TargetRole).
		Assign(map[string]any{
			"industry":            row.Industry,
			"current_role":        row.CurrentRole,
			"skills":              row.Skills,
			"industry_trends":     row.IndustryTrends,
			"in_demand_skills":    row.InDemandSkills,
			"skill_gap_analysis":  row.SkillGapAnalysis,
			"actionable_feedback": row.ActionableFeedback,
			"generated_at":        row.GeneratedAt,
		}).
		FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return r.GetByUserAndRole(ctx, tx, row.UserID, row.TargetRole)
}

func (r *careerInsightRepo) GetByUserAndRole(ctx context.Context, tx *gorm.DB, userID uuid.UUID, targetRole string) (*types.CareerInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.CareerInsight
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND target_role = ?", userID, targetRole).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}

func (r *careerInsightRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CareerInsight, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CareerInsight
	if userID == uuid.Nil {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
