package repos

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/types"
)

type RoadmapRepo interface {
	Replace(ctx context.Context, tx *gorm.DB, row *types.Roadmap) (*types.Roadmap, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Roadmap, error)
}

type roadmapRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRoadmapRepo(db *gorm.DB, baseLog *logger.Logger) RoadmapRepo {
	repoLog := baseLog.With("repo", "RoadmapRepo")
	return &roadmapRepo{db: db, log: repoLog}
}

// Replace upserts the single roadmap row for a user. Regenerating for a
// different desired role silently discards the prior role's milestones;
// there is no retention and no merge.
func (r *roadmapRepo) Replace(ctx context.Context, tx *gorm.DB, row *types.Roadmap) (*types.Roadmap, error) {
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
	if row.LastUpdated.IsZero() {
		row.LastUpdated = time.Now()
	}

	if err := transaction.WithContext(ctx).
		Where("user_id = ?", row.UserID).
		Assign(map[string]any{
			"desired_role": row.DesiredRole,
			"milestones":   row.Milestones,
			"last_updated": row.LastUpdated,
		}).
		FirstOrCreate(row).Error; err != nil {
		return nil, err
	}
	return r.GetByUserID(ctx, tx, row.UserID)
}

func (r *roadmapRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) (*types.Roadmap, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var result types.Roadmap
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&result).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &result, nil
}
