package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/aioutput"
	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/normalization"
	"github.com/skillpath/skillpath-backend/internal/repos"
	"github.com/skillpath/skillpath-backend/internal/types"
)

// ProgressSummary reports completion against the current roadmap only.
// Ledger rows referencing milestone ids absent from the current roadmap do
// not count, which keeps Percent inside [0, 100] by construction.
type ProgressSummary struct {
	CompletedInRoadmap int `json:"completed_in_roadmap"`
	TotalMilestones    int `json:"total_milestones"`
	Percent            int `json:"percent"`
}

type RoadmapService interface {
	GenerateRoadmap(ctx context.Context, userID uuid.UUID, desiredRole string, missingSkills []string) ([]types.Milestone, error)
	GetRoadmap(ctx context.Context, userID uuid.UUID) ([]types.Milestone, error)
	ToggleMilestone(ctx context.Context, userID uuid.UUID, roadmapID string) (bool, error)
	GetProgress(ctx context.Context, userID uuid.UUID) ([]string, error)
	GetProgressSummary(ctx context.Context, userID uuid.UUID) (ProgressSummary, error)
}

type roadmapService struct {
	db           *gorm.DB
	log          *logger.Logger
	roadmapRepo  repos.RoadmapRepo
	progressRepo repos.UserProgressRepo
	aiClient     AIClient
}

func NewRoadmapService(db *gorm.DB, log *logger.Logger, roadmapRepo repos.RoadmapRepo, progressRepo repos.UserProgressRepo, aiClient AIClient) RoadmapService {
	serviceLog := log.With("service", "RoadmapService")
	return &roadmapService{
		db:           db,
		log:          serviceLog,
		roadmapRepo:  roadmapRepo,
		progressRepo: progressRepo,
		aiClient:     aiClient,
	}
}

// GenerateRoadmap replaces the user's single roadmap wholesale. The
// progress ledger is deliberately left alone: completed markers for ids no
// longer present simply stop counting (see ComputeProgress).
func (s *roadmapService) GenerateRoadmap(ctx context.Context, userID uuid.UUID, desiredRole string, missingSkills []string) ([]types.Milestone, error) {
	desiredRole = normalization.TrimInputString(desiredRole)
	missingSkills = normalization.TrimInputStrings(missingSkills)
	if desiredRole == "" {
		return nil, fmt.Errorf("a desired role is required to generate a roadmap")
	}

	raw, err := s.aiClient.Generate(ctx, "roadmap", userID, buildRoadmapPrompt(desiredRole, missingSkills))
	if err != nil {
		return nil, err
	}

	parsed, err := aioutput.ExtractArray(raw)
	if err != nil {
		var extErr *aioutput.ExtractionError
		if errors.As(err, &extErr) {
			s.log.Error("Roadmap extraction failed", "user_id", userID, "reason", extErr.Reason, "raw", extErr.Raw)
		}
		return nil, err
	}

	milestones, err := aioutput.ValidateMilestones(parsed)
	if err != nil {
		s.log.Error("Roadmap validation failed", "user_id", userID, "error", err)
		return nil, err
	}

	encoded, err := json.Marshal(milestones)
	if err != nil {
		return nil, fmt.Errorf("failed to encode milestones: %w", err)
	}
	saved, err := s.roadmapRepo.Replace(ctx, nil, &types.Roadmap{
		UserID:      userID,
		DesiredRole: desiredRole,
		Milestones:  datatypes.JSON(encoded),
		LastUpdated: time.Now(),
	})
	if err != nil {
		return nil, err
	}
	return decodeMilestones(saved)
}

// GetRoadmap returns the current milestones, or an empty slice when the
// user has never generated a roadmap.
func (s *roadmapService) GetRoadmap(ctx context.Context, userID uuid.UUID) ([]types.Milestone, error) {
	row, err := s.roadmapRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return []types.Milestone{}, nil
	}
	return decodeMilestones(row)
}

// ToggleMilestone flips the completion marker for one milestone id. It is
// a pure toggle: callers cannot force a specific end state in one call.
func (s *roadmapService) ToggleMilestone(ctx context.Context, userID uuid.UUID, roadmapID string) (bool, error) {
	roadmapID = normalization.TrimInputString(roadmapID)
	// Ids are matched verbatim; the ledger has no knowledge of roadmap
	// contents and must not re-case or otherwise rewrite them.
	if roadmapID == "" {
		return false, fmt.Errorf("a milestone id is required")
	}

	existing, err := s.progressRepo.GetByUserAndNode(ctx, nil, userID, roadmapID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		if err := s.progressRepo.FullDeleteByID(ctx, nil, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}

	now := time.Now()
	_, err = s.progressRepo.Create(ctx, nil, &types.UserProgress{
		UserID:      userID,
		RoadmapID:   roadmapID,
		Completed:   true,
		CompletedAt: &now,
	})
	if err != nil {
		return false, err
	}
	return true, nil
}

// GetProgress lists every completed milestone id on record for the user,
// including ids that no longer appear in the current roadmap.
func (s *roadmapService) GetProgress(ctx context.Context, userID uuid.UUID) ([]string, error) {
	rows, err := s.progressRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.RoadmapID)
	}
	return ids, nil
}

func (s *roadmapService) GetProgressSummary(ctx context.Context, userID uuid.UUID) (ProgressSummary, error) {
	milestones, err := s.GetRoadmap(ctx, userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	completedIDs, err := s.GetProgress(ctx, userID)
	if err != nil {
		return ProgressSummary{}, err
	}
	return ComputeProgress(milestones, completedIDs), nil
}

// ComputeProgress is the reconciliation policy between a roadmap and the
// progress ledger. Only the intersection with the current milestones
// counts; a raw ledger count could exceed 100% after regenerations.
func ComputeProgress(milestones []types.Milestone, completedIDs []string) ProgressSummary {
	completed := make(map[string]bool, len(completedIDs))
	for _, id := range completedIDs {
		completed[id] = true
	}

	summary := ProgressSummary{TotalMilestones: len(milestones)}
	for _, m := range milestones {
		if completed[m.ID] {
			summary.CompletedInRoadmap++
		}
	}
	if summary.TotalMilestones > 0 {
		summary.Percent = summary.CompletedInRoadmap * 100 / summary.TotalMilestones
	}
	return summary
}

func decodeMilestones(row *types.Roadmap) ([]types.Milestone, error) {
	if row == nil || len(row.Milestones) == 0 {
		return []types.Milestone{}, nil
	}
	var out []types.Milestone
	if err := json.Unmarshal(row.Milestones, &out); err != nil {
		return nil, fmt.Errorf("failed to decode stored milestones: %w", err)
	}
	return out, nil
}
