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

// ProfileInput is the caller-supplied career snapshot that feeds insight
// generation.
type ProfileInput struct {
	Industry    string   `json:"industry"`
	CurrentRole string   `json:"currentRole"`
	DesiredRole string   `json:"desiredRole"`
	Skills      []string `json:"skills"`
}

type InsightService interface {
	GetInsight(ctx context.Context, userID uuid.UUID, targetRole string) (*types.CareerInsight, error)
	ListInsights(ctx context.Context, userID uuid.UUID) ([]*types.CareerInsight, error)
	GenerateInsight(ctx context.Context, userID uuid.UUID, input ProfileInput) (*types.CareerInsight, error)
}

type insightService struct {
	db          *gorm.DB
	log         *logger.Logger
	insightRepo repos.CareerInsightRepo
	aiClient    AIClient
}

func NewInsightService(db *gorm.DB, log *logger.Logger, insightRepo repos.CareerInsightRepo, aiClient AIClient) InsightService {
	serviceLog := log.With("service", "InsightService")
	return &insightService{
		db:          db,
		log:         serviceLog,
		insightRepo: insightRepo,
		aiClient:    aiClient,
	}
}

// GetInsight is a pure read; it never triggers generation. A nil record
// with nil error means no insight has been generated for that role yet.
func (s *insightService) GetInsight(ctx context.Context, userID uuid.UUID, targetRole string) (*types.CareerInsight, error) {
	return s.insightRepo.GetByUserAndRole(ctx, nil, userID, normalization.TrimInputString(targetRole))
}

func (s *insightService) ListInsights(ctx context.Context, userID uuid.UUID) ([]*types.CareerInsight, error) {
	return s.insightRepo.GetByUserID(ctx, nil, userID)
}

// GenerateInsight runs the full pipeline: model call, JSON extraction,
// validation, upsert keyed by (user, target role). Any failure before the
// upsert leaves previously stored state untouched.
func (s *insightService) GenerateInsight(ctx context.Context, userID uuid.UUID, input ProfileInput) (*types.CareerInsight, error) {
	input.Industry = normalization.TrimInputString(input.Industry)
	input.CurrentRole = normalization.TrimInputString(input.CurrentRole)
	input.DesiredRole = normalization.TrimInputString(input.DesiredRole)
	input.Skills = normalization.TrimInputStrings(input.Skills)
	if input.DesiredRole == "" {
		return nil, fmt.Errorf("a desired role is required to generate an insight")
	}

	raw, err := s.aiClient.Generate(ctx, "career_insight", userID, buildInsightPrompt(input))
	if err != nil {
		return nil, err
	}

	parsed, err := aioutput.ExtractObject(raw)
	if err != nil {
		var extErr *aioutput.ExtractionError
		if errors.As(err, &extErr) {
			s.log.Error("Insight extraction failed", "user_id", userID, "reason", extErr.Reason, "raw", extErr.Raw)
		}
		return nil, err
	}

	payload, err := aioutput.ValidateInsight(parsed)
	if err != nil {
		s.log.Error("Insight validation failed", "user_id", userID, "error", err)
		return nil, err
	}

	row, err := insightRow(userID, input, payload)
	if err != nil {
		return nil, err
	}
	return s.insightRepo.Upsert(ctx, nil, row)
}

func insightRow(userID uuid.UUID, input ProfileInput, payload *aioutput.InsightPayload) (*types.CareerInsight, error) {
	skills, err := json.Marshal(input.Skills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skills: %w", err)
	}
	trends, err := json.Marshal(payload.IndustryTrends)
	if err != nil {
		return nil, fmt.Errorf("failed to encode industry trends: %w", err)
	}
	inDemand, err := json.Marshal(payload.InDemandSkills)
	if err != nil {
		return nil, fmt.Errorf("failed to encode in-demand skills: %w", err)
	}
	gap, err := json.Marshal(payload.SkillGapAnalysis)
	if err != nil {
		return nil, fmt.Errorf("failed to encode skill gap analysis: %w", err)
	}

	return &types.CareerInsight{
		UserID:             userID,
		TargetRole:         input.DesiredRole,
		Industry:           input.Industry,
		CurrentRole:        input.CurrentRole,
		Skills:             datatypes.JSON(skills),
		IndustryTrends:     datatypes.JSON(trends),
		InDemandSkills:     datatypes.JSON(inDemand),
		SkillGapAnalysis:   datatypes.JSON(gap),
		ActionableFeedback: payload.ActionableFeedback,
		GeneratedAt:        time.Now(),
	}, nil
}
