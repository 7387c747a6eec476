package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/normalization"
	"github.com/skillpath/skillpath-backend/internal/repos"
	"github.com/skillpath/skillpath-backend/internal/types"
)

type UserService interface {
	GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error)
	UpdateCareerProfile(ctx context.Context, userID uuid.UUID, profile types.CareerProfile) (*types.User, error)
}

type userService struct {
	db       *gorm.DB
	log      *logger.Logger
	userRepo repos.UserRepo
}

func NewUserService(db *gorm.DB, log *logger.Logger, userRepo repos.UserRepo) UserService {
	serviceLog := log.With("service", "UserService")
	return &userService{db: db, log: serviceLog, userRepo: userRepo}
}

func (s *userService) GetMe(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	user, err := s.userRepo.GetByID(ctx, nil, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}
	return user, nil
}

func (s *userService) UpdateCareerProfile(ctx context.Context, userID uuid.UUID, profile types.CareerProfile) (*types.User, error) {
	profile.Industry = normalization.TrimInputString(profile.Industry)
	profile.CurrentRole = normalization.TrimInputString(profile.CurrentRole)
	profile.DesiredRole = normalization.TrimInputString(profile.DesiredRole)
	profile.Skills = normalization.TrimInputStrings(profile.Skills)

	encoded, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode career profile: %w", err)
	}
	return s.userRepo.UpdateCareerProfile(ctx, nil, userID, encoded)
}
