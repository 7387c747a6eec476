package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/normalization"
)

// WriterService covers the free-text writing helpers: resume summary,
// resume bullet points, and cover letters. Unlike the insight and roadmap
// pipelines these calls store nothing; the model's prose goes straight
// back to the caller.
type WriterService interface {
	GenerateResumeSummary(ctx context.Context, userID uuid.UUID, industry, skills string) (string, error)
	GenerateResumeBullets(ctx context.Context, userID uuid.UUID, accomplishment, skills string) ([]string, error)
	GenerateCoverLetter(ctx context.Context, userID uuid.UUID, jobDescription, userSkills, companyName string) (string, error)
}

type writerService struct {
	log      *logger.Logger
	aiClient AIClient
}

func NewWriterService(log *logger.Logger, aiClient AIClient) WriterService {
	serviceLog := log.With("service", "WriterService")
	return &writerService{
		log:      serviceLog,
		aiClient: aiClient,
	}
}

func (s *writerService) GenerateResumeSummary(ctx context.Context, userID uuid.UUID, industry, skills string) (string, error) {
	industry = normalization.TrimInputString(industry)
	skills = normalization.TrimInputString(skills)

	prompt := buildResumeSummaryPrompt(industry, skills)
	text, err := s.aiClient.GenerateText(ctx, "resume_summary", userID, prompt)
	if err != nil {
		return "", err
	}
	return text, nil
}

// GenerateResumeBullets keeps only lines the model marked as bullets (a
// leading '*'), in the order they arrived.
func (s *writerService) GenerateResumeBullets(ctx context.Context, userID uuid.UUID, accomplishment, skills string) ([]string, error) {
	accomplishment = normalization.TrimInputString(accomplishment)
	skills = normalization.TrimInputString(skills)
	if accomplishment == "" || skills == "" {
		return nil, fmt.Errorf("accomplishment and skills are required")
	}

	prompt := buildResumeBulletsPrompt(accomplishment, skills)
	text, err := s.aiClient.GenerateText(ctx, "resume_bullets", userID, prompt)
	if err != nil {
		return nil, err
	}

	bullets := make([]string, 0, 3)
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			bullets = append(bullets, line)
		}
	}
	if len(bullets) == 0 {
		s.log.Warn("Model returned no bullet lines", "user_id", userID, "chars", len(text))
	}
	return bullets, nil
}

func (s *writerService) GenerateCoverLetter(ctx context.Context, userID uuid.UUID, jobDescription, userSkills, companyName string) (string, error) {
	jobDescription = normalization.TrimInputString(jobDescription)
	userSkills = normalization.TrimInputString(userSkills)
	companyName = normalization.TrimInputString(companyName)
	if jobDescription == "" || userSkills == "" || companyName == "" {
		return "", fmt.Errorf("jobDescription, userSkills and companyName are required")
	}

	prompt := buildCoverLetterPrompt(jobDescription, userSkills, companyName)
	text, err := s.aiClient.GenerateText(ctx, "cover_letter", userID, prompt)
	if err != nil {
		return "", err
	}
	return text, nil
}
